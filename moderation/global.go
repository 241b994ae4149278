package moderation

import (
	"context"
	"roomcast/domain"
	"roomcast/errors"
)

// MuteGlobal silences cmd.TargetID for every non-admin receiver.
// Only one global mute is active per target; a new one replaces it.
func (r *Registry) MuteGlobal(ctx context.Context, cmd MuteCommand) bool {
	if err := ValidateMute(cmd); err != nil {
		r.log.Debug("Global mute rejected", "muter", cmd.MuterID, "target", cmd.TargetID, "error", err)
		return false
	}
	if !r.targetMutable(ctx, cmd.MuterID, cmd.TargetID) {
		return false
	}

	r.ensureLoaded(ctx, cmd.TargetID)
	involved := []domain.PlayerID{cmd.MuterID, cmd.TargetID}
	r.mu.RLock()
	if previous, ok := r.global[cmd.TargetID]; ok {
		involved = append(involved, previous.MutedBy)
	}
	r.mu.RUnlock()

	return r.withPlayers(ctx, involved, func() bool {
		now := r.now()
		record := domain.GlobalMuteRecord{
			TargetID:    cmd.TargetID,
			TargetName:  nameOr(cmd.TargetName, cmd.TargetID),
			MutedBy:     cmd.MuterID,
			MutedByName: nameOr(cmd.MuterName, cmd.MuterID),
			MutedAt:     now,
			ExpiresAt:   domain.ExpiryFrom(now, cmd.Duration),
			Reason:      cmd.Reason,
		}
		r.mu.Lock()
		r.global[cmd.TargetID] = record
		r.mu.Unlock()

		r.log.Info("Player globally muted", "muter", cmd.MuterID, "target", cmd.TargetID,
			"permanent", record.IsPermanent(), "reason", cmd.Reason)
		return true
	})
}

// UnmuteGlobal lifts the global mute of target, whoever authored it.
// actor is only recorded in the logs.
func (r *Registry) UnmuteGlobal(ctx context.Context, actor, target domain.PlayerID) bool {
	r.ensureLoaded(ctx, target)
	r.mu.RLock()
	previous, ok := r.global[target]
	r.mu.RUnlock()
	involved := []domain.PlayerID{target}
	if ok {
		involved = append(involved, previous.MutedBy)
	}

	return r.withPlayers(ctx, involved, func() bool {
		now := r.now()
		r.mu.Lock()
		defer r.mu.Unlock()
		record, ok := r.global[target]
		if !ok {
			r.log.Debug("Global unmute ignored", "actor", actor, "target", target, "error", errors.ErrNotFound)
			return false
		}
		delete(r.global, target)
		if record.IsExpired(now) {
			r.dirty[target] = struct{}{}
			r.dirty[record.MutedBy] = struct{}{}
			return false
		}
		r.log.Info("Player globally unmuted", "actor", actor, "target", target, "author", record.MutedBy)
		return true
	})
}

// IsGloballyMuted reports whether target is under an active global mute.
func (r *Registry) IsGloballyMuted(target domain.PlayerID) bool {
	_, ok := r.GlobalMute(target)
	return ok
}

// IsPlayerMutedByOthers is true when any author globally muted target.
func (r *Registry) IsPlayerMutedByOthers(target domain.PlayerID) bool {
	return r.IsGloballyMuted(target)
}

// GlobalMute returns the active global mute of target, purging an expired one.
func (r *Registry) GlobalMute(target domain.PlayerID) (domain.GlobalMuteRecord, bool) {
	now := r.now()
	r.mu.RLock()
	record, ok := r.global[target]
	r.mu.RUnlock()
	if !ok {
		return domain.GlobalMuteRecord{}, false
	}
	if !record.IsExpired(now) {
		return record, true
	}

	r.mu.Lock()
	if current, ok := r.global[target]; ok && current.IsExpired(now) {
		delete(r.global, target)
		r.dirty[target] = struct{}{}
		r.dirty[current.MutedBy] = struct{}{}
		r.log.Debug("Expired global mute purged", "target", target)
	}
	r.mu.Unlock()
	return domain.GlobalMuteRecord{}, false
}

// CanSendMessage is consulted before a message is accepted for broadcast.
// Admins always speak. Personal mutes never block sending, only receiving.
// An empty channel skips the channel mute check.
func (r *Registry) CanSendMessage(ctx context.Context, sender domain.PlayerID, channel domain.Channel) bool {
	if r.IsAdmin(ctx, sender) {
		return true
	}
	if r.IsGloballyMuted(sender) {
		return false
	}
	if channel != "" && r.IsChannelMuted(sender, channel) {
		return false
	}
	return true
}
