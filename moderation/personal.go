package moderation

import (
	"context"
	"roomcast/domain"
	"roomcast/errors"
	"sort"
	"time"

	"github.com/samber/lo"
)

// MutePlayer hides every message of cmd.TargetID from cmd.MuterID.
// It returns false and writes nothing when the command is invalid or the
// target is an admin. Re-muting overwrites the previous record.
func (r *Registry) MutePlayer(ctx context.Context, cmd MuteCommand) bool {
	if err := ValidateMute(cmd); err != nil {
		r.log.Debug("Mute rejected", "muter", cmd.MuterID, "target", cmd.TargetID, "error", err)
		return false
	}
	if !r.targetMutable(ctx, cmd.MuterID, cmd.TargetID) {
		return false
	}

	return r.withPlayers(ctx, []domain.PlayerID{cmd.MuterID, cmd.TargetID}, func() bool {
		now := r.now()
		record := domain.MuteRecord{
			TargetID:    cmd.TargetID,
			TargetName:  nameOr(cmd.TargetName, cmd.TargetID),
			MutedBy:     cmd.MuterID,
			MutedByName: nameOr(cmd.MuterName, cmd.MuterID),
			MutedAt:     now,
			ExpiresAt:   domain.ExpiryFrom(now, cmd.Duration),
			Reason:      cmd.Reason,
		}
		r.mu.Lock()
		mutes, ok := r.personal[cmd.MuterID]
		if !ok {
			mutes = make(map[domain.PlayerID]domain.MuteRecord)
			r.personal[cmd.MuterID] = mutes
		}
		mutes[cmd.TargetID] = record
		r.mu.Unlock()

		r.log.Info("Player muted", "muter", cmd.MuterID, "target", cmd.TargetID,
			"permanent", record.IsPermanent(), "reason", cmd.Reason)
		return true
	})
}

// UnmutePlayer removes the personal mute of muter on target.
// It returns false when no active mute exists.
func (r *Registry) UnmutePlayer(ctx context.Context, muter, target domain.PlayerID) bool {
	return r.withPlayers(ctx, []domain.PlayerID{muter, target}, func() bool {
		now := r.now()
		r.mu.Lock()
		defer r.mu.Unlock()
		record, ok := r.personal[muter][target]
		if !ok {
			r.log.Debug("Unmute ignored", "muter", muter, "target", target, "error", errors.ErrNotFound)
			return false
		}
		r.deletePersonalLocked(muter, target)
		if record.IsExpired(now) {
			r.dirty[muter] = struct{}{}
			return false
		}
		r.log.Info("Player unmuted", "muter", muter, "target", target)
		return true
	})
}

// IsPlayerMuted reports whether muter currently mutes target.
// An expired record is purged on the way.
func (r *Registry) IsPlayerMuted(muter, target domain.PlayerID) bool {
	now := r.now()
	r.mu.RLock()
	record, ok := r.personal[muter][target]
	r.mu.RUnlock()
	if !ok {
		return false
	}
	if !record.IsExpired(now) {
		return true
	}

	r.mu.Lock()
	if current, ok := r.personal[muter][target]; ok && current.IsExpired(now) {
		r.deletePersonalLocked(muter, target)
		r.dirty[muter] = struct{}{}
		r.log.Debug("Expired mute purged", "muter", muter, "target", target)
	}
	r.mu.Unlock()
	return false
}

// PersonalMutes lists the active mutes applied by muter, ordered by target.
func (r *Registry) PersonalMutes(muter domain.PlayerID) []domain.MuteRecord {
	now := r.now()
	r.mu.RLock()
	records := lo.Values(r.personal[muter])
	r.mu.RUnlock()

	active := lo.Filter(records, func(m domain.MuteRecord, _ int) bool {
		return !m.IsExpired(now)
	})
	if len(active) != len(records) {
		r.purgePersonal(muter, now)
	}
	sort.Slice(active, func(i, j int) bool { return active[i].TargetID < active[j].TargetID })
	return active
}

func (r *Registry) purgePersonal(muter domain.PlayerID, now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for target, record := range r.personal[muter] {
		if record.IsExpired(now) {
			r.deletePersonalLocked(muter, target)
			r.dirty[muter] = struct{}{}
		}
	}
}

func (r *Registry) deletePersonalLocked(muter, target domain.PlayerID) {
	mutes, ok := r.personal[muter]
	if !ok {
		return
	}
	delete(mutes, target)
	if len(mutes) == 0 {
		delete(r.personal, muter)
	}
}
