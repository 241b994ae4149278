package moderation

import (
	"context"
	"roomcast/domain"
	"roomcast/errors"
	"sort"
	"time"

	"github.com/samber/lo"
)

// MuteChannel lets a player silence one of their own channels.
func (r *Registry) MuteChannel(ctx context.Context, cmd ChannelMuteCommand) bool {
	if err := ValidateChannelMute(cmd); err != nil {
		r.log.Debug("Channel mute rejected", "player", cmd.PlayerID, "channel", cmd.Channel, "error", err)
		return false
	}

	return r.withPlayers(ctx, []domain.PlayerID{cmd.PlayerID}, func() bool {
		now := r.now()
		record := domain.ChannelMuteRecord{
			Channel:   cmd.Channel,
			MutedAt:   now,
			ExpiresAt: domain.ExpiryFrom(now, cmd.Duration),
			Reason:    cmd.Reason,
		}
		r.mu.Lock()
		mutes, ok := r.channels[cmd.PlayerID]
		if !ok {
			mutes = make(map[domain.Channel]domain.ChannelMuteRecord)
			r.channels[cmd.PlayerID] = mutes
		}
		mutes[cmd.Channel] = record
		r.mu.Unlock()

		r.log.Info("Channel muted", "player", cmd.PlayerID, "channel", cmd.Channel, "permanent", record.IsPermanent())
		return true
	})
}

// UnmuteChannel returns false when the channel was not muted.
func (r *Registry) UnmuteChannel(ctx context.Context, playerID domain.PlayerID, channel domain.Channel) bool {
	return r.withPlayers(ctx, []domain.PlayerID{playerID}, func() bool {
		now := r.now()
		r.mu.Lock()
		defer r.mu.Unlock()
		record, ok := r.channels[playerID][channel]
		if !ok {
			r.log.Debug("Channel unmute ignored", "player", playerID, "channel", channel, "error", errors.ErrNotFound)
			return false
		}
		r.deleteChannelLocked(playerID, channel)
		if record.IsExpired(now) {
			r.dirty[playerID] = struct{}{}
			return false
		}
		r.log.Info("Channel unmuted", "player", playerID, "channel", channel)
		return true
	})
}

// IsChannelMuted reports whether the player muted the channel for themself.
func (r *Registry) IsChannelMuted(playerID domain.PlayerID, channel domain.Channel) bool {
	now := r.now()
	r.mu.RLock()
	record, ok := r.channels[playerID][channel]
	r.mu.RUnlock()
	if !ok {
		return false
	}
	if !record.IsExpired(now) {
		return true
	}

	r.mu.Lock()
	if current, ok := r.channels[playerID][channel]; ok && current.IsExpired(now) {
		r.deleteChannelLocked(playerID, channel)
		r.dirty[playerID] = struct{}{}
		r.log.Debug("Expired channel mute purged", "player", playerID, "channel", channel)
	}
	r.mu.Unlock()
	return false
}

// ChannelMutes lists the player's active channel mutes, ordered by channel.
func (r *Registry) ChannelMutes(playerID domain.PlayerID) []domain.ChannelMuteRecord {
	now := r.now()
	r.mu.RLock()
	records := lo.Values(r.channels[playerID])
	r.mu.RUnlock()

	active := lo.Filter(records, func(m domain.ChannelMuteRecord, _ int) bool {
		return !m.IsExpired(now)
	})
	if len(active) != len(records) {
		r.purgeChannels(playerID, now)
	}
	sort.Slice(active, func(i, j int) bool { return active[i].Channel < active[j].Channel })
	return active
}

func (r *Registry) purgeChannels(playerID domain.PlayerID, now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for channel, record := range r.channels[playerID] {
		if record.IsExpired(now) {
			r.deleteChannelLocked(playerID, channel)
			r.dirty[playerID] = struct{}{}
		}
	}
}

func (r *Registry) deleteChannelLocked(playerID domain.PlayerID, channel domain.Channel) {
	mutes, ok := r.channels[playerID]
	if !ok {
		return
	}
	delete(mutes, channel)
	if len(mutes) == 0 {
		delete(r.channels, playerID)
	}
}
