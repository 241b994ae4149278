package moderation

import (
	"context"
	"roomcast/domain"

	"github.com/samber/lo"
)

// PurgeExpired drops every expired mute, then persists the players whose
// documents changed, including the ones left dirty by lazy purges or failed
// saves. It returns the number of records removed.
func (r *Registry) PurgeExpired(ctx context.Context) int {
	now := r.now()
	purged := 0

	r.mu.Lock()
	for muter, mutes := range r.personal {
		for target, record := range mutes {
			if record.IsExpired(now) {
				r.deletePersonalLocked(muter, target)
				r.dirty[muter] = struct{}{}
				purged++
			}
		}
	}
	for playerID, mutes := range r.channels {
		for channel, record := range mutes {
			if record.IsExpired(now) {
				r.deleteChannelLocked(playerID, channel)
				r.dirty[playerID] = struct{}{}
				purged++
			}
		}
	}
	for target, record := range r.global {
		if record.IsExpired(now) {
			delete(r.global, target)
			r.dirty[target] = struct{}{}
			r.dirty[record.MutedBy] = struct{}{}
			purged++
		}
	}
	dirty := lo.Keys(r.dirty)
	r.mu.Unlock()

	for _, id := range uniqueSorted(dirty) {
		if ctx.Err() != nil {
			break
		}
		r.SaveSnapshot(ctx, id)
	}
	if purged > 0 {
		r.log.Info("Expired mutes purged", "count", purged, "saved", len(dirty))
	}
	return purged
}

// Dirty lists players whose document is behind the in-memory state.
func (r *Registry) Dirty() []domain.PlayerID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return uniqueSorted(lo.Keys(r.dirty))
}
