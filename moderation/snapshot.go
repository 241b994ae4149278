package moderation

import (
	"context"
	stderrors "errors"
	"fmt"
	"roomcast/domain"
	"time"

	"github.com/samber/lo"
)

// SaveSnapshot persists every mute touching the player. It returns false when
// the store failed; the previous document is then left untouched.
func (r *Registry) SaveSnapshot(ctx context.Context, playerID domain.PlayerID) bool {
	lock := r.playerLock(playerID)
	lock.Lock()
	defer lock.Unlock()

	if !r.isLoaded(playerID) {
		r.loadLocked(ctx, playerID)
	}
	if err := r.saveLocked(ctx, playerID); err != nil {
		r.log.Error("Mute snapshot not saved", "player", playerID, "error", err)
		return false
	}
	return true
}

// LoadSnapshot reads the player's document and replaces the player's own
// personal and channel mutes with it. Global mutes are merged, the most
// recent one per target winning, except that a player's own document always
// decides its received global mute. A missing document counts as a success.
func (r *Registry) LoadSnapshot(ctx context.Context, playerID domain.PlayerID) bool {
	lock := r.playerLock(playerID)
	lock.Lock()
	defer lock.Unlock()
	return r.loadLocked(ctx, playerID)
}

// PreloadSnapshots loads, once per process, the snapshot of every given player.
// Failures are collected and returned; the players stay unloaded.
func (r *Registry) PreloadSnapshots(ctx context.Context, playerIDs []domain.PlayerID) error {
	var errs []error
	for _, id := range uniqueSorted(playerIDs) {
		if r.isLoaded(id) {
			continue
		}
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		lock := r.playerLock(id)
		lock.Lock()
		if !r.isLoaded(id) && !r.loadLocked(ctx, id) {
			errs = append(errs, fmt.Errorf("preload %s failed", id))
		}
		lock.Unlock()
	}
	return stderrors.Join(errs...)
}

func (r *Registry) ensureLoaded(ctx context.Context, playerID domain.PlayerID) {
	if err := r.PreloadSnapshots(ctx, []domain.PlayerID{playerID}); err != nil {
		r.log.Warn("Mute snapshot not loaded", "player", playerID, "error", err)
	}
}

func (r *Registry) loadLocked(ctx context.Context, playerID domain.PlayerID) bool {
	snapshot, err := r.store.Load(ctx, playerID)
	if err != nil {
		r.log.Warn("No mute data available", "player", playerID, "error", err)
		return false
	}
	if snapshot.IsAdmin {
		r.mu.Lock()
		r.snapshotAdmins[playerID] = true
		r.mu.Unlock()
	}
	immune := r.immuneTargets(ctx, playerID, snapshot)

	now := r.now()
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.personal, playerID)
	for target, record := range snapshot.PersonalMutes {
		if record.IsExpired(now) || immune.Has(target) {
			continue
		}
		record.TargetID, record.MutedBy = target, playerID
		if r.personal[playerID] == nil {
			r.personal[playerID] = make(map[domain.PlayerID]domain.MuteRecord)
		}
		r.personal[playerID][target] = record
	}

	delete(r.channels, playerID)
	for channel, record := range snapshot.ChannelMutes {
		if record.IsExpired(now) {
			continue
		}
		record.Channel = channel
		if r.channels[playerID] == nil {
			r.channels[playerID] = make(map[domain.Channel]domain.ChannelMuteRecord)
		}
		r.channels[playerID][channel] = record
	}

	// The target's own document is authoritative for its global mute; an
	// author's copy only fills in targets not loaded yet.
	for target, record := range snapshot.GlobalMutes {
		if _, ok := r.loaded[target]; ok {
			continue
		}
		record.TargetID, record.MutedBy = target, playerID
		r.mergeGlobalLocked(record, now, immune)
	}
	delete(r.global, playerID)
	if snapshot.GlobalMute != nil {
		record := *snapshot.GlobalMute
		record.TargetID = playerID
		r.mergeGlobalLocked(record, now, immune)
	}

	r.loaded[playerID] = struct{}{}
	r.log.Debug("Mute snapshot loaded", "player", playerID,
		"personal", len(r.personal[playerID]), "channels", len(r.channels[playerID]))
	return true
}

// immuneTargets resolves, outside mu, which mute targets of the document are
// admins. A directory failure keeps the mute: a deny is never dropped on an
// unknown status.
func (r *Registry) immuneTargets(ctx context.Context, playerID domain.PlayerID, snapshot domain.MuteSnapshot) domain.Set {
	targets := append(lo.Keys(snapshot.PersonalMutes), lo.Keys(snapshot.GlobalMutes)...)
	if snapshot.GlobalMute != nil {
		targets = append(targets, playerID)
	}
	immune := make(domain.Set)
	for _, target := range uniqueSorted(targets) {
		isAdmin, err := r.adminStatus(ctx, target)
		if err != nil {
			r.log.Warn("Admin status unknown, mute kept", "player", playerID, "target", target, "error", err)
			continue
		}
		if isAdmin {
			immune.Add(target)
		}
	}
	return immune
}

func (r *Registry) mergeGlobalLocked(record domain.GlobalMuteRecord, now time.Time, immune domain.Set) {
	if record.IsExpired(now) || immune.Has(record.TargetID) {
		return
	}
	if current, ok := r.global[record.TargetID]; ok && current.MutedAt.After(record.MutedAt) {
		return
	}
	r.global[record.TargetID] = record
}

func (r *Registry) saveLocked(ctx context.Context, playerID domain.PlayerID) error {
	snapshot := r.buildSnapshot(playerID)
	if err := r.store.Save(ctx, snapshot); err != nil {
		return err
	}
	r.mu.Lock()
	delete(r.dirty, playerID)
	r.mu.Unlock()
	return nil
}

func (r *Registry) buildSnapshot(playerID domain.PlayerID) domain.MuteSnapshot {
	now := r.now()
	snapshot := domain.NewMuteSnapshot(playerID)
	snapshot.SavedAt = now

	r.mu.RLock()
	defer r.mu.RUnlock()

	if isAdmin, ok := r.admins[playerID]; ok {
		snapshot.IsAdmin = isAdmin
	} else {
		snapshot.IsAdmin = r.snapshotAdmins[playerID]
	}
	for target, record := range r.personal[playerID] {
		if !record.IsExpired(now) {
			snapshot.PersonalMutes[target] = record
		}
	}
	for channel, record := range r.channels[playerID] {
		if !record.IsExpired(now) {
			snapshot.ChannelMutes[channel] = record
		}
	}
	for target, record := range r.global {
		if record.IsExpired(now) {
			continue
		}
		if record.MutedBy == playerID {
			snapshot.GlobalMutes[target] = record
		}
		if target == playerID {
			received := record
			snapshot.GlobalMute = &received
		}
	}
	return snapshot
}
