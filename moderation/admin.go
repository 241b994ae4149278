package moderation

import (
	"context"
	stderrors "errors"
	"fmt"
	"roomcast/domain"
	"roomcast/errors"
)

// IsAdmin reports whether the player holds administrator privilege.
// A directory record is cached until an explicit grant or revoke.
func (r *Registry) IsAdmin(ctx context.Context, playerID domain.PlayerID) bool {
	isAdmin, err := r.adminStatus(ctx, playerID)
	if err != nil {
		r.log.Warn("Admin lookup failed", "player", playerID, "error", err)
		return false
	}
	return isAdmin
}

func (r *Registry) adminStatus(ctx context.Context, playerID domain.PlayerID) (bool, error) {
	r.mu.RLock()
	isAdmin, ok := r.admins[playerID]
	r.mu.RUnlock()
	if ok {
		return isAdmin, nil
	}

	if r.players != nil {
		record, err := r.players.GetPlayer(ctx, playerID)
		switch {
		case err == nil:
			r.cacheAdmin(playerID, record.IsAdmin)
			return record.IsAdmin, nil
		case !stderrors.Is(err, errors.ErrNotFound):
			return false, err
		}
	}

	// Without a directory record the snapshot flag decides. It is not cached:
	// the player's own snapshot may be loaded later.
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshotAdmins[playerID], nil
}

func (r *Registry) cacheAdmin(playerID domain.PlayerID, isAdmin bool) {
	r.mu.Lock()
	r.admins[playerID] = isAdmin
	r.mu.Unlock()
}

// targetMutable enforces admin immunity. An unreachable directory denies the mute.
func (r *Registry) targetMutable(ctx context.Context, muter, target domain.PlayerID) bool {
	isAdmin, err := r.adminStatus(ctx, target)
	if err != nil {
		r.log.Warn("Mute rejected, admin status unknown", "muter", muter, "target", target, "error", err)
		return false
	}
	if isAdmin {
		r.log.Info("Mute rejected", "muter", muter, "target", target, "error", errors.ErrPermissionDenied)
		return false
	}
	return true
}

// GrantAdmin marks the player as administrator in the directory and the cache.
// Mutes targeting the player are lifted in memory. Copies still on disk in
// documents of muters not loaded yet are dropped when those documents load,
// and disappear from disk at their next save.
func (r *Registry) GrantAdmin(ctx context.Context, playerID domain.PlayerID) error {
	if err := r.setAdmin(ctx, playerID, true); err != nil {
		return err
	}

	touched := []domain.PlayerID{playerID}
	r.mu.Lock()
	if record, ok := r.global[playerID]; ok {
		delete(r.global, playerID)
		touched = append(touched, record.MutedBy)
	}
	for muter := range r.personal {
		if _, ok := r.personal[muter][playerID]; ok {
			r.deletePersonalLocked(muter, playerID)
			touched = append(touched, muter)
		}
	}
	r.mu.Unlock()

	r.log.Info("Admin granted", "player", playerID, "lifted", len(touched)-1)
	return r.saveAll(ctx, touched)
}

// RevokeAdmin removes administrator privilege.
func (r *Registry) RevokeAdmin(ctx context.Context, playerID domain.PlayerID) error {
	if err := r.setAdmin(ctx, playerID, false); err != nil {
		return err
	}
	r.log.Info("Admin revoked", "player", playerID)
	return r.saveAll(ctx, []domain.PlayerID{playerID})
}

func (r *Registry) setAdmin(ctx context.Context, playerID domain.PlayerID, isAdmin bool) error {
	if playerID == "" {
		return fmt.Errorf("%w: empty player id", errors.ErrInvalidMute)
	}
	if r.players != nil {
		if err := r.players.SetAdmin(ctx, playerID, isAdmin); err != nil {
			return fmt.Errorf("%w: set admin %s: %v", errors.ErrPersistenceFailure, playerID, err)
		}
	}
	r.mu.Lock()
	r.admins[playerID] = isAdmin
	r.snapshotAdmins[playerID] = isAdmin
	r.mu.Unlock()
	return nil
}

func (r *Registry) saveAll(ctx context.Context, playerIDs []domain.PlayerID) error {
	var errs []error
	for _, id := range uniqueSorted(playerIDs) {
		if !r.SaveSnapshot(ctx, id) {
			errs = append(errs, fmt.Errorf("%w: snapshot %s", errors.ErrPersistenceFailure, id))
		}
	}
	return stderrors.Join(errs...)
}
