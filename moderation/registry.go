// Package moderation owns the mute state of every player: personal mutes,
// self-imposed channel mutes, global mutes and the admin immunity set.
package moderation

import (
	"context"
	"log/slog"
	"roomcast/contract"
	"roomcast/domain"
	"slices"
	"sync"
	"time"

	"github.com/samber/lo"
)

// Registry is the in-memory, durably snapshotted mute state.
//
// All maps are guarded by mu. Snapshot reads and writes for one player are
// serialized by that player's lock, which is always taken before mu and, when
// several players are involved, in ascending id order.
type Registry struct {
	mu             sync.RWMutex
	personal       map[domain.PlayerID]map[domain.PlayerID]domain.MuteRecord
	channels       map[domain.PlayerID]map[domain.Channel]domain.ChannelMuteRecord
	global         map[domain.PlayerID]domain.GlobalMuteRecord
	admins         map[domain.PlayerID]bool
	snapshotAdmins map[domain.PlayerID]bool
	loaded         map[domain.PlayerID]struct{}
	dirty          map[domain.PlayerID]struct{}

	locksMu sync.Mutex
	locks   map[domain.PlayerID]*sync.Mutex

	store   contract.ISnapshotStore
	players contract.IPlayerDirectory
	log     *slog.Logger
	now     func() time.Time
}

// NewRegistry builds an empty registry. players may be nil, in which case
// admin status only comes from loaded snapshots and explicit grants.
func NewRegistry(store contract.ISnapshotStore, players contract.IPlayerDirectory, log *slog.Logger) *Registry {
	return &Registry{
		personal:       make(map[domain.PlayerID]map[domain.PlayerID]domain.MuteRecord),
		channels:       make(map[domain.PlayerID]map[domain.Channel]domain.ChannelMuteRecord),
		global:         make(map[domain.PlayerID]domain.GlobalMuteRecord),
		admins:         make(map[domain.PlayerID]bool),
		snapshotAdmins: make(map[domain.PlayerID]bool),
		loaded:         make(map[domain.PlayerID]struct{}),
		dirty:          make(map[domain.PlayerID]struct{}),
		locks:          make(map[domain.PlayerID]*sync.Mutex),
		store:          store,
		players:        players,
		log:            log,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the time source, mostly for tests.
func (r *Registry) WithClock(now func() time.Time) *Registry {
	r.now = now
	return r
}

func (r *Registry) playerLock(playerID domain.PlayerID) *sync.Mutex {
	r.locksMu.Lock()
	defer r.locksMu.Unlock()
	lock, ok := r.locks[playerID]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[playerID] = lock
	}
	return lock
}

// withPlayers runs fn with the snapshot locks of every player held and their
// snapshots loaded, then persists each of them.
func (r *Registry) withPlayers(ctx context.Context, playerIDs []domain.PlayerID, fn func() bool) bool {
	ids := uniqueSorted(playerIDs)
	for _, id := range ids {
		lock := r.playerLock(id)
		lock.Lock()
		defer lock.Unlock()
	}
	for _, id := range ids {
		if !r.isLoaded(id) {
			r.loadLocked(ctx, id)
		}
	}
	if !fn() {
		return false
	}
	for _, id := range ids {
		if err := r.saveLocked(ctx, id); err != nil {
			// The in-memory decision stands; the next successful save catches up.
			r.log.Error("Mute snapshot not persisted", "player", id, "error", err)
			r.markDirty(id)
		}
	}
	return true
}

func (r *Registry) isLoaded(playerID domain.PlayerID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.loaded[playerID]
	return ok
}

func (r *Registry) markDirty(playerID domain.PlayerID) {
	r.mu.Lock()
	r.dirty[playerID] = struct{}{}
	r.mu.Unlock()
}

func uniqueSorted(ids []domain.PlayerID) []domain.PlayerID {
	res := lo.Uniq(lo.Compact(ids))
	slices.Sort(res)
	return res
}
