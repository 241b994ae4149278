package runtime

import (
	"context"
	"roomcast/domain"
	"sync"
)

// PresenceCache is the in-process online presence of connected players.
type PresenceCache struct {
	mu       sync.RWMutex
	presence map[domain.PlayerID]domain.Presence
}

func NewPresenceCache() *PresenceCache {
	return &PresenceCache{presence: make(map[domain.PlayerID]domain.Presence)}
}

func (p *PresenceCache) GetPresence(_ context.Context, playerID domain.PlayerID) (domain.Presence, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	presence, ok := p.presence[playerID]
	return presence, ok
}

func (p *PresenceCache) SetPresence(_ context.Context, playerID domain.PlayerID, roomID domain.RoomID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.presence[playerID] = domain.Presence{PlayerID: playerID, CurrentRoomID: roomID}
	return nil
}

func (p *PresenceCache) RemovePresence(_ context.Context, playerID domain.PlayerID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.presence, playerID)
	return nil
}
