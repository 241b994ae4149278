package runtime

import (
	"roomcast/contract"
	"roomcast/domain"
	"sync"

	"github.com/samber/lo"
)

// Registry is the room subscription index: which sessions listen to which
// room, and which room ids are aliases of a canonical one.
type Registry struct {
	mu          sync.RWMutex
	sessions    map[domain.PlayerID]contract.EventSink // map participant -> Sink
	roomMembers map[domain.RoomID]domain.Set           // map room to users
	aliases     map[domain.RoomID]domain.RoomID        // map alias -> canonical room
}

func NewRegistry() *Registry {
	return &Registry{
		sessions:    make(map[domain.PlayerID]contract.EventSink),
		roomMembers: make(map[domain.RoomID]domain.Set),
		aliases:     make(map[domain.RoomID]domain.RoomID),
	}
}

// SetAlias declares alias as another name of canonical.
func (r *Registry) SetAlias(alias, canonical domain.RoomID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if alias == canonical {
		delete(r.aliases, alias)
		return
	}
	r.aliases[alias] = canonical
}

// Canonical returns the canonical id of roomID when a mapping exists.
func (r *Registry) Canonical(roomID domain.RoomID) (domain.RoomID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	canonical, ok := r.aliases[roomID]
	return canonical, ok
}

// Subscribers lists the players subscribed under exactly this room key.
func (r *Registry) Subscribers(roomID domain.RoomID) []domain.PlayerID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Keys(r.roomMembers[roomID])
}

// SinkFor returns the live connection of a participant.
func (r *Registry) SinkFor(participantID domain.PlayerID) (contract.EventSink, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sink, ok := r.sessions[participantID]
	return sink, ok
}

// Subscribe registers a participant's active connection and assigns them to a specific room.
// It ensures thread-safe updates to both the global session directory and the room-specific membership set.
// If the room does not yet exist in the registry, it is initialized on the fly.
func (r *Registry) Subscribe(participantID domain.PlayerID, roomID domain.RoomID, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[participantID] = sink

	if _, ok := r.roomMembers[roomID]; !ok {
		r.roomMembers[roomID] = make(domain.Set)
	}
	r.roomMembers[roomID].Add(participantID)
}

// Unsubscribe removes a participant from the registry and their current room.
// It cleans up the session and ensures no empty sets are left in the room map
// to prevent memory leaks over time.
func (r *Registry) Unsubscribe(participantID domain.PlayerID, roomID domain.RoomID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, participantID)

	if members, ok := r.roomMembers[roomID]; ok {
		delete(members, participantID)

		// If no one is left in the room, remove the room entry entirely
		if len(members) == 0 {
			delete(r.roomMembers, roomID)
		}
	}
}

// Move switches a connected participant from one room to another, keeping the session.
func (r *Registry) Move(participantID domain.PlayerID, from, to domain.RoomID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if members, ok := r.roomMembers[from]; ok {
		delete(members, participantID)
		if len(members) == 0 {
			delete(r.roomMembers, from)
		}
	}
	if _, ok := r.roomMembers[to]; !ok {
		r.roomMembers[to] = make(domain.Set)
	}
	r.roomMembers[to].Add(participantID)
}
