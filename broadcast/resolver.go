// Package broadcast decides who receives a room message.
package broadcast

import (
	"context"
	stderrors "errors"
	"log/slog"
	"roomcast/contract"
	"roomcast/domain"
	"roomcast/errors"
)

// Resolver turns a room id into candidate recipients and confirms where a
// player stands. Room ids are canonicalized on both sides of every
// comparison: legacy and current names of a room must match.
type Resolver struct {
	rooms    contract.IRoomDirectory
	presence contract.IPresenceCache
	players  contract.IPlayerDirectory
	log      *slog.Logger
}

func NewResolver(rooms contract.IRoomDirectory, presence contract.IPresenceCache,
	players contract.IPlayerDirectory, log *slog.Logger) *Resolver {
	return &Resolver{rooms: rooms, presence: presence, players: players, log: log}
}

// Canonical returns the canonical id of roomID, or roomID itself.
func (r *Resolver) Canonical(roomID domain.RoomID) domain.RoomID {
	if canonical, ok := r.rooms.Canonical(roomID); ok && canonical != "" {
		return canonical
	}
	return roomID
}

// CollectRoomTargets unions the subscribers registered under the canonical
// key and under the original key, each player counted once.
func (r *Resolver) CollectRoomTargets(roomID domain.RoomID) domain.Set {
	targets := make(domain.Set)
	canonical := r.Canonical(roomID)
	for _, id := range r.rooms.Subscribers(canonical) {
		targets.Add(id)
	}
	if canonical != roomID {
		for _, id := range r.rooms.Subscribers(roomID) {
			targets.Add(id)
		}
	}
	return targets
}

// IsPlayerInRoom prefers the presence cache and falls back to the durable
// player record. It answers false when neither knows a room.
func (r *Resolver) IsPlayerInRoom(ctx context.Context, playerID domain.PlayerID, roomID domain.RoomID) bool {
	if r.presence != nil {
		if presence, ok := r.presence.GetPresence(ctx, playerID); ok && presence.CurrentRoomID != "" {
			return domain.SameRoom(presence.CurrentRoomID, roomID, r.Canonical)
		}
	}
	if r.players == nil {
		return false
	}
	record, err := r.players.GetPlayer(ctx, playerID)
	if err != nil {
		if !stderrors.Is(err, errors.ErrNotFound) {
			r.log.Warn("Player record lookup failed", "player", playerID, "error", err)
		}
		return false
	}
	return domain.SameRoom(record.CurrentRoomID, roomID, r.Canonical)
}
