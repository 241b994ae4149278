//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"roomcast/domain"
	"roomcast/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink is the transport end of one connected player.
type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// IRoomDirectory is the room subscription index.
type IRoomDirectory interface {
	Subscribers(roomID domain.RoomID) []domain.PlayerID
	Canonical(roomID domain.RoomID) (domain.RoomID, bool)
}

// IPresenceCache is the fast, possibly stale, online presence lookup.
type IPresenceCache interface {
	GetPresence(ctx context.Context, playerID domain.PlayerID) (domain.Presence, bool)
}

// IPresenceStore is a presence cache the engine also writes to.
type IPresenceStore interface {
	IPresenceCache
	SetPresence(ctx context.Context, playerID domain.PlayerID, roomID domain.RoomID) error
	RemovePresence(ctx context.Context, playerID domain.PlayerID) error
}

// IPlayerDirectory is the durable player record source.
type IPlayerDirectory interface {
	GetPlayer(ctx context.Context, playerID domain.PlayerID) (domain.PlayerRecord, error)
	SetAdmin(ctx context.Context, playerID domain.PlayerID, isAdmin bool) error
}

// ISnapshotStore persists one mute snapshot per player.
// Load returns an empty snapshot when nothing was ever saved.
type ISnapshotStore interface {
	Load(ctx context.Context, playerID domain.PlayerID) (domain.MuteSnapshot, error)
	Save(ctx context.Context, snapshot domain.MuteSnapshot) error
}

// IMuteChecker is the read side of the mute registry used by the filter.
type IMuteChecker interface {
	IsPlayerMuted(muter, target domain.PlayerID) bool
	IsPlayerMutedByOthers(target domain.PlayerID) bool
	IsAdmin(ctx context.Context, playerID domain.PlayerID) bool
	PreloadSnapshots(ctx context.Context, playerIDs []domain.PlayerID) error
}

// ISessionDirectory resolves the live sink of a connected player.
type ISessionDirectory interface {
	SinkFor(playerID domain.PlayerID) (EventSink, bool)
}

// ISendGate decides whether a sender may speak on a channel at all.
type ISendGate interface {
	CanSendMessage(ctx context.Context, sender domain.PlayerID, channel domain.Channel) bool
}

// IExpirySweeper removes mutes whose expiry has passed and returns how many.
type IExpirySweeper interface {
	PurgeExpired(ctx context.Context) int
}
