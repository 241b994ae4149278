// Package runtime wires the broadcast pipeline: sessions, presence, workers
// and the mute registry. It holds no filtering rule of its own.
package runtime

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"roomcast/broadcast"
	"roomcast/contract"
	"roomcast/domain"
	"roomcast/moderation"
	"roomcast/repositories"
	"roomcast/runtime/workers"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Options struct {
	NumWorkers     int
	BufferSize     int
	SinkTimeout    time.Duration
	SweepInterval  time.Duration
	MetricInterval time.Duration
	EchoCapacity   int
}

type Orchestrator struct {
	mu         sync.Mutex
	log        *slog.Logger
	opts       Options
	supervisor contract.ISupervisor
	registry   *Registry
	presence   contract.IPresenceStore
	players    repositories.IPlayerRepository
	mutes      *moderation.Registry
	filter     *broadcast.Filter
	echo       *broadcast.EchoTracker
	messages   chan domain.Message
	started    bool
}

func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor, registry *Registry,
	presence contract.IPresenceStore, players repositories.IPlayerRepository,
	mutes *moderation.Registry, opts Options) *Orchestrator {
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = 1
	}
	if opts.MetricInterval <= 0 {
		opts.MetricInterval = 10 * time.Second
	}
	resolver := broadcast.NewResolver(registry, presence, players, log)
	return &Orchestrator{
		log:        log,
		opts:       opts,
		supervisor: supervisor,
		registry:   registry,
		presence:   presence,
		players:    players,
		mutes:      mutes,
		filter:     broadcast.NewFilter(resolver, mutes, log),
		echo:       broadcast.NewEchoTracker(opts.EchoCapacity),
		messages:   make(chan domain.Message, opts.BufferSize),
	}
}

func (o *Orchestrator) Mutes() *moderation.Registry { return o.mutes }

func (o *Orchestrator) Filter() *broadcast.Filter { return o.filter }

// RegisterParticipant attaches a connected player to a room. The session is
// registered even when presence or the durable record cannot be updated; the
// returned error reports those failures.
func (o *Orchestrator) RegisterParticipant(ctx context.Context, playerID domain.PlayerID,
	roomID domain.RoomID, sink contract.EventSink) error {
	o.registry.Subscribe(playerID, roomID, sink)

	var errs []error
	if err := o.presence.SetPresence(ctx, playerID, roomID); err != nil {
		errs = append(errs, err)
	}
	if err := o.players.SetCurrentRoom(ctx, playerID, roomID); err != nil {
		errs = append(errs, err)
	}
	// Senders need their own snapshot before their first message.
	if err := o.mutes.PreloadSnapshots(ctx, []domain.PlayerID{playerID}); err != nil {
		o.log.Warn("Mute snapshot not loaded on join", "player", playerID, "error", err)
	}
	o.log.Debug("Participant registered", "player", playerID, "room", roomID)
	return stderrors.Join(errs...)
}

// UnregisterParticipant disconnects a player. The durable record keeps the
// last room.
func (o *Orchestrator) UnregisterParticipant(ctx context.Context, playerID domain.PlayerID, roomID domain.RoomID) error {
	o.registry.Unsubscribe(playerID, roomID)
	return o.presence.RemovePresence(ctx, playerID)
}

// MoveParticipant keeps the session and switches its room everywhere.
func (o *Orchestrator) MoveParticipant(ctx context.Context, playerID domain.PlayerID, from, to domain.RoomID) error {
	o.registry.Move(playerID, from, to)
	return stderrors.Join(
		o.presence.SetPresence(ctx, playerID, to),
		o.players.SetCurrentRoom(ctx, playerID, to),
	)
}

// MarkEchoed records that the transport already showed the message to its
// sender. An empty id gets a fresh one, which the caller puts on the message.
func (o *Orchestrator) MarkEchoed(messageID string) string {
	if messageID == "" {
		messageID = uuid.New().String()
	}
	o.echo.MarkEchoed(messageID)
	return messageID
}

// Dispatch queues msg for the broadcast workers. It never blocks: a full
// queue drops the message and returns false.
func (o *Orchestrator) Dispatch(msg domain.Message) bool {
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	select {
	case o.messages <- msg:
		return true
	default:
		o.log.Warn("Message queue full, dropping message",
			"room", msg.Room, "sender", msg.SenderID, "message", msg.MessageID)
		return false
	}
}

// Start registers every worker and runs the supervisor until ctx ends or
// Stop is called.
func (o *Orchestrator) Start(ctx context.Context) {
	o.mu.Lock()
	if o.started {
		o.mu.Unlock()
		o.log.Warn("Orchestrator already started")
		return
	}
	o.started = true
	o.supervisor.Add(o.prepareWorkers()...)
	o.mu.Unlock()

	o.log.Info("Starting orchestrator and all supervised workers", "broadcast_workers", o.opts.NumWorkers)
	o.supervisor.Run(ctx)
}

func (o *Orchestrator) prepareWorkers() []contract.Worker {
	var res []contract.Worker
	for i := range o.opts.NumWorkers {
		res = append(res, workers.NewBroadcastWorker(o.log, o.messages, o.mutes,
			o.filter, o.echo, o.registry, o.opts.SinkTimeout).WithName(fmt.Sprintf("broadcast-%d", i)))
	}
	res = append(res,
		workers.NewMuteSweeper(o.log, o.mutes, o.opts.SweepInterval),
		workers.NewChannelCapacityWorker(o.log, []workers.NamedChannel{
			{Name: "messages", Channel: o.messages},
		}, o.opts.MetricInterval),
	)
	return res
}

// Stop cancels the supervised context and flushes the mutes left unsaved.
func (o *Orchestrator) Stop(ctx context.Context) {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()
	for _, id := range o.mutes.Dirty() {
		if !o.mutes.SaveSnapshot(ctx, id) {
			o.log.Warn("Mute snapshot still unsaved at shutdown", "player", id)
		}
	}
}
