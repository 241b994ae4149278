package runtime_test

import (
	"context"
	"log/slog"
	"roomcast/domain"
	"roomcast/domain/event"
	"roomcast/moderation"
	"roomcast/repositories"
	"roomcast/runtime"
	"roomcast/runtime/workers"
	"roomcast/storage"
	"sync"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

type RecordingSink struct {
	mu     sync.Mutex
	events []event.DomainEvent
}

func (s *RecordingSink) Consume(_ context.Context, e event.DomainEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return nil
}

func (s *RecordingSink) Broadcasts() []event.MessageBroadcast {
	s.mu.Lock()
	defer s.mu.Unlock()
	var res []event.MessageBroadcast
	for _, e := range s.events {
		if b, ok := e.(event.MessageBroadcast); ok {
			res = append(res, b)
		}
	}
	return res
}

type engine struct {
	orchestrator *runtime.Orchestrator
	players      *repositories.PlayerRepository
	mutes        *moderation.Registry
	cancel       context.CancelFunc
	done         chan struct{}
}

func startEngine(t *testing.T) *engine {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	require.NoError(t, err)
	store, err := storage.NewFileSnapshotStore(t.TempDir(), log)
	require.NoError(t, err)

	players := repositories.NewPlayerRepository(db, log)
	mutes := moderation.NewRegistry(store, players, log)
	orchestrator := runtime.NewOrchestrator(log, workers.NewSupervisor(log, 0), runtime.NewRegistry(),
		runtime.NewPresenceCache(), players, mutes, runtime.Options{
			NumWorkers:    2,
			BufferSize:    16,
			SinkTimeout:   100 * time.Millisecond,
			SweepInterval: time.Hour,
		})

	ctx, cancel := context.WithCancel(context.Background())
	e := &engine{orchestrator: orchestrator, players: players, mutes: mutes, cancel: cancel, done: make(chan struct{})}
	go func() {
		orchestrator.Start(ctx)
		close(e.done)
	}()
	t.Cleanup(func() {
		orchestrator.Stop(context.Background())
		cancel()
		<-e.done
		_ = db.Close()
	})
	return e
}

func (e *engine) join(t *testing.T, id domain.PlayerID, room domain.RoomID) *RecordingSink {
	sink := &RecordingSink{}
	require.NoError(t, e.orchestrator.RegisterParticipant(context.Background(), id, room, sink))
	return sink
}

func Test_Orchestrator_Delivers_To_Room_Except_Muters(t *testing.T) {
	req := require.New(t)
	e := startEngine(t)
	alice := e.join(t, "alice", "hall")
	bob := e.join(t, "bob", "hall")
	carol := e.join(t, "carol", "hall")
	dan := e.join(t, "dan", "kitchen")

	// Given alice muted bob
	req.True(e.mutes.MutePlayer(context.Background(), moderation.MuteCommand{MuterID: "alice", TargetID: "bob"}))

	// When bob says hello in the hall
	req.True(e.orchestrator.Dispatch(domain.Message{
		MessageID: "m-1", Room: "hall", SenderID: "bob", Channel: domain.ChannelSay, Content: "hello",
	}))

	// Then carol receives it, bob gets his echo, alice and dan do not
	req.Eventually(func() bool {
		return len(carol.Broadcasts()) == 1 && len(bob.Broadcasts()) == 1
	}, time.Second, 10*time.Millisecond)
	req.Equal("hello", carol.Broadcasts()[0].Content)
	req.True(bob.Broadcasts()[0].Echo)
	req.Empty(alice.Broadcasts())
	req.Empty(dan.Broadcasts())
}

func Test_Orchestrator_Echo_Marked_By_Transport(t *testing.T) {
	req := require.New(t)
	e := startEngine(t)
	alice := e.join(t, "alice", "hall")
	bob := e.join(t, "bob", "hall")

	// Given the transport showed the message to alice already
	id := e.orchestrator.MarkEchoed("")
	req.NotEmpty(id)

	req.True(e.orchestrator.Dispatch(domain.Message{
		MessageID: id, Room: "hall", SenderID: "alice", Channel: domain.ChannelSay, Content: "hi",
	}))

	req.Eventually(func() bool { return len(bob.Broadcasts()) == 1 }, time.Second, 10*time.Millisecond)
	req.Equal(id, bob.Broadcasts()[0].MessageID)
	req.Never(func() bool { return len(alice.Broadcasts()) > 0 }, 100*time.Millisecond, 10*time.Millisecond)
}

func Test_Orchestrator_Move_Participant(t *testing.T) {
	req := require.New(t)
	e := startEngine(t)
	ctx := context.Background()
	alice := e.join(t, "alice", "hall")
	e.join(t, "bob", "hall")

	// When alice walks to the kitchen
	req.NoError(e.orchestrator.MoveParticipant(ctx, "alice", "hall", "kitchen"))

	// Then her durable record follows
	record, err := e.players.GetPlayer(ctx, "alice")
	req.NoError(err)
	req.Equal(domain.RoomID("kitchen"), record.CurrentRoomID)

	// And hall messages no longer reach her
	req.True(e.orchestrator.Dispatch(domain.Message{
		MessageID: "m-3", Room: "hall", SenderID: "bob", Channel: domain.ChannelSay, Content: "anyone?",
	}))
	req.Never(func() bool { return len(alice.Broadcasts()) > 0 }, 100*time.Millisecond, 10*time.Millisecond)
}

func Test_Orchestrator_Globally_Muted_Sender_Is_Refused(t *testing.T) {
	req := require.New(t)
	e := startEngine(t)
	ctx := context.Background()
	zoe := e.join(t, "zoe", "hall")
	rita := e.join(t, "rita", "hall")

	req.True(e.mutes.MuteGlobal(ctx, moderation.MuteCommand{MuterID: "walter", TargetID: "zoe"}))

	req.True(e.orchestrator.Dispatch(domain.Message{
		MessageID: "m-4", Room: "hall", SenderID: "zoe", Channel: domain.ChannelSay, Content: "let me speak",
	}))

	req.Eventually(func() bool {
		zoe.mu.Lock()
		defer zoe.mu.Unlock()
		return len(zoe.events) == 1
	}, time.Second, 10*time.Millisecond)
	_, rejected := zoe.events[0].(event.MessageRejected)
	req.True(rejected)
	req.Empty(rita.Broadcasts())
}

func Test_Orchestrator_Unregister(t *testing.T) {
	req := require.New(t)
	e := startEngine(t)
	ctx := context.Background()
	e.join(t, "alice", "hall")

	req.NoError(e.orchestrator.UnregisterParticipant(ctx, "alice", "hall"))

	// The durable record still knows the last room
	record, err := e.players.GetPlayer(ctx, "alice")
	req.NoError(err)
	req.Equal(domain.RoomID("hall"), record.CurrentRoomID)
	req.False(e.orchestrator.Filter().Resolver().IsPlayerInRoom(ctx, "alice", "kitchen"))
}
