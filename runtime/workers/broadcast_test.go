package workers

import (
	"context"
	"fmt"
	"log/slog"
	"roomcast/broadcast"
	"roomcast/contract"
	"roomcast/domain"
	"roomcast/domain/event"
	"roomcast/mocks"
	"sync"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type recordingSink struct {
	mu     sync.Mutex
	events []event.DomainEvent
}

func (s *recordingSink) Consume(_ context.Context, e event.DomainEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return nil
}

func (s *recordingSink) Events() []event.DomainEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]event.DomainEvent(nil), s.events...)
}

type sessions map[domain.PlayerID]contract.EventSink

func (s sessions) SinkFor(id domain.PlayerID) (contract.EventSink, bool) {
	sink, ok := s[id]
	return sink, ok
}

type broadcastFixture struct {
	ctrl     *gomock.Controller
	rooms    *mocks.MockIRoomDirectory
	presence *mocks.MockIPresenceCache
	mutes    *mocks.MockIMuteChecker
	gate     *mocks.MockISendGate
	echo     *broadcast.EchoTracker
	sinks    map[domain.PlayerID]*recordingSink
	worker   *BroadcastWorker
}

// newBroadcastFixture seats every player in the hall, each with a live sink.
func newBroadcastFixture(t *testing.T, players ...domain.PlayerID) *broadcastFixture {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	f := &broadcastFixture{
		ctrl:     ctrl,
		rooms:    mocks.NewMockIRoomDirectory(ctrl),
		presence: mocks.NewMockIPresenceCache(ctrl),
		mutes:    mocks.NewMockIMuteChecker(ctrl),
		gate:     mocks.NewMockISendGate(ctrl),
		echo:     broadcast.NewEchoTracker(16),
		sinks:    make(map[domain.PlayerID]*recordingSink),
	}
	live := make(sessions)
	for _, id := range players {
		sink := &recordingSink{}
		f.sinks[id] = sink
		live[id] = sink
	}
	f.rooms.EXPECT().Canonical(gomock.Any()).Return(domain.RoomID(""), false).AnyTimes()
	f.rooms.EXPECT().Subscribers(domain.RoomID("hall")).Return(players).AnyTimes()
	f.presence.EXPECT().GetPresence(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id domain.PlayerID) (domain.Presence, bool) {
			return domain.Presence{PlayerID: id, CurrentRoomID: "hall"}, true
		}).AnyTimes()
	f.mutes.EXPECT().PreloadSnapshots(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	resolver := broadcast.NewResolver(f.rooms, f.presence, nil, log)
	filter := broadcast.NewFilter(resolver, f.mutes, log)
	f.worker = NewBroadcastWorker(log, nil, f.gate, filter, f.echo, live, 100*time.Millisecond)
	return f
}

func message(id string, sender domain.PlayerID) domain.Message {
	return domain.Message{
		MessageID: id, Room: "hall", SenderID: sender,
		Channel: domain.ChannelSay, Content: "hello", CreatedAt: time.Now().UTC(),
	}
}

func TestBroadcastWorker_Delivers_And_Echoes(t *testing.T) {
	req := require.New(t)
	f := newBroadcastFixture(t, "alice", "bob", "carol")

	// Given bob muted alice
	f.gate.EXPECT().CanSendMessage(gomock.Any(), domain.PlayerID("alice"), domain.ChannelSay).Return(true)
	f.mutes.EXPECT().IsPlayerMutedByOthers(domain.PlayerID("alice")).Return(false)
	f.mutes.EXPECT().IsPlayerMuted(domain.PlayerID("bob"), domain.PlayerID("alice")).Return(true)
	f.mutes.EXPECT().IsPlayerMuted(domain.PlayerID("carol"), domain.PlayerID("alice")).Return(false)

	// When alice speaks
	recipients := f.worker.Handle(context.Background(), message("m-1", "alice"))

	// Then carol receives it, bob does not, and alice gets her echo
	req.Equal([]domain.PlayerID{"carol"}, recipients)
	req.Empty(f.sinks["bob"].Events())
	req.Len(f.sinks["carol"].Events(), 1)
	delivered := f.sinks["carol"].Events()[0].(event.MessageBroadcast)
	req.Equal("hello", delivered.Content)
	req.False(delivered.Echo)

	echoes := f.sinks["alice"].Events()
	req.Len(echoes, 1)
	req.True(echoes[0].(event.MessageBroadcast).Echo)
}

func TestBroadcastWorker_Skips_Echo_Already_Sent(t *testing.T) {
	req := require.New(t)
	f := newBroadcastFixture(t, "alice", "bob")
	f.gate.EXPECT().CanSendMessage(gomock.Any(), gomock.Any(), gomock.Any()).Return(true).Times(2)
	f.mutes.EXPECT().IsPlayerMutedByOthers(gomock.Any()).Return(false).AnyTimes()
	f.mutes.EXPECT().IsPlayerMuted(gomock.Any(), gomock.Any()).Return(false).AnyTimes()

	// Given the transport already showed m-1 to alice
	f.echo.MarkEchoed("m-1")

	f.worker.Handle(context.Background(), message("m-1", "alice"))
	req.Empty(f.sinks["alice"].Events())

	// And the id is consumed: the next message with it is echoed again
	f.worker.Handle(context.Background(), message("m-1", "alice"))
	req.Len(f.sinks["alice"].Events(), 1)
	req.Len(f.sinks["bob"].Events(), 2)
}

func TestBroadcastWorker_Rejects_Muted_Sender(t *testing.T) {
	req := require.New(t)
	f := newBroadcastFixture(t, "zoe", "bob")

	// Given zoe may not speak
	f.gate.EXPECT().CanSendMessage(gomock.Any(), domain.PlayerID("zoe"), domain.ChannelSay).Return(false)

	recipients := f.worker.Handle(context.Background(), message("m-9", "zoe"))

	// Then nobody receives it and zoe is told
	req.Empty(recipients)
	req.Empty(f.sinks["bob"].Events())
	rejected := f.sinks["zoe"].Events()
	req.Len(rejected, 1)
	req.Equal("m-9", rejected[0].(event.MessageRejected).MessageID)
}

func TestBroadcastWorker_Sink_Timeout_Does_Not_Block(t *testing.T) {
	req := require.New(t)
	f := newBroadcastFixture(t, "alice", "bob")
	slow := mocks.NewMockEventSink(f.ctrl)
	f.worker.sessions = sessions{"alice": f.sinks["alice"], "bob": slow}
	f.worker.sinkTimeout = 20 * time.Millisecond

	f.gate.EXPECT().CanSendMessage(gomock.Any(), gomock.Any(), gomock.Any()).Return(true)
	f.mutes.EXPECT().IsPlayerMutedByOthers(gomock.Any()).Return(false)
	f.mutes.EXPECT().IsPlayerMuted(gomock.Any(), gomock.Any()).Return(false)
	// Given bob's sink only returns once its context expires
	slow.EXPECT().Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ event.DomainEvent) error {
			<-ctx.Done()
			return ctx.Err()
		}).Times(1)

	start := time.Now()
	recipients := f.worker.Handle(context.Background(), message("m-2", "alice"))

	// Then the slow sink is abandoned after its timeout
	req.Equal([]domain.PlayerID{"bob"}, recipients)
	req.Less(time.Since(start), time.Second)
	req.Len(f.sinks["alice"].Events(), 1)
}

func TestBroadcastWorker_Run_Consumes_Channel(t *testing.T) {
	req := require.New(t)
	f := newBroadcastFixture(t, "alice", "bob")
	messages := make(chan domain.Message, 4)
	f.worker.messages = messages

	f.gate.EXPECT().CanSendMessage(gomock.Any(), gomock.Any(), gomock.Any()).Return(true).Times(3)
	f.mutes.EXPECT().IsPlayerMutedByOthers(gomock.Any()).Return(false).AnyTimes()
	f.mutes.EXPECT().IsPlayerMuted(gomock.Any(), gomock.Any()).Return(false).AnyTimes()

	for i := range 3 {
		messages <- message(fmt.Sprintf("m-%d", i), "alice")
	}
	close(messages)

	// When the channel is drained and closed, Run ends cleanly
	req.NoError(f.worker.Run(context.Background()))
	req.Len(f.sinks["bob"].Events(), 3)
}

func TestMuteSweeper_Purges_On_Tick(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	sweeper := mocks.NewMockIExpirySweeper(ctrl)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	calls := 0
	sweeper.EXPECT().PurgeExpired(gomock.Any()).
		DoAndReturn(func(context.Context) int {
			calls++
			if calls == 2 {
				cancel()
				close(done)
			}
			return 1
		}).MinTimes(2)

	errs := make(chan error, 1)
	go func() { errs <- NewMuteSweeper(slog.Default(), sweeper, 10*time.Millisecond).Run(ctx) }()

	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("Sweeper never ticked")
	}
	req.ErrorIs(<-errs, context.Canceled)
}
