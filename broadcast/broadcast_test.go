package broadcast

import (
	"context"
	"fmt"
	"log/slog"
	"roomcast/domain"
	"roomcast/errors"
	"roomcast/mocks"
	"roomcast/moderation"
	"roomcast/storage"
	"sync"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type rooms struct {
	aliases     map[domain.RoomID]domain.RoomID
	subscribers map[domain.RoomID][]domain.PlayerID
}

func (r rooms) Subscribers(roomID domain.RoomID) []domain.PlayerID { return r.subscribers[roomID] }

func (r rooms) Canonical(roomID domain.RoomID) (domain.RoomID, bool) {
	canonical, ok := r.aliases[roomID]
	return canonical, ok
}

type presenceCache map[domain.PlayerID]domain.RoomID

func (p presenceCache) GetPresence(_ context.Context, id domain.PlayerID) (domain.Presence, bool) {
	room, ok := p[id]
	return domain.Presence{PlayerID: id, CurrentRoomID: room}, ok
}

type players struct {
	mu      sync.Mutex
	records map[domain.PlayerID]domain.PlayerRecord
}

func (p *players) GetPlayer(_ context.Context, id domain.PlayerID) (domain.PlayerRecord, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	record, ok := p.records[id]
	if !ok {
		return domain.PlayerRecord{}, errors.ErrNotFound
	}
	return record, nil
}

func (p *players) SetAdmin(_ context.Context, id domain.PlayerID, isAdmin bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	record := p.records[id]
	record.ID, record.IsAdmin = id, isAdmin
	p.records[id] = record
	return nil
}

type world struct {
	rooms    rooms
	presence presenceCache
	players  *players
	mutes    *moderation.Registry
	filter   *Filter
}

// newWorld puts every given player in the hall.
func newWorld(t *testing.T, occupants ...domain.PlayerID) *world {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	store, err := storage.NewFileSnapshotStore(t.TempDir(), log)
	require.NoError(t, err)
	w := &world{
		rooms: rooms{
			aliases:     make(map[domain.RoomID]domain.RoomID),
			subscribers: map[domain.RoomID][]domain.PlayerID{"hall": occupants},
		},
		presence: make(presenceCache),
		players:  &players{records: make(map[domain.PlayerID]domain.PlayerRecord)},
	}
	for _, id := range occupants {
		w.presence[id] = "hall"
	}
	w.mutes = moderation.NewRegistry(store, w.players, log)
	w.filter = NewFilter(NewResolver(w.rooms, w.presence, w.players, log), w.mutes, log)
	return w
}

func say(room domain.RoomID, sender domain.PlayerID) domain.Message {
	return domain.Message{MessageID: "m-1", Room: room, SenderID: sender, Channel: domain.ChannelSay, Content: "hello"}
}

func TestFilter_Personal_Mute_Excludes_Muter(t *testing.T) {
	req := require.New(t)
	w := newWorld(t, "alice", "bob", "carol")
	ctx := context.Background()

	// Given A mutes B permanently
	req.True(w.mutes.MutePlayer(ctx, moderation.MuteCommand{MuterID: "alice", TargetID: "bob"}))

	// When B says something in the hall
	recipients := w.filter.Recipients(ctx, say("hall", "bob"))

	// Then A is excluded and C receives it
	req.ElementsMatch([]domain.PlayerID{"carol"}, recipients)
}

func TestFilter_Sender_Never_Receives(t *testing.T) {
	req := require.New(t)
	w := newWorld(t, "alice", "bob")

	for _, msg := range []domain.Message{
		say("hall", "alice"),
		{Room: "hall", SenderID: "alice", Channel: domain.ChannelSay},
		{MessageID: "m-2", Room: "hall", SenderID: "alice", Channel: "ooc"},
	} {
		recipients := w.filter.Recipients(context.Background(), msg)
		req.NotContains(recipients, domain.PlayerID("alice"))
		req.ElementsMatch([]domain.PlayerID{"bob"}, recipients)
	}
}

func TestFilter_Global_Mute_Spares_Admins(t *testing.T) {
	req := require.New(t)
	w := newWorld(t, "zoe", "rita", "rex", "walter")
	w.players.records["rex"] = domain.PlayerRecord{ID: "rex", IsAdmin: true}
	w.players.records["walter"] = domain.PlayerRecord{ID: "walter", IsAdmin: true}
	ctx := context.Background()

	// Given Z is globally muted by W
	req.True(w.mutes.MuteGlobal(ctx, moderation.MuteCommand{MuterID: "walter", TargetID: "zoe"}))

	// Then on every mute-sensitive channel only admins receive Z
	for _, channel := range []domain.Channel{
		domain.ChannelSay, domain.ChannelLocal, domain.ChannelEmote, domain.ChannelPose,
		domain.ChannelWhisper, domain.ChannelGlobal, domain.ChannelSystem, domain.ChannelAdmin,
	} {
		msg := say("hall", "zoe")
		msg.Channel = channel
		req.ElementsMatch([]domain.PlayerID{"rex", "walter"}, w.filter.Recipients(ctx, msg), channel)
	}
}

func TestFilter_Broadcast_Only_Channel_Skips_Mutes(t *testing.T) {
	req := require.New(t)
	w := newWorld(t, "alice", "bob")
	ctx := context.Background()
	req.True(w.mutes.MutePlayer(ctx, moderation.MuteCommand{MuterID: "alice", TargetID: "bob"}))

	msg := domain.Message{MessageID: "m-3", Room: "hall", SenderID: "bob", Channel: "announce"}

	req.ElementsMatch([]domain.PlayerID{"alice"}, w.filter.Recipients(ctx, msg))
}

func TestFilter_Drops_Candidates_Outside_The_Room(t *testing.T) {
	req := require.New(t)
	w := newWorld(t, "alice", "bob", "carol", "dan")
	// carol's presence moved to the kitchen, dan is offline and unknown
	w.presence["carol"] = "kitchen"
	delete(w.presence, "dan")

	recipients := w.filter.Recipients(context.Background(), say("hall", "alice"))

	req.ElementsMatch([]domain.PlayerID{"bob"}, recipients)
}

func TestFilter_Empty_Room(t *testing.T) {
	req := require.New(t)
	w := newWorld(t)

	req.Empty(w.filter.Recipients(context.Background(), say("nowhere", "alice")))
	req.Empty(w.filter.FilterRecipients(context.Background(), say("hall", "alice"), nil))
}

func TestFilter_Duplicate_Candidates_Collapse(t *testing.T) {
	req := require.New(t)
	w := newWorld(t, "alice", "bob")

	recipients := w.filter.FilterRecipients(context.Background(), say("hall", "alice"),
		[]domain.PlayerID{"bob", "bob", "alice"})

	req.Equal([]domain.PlayerID{"bob"}, recipients)
}

func TestFilter_Preload_Failure_Is_Not_Fatal(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	mutes := mocks.NewMockIMuteChecker(ctrl)
	w := newWorld(t, "alice", "bob", "carol")
	filter := NewFilter(w.filter.Resolver(), mutes, slog.Default())

	// Given the snapshot storage is down
	mutes.EXPECT().PreloadSnapshots(gomock.Any(), gomock.InAnyOrder([]domain.PlayerID{"bob", "carol"})).
		Return(fmt.Errorf("disk unavailable"))
	mutes.EXPECT().IsPlayerMutedByOthers(domain.PlayerID("alice")).Return(false)
	// And bob's cached state still says he muted alice
	mutes.EXPECT().IsPlayerMuted(domain.PlayerID("bob"), domain.PlayerID("alice")).Return(true)
	mutes.EXPECT().IsPlayerMuted(domain.PlayerID("carol"), domain.PlayerID("alice")).Return(false)

	recipients := filter.Recipients(context.Background(), say("hall", "alice"))

	// Then the cached deny still holds and the rest is delivered
	req.Equal([]domain.PlayerID{"carol"}, recipients)
}

func TestFilter_Personal_Mute_Checked_Before_Admin_Override(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	mutes := mocks.NewMockIMuteChecker(ctrl)
	w := newWorld(t, "zoe", "rex")
	filter := NewFilter(w.filter.Resolver(), mutes, slog.Default())

	mutes.EXPECT().PreloadSnapshots(gomock.Any(), gomock.Any()).Return(nil)
	mutes.EXPECT().IsPlayerMutedByOthers(domain.PlayerID("zoe")).Return(true)
	// rex is an admin but personally muted zoe: the admin status is never consulted
	mutes.EXPECT().IsPlayerMuted(domain.PlayerID("rex"), domain.PlayerID("zoe")).Return(true)
	mutes.EXPECT().IsAdmin(gomock.Any(), gomock.Any()).Times(0)

	req.Empty(filter.Recipients(context.Background(), say("hall", "zoe")))
}

func TestResolver_Alias_Subscribers_Counted_Once(t *testing.T) {
	req := require.New(t)
	r := rooms{
		aliases: map[domain.RoomID]domain.RoomID{"R1": "R2"},
		subscribers: map[domain.RoomID][]domain.PlayerID{
			"R1": {"alice", "bob"},
			"R2": {"bob", "carol"},
		},
	}
	resolver := NewResolver(r, presenceCache{}, nil, slog.Default())

	targets := resolver.CollectRoomTargets("R1")

	req.Len(targets, 3)
	req.True(targets.Has("alice"))
	req.True(targets.Has("bob"))
	req.True(targets.Has("carol"))
	// Addressed by its canonical id, only canonical subscribers are known
	req.Len(resolver.CollectRoomTargets("R2"), 2)
}

func TestResolver_Presence_Cache_Wins_Over_Stale_Record(t *testing.T) {
	req := require.New(t)
	p := &players{records: map[domain.PlayerID]domain.PlayerRecord{
		"paul": {ID: "paul", CurrentRoomID: "Hall"},
	}}
	resolver := NewResolver(rooms{}, presenceCache{"paul": "Foyer"}, p, slog.Default())

	req.True(resolver.IsPlayerInRoom(context.Background(), "paul", "Foyer"))
	req.False(resolver.IsPlayerInRoom(context.Background(), "paul", "Hall"))
}

func TestResolver_Falls_Back_To_Player_Record(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	presence := mocks.NewMockIPresenceCache(ctrl)
	directory := mocks.NewMockIPlayerDirectory(ctrl)
	r := rooms{aliases: map[domain.RoomID]domain.RoomID{"old-hall": "hall"}}
	resolver := NewResolver(r, presence, directory, slog.Default())
	ctx := context.Background()

	presence.EXPECT().GetPresence(gomock.Any(), gomock.Any()).Return(domain.Presence{}, false).AnyTimes()
	directory.EXPECT().GetPlayer(gomock.Any(), domain.PlayerID("paul")).
		Return(domain.PlayerRecord{ID: "paul", CurrentRoomID: "old-hall"}, nil).Times(2)
	directory.EXPECT().GetPlayer(gomock.Any(), domain.PlayerID("ghost")).
		Return(domain.PlayerRecord{}, errors.ErrNotFound)
	directory.EXPECT().GetPlayer(gomock.Any(), domain.PlayerID("broken")).
		Return(domain.PlayerRecord{}, fmt.Errorf("badger closed"))

	// Legacy and canonical names compare equal
	req.True(resolver.IsPlayerInRoom(ctx, "paul", "hall"))
	req.False(resolver.IsPlayerInRoom(ctx, "paul", "kitchen"))
	// Neither source knows a room
	req.False(resolver.IsPlayerInRoom(ctx, "ghost", "hall"))
	req.False(resolver.IsPlayerInRoom(ctx, "broken", "hall"))
}

func TestEchoTracker_Consumes_Once(t *testing.T) {
	req := require.New(t)
	echo := NewEchoTracker(0)

	req.False(echo.Consume("m-1"))
	echo.MarkEchoed("m-1")
	echo.MarkEchoed("m-1")
	req.Equal(1, echo.Len())

	req.True(echo.Consume("m-1"))
	req.False(echo.Consume("m-1"))
	req.False(echo.Consume(""))
}

func TestEchoTracker_Evicts_Oldest(t *testing.T) {
	req := require.New(t)
	echo := NewEchoTracker(2)

	echo.MarkEchoed("m-1")
	echo.MarkEchoed("m-2")
	echo.MarkEchoed("m-3")

	req.Equal(2, echo.Len())
	req.False(echo.Consume("m-1"))
	req.True(echo.Consume("m-2"))
	req.True(echo.Consume("m-3"))
}
