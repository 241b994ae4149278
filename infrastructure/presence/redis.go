package presence

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"roomcast/domain"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	memberPrefix = "member"
	roomField    = "room_id"
)

type Config struct {
	Host     string
	Port     int
	Password string
}

// NewRedisClient connects and pings the server once.
func NewRedisClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	rc := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
	})
	if err := rc.Ping(ctx).Err(); err != nil {
		_ = rc.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rc, nil
}

// RedisPresence shares online presence between several engine processes.
// Each player is a hash "member:<id>" whose room_id field is the current room.
type RedisPresence struct {
	rc  *redis.Client
	ttl time.Duration
	log *slog.Logger
}

func NewRedisPresence(rc *redis.Client, ttl time.Duration, log *slog.Logger) *RedisPresence {
	return &RedisPresence{rc: rc, ttl: ttl, log: log}
}

func memberKey(playerID domain.PlayerID) string {
	return memberPrefix + ":" + string(playerID)
}

// GetPresence treats a lookup failure as an absent presence so that callers
// fall back to the durable player record.
func (r *RedisPresence) GetPresence(ctx context.Context, playerID domain.PlayerID) (domain.Presence, bool) {
	roomID, err := r.rc.HGet(ctx, memberKey(playerID), roomField).Result()
	if stderrors.Is(err, redis.Nil) {
		return domain.Presence{}, false
	}
	if err != nil {
		r.log.Warn("Presence lookup failed", "player", playerID, "error", err)
		return domain.Presence{}, false
	}
	if roomID == "" {
		return domain.Presence{}, false
	}
	return domain.Presence{PlayerID: playerID, CurrentRoomID: domain.RoomID(roomID)}, true
}

func (r *RedisPresence) SetPresence(ctx context.Context, playerID domain.PlayerID, roomID domain.RoomID) error {
	key := memberKey(playerID)
	pipe := r.rc.TxPipeline()
	pipe.HSet(ctx, key, roomField, string(roomID))
	if r.ttl > 0 {
		pipe.Expire(ctx, key, r.ttl)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (r *RedisPresence) RemovePresence(ctx context.Context, playerID domain.PlayerID) error {
	return r.rc.Del(ctx, memberKey(playerID)).Err()
}
