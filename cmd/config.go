package main

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	LogLevel        string        `env:"LOG_LEVEL,default=INFO"`
	BadgerFilepath  string        `env:"BADGER_FILEPATH,required=true" validate:"required"`
	SnapshotDir     string        `env:"SNAPSHOT_DIR,required=true" validate:"required"`
	NumberOfWorkers int           `env:"NUMBER_OF_WORKERS,default=4" validate:"min=1"`
	BufferSize      int           `env:"BUFFER_SIZE,default=1024" validate:"min=1"`
	SinkTimeout     time.Duration `env:"SINK_TIMEOUT,default=2s"`
	SweepInterval   time.Duration `env:"SWEEP_INTERVAL,default=1m"`
	MetricInterval  time.Duration `env:"METRIC_INTERVAL,default=10s"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	EchoCapacity    int           `env:"ECHO_CAPACITY,default=1024"`
	PresenceBackend string        `env:"PRESENCE_BACKEND,default=memory" validate:"oneof=memory redis"`
	PresenceTTL     time.Duration `env:"PRESENCE_TTL,default=30m"`
	RedisHost       string        `env:"REDIS_HOST,default=localhost"`
	RedisPort       int           `env:"REDIS_PORT,default=6379"`
	RedisPassword   string        `env:"REDIS_PASSWORD"`
	// Comma separated player ids granted admin at boot.
	AdminIDs string `env:"ADMIN_IDS"`
}

func (c Config) Validate() error {
	return validator.New().Struct(c)
}

func (c Config) Admins() []string {
	var res []string
	for _, id := range strings.Split(c.AdminIDs, ",") {
		if id = strings.TrimSpace(id); id != "" {
			res = append(res, id)
		}
	}
	return res
}
