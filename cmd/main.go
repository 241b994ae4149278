package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"roomcast/contract"
	"roomcast/domain"
	"roomcast/infrastructure/presence"
	"roomcast/moderation"
	"roomcast/repositories"
	"roomcast/runtime"
	"roomcast/runtime/workers"
	"roomcast/storage"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run keeps every defer on the error path; main only reports.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Durable player records (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()
	players := repositories.NewPlayerRepository(db, log)

	// 3. Mute snapshots
	store, err := storage.NewFileSnapshotStore(config.SnapshotDir, log)
	if err != nil {
		return fmt.Errorf("snapshot store: %w", err)
	}
	mutes := moderation.NewRegistry(store, players, log)
	for _, id := range config.Admins() {
		if err := mutes.GrantAdmin(ctx, domain.PlayerID(id)); err != nil {
			return fmt.Errorf("granting admin %s: %w", id, err)
		}
	}

	// 4. Presence
	presenceStore, closePresence, err := newPresence(ctx, config, log)
	if err != nil {
		return err
	}
	defer closePresence()

	// 5. Engine
	orchestrator := runtime.NewOrchestrator(log,
		workers.NewSupervisor(log, config.RestartInterval), runtime.NewRegistry(),
		presenceStore, players, mutes, runtime.Options{
			NumWorkers:     config.NumberOfWorkers,
			BufferSize:     config.BufferSize,
			SinkTimeout:    config.SinkTimeout,
			SweepInterval:  config.SweepInterval,
			MetricInterval: config.MetricInterval,
			EchoCapacity:   config.EchoCapacity,
		})

	log.Info("Broadcast engine started", "presence", config.PresenceBackend, "at", time.Now().UTC())
	orchestrator.Start(ctx)

	// 6. Final Cleanup
	log.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	orchestrator.Stop(shutdownCtx)
	log.Info("Program stopped cleanly")
	return nil
}

func newPresence(ctx context.Context, config Config, log *slog.Logger) (contract.IPresenceStore, func(), error) {
	if config.PresenceBackend != "redis" {
		return runtime.NewPresenceCache(), func() {}, nil
	}
	rc, err := presence.NewRedisClient(ctx, presence.Config{
		Host:     config.RedisHost,
		Port:     config.RedisPort,
		Password: config.RedisPassword,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("presence backend: %w", err)
	}
	return presence.NewRedisPresence(rc, config.PresenceTTL, log), func() { _ = rc.Close() }, nil
}
