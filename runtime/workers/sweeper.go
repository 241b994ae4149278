package workers

import (
	"context"
	"log/slog"
	"roomcast/contract"
	"time"
)

const defaultSweepInterval = time.Minute

// MuteSweeper periodically drops expired mutes so that players nobody
// checks any more still get their documents cleaned up.
type MuteSweeper struct {
	log      *slog.Logger
	sweeper  contract.IExpirySweeper
	interval time.Duration
}

func NewMuteSweeper(log *slog.Logger, sweeper contract.IExpirySweeper, interval time.Duration) *MuteSweeper {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &MuteSweeper{log: log, sweeper: sweeper, interval: interval}
}

func (w *MuteSweeper) Run(ctx context.Context) error {
	w.log.Info("Starting mute sweeper", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if purged := w.sweeper.PurgeExpired(ctx); purged > 0 {
				w.log.Debug("Sweep done", "purged", purged)
			}
		}
	}
}
