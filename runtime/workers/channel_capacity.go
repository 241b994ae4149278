package workers

import (
	"context"
	"log/slog"
	"reflect"
	"time"
)

const backlogWarnRatio = 0.8

type NamedChannel struct {
	Name    string
	Channel any
}

// ChannelCapacityWorker periodically logs the length and capacity of the
// pipeline queues. Reading len and cap of a channel never blocks, so sampling
// does not interfere with the producers.
type ChannelCapacityWorker struct {
	log            *slog.Logger
	channels       []NamedChannel
	metricInterval time.Duration
}

func NewChannelCapacityWorker(log *slog.Logger, channels []NamedChannel,
	metricInterval time.Duration) *ChannelCapacityWorker {
	return &ChannelCapacityWorker{log: log, channels: channels, metricInterval: metricInterval}
}

func (w ChannelCapacityWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping capacity sampling")
			return ctx.Err()
		case <-ticker.C:
			w.Sample()
		}
	}
}

// Sample logs one reading per channel and returns how many are near full.
func (w ChannelCapacityWorker) Sample() int {
	saturated := 0
	for _, nc := range w.channels {
		v := reflect.ValueOf(nc.Channel)
		if v.Kind() != reflect.Chan {
			w.log.Error("Provided object is not a channel", "name", nc.Name)
			continue
		}
		capacity, length := v.Cap(), v.Len()
		if capacity > 0 && float64(length) >= backlogWarnRatio*float64(capacity) {
			saturated++
			w.log.Warn("Queue backlog", "name", nc.Name, "length", length, "capacity", capacity)
			continue
		}
		w.log.Debug("Queue level", "name", nc.Name, "length", length, "capacity", capacity)
	}
	return saturated
}
