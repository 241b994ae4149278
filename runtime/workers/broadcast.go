package workers

import (
	"context"
	"log/slog"
	"roomcast/broadcast"
	"roomcast/contract"
	"roomcast/domain"
	"roomcast/domain/event"
	"sync"
	"time"
)

var _ contract.Worker = (*BroadcastWorker)(nil)

// BroadcastWorker evaluates one message at a time end to end: send gate,
// recipient filtering, delivery and sender echo. Several workers share the
// same inbound channel to spread messages across goroutines.
type BroadcastWorker struct {
	log         *slog.Logger
	Name        contract.WorkerName
	messages    <-chan domain.Message
	gate        contract.ISendGate
	filter      *broadcast.Filter
	echo        *broadcast.EchoTracker
	sessions    contract.ISessionDirectory
	sinkTimeout time.Duration
}

func NewBroadcastWorker(log *slog.Logger, messages <-chan domain.Message,
	gate contract.ISendGate, filter *broadcast.Filter, echo *broadcast.EchoTracker,
	sessions contract.ISessionDirectory, sinkTimeout time.Duration) *BroadcastWorker {
	return &BroadcastWorker{
		log:         log,
		messages:    messages,
		gate:        gate,
		filter:      filter,
		echo:        echo,
		sessions:    sessions,
		sinkTimeout: sinkTimeout,
	}
}

func (w *BroadcastWorker) WithName(name string) *BroadcastWorker {
	w.Name = contract.WorkerName(name)
	return w
}

func (w *BroadcastWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping broadcast worker", "name", w.Name)
			return ctx.Err()
		case msg, ok := <-w.messages:
			if !ok {
				w.log.Debug("Message channel closed", "name", w.Name)
				return nil
			}
			w.Handle(ctx, msg)
		}
	}
}

// Handle broadcasts msg and returns the players it was handed to, the
// sender's echo excluded. A refused sender only gets a MessageRejected back.
func (w *BroadcastWorker) Handle(ctx context.Context, msg domain.Message) []domain.PlayerID {
	if !w.gate.CanSendMessage(ctx, msg.SenderID, msg.Channel) {
		w.log.Info("Message refused, sender is muted",
			"sender", msg.SenderID, "channel", msg.Channel, "room", msg.Room)
		w.deliver(ctx, msg.SenderID, event.MessageRejected{
			MessageID: msg.MessageID,
			Room:      msg.Room,
			Author:    msg.SenderID,
			Channel:   msg.Channel,
			At:        msg.CreatedAt,
		})
		return nil
	}

	recipients := w.filter.Recipients(ctx, msg)
	evt := event.MessageBroadcast{
		MessageID: msg.MessageID,
		Room:      msg.Room,
		Author:    msg.SenderID,
		Channel:   msg.Channel,
		Content:   msg.Content,
		At:        msg.CreatedAt,
	}

	var wg sync.WaitGroup
	for _, recipient := range recipients {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.deliver(ctx, recipient, evt)
		}()
	}

	if w.echo.Consume(msg.MessageID) {
		w.log.Debug("Echo already sent", "message", msg.MessageID, "sender", msg.SenderID)
	} else {
		echo := evt
		echo.Echo = true
		w.deliver(ctx, msg.SenderID, echo)
	}
	wg.Wait()

	w.log.Debug("Message broadcast", "message", msg.MessageID, "room", msg.Room,
		"channel", msg.Channel, "recipients", len(recipients))
	return recipients
}

// deliver hands evt to the player's sink, bounded by the sink timeout.
// Offline players are skipped silently.
func (w *BroadcastWorker) deliver(ctx context.Context, playerID domain.PlayerID, evt event.DomainEvent) {
	sink, ok := w.sessions.SinkFor(playerID)
	if !ok {
		w.log.Debug("No session for player", "player", playerID)
		return
	}
	sinkCtx := ctx
	if w.sinkTimeout > 0 {
		var cancel context.CancelFunc
		sinkCtx, cancel = context.WithTimeout(ctx, w.sinkTimeout)
		defer cancel()
	}
	if err := sink.Consume(sinkCtx, evt); err != nil {
		w.log.Warn("Sink delivery failed", "player", playerID, "error", err)
	}
}
