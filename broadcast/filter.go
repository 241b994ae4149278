package broadcast

import (
	"context"
	"log/slog"
	"roomcast/contract"
	"roomcast/domain"

	"github.com/samber/lo"
)

// Filter is the per-message recipient pipeline. One Filter is shared by every
// message; the mute registry is injected once rather than looked up per receiver.
type Filter struct {
	resolver *Resolver
	mutes    contract.IMuteChecker
	log      *slog.Logger
}

func NewFilter(resolver *Resolver, mutes contract.IMuteChecker, log *slog.Logger) *Filter {
	return &Filter{resolver: resolver, mutes: mutes, log: log}
}

func (f *Filter) Resolver() *Resolver { return f.resolver }

// Recipients collects the room targets of msg and filters them.
func (f *Filter) Recipients(ctx context.Context, msg domain.Message) []domain.PlayerID {
	candidates := lo.Keys(f.resolver.CollectRoomTargets(msg.Room))
	return f.FilterRecipients(ctx, msg, candidates)
}

// FilterRecipients returns, in no particular order, the candidates allowed to
// receive msg. The sender is never part of the result; their echo is handled
// separately.
func (f *Filter) FilterRecipients(ctx context.Context, msg domain.Message, candidates []domain.PlayerID) []domain.PlayerID {
	inRoom := make([]domain.PlayerID, 0, len(candidates))
	for _, candidate := range lo.Uniq(candidates) {
		if candidate == msg.SenderID {
			continue
		}
		if !f.resolver.IsPlayerInRoom(ctx, candidate, msg.Room) {
			f.log.Debug("Candidate not in room", "candidate", candidate, "room", msg.Room)
			continue
		}
		inRoom = append(inRoom, candidate)
	}
	if len(inRoom) == 0 || !shouldCheckMutes(msg.Channel, msg.MessageID) {
		return inRoom
	}

	f.PreloadMutes(ctx, inRoom, msg.SenderID)
	senderGloballyMuted := f.mutes.IsPlayerMutedByOthers(msg.SenderID)

	recipients := make([]domain.PlayerID, 0, len(inRoom))
	for _, candidate := range inRoom {
		// Personal mute first; the admin override only concerns global mutes.
		if f.mutes.IsPlayerMuted(candidate, msg.SenderID) {
			f.log.Debug("Recipient mutes sender", "recipient", candidate, "sender", msg.SenderID)
			continue
		}
		if senderGloballyMuted && !f.mutes.IsAdmin(ctx, candidate) {
			continue
		}
		recipients = append(recipients, candidate)
	}
	return recipients
}

// PreloadMutes batch-loads the snapshots of every candidate but the sender.
// A failure only means later checks use what is already in memory.
func (f *Filter) PreloadMutes(ctx context.Context, candidates []domain.PlayerID, sender domain.PlayerID) {
	ids := lo.Filter(candidates, func(id domain.PlayerID, _ int) bool { return id != sender })
	if len(ids) == 0 {
		return
	}
	if err := f.mutes.PreloadSnapshots(ctx, ids); err != nil {
		f.log.Warn("Mute preload failed, using cached state", "count", len(ids), "error", err)
	}
}

// shouldCheckMutes also keeps the rule for "say" messages sent before
// message ids existed.
func shouldCheckMutes(channel domain.Channel, messageID string) bool {
	return channel.IsMuteSensitive() || (channel == domain.ChannelSay && messageID == "")
}
