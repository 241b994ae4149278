// Package domain contains core concepts of the broadcast engine.
// This file defines the inbound message filtered by the pipeline.
package domain

import (
	"time"
)

// Message is a chat, emote or system event entering a room.
// MessageID is empty for messages predating message-id tracking.
type Message struct {
	MessageID string
	Room      RoomID
	SenderID  PlayerID
	Channel   Channel
	Content   string
	CreatedAt time.Time
}
