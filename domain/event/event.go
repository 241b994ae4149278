package event

import (
	"roomcast/domain"
	"time"
)

type DomainEvent interface {
	RoomID() domain.RoomID
}

// MessageBroadcast is handed to every recipient sink of a filtered message.
// Echo is true on the copy delivered back to the sender.
type MessageBroadcast struct {
	MessageID string
	Room      domain.RoomID
	Author    domain.PlayerID
	Channel   domain.Channel
	Content   string
	At        time.Time
	Echo      bool
}

func (m MessageBroadcast) RoomID() domain.RoomID {
	return m.Room
}

// MessageRejected is sent back to a sender who is not allowed to speak.
type MessageRejected struct {
	MessageID string
	Room      domain.RoomID
	Author    domain.PlayerID
	Channel   domain.Channel
	At        time.Time
}

func (m MessageRejected) RoomID() domain.RoomID {
	return m.Room
}
