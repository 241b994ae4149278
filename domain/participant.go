// Package domain contains core concepts of the broadcast engine.
// This file defines the player views consumed from the session layer.
package domain

// Presence is the lightweight online record of a connected player.
// It may lag behind the durable PlayerRecord.
type Presence struct {
	PlayerID      PlayerID
	CurrentRoomID RoomID
}

// PlayerRecord is the durable player fact source.
type PlayerRecord struct {
	ID            PlayerID
	Name          string
	CurrentRoomID RoomID
	IsAdmin       bool
}
