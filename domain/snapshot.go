package domain

import "time"

// MuteSnapshot is the durable document holding one player's mute state.
// GlobalMutes are the ones the player authored; GlobalMute is the active
// one targeting the player, if any.
type MuteSnapshot struct {
	PlayerID      PlayerID                      `json:"player_id"`
	IsAdmin       bool                          `json:"is_admin"`
	PersonalMutes map[PlayerID]MuteRecord       `json:"personal_mutes"`
	ChannelMutes  map[Channel]ChannelMuteRecord `json:"channel_mutes"`
	GlobalMutes   map[PlayerID]GlobalMuteRecord `json:"global_mutes"`
	GlobalMute    *GlobalMuteRecord             `json:"global_mute"`
	SavedAt       time.Time                     `json:"saved_at"`
}

func NewMuteSnapshot(playerID PlayerID) MuteSnapshot {
	return MuteSnapshot{
		PlayerID:      playerID,
		PersonalMutes: make(map[PlayerID]MuteRecord),
		ChannelMutes:  make(map[Channel]ChannelMuteRecord),
		GlobalMutes:   make(map[PlayerID]GlobalMuteRecord),
	}
}

func (s MuteSnapshot) IsEmpty() bool {
	return !s.IsAdmin && len(s.PersonalMutes) == 0 && len(s.ChannelMutes) == 0 &&
		len(s.GlobalMutes) == 0 && s.GlobalMute == nil
}
