package domain

// RoomID addresses a room. A room may be known under several ids (legacy and
// current naming); one of them is canonical.
type RoomID string

// PlayerID identifies a connected participant.
type PlayerID string

// Set is a set of player ids.
type Set map[PlayerID]struct{}

func (s Set) Add(id PlayerID) {
	s[id] = struct{}{}
}

func (s Set) Has(id PlayerID) bool {
	_, ok := s[id]
	return ok
}

// SameRoom reports whether a and b resolve to the same canonical room.
func SameRoom(a, b RoomID, canonical func(RoomID) RoomID) bool {
	if a == "" || b == "" {
		return false
	}
	return canonical(a) == canonical(b)
}
