package domain

import "time"

// MuteRecord is a personal mute applied by MutedBy on TargetID.
// A nil ExpiresAt means the mute never expires.
type MuteRecord struct {
	TargetID    PlayerID   `json:"target_id"`
	TargetName  string     `json:"target_name"`
	MutedBy     PlayerID   `json:"muted_by"`
	MutedByName string     `json:"muted_by_name"`
	MutedAt     time.Time  `json:"muted_at"`
	ExpiresAt   *time.Time `json:"expires_at"`
	Reason      string     `json:"reason"`
}

func (m MuteRecord) IsPermanent() bool { return m.ExpiresAt == nil }

func (m MuteRecord) IsExpired(now time.Time) bool { return isExpired(m.ExpiresAt, now) }

// ChannelMuteRecord is a self-imposed mute of a whole channel.
type ChannelMuteRecord struct {
	Channel   Channel    `json:"channel"`
	MutedAt   time.Time  `json:"muted_at"`
	ExpiresAt *time.Time `json:"expires_at"`
	Reason    string     `json:"reason"`
}

func (m ChannelMuteRecord) IsPermanent() bool { return m.ExpiresAt == nil }

func (m ChannelMuteRecord) IsExpired(now time.Time) bool { return isExpired(m.ExpiresAt, now) }

// GlobalMuteRecord silences TargetID for every receiver except admins.
// Only one is active per target.
type GlobalMuteRecord struct {
	TargetID    PlayerID   `json:"target_id"`
	TargetName  string     `json:"target_name"`
	MutedBy     PlayerID   `json:"muted_by"`
	MutedByName string     `json:"muted_by_name"`
	MutedAt     time.Time  `json:"muted_at"`
	ExpiresAt   *time.Time `json:"expires_at"`
	Reason      string     `json:"reason"`
}

func (m GlobalMuteRecord) IsPermanent() bool { return m.ExpiresAt == nil }

func (m GlobalMuteRecord) IsExpired(now time.Time) bool { return isExpired(m.ExpiresAt, now) }

func isExpired(expiresAt *time.Time, now time.Time) bool {
	return expiresAt != nil && !now.Before(*expiresAt)
}

// ExpiryFrom returns now+d, or nil for a permanent mute.
func ExpiryFrom(now time.Time, d *time.Duration) *time.Time {
	if d == nil {
		return nil
	}
	at := now.Add(*d)
	return &at
}
