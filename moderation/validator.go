package moderation

import (
	"fmt"
	"roomcast/domain"
	"roomcast/errors"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// MuteCommand describes a personal or global mute. A nil Duration is permanent.
type MuteCommand struct {
	MuterID    domain.PlayerID `validate:"required"`
	MuterName  string
	TargetID   domain.PlayerID `validate:"required"`
	TargetName string
	Duration   *time.Duration
	Reason     string `validate:"max=256"`
}

// ChannelMuteCommand describes a mute a player applies to one of their own channels.
type ChannelMuteCommand struct {
	PlayerID domain.PlayerID `validate:"required"`
	Channel  domain.Channel  `validate:"required"`
	Duration *time.Duration
	Reason   string `validate:"max=256"`
}

func ValidateMute(cmd MuteCommand) error {
	if err := validate.Struct(cmd); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidMute, err)
	}
	if cmd.MuterID == cmd.TargetID {
		return errors.ErrSelfMute
	}
	return validateDuration(cmd.Duration)
}

func ValidateChannelMute(cmd ChannelMuteCommand) error {
	if err := validate.Struct(cmd); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidMute, err)
	}
	return validateDuration(cmd.Duration)
}

func validateDuration(d *time.Duration) error {
	if d != nil && *d <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %s", errors.ErrInvalidMute, *d)
	}
	return nil
}

func nameOr(name string, id domain.PlayerID) string {
	if name == "" {
		return string(id)
	}
	return name
}
