package domain

// Channel is the kind of a broadcast message (say, emote, ...).
type Channel string

const (
	ChannelSay     Channel = "say"
	ChannelLocal   Channel = "local"
	ChannelEmote   Channel = "emote"
	ChannelPose    Channel = "pose"
	ChannelWhisper Channel = "whisper"
	ChannelGlobal  Channel = "global"
	ChannelSystem  Channel = "system"
	ChannelAdmin   Channel = "admin"
)

var muteSensitive = map[Channel]struct{}{
	ChannelSay:     {},
	ChannelLocal:   {},
	ChannelEmote:   {},
	ChannelPose:    {},
	ChannelWhisper: {},
	ChannelGlobal:  {},
	ChannelSystem:  {},
	ChannelAdmin:   {},
}

// IsMuteSensitive reports whether receiver-side mute filtering applies to c.
func (c Channel) IsMuteSensitive() bool {
	_, ok := muteSensitive[c]
	return ok
}
