// Package models holds the wire and state types shared across the turn
// pipeline: sessions, turn state, anchors, the tool contract, and the
// orchestrator entrypoint types.
package models

// Channel identifies the inbound messaging channel of a turn.
type Channel string

// Supported channels.
const (
	ChannelChat     Channel = "CHAT"
	ChannelWhatsApp Channel = "WHATSAPP"
	ChannelEmail    Channel = "EMAIL"
	ChannelPhone    Channel = "PHONE"
)

// IsValid reports whether c is a known channel.
func (c Channel) IsValid() bool {
	switch c {
	case ChannelChat, ChannelWhatsApp, ChannelEmail, ChannelPhone:
		return true
	}
	return false
}

// CarriesPossessionSignal reports whether the channel provides evidence
// that the sender controls a channel identifier (phone number or
// mailbox). Chat is anonymous; possession proof is impossible there.
func (c Channel) CarriesPossessionSignal() bool {
	return c == ChannelWhatsApp || c == ChannelEmail || c == ChannelPhone
}
