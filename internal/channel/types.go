package channel

import "context"

// ChannelType identifies a messaging platform.
type ChannelType string

func (t ChannelType) String() string {
	return string(t)
}

// Action is a quick-reply shortcut: Label is shown to the user, Text is the
// keyword sent back when the shortcut is tapped.
type Action struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Message is an outbound chat message with optional quick-reply actions.
type Message struct {
	Text    string   `json:"text"`
	Actions []Action `json:"actions,omitempty"`
}

// IsEmpty reports whether the message carries nothing to send.
func (m Message) IsEmpty() bool {
	return m.Text == "" && len(m.Actions) == 0
}

// ReplySender delivers a reply to a platform-specific target: a reply token
// on LINE, a chat id on Telegram.
type ReplySender interface {
	Reply(ctx context.Context, target string, msg Message) error
}

// Adapter binds a channel type to its reply delivery implementation.
type Adapter interface {
	ReplySender
	Type() ChannelType
}
