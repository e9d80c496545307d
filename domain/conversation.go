package domain

import (
	"time"
	"unicode/utf8"
)

const maxLabelRunes = 48

// Conversation is the persisted, immutable record of a saved session buffer.
type Conversation struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"created_at"`
}

// Label returns the text used to present the conversation in a selection list:
// the content of its first message, shortened to fit an inline button.
func (c Conversation) Label() string {
	if len(c.Messages) == 0 {
		return "(empty)"
	}
	content := c.Messages[0].Content
	if utf8.RuneCountInString(content) <= maxLabelRunes {
		return content
	}
	runes := []rune(content)
	return string(runes[:maxLabelRunes-1]) + "…"
}
