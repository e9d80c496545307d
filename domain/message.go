// Package domain contains core concepts of the relay.
// This file defines chat messages exchanged with the completion service.
// Messages are immutable once created and their order is significant.
package domain

import "strings"

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message represents one immutable entry of a conversation.
type Message struct {
	Role    Role   `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content"`
}

func NewUserMessage(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

func NewAssistantMessage(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// IsBlank reports whether text carries nothing worth sending to the completion service.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}
