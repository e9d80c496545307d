package domain

import (
	"fmt"
	"strings"
	"voice-relay/errors"
)

const (
	saveConversationToken   = "save_conversation"
	conversationTokenPrefix = "conversation-"
)

// Action is a callback action attached to an outbound reply.
// The set of implementations is closed: SaveConversation and ViewConversation.
type Action interface {
	Token() string
	isAction()
}

type SaveConversation struct{}

func (SaveConversation) Token() string { return saveConversationToken }
func (SaveConversation) isAction()     {}

// ViewConversation carries the store's conversation id as an opaque value.
type ViewConversation struct {
	ConversationID string `validate:"required,max=64"`
}

func (v ViewConversation) Token() string { return conversationTokenPrefix + v.ConversationID }
func (ViewConversation) isAction()       {}

// ParseAction validates a raw callback token and turns it into a typed Action.
func ParseAction(token string) (Action, error) {
	token = strings.TrimSpace(token)
	switch {
	case token == saveConversationToken:
		return SaveConversation{}, nil
	case strings.HasPrefix(token, conversationTokenPrefix):
		view := ViewConversation{
			ConversationID: strings.TrimSpace(strings.TrimPrefix(token, conversationTokenPrefix)),
		}
		if err := Validate(view); err != nil {
			return nil, fmt.Errorf("%w: %v", errors.ErrInvalidAction, err)
		}
		return view, nil
	default:
		return nil, fmt.Errorf("%w: %q", errors.ErrInvalidAction, token)
	}
}

// ActionButton is one selectable {label, token} pair of an inline action list.
type ActionButton struct {
	Label  string
	Action Action
}
