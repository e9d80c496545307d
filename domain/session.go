package domain

import (
	"fmt"
	"voice-relay/errors"

	"github.com/samber/lo"
)

type ChatID int64

type TurnState int

const (
	StateIdle TurnState = iota
	StateTranscribing
	StateAwaitingCompletion
	StateAwaitingDecision
)

func (s TurnState) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateTranscribing:
		return "TRANSCRIBING"
	case StateAwaitingCompletion:
		return "AWAITING_COMPLETION"
	case StateAwaitingDecision:
		return "AWAITING_DECISION"
	default:
		return fmt.Sprintf("TurnState(%d)", int(s))
	}
}

// transitions lists every legal move of the turn state machine.
// Viewing a conversation is read-only and never changes the state.
var transitions = map[TurnState][]TurnState{
	StateIdle:               {StateTranscribing, StateAwaitingCompletion},
	StateTranscribing:       {StateAwaitingCompletion, StateIdle, StateAwaitingDecision},
	StateAwaitingCompletion: {StateAwaitingDecision},
	StateAwaitingDecision:   {StateTranscribing, StateAwaitingCompletion, StateIdle},
}

// Session is the per-chat staging area of an in-progress conversation.
// It is not safe for concurrent use: the SessionRegistry hands it out under
// a per-chat lock for the duration of a full turn.
type Session struct {
	ChatID        ChatID
	State         TurnState
	Messages      []Message
	Conversations []Conversation
}

func NewSession(chatID ChatID) *Session {
	return &Session{ChatID: chatID, State: StateIdle}
}

func (s *Session) transition(to TurnState) error {
	if !lo.Contains(transitions[s.State], to) {
		return fmt.Errorf("%w: %s -> %s", errors.ErrInvalidTransition, s.State, to)
	}
	s.State = to
	return nil
}

// StartTranscription enters TRANSCRIBING on voice receipt.
func (s *Session) StartTranscription() error {
	return s.transition(StateTranscribing)
}

// Submit buffers a user message and moves the session to AWAITING_COMPLETION.
// Blank text is rejected with ErrEmptyText and leaves the session untouched.
func (s *Session) Submit(text string) error {
	if IsBlank(text) {
		return errors.ErrEmptyText
	}
	var err error
	switch s.State {
	case StateAwaitingDecision:
		err = s.ContinueConversation()
	default:
		err = s.transition(StateAwaitingCompletion)
	}
	if err != nil {
		return err
	}
	s.Messages = append(s.Messages, NewUserMessage(text))
	return nil
}

// ContinueConversation is the explicit AWAITING_DECISION -> AWAITING_COMPLETION move
// taken when the user sends another message instead of saving.
func (s *Session) ContinueConversation() error {
	if s.State != StateAwaitingDecision {
		return fmt.Errorf("%w: cannot continue from %s", errors.ErrInvalidTransition, s.State)
	}
	return s.transition(StateAwaitingCompletion)
}

// CompleteTurn records the assistant reply and waits for the save/continue decision.
func (s *Session) CompleteTurn(reply Message) error {
	if err := s.transition(StateAwaitingDecision); err != nil {
		return err
	}
	s.Messages = append(s.Messages, reply)
	return nil
}

// Settle brings a session out of a transient state after a failed stage.
// Buffered messages are kept: an empty buffer settles to IDLE, anything else
// to AWAITING_DECISION. Stable states are left as they are.
func (s *Session) Settle() {
	if s.State != StateTranscribing && s.State != StateAwaitingCompletion {
		return
	}
	if len(s.Messages) == 0 {
		s.State = StateIdle
		return
	}
	s.State = StateAwaitingDecision
}

// Buffer returns a copy of the buffered messages.
func (s *Session) Buffer() []Message {
	out := make([]Message, len(s.Messages))
	copy(out, s.Messages)
	return out
}

// Close empties the buffer once it has been persisted and returns to IDLE.
func (s *Session) Close() error {
	if len(s.Messages) == 0 {
		return errors.ErrNothingToSave
	}
	if err := s.transition(StateIdle); err != nil {
		return err
	}
	s.Messages = nil
	return nil
}

// Reset drops the buffer and the cached conversation list.
func (s *Session) Reset() {
	s.State = StateIdle
	s.Messages = nil
	s.Conversations = nil
}

func (s *Session) CacheConversations(conversations []Conversation) {
	s.Conversations = conversations
}

// FindConversation looks id up in the list cached by the last list action.
// The cache is best-effort: a conversation saved since then is not visible here.
func (s *Session) FindConversation(id string) (Conversation, bool) {
	return lo.Find(s.Conversations, func(c Conversation) bool {
		return c.ID == id
	})
}
