package llm

import (
	"context"
	"fmt"
	"os"
	"voice-relay/contract"
	"voice-relay/domain"
)

var (
	_ contract.ICompletionClient = (*MockCompletion)(nil)
	_ contract.ITranscriber      = (*MockTranscriber)(nil)
)

// MockCompletion echoes the last user message. It lets the bot run without credentials.
type MockCompletion struct{}

func NewMockCompletion() *MockCompletion {
	return &MockCompletion{}
}

func (m *MockCompletion) Complete(_ context.Context, history []domain.Message, caller domain.Identity) (domain.Message, error) {
	if len(history) == 0 {
		return domain.Message{}, fmt.Errorf("empty history")
	}
	last := history[len(history)-1]
	return domain.NewAssistantMessage(fmt.Sprintf("I hear you, %s. You said %q (message %d of this conversation).",
		name(caller), last.Content, len(history))), nil
}

type MockTranscriber struct{}

func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{}
}

func (m *MockTranscriber) Transcribe(_ context.Context, path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Voice message of %d bytes", info.Size()), nil
}

func name(caller domain.Identity) string {
	if caller.FirstName != "" {
		return caller.FirstName
	}
	return "friend"
}
