package runtime

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"
	"voice-relay/domain"
	"voice-relay/mocks"

	"go.uber.org/mock/gomock"
)

const (
	allowedChat  domain.ChatID = -100200300
	intruderChat domain.ChatID = 555
)

var caller = domain.Identity{ExternalID: "1001", FirstName: "Ada", Username: "ada"}

func allowed() domain.Inbound  { return domain.Inbound{ChatID: allowedChat, Caller: caller} }
func intruder() domain.Inbound { return domain.Inbound{ChatID: intruderChat, Caller: caller} }

// recordingReplier keeps every outbound reply per chat.
type recordingReplier struct {
	mu      sync.Mutex
	replies map[domain.ChatID][]domain.Reply
}

func newRecordingReplier() *recordingReplier {
	return &recordingReplier{replies: make(map[domain.ChatID][]domain.Reply)}
}

func (r *recordingReplier) Reply(_ context.Context, chatID domain.ChatID, reply domain.Reply) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.replies[chatID] = append(r.replies[chatID], reply)
	return nil
}

func (r *recordingReplier) For(chatID domain.ChatID) []domain.Reply {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Reply(nil), r.replies[chatID]...)
}

func (r *recordingReplier) Texts(chatID domain.ChatID) []string {
	var texts []string
	for _, reply := range r.For(chatID) {
		texts = append(texts, reply.Text)
	}
	return texts
}

type fixture struct {
	orchestrator *Orchestrator
	registry     *SessionRegistry
	audio        *mocks.MockIAudioPipeline
	transcriber  *mocks.MockITranscriber
	completion   *mocks.MockICompletionClient
	store        *mocks.MockIPersistenceGateway
	replier      *recordingReplier
}

var testTimeouts = Timeouts{
	Transcode:     time.Second,
	Transcription: time.Second,
	Completion:    time.Second,
	Persistence:   time.Second,
	Reply:         time.Second,
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	f := fixture{
		registry:    NewSessionRegistry(),
		audio:       mocks.NewMockIAudioPipeline(ctrl),
		transcriber: mocks.NewMockITranscriber(ctrl),
		completion:  mocks.NewMockICompletionClient(ctrl),
		store:       mocks.NewMockIPersistenceGateway(ctrl),
		replier:     newRecordingReplier(),
	}
	f.orchestrator = NewOrchestrator(slog.Default(), f.registry, f.audio, f.transcriber,
		f.completion, f.store, f.replier, allowedChat, "1001", testTimeouts)
	return f
}

// snapshot copies the chat's session so assertions never race with a turn.
func (f fixture) snapshot(chatID domain.ChatID) domain.Session {
	session, release := f.registry.Acquire(chatID)
	defer release()
	out := *session
	out.Messages = session.Buffer()
	out.Conversations = append([]domain.Conversation(nil), session.Conversations...)
	return out
}
