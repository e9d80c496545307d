//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"voice-relay/domain"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Artifacts describes the local files produced while fetching and transcoding
// a voice attachment. Files lists every intermediate file created, Output included,
// and is filled in on failure too so the caller can always release them.
type Artifacts struct {
	Output string
	Files  []string
}

type IAudioPipeline interface {
	FetchAndTranscode(ctx context.Context, fileRef, ownerKey string) (Artifacts, error)
}

type ITranscriber interface {
	Transcribe(ctx context.Context, path string) (string, error)
}

type ICompletionClient interface {
	Complete(ctx context.Context, history []domain.Message, caller domain.Identity) (domain.Message, error)
}

// IPersistenceGateway is the document store as seen by the orchestrator.
// No ordering is guaranteed by ListConversations.
type IPersistenceGateway interface {
	UpsertUser(ctx context.Context, identity domain.Identity) (domain.User, error)
	SaveConversation(ctx context.Context, messages []domain.Message, userID string) (domain.Conversation, error)
	ListConversations(ctx context.Context, userID string) ([]domain.Conversation, error)
}

type IReplier interface {
	Reply(ctx context.Context, chatID domain.ChatID, reply domain.Reply) error
}

type IOrchestrator interface {
	HandleText(ctx context.Context, in domain.Inbound, text string) error
	HandleVoice(ctx context.Context, in domain.Inbound, fileRef string) error
	HandleAction(ctx context.Context, in domain.Inbound, token string) error
	ListConversations(ctx context.Context, in domain.Inbound) error
	StartOver(ctx context.Context, in domain.Inbound, greeting string) error
	Status(ctx context.Context, in domain.Inbound) error
}
