// Package runtime drives conversation turns: it sequences the voice pipeline,
// the completion call and the save/view decisions for every chat.
package runtime

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"time"
	"voice-relay/contract"
	"voice-relay/domain"
	"voice-relay/errors"

	"github.com/samber/lo"
)

var _ contract.IOrchestrator = (*Orchestrator)(nil)

// Timeouts bounds every call made to an external collaborator.
// A call running past its timeout is handled like any other upstream failure.
type Timeouts struct {
	Transcode     time.Duration
	Transcription time.Duration
	Completion    time.Duration
	Persistence   time.Duration
	Reply         time.Duration
}

type Orchestrator struct {
	log         *slog.Logger
	registry    *SessionRegistry
	audio       contract.IAudioPipeline
	transcriber contract.ITranscriber
	completion  contract.ICompletionClient
	store       contract.IPersistenceGateway
	replier     contract.IReplier
	allowedChat domain.ChatID
	adminID     string
	timeouts    Timeouts
	removeFile  func(name string) error
}

func NewOrchestrator(
	log *slog.Logger,
	registry *SessionRegistry,
	audio contract.IAudioPipeline,
	transcriber contract.ITranscriber,
	completion contract.ICompletionClient,
	store contract.IPersistenceGateway,
	replier contract.IReplier,
	allowedChat domain.ChatID,
	adminID string,
	timeouts Timeouts) *Orchestrator {
	return &Orchestrator{
		log:         log,
		registry:    registry,
		audio:       audio,
		transcriber: transcriber,
		completion:  completion,
		store:       store,
		replier:     replier,
		allowedChat: allowedChat,
		adminID:     adminID,
		timeouts:    timeouts,
		removeFile:  os.Remove,
	}
}

// HandleText runs a full turn for a text message.
// Blank text is dropped without reply, append or completion call.
func (o *Orchestrator) HandleText(ctx context.Context, in domain.Inbound, text string) error {
	if err := o.authorize(ctx, in); err != nil {
		return err
	}
	if domain.IsBlank(text) {
		return errors.ErrEmptyText
	}

	session, release := o.registry.Acquire(in.ChatID)
	defer release()
	defer session.Settle()

	o.reply(ctx, in.ChatID, domain.Reply{Text: waitNotice, Format: domain.FormatCode})
	return o.runTurn(ctx, in, session, text)
}

// HandleVoice transcribes a voice attachment, echoes the transcript and
// continues the turn as if the transcript had been typed.
func (o *Orchestrator) HandleVoice(ctx context.Context, in domain.Inbound, fileRef string) error {
	if err := o.authorize(ctx, in); err != nil {
		return err
	}

	session, release := o.registry.Acquire(in.ChatID)
	defer release()
	defer session.Settle()

	log := o.log.With("chat_id", in.ChatID)
	if err := session.StartTranscription(); err != nil {
		log.Error("Cannot start transcription", "state", session.State, "error", err)
		o.fail(ctx, in.ChatID)
		return err
	}

	o.reply(ctx, in.ChatID, domain.Reply{Text: waitNotice, Format: domain.FormatCode})

	text, err := o.transcribe(ctx, in, fileRef)
	if err != nil {
		log.Error("Voice message processing failed", "stage", "transcription", "error", err)
		o.fail(ctx, in.ChatID)
		return err
	}
	if domain.IsBlank(text) {
		return errors.ErrEmptyText
	}

	o.reply(ctx, in.ChatID, domain.Reply{Text: transcriptPrefix + text, Format: domain.FormatCode})
	return o.runTurn(ctx, in, session, text)
}

// runTurn buffers the user message, calls the completion service with the whole
// history and records the answer. On failure the user message stays buffered
// and nothing is retried.
func (o *Orchestrator) runTurn(ctx context.Context, in domain.Inbound, session *domain.Session, text string) error {
	log := o.log.With("chat_id", in.ChatID)
	if err := session.Submit(text); err != nil {
		if stderrors.Is(err, errors.ErrEmptyText) {
			return err
		}
		log.Error("Cannot start turn", "state", session.State, "error", err)
		o.fail(ctx, in.ChatID)
		return err
	}

	callCtx, cancel := context.WithTimeout(ctx, o.timeouts.Completion)
	defer cancel()
	answer, err := o.completion.Complete(callCtx, session.Buffer(), in.Caller)
	if err == nil && domain.IsBlank(answer.Content) {
		err = errors.ErrEmptyCompletion
	}
	if err != nil {
		log.Error("Completion failed", "stage", "completion", "messages", len(session.Messages), "error", err)
		session.Settle()
		o.fail(ctx, in.ChatID)
		return fmt.Errorf("%w: %w", errors.ErrCompletion, err)
	}

	if err = session.CompleteTurn(domain.NewAssistantMessage(answer.Content)); err != nil {
		log.Error("Cannot record completion", "state", session.State, "error", err)
		o.fail(ctx, in.ChatID)
		return err
	}
	log.Debug("Turn completed", "messages", len(session.Messages))

	o.reply(ctx, in.ChatID, domain.Reply{
		Text: answer.Content,
		Actions: []domain.ActionButton{
			{Label: saveActionLabel, Action: domain.SaveConversation{}},
		},
	})
	return nil
}

// HandleAction validates a callback token and dispatches the typed action.
func (o *Orchestrator) HandleAction(ctx context.Context, in domain.Inbound, token string) error {
	if err := o.authorize(ctx, in); err != nil {
		return err
	}
	action, err := domain.ParseAction(token)
	if err != nil {
		o.log.Warn("Callback rejected", "chat_id", in.ChatID, "error", err)
		return err
	}

	session, release := o.registry.Acquire(in.ChatID)
	defer release()

	switch a := action.(type) {
	case domain.SaveConversation:
		return o.save(ctx, in, session)
	case domain.ViewConversation:
		return o.view(ctx, in, session, a.ConversationID)
	default:
		return fmt.Errorf("%w: %T", errors.ErrInvalidAction, action)
	}
}

// save persists the buffer as a new conversation and closes the session.
// An empty buffer is a no-op, so a repeated save never duplicates a conversation.
func (o *Orchestrator) save(ctx context.Context, in domain.Inbound, session *domain.Session) error {
	log := o.log.With("chat_id", in.ChatID)
	if len(session.Messages) == 0 {
		o.reply(ctx, in.ChatID, domain.Reply{Text: nothingToSaveNotice})
		return errors.ErrNothingToSave
	}

	user, err := o.upsertUser(ctx, in.Caller)
	if err != nil {
		log.Error("Cannot resolve user", "stage", "persistence", "error", err)
		o.fail(ctx, in.ChatID)
		return err
	}

	callCtx, cancel := context.WithTimeout(ctx, o.timeouts.Persistence)
	defer cancel()
	conversation, err := o.store.SaveConversation(callCtx, session.Buffer(), user.ID)
	if err != nil {
		log.Error("Cannot save conversation", "stage", "persistence", "user_id", user.ID, "error", err)
		o.fail(ctx, in.ChatID)
		return err
	}

	if err = session.Close(); err != nil {
		return err
	}
	log.Info("Conversation saved", "conversation_id", conversation.ID, "messages", len(conversation.Messages))
	o.reply(ctx, in.ChatID, domain.Reply{Text: savedNotice})
	return nil
}

// view renders a conversation from the list cached by the last list action.
// The cache is best-effort: an unknown id yields a "not found" reply.
func (o *Orchestrator) view(ctx context.Context, in domain.Inbound, session *domain.Session, id string) error {
	conversation, ok := session.FindConversation(id)
	if !ok {
		o.log.Debug("Conversation not in cache", "chat_id", in.ChatID, "conversation_id", id)
		o.reply(ctx, in.ChatID, domain.Reply{Text: notFoundNotice})
		return fmt.Errorf("%w: %s", errors.ErrConversationNotFound, id)
	}
	o.reply(ctx, in.ChatID, domain.Reply{
		Text:       conversation.CreatedAt.Format(time.DateTime),
		Format:     domain.FormatBold,
		Transcript: conversation.Messages,
	})
	return nil
}

// ListConversations fetches the caller's conversations, caches them in the
// session and presents one selectable action per conversation.
func (o *Orchestrator) ListConversations(ctx context.Context, in domain.Inbound) error {
	if err := o.authorize(ctx, in); err != nil {
		return err
	}

	session, release := o.registry.Acquire(in.ChatID)
	defer release()

	log := o.log.With("chat_id", in.ChatID)
	user, err := o.upsertUser(ctx, in.Caller)
	if err != nil {
		log.Error("Cannot resolve user", "stage", "persistence", "error", err)
		o.fail(ctx, in.ChatID)
		return err
	}

	callCtx, cancel := context.WithTimeout(ctx, o.timeouts.Persistence)
	defer cancel()
	conversations, err := o.store.ListConversations(callCtx, user.ID)
	if err != nil {
		log.Error("Cannot list conversations", "stage", "persistence", "user_id", user.ID, "error", err)
		o.fail(ctx, in.ChatID)
		return err
	}

	slices.SortStableFunc(conversations, func(a, b domain.Conversation) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	session.CacheConversations(conversations)

	if len(conversations) == 0 {
		o.reply(ctx, in.ChatID, domain.Reply{Text: noConversationsNotice})
		return nil
	}
	o.reply(ctx, in.ChatID, domain.Reply{
		Text:   conversationsTitle,
		Format: domain.FormatBold,
		Actions: lo.Map(conversations, func(c domain.Conversation, _ int) domain.ActionButton {
			return domain.ActionButton{Label: c.Label(), Action: domain.ViewConversation{ConversationID: c.ID}}
		}),
	})
	return nil
}

// StartOver drops the chat's buffer and cached list, then greets the user.
func (o *Orchestrator) StartOver(ctx context.Context, in domain.Inbound, greeting string) error {
	if err := o.authorize(ctx, in); err != nil {
		return err
	}
	session, release := o.registry.Acquire(in.ChatID)
	defer release()

	session.Reset()
	o.reply(ctx, in.ChatID, domain.Reply{Text: greeting})
	return nil
}

// Status answers the administrator only; anybody else is ignored.
func (o *Orchestrator) Status(ctx context.Context, in domain.Inbound) error {
	if err := o.authorize(ctx, in); err != nil {
		return err
	}
	if o.adminID == "" || in.Caller.ExternalID != o.adminID {
		return errors.ErrNotAdmin
	}
	o.reply(ctx, in.ChatID, domain.Reply{Text: fmt.Sprintf(statusFormat, o.registry.Len())})
	return nil
}

// authorize lets through the allowed chat only. Any other chat receives one
// refusal and nothing else happens.
func (o *Orchestrator) authorize(ctx context.Context, in domain.Inbound) error {
	if in.ChatID == o.allowedChat {
		return nil
	}
	o.log.Debug("Chat refused", "chat_id", in.ChatID)
	o.reply(ctx, in.ChatID, domain.Reply{Text: refusalNotice, Format: domain.FormatCode})
	return errors.ErrChatNotAllowed
}

func (o *Orchestrator) upsertUser(ctx context.Context, identity domain.Identity) (domain.User, error) {
	callCtx, cancel := context.WithTimeout(ctx, o.timeouts.Persistence)
	defer cancel()
	return o.store.UpsertUser(callCtx, identity)
}

func (o *Orchestrator) fail(ctx context.Context, chatID domain.ChatID) {
	o.reply(ctx, chatID, domain.Reply{Text: failureNotice})
}

func (o *Orchestrator) reply(ctx context.Context, chatID domain.ChatID, reply domain.Reply) {
	callCtx, cancel := context.WithTimeout(ctx, o.timeouts.Reply)
	defer cancel()
	if err := o.replier.Reply(callCtx, chatID, reply); err != nil {
		o.log.Warn("Reply not delivered", "chat_id", chatID, "error", err)
	}
}
