package telegram

import (
	"context"
	stderrors "errors"
	"log/slog"
	"strconv"
	"voice-relay/contract"
	"voice-relay/domain"
	"voice-relay/errors"
	"voice-relay/runtime"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	commandStart         = "start"
	commandNew           = "new"
	commandConversations = "conversations"
	commandAdmin         = "admin"
)

type callbackAnswerer interface {
	AnswerCallback(ctx context.Context, callbackID string) error
}

// Router maps Telegram updates onto orchestrator operations.
type Router struct {
	log          *slog.Logger
	orchestrator contract.IOrchestrator
	callbacks    callbackAnswerer
}

func NewRouter(log *slog.Logger, orchestrator contract.IOrchestrator, callbacks callbackAnswerer) *Router {
	return &Router{log: log, orchestrator: orchestrator, callbacks: callbacks}
}

// Route handles one update. It matches workers.UpdateHandler.
func (r *Router) Route(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		r.routeCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		r.routeMessage(ctx, update.Message)
	default:
		r.log.Debug("Update ignored", "update_id", update.UpdateID)
	}
}

func (r *Router) routeCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	if err := r.callbacks.AnswerCallback(ctx, query.ID); err != nil {
		r.log.Warn("Callback not answered", "error", err)
	}
	if query.Message == nil || query.Message.Chat == nil {
		r.log.Debug("Callback without message ignored", "callback_id", query.ID)
		return
	}
	in := inbound(query.Message.Chat.ID, query.From)
	r.outcome("action", in, r.orchestrator.HandleAction(ctx, in, query.Data))
}

func (r *Router) routeMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.Chat == nil {
		return
	}
	in := inbound(msg.Chat.ID, msg.From)

	switch {
	case msg.IsCommand():
		r.routeCommand(ctx, in, msg.Command())
	case msg.Voice != nil:
		r.outcome("voice", in, r.orchestrator.HandleVoice(ctx, in, msg.Voice.FileID))
	case msg.Text != "":
		r.outcome("text", in, r.orchestrator.HandleText(ctx, in, msg.Text))
	default:
		r.log.Debug("Message kind not supported", "chat_id", in.ChatID, "message_id", msg.MessageID)
	}
}

func (r *Router) routeCommand(ctx context.Context, in domain.Inbound, command string) {
	switch command {
	case commandStart:
		r.outcome(command, in, r.orchestrator.StartOver(ctx, in, runtime.StartGreeting))
	case commandNew:
		r.outcome(command, in, r.orchestrator.StartOver(ctx, in, runtime.NewGreeting))
	case commandConversations:
		r.outcome(command, in, r.orchestrator.ListConversations(ctx, in))
	case commandAdmin:
		r.outcome(command, in, r.orchestrator.Status(ctx, in))
	default:
		r.log.Debug("Unknown command", "chat_id", in.ChatID, "command", command)
	}
}

// outcome logs what the orchestrator returned. Failures were already reported
// to the user and logged with their stage, only the expected refusals are quiet.
func (r *Router) outcome(kind string, in domain.Inbound, err error) {
	if err == nil {
		return
	}
	switch {
	case stderrors.Is(err, errors.ErrChatNotAllowed),
		stderrors.Is(err, errors.ErrEmptyText),
		stderrors.Is(err, errors.ErrNothingToSave),
		stderrors.Is(err, errors.ErrConversationNotFound),
		stderrors.Is(err, errors.ErrNotAdmin),
		stderrors.Is(err, errors.ErrInvalidAction):
		r.log.Debug("Update not processed", "kind", kind, "chat_id", in.ChatID, "reason", err)
	default:
		r.log.Warn("Update failed", "kind", kind, "chat_id", in.ChatID, "error", err)
	}
}

func inbound(chatID int64, from *tgbotapi.User) domain.Inbound {
	in := domain.Inbound{ChatID: domain.ChatID(chatID)}
	if from != nil {
		in.Caller = domain.Identity{
			ExternalID: strconv.FormatInt(from.ID, 10),
			FirstName:  from.FirstName,
			Username:   from.UserName,
		}
	}
	return in
}
