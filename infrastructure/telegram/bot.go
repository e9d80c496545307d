package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"voice-relay/contract"
	"voice-relay/domain"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var _ contract.IReplier = (*Bot)(nil)

// botAPI is the subset of *tgbotapi.BotAPI the bot relies on.
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetFileDirectURL(fileID string) (string, error)
}

// Bot sends replies and resolves attachments through the Bot API.
// The client library has no context support: the context is checked between calls.
type Bot struct {
	log *slog.Logger
	api botAPI
}

func NewBot(log *slog.Logger, api botAPI) *Bot {
	return &Bot{log: log, api: api}
}

func (b *Bot) Reply(ctx context.Context, chatID domain.ChatID, reply domain.Reply) error {
	for i, msg := range Render(chatID, reply) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := b.api.Send(msg); err != nil {
			return fmt.Errorf("send message %d to chat %d: %w", i, chatID, err)
		}
	}
	return nil
}

// FileURL resolves a voice attachment reference into a download URL.
func (b *Bot) FileURL(ctx context.Context, fileRef string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	url, err := b.api.GetFileDirectURL(fileRef)
	if err != nil {
		return "", fmt.Errorf("resolve file %s: %w", fileRef, err)
	}
	return url, nil
}

// AnswerCallback stops the client-side spinner of an inline button.
func (b *Bot) AnswerCallback(ctx context.Context, callbackID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := b.api.Request(tgbotapi.NewCallback(callbackID, "")); err != nil {
		return fmt.Errorf("answer callback: %w", err)
	}
	return nil
}
