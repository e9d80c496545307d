package llm

import (
	"context"
	"fmt"
	"log/slog"
	"voice-relay/contract"
	"voice-relay/domain"

	"github.com/samber/lo"
	"google.golang.org/genai"
)

var _ contract.ICompletionClient = (*CompletionClient)(nil)

const callerLabel = "telegram_user"

type CompletionClient struct {
	log          *slog.Logger
	models       contentGenerator
	model        string
	systemPrompt string
	labelCaller  bool
}

// NewCompletionClient builds a chat completion client. With labelCaller set,
// requests carry the caller id as a billing label, which only Vertex AI accepts.
func NewCompletionClient(log *slog.Logger, models contentGenerator, model, systemPrompt string, labelCaller bool) *CompletionClient {
	return &CompletionClient{
		log:          log,
		models:       models,
		model:        model,
		systemPrompt: systemPrompt,
		labelCaller:  labelCaller,
	}
}

// Complete sends the whole history and returns the assistant answer.
func (c *CompletionClient) Complete(ctx context.Context, history []domain.Message, caller domain.Identity) (domain.Message, error) {
	cfg := &genai.GenerateContentConfig{}
	if c.systemPrompt != "" {
		cfg.SystemInstruction = genai.NewContentFromText(c.systemPrompt, genai.RoleUser)
	}
	if c.labelCaller && caller.ExternalID != "" {
		cfg.Labels = map[string]string{callerLabel: caller.ExternalID}
	}

	res, err := c.models.GenerateContent(ctx, c.model, toContents(history), cfg)
	if err != nil {
		return domain.Message{}, fmt.Errorf("generate content: %w", err)
	}
	text := res.Text()
	c.log.Debug("Completion received", "model", c.model, "history", len(history), "length", len(text))
	return domain.NewAssistantMessage(text), nil
}

func toContents(history []domain.Message) []*genai.Content {
	return lo.Map(history, func(m domain.Message, _ int) *genai.Content {
		role := genai.Role(genai.RoleUser)
		if m.Role == domain.RoleAssistant {
			role = genai.RoleModel
		}
		return genai.NewContentFromText(m.Content, role)
	})
}
