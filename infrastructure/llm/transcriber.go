package llm

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"voice-relay/contract"
	"voice-relay/domain/mimetypes"

	"github.com/gabriel-vasile/mimetype"
	"google.golang.org/genai"
)

var _ contract.ITranscriber = (*Transcriber)(nil)

const transcriptionPrompt = "Transcribe this voice message verbatim in its original language. " +
	"Answer with the transcript only, or with nothing if there is no speech."

type Transcriber struct {
	log    *slog.Logger
	models contentGenerator
	model  string
}

func NewTranscriber(log *slog.Logger, models contentGenerator, model string) *Transcriber {
	return &Transcriber{log: log, models: models, model: model}
}

// Transcribe uploads the audio inline with its sniffed MIME type and returns the transcript.
// Files that do not sniff as a supported audio type are rejected before any call.
func (t *Transcriber) Transcribe(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read audio: %w", err)
	}
	mime := mimetype.Detect(data).String()
	if _, ok := mimetypes.MatchesAny(mime, mimetypes.Transcribable...); !ok {
		return "", fmt.Errorf("unsupported audio type %s", mime)
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(transcriptionPrompt),
			genai.NewPartFromBytes(data, mime),
		}, genai.RoleUser),
	}
	res, err := t.models.GenerateContent(ctx, t.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("transcribe %s: %w", mime, err)
	}
	text := res.Text()
	t.log.Debug("Transcription received", "model", t.model, "mime", mime, "bytes", len(data), "length", len(text))
	return text, nil
}
