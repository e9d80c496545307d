package llm

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"voice-relay/domain"

	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeGenerator struct {
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
	answer   string
	err      error
}

func (f *fakeGenerator) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model, f.contents, f.config = model, contents, config
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: genai.NewContentFromText(f.answer, genai.RoleModel)},
		},
	}, nil
}

var ada = domain.Identity{ExternalID: "1001", FirstName: "Ada"}

func TestCompletionClient_Maps_Roles_In_Order(t *testing.T) {
	req := require.New(t)
	generator := &fakeGenerator{answer: "Sunny"}
	client := NewCompletionClient(slog.Default(), generator, "gemini-2.5-flash", "Be brief.", false)

	answer, err := client.Complete(context.Background(), []domain.Message{
		domain.NewUserMessage("Hello"),
		domain.NewAssistantMessage("Hi there"),
		domain.NewUserMessage("Weather?"),
	}, ada)

	req.NoError(err)
	req.Equal(domain.NewAssistantMessage("Sunny"), answer)
	req.Equal("gemini-2.5-flash", generator.model)
	req.Len(generator.contents, 3)
	req.Equal(genai.RoleUser, generator.contents[0].Role)
	req.Equal(genai.RoleModel, generator.contents[1].Role)
	req.Equal("Hi there", generator.contents[1].Parts[0].Text)
	req.Equal("Be brief.", generator.config.SystemInstruction.Parts[0].Text)
	req.Nil(generator.config.Labels)
}

func TestCompletionClient_Labels_Caller_On_Vertex(t *testing.T) {
	req := require.New(t)
	generator := &fakeGenerator{answer: "ok"}
	client := NewCompletionClient(slog.Default(), generator, "gemini-2.5-flash", "", true)

	_, err := client.Complete(context.Background(), []domain.Message{domain.NewUserMessage("Hello")}, ada)

	req.NoError(err)
	req.Equal(map[string]string{callerLabel: "1001"}, generator.config.Labels)
	req.Nil(generator.config.SystemInstruction)
}

func TestCompletionClient_Wraps_Errors(t *testing.T) {
	req := require.New(t)
	upstream := fmt.Errorf("429 resource exhausted")
	client := NewCompletionClient(slog.Default(), &fakeGenerator{err: upstream}, "m", "", false)

	_, err := client.Complete(context.Background(), []domain.Message{domain.NewUserMessage("Hello")}, ada)

	req.ErrorIs(err, upstream)
}

func TestTranscriber_Sends_Audio_With_Sniffed_Mime(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "voice.mp3")
	// ID3 header is enough for the sniffer to recognise mp3
	req.NoError(os.WriteFile(path, append([]byte("ID3\x03\x00\x00\x00\x00\x00\x00"), make([]byte, 64)...), 0o600))
	generator := &fakeGenerator{answer: "What time is it?"}
	transcriber := NewTranscriber(slog.Default(), generator, "gemini-2.5-flash")

	text, err := transcriber.Transcribe(context.Background(), path)

	req.NoError(err)
	req.Equal("What time is it?", text)
	req.Len(generator.contents, 1)
	parts := generator.contents[0].Parts
	req.Len(parts, 2)
	req.Equal(transcriptionPrompt, parts[0].Text)
	req.Equal("audio/mpeg", parts[1].InlineData.MIMEType)
}

func TestTranscriber_Missing_File(t *testing.T) {
	req := require.New(t)
	generator := &fakeGenerator{}
	transcriber := NewTranscriber(slog.Default(), generator, "m")

	_, err := transcriber.Transcribe(context.Background(), filepath.Join(t.TempDir(), "missing.mp3"))

	req.ErrorIs(err, os.ErrNotExist)
	req.Nil(generator.contents)
}

func TestMockCompletion_Echoes_Last_Message(t *testing.T) {
	req := require.New(t)

	answer, err := NewMockCompletion().Complete(context.Background(), []domain.Message{domain.NewUserMessage("Hello")}, ada)

	req.NoError(err)
	req.Equal(domain.RoleAssistant, answer.Role)
	req.Contains(answer.Content, `"Hello"`)
	req.Contains(answer.Content, "Ada")
}

func TestTranscriber_Rejects_Non_Audio(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "voice.mp3")
	req.NoError(os.WriteFile(path, []byte("%PDF-1.7 not a voice message"), 0o600))
	generator := &fakeGenerator{}
	transcriber := NewTranscriber(slog.Default(), generator, "m")

	_, err := transcriber.Transcribe(context.Background(), path)

	req.ErrorContains(err, "unsupported audio type application/pdf")
	req.Nil(generator.contents)
}
