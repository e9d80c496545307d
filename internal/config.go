package internal

import (
	"fmt"
	"time"
	"voice-relay/domain"
)

const (
	BackendGemini = "gemini"
	BackendVertex = "vertex"
)

type Config struct {
	TelegramToken  string `env:"TELEGRAM_TOKEN,required=true" validate:"required"`
	AllowedChatID  int64  `env:"ALLOWED_CHAT_ID,required=true" validate:"required"`
	AdminUserID    string `env:"ADMIN_USER_ID"`
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true" validate:"required"`
	LogLevel       string `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR"`

	LLMMock            bool   `env:"LLM_MOCK,default=false"`
	GenAIBackend       string `env:"GENAI_BACKEND,default=gemini" validate:"oneof=gemini vertex"`
	GenAIAPIKey        string `env:"GENAI_API_KEY"`
	GCPProject         string `env:"GCP_PROJECT"`
	GCPLocation        string `env:"GCP_LOCATION,default=us-central1"`
	CompletionModel    string `env:"COMPLETION_MODEL,default=gemini-2.5-flash" validate:"required"`
	TranscriptionModel string `env:"TRANSCRIPTION_MODEL,default=gemini-2.5-flash" validate:"required"`
	SystemPrompt       string `env:"SYSTEM_PROMPT"`

	FFmpegPath   string `env:"FFMPEG_PATH,default=ffmpeg" validate:"required"`
	AudioWorkDir string `env:"AUDIO_WORK_DIR,default=/tmp/voice-relay" validate:"required"`

	TranscodeTimeout     time.Duration `env:"TRANSCODE_TIMEOUT,default=30s" validate:"gt=0"`
	TranscriptionTimeout time.Duration `env:"TRANSCRIPTION_TIMEOUT,default=60s" validate:"gt=0"`
	CompletionTimeout    time.Duration `env:"COMPLETION_TIMEOUT,default=60s" validate:"gt=0"`
	PersistenceTimeout   time.Duration `env:"PERSISTENCE_TIMEOUT,default=5s" validate:"gt=0"`
	ReplyTimeout         time.Duration `env:"REPLY_TIMEOUT,default=10s" validate:"gt=0"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,default=1s" validate:"gt=0"`
	HeartbeatInterval    time.Duration `env:"HEARTBEAT_INTERVAL,default=30s" validate:"gt=0"`

	HealthPort int `env:"HEALTH_PORT,default=50051" validate:"min=1,max=65535"`
	DebugPort  int `env:"DEBUG_PORT,default=0" validate:"min=0,max=65535"`
}

// Validate checks field constraints, then the credentials the chosen backend needs.
// The mock client needs none.
func (c Config) Validate() error {
	if err := domain.Validate(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.LLMMock {
		return nil
	}
	switch c.GenAIBackend {
	case BackendGemini:
		if c.GenAIAPIKey == "" {
			return fmt.Errorf("invalid config: GENAI_API_KEY is required for the %s backend", c.GenAIBackend)
		}
	case BackendVertex:
		if c.GCPProject == "" {
			return fmt.Errorf("invalid config: GCP_PROJECT is required for the %s backend", c.GenAIBackend)
		}
	}
	return nil
}
