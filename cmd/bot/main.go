package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"voice-relay/contract"
	"voice-relay/domain"
	"voice-relay/infrastructure/audio"
	"voice-relay/infrastructure/grpc/server"
	"voice-relay/infrastructure/llm"
	"voice-relay/infrastructure/telegram"
	"voice-relay/internal"
	"voice-relay/repositories"
	"voice-relay/runtime"
	"voice-relay/runtime/workers"
	"voice-relay/services"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

const debugEndpoint = "/inspect"

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bot terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component and blocks until a shutdown signal.
// Returning instead of exiting lets the deferred database close run.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, err
	}

	logger := logs.GetLoggerFromString(config.LogLevel)
	_ = tgbotapi.SetLogger(slog.NewLogLogger(logger.Handler(), slog.LevelWarn))

	// 2. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Database (BadgerDB)
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	if config.DebugPort > 0 && logger.Enabled(ctx, slog.LevelDebug) {
		logger.Info("Debug Badger inspector available", "url", fmt.Sprintf("http://localhost:%d%s", config.DebugPort, debugEndpoint))
		database.StartDebugServer(db, config.DebugPort, debugEndpoint, EntryMapper)
	}

	// 4. External services
	completion, transcriber, err := buildLLM(ctx, config, logger)
	if err != nil {
		return exitRuntime, err
	}

	api, err := tgbotapi.NewBotAPI(config.TelegramToken)
	if err != nil {
		return exitRuntime, fmt.Errorf("telegram login failed: %w", err)
	}
	bot := telegram.NewBot(logger, api)

	// 5. Orchestration
	registry := runtime.NewSessionRegistry()
	store := services.NewPersistenceService(
		repositories.NewUserRepository(db),
		repositories.NewConversationRepository(db, logger))
	pipeline := audio.NewPipeline(logger, bot, &http.Client{Timeout: config.TranscodeTimeout},
		config.FFmpegPath, config.AudioWorkDir)

	orchestrator := runtime.NewOrchestrator(
		logger, registry,
		pipeline, transcriber, completion, store, bot,
		domain.ChatID(config.AllowedChatID), config.AdminUserID,
		runtime.Timeouts{
			Transcode:     config.TranscodeTimeout,
			Transcription: config.TranscriptionTimeout,
			Completion:    config.CompletionTimeout,
			Persistence:   config.PersistenceTimeout,
			Reply:         config.ReplyTimeout,
		})
	router := telegram.NewRouter(logger, orchestrator, bot)

	// 6. Supervision
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := api.GetUpdatesChan(updateConfig)

	sup := workers.NewSupervisor(logger, config.RestartInterval)
	sup.Add(
		workers.NewUpdateDispatcher[tgbotapi.Update](logger, updates, router.Route),
		workers.NewHeartbeatWorker(logger, registry, config.HeartbeatInterval),
		server.NewHealthServer(logger, config.HealthPort),
	)

	done := make(chan struct{})
	go func() {
		logger.Info("Bot started", "username", api.Self.UserName, "allowed_chat", config.AllowedChatID)
		sup.Run(ctx)
		close(done)
	}()

	// 7. Wait for Stop, then let turns in flight finish
	<-ctx.Done()
	logger.Info("Shutting down gracefully...")
	api.StopReceivingUpdates()
	<-done
	logger.Info("Program stopped cleanly")

	return exitOK, nil
}

func buildLLM(ctx context.Context, config internal.Config, logger *slog.Logger) (contract.ICompletionClient, contract.ITranscriber, error) {
	if config.LLMMock {
		logger.Warn("LLM_MOCK is set, answers and transcripts are canned")
		return llm.NewMockCompletion(), llm.NewMockTranscriber(), nil
	}
	vertex := config.GenAIBackend == internal.BackendVertex
	client, err := llm.NewClient(ctx, llm.ClientConfig{
		Vertex:   vertex,
		APIKey:   config.GenAIAPIKey,
		Project:  config.GCPProject,
		Location: config.GCPLocation,
	})
	if err != nil {
		return nil, nil, err
	}
	return llm.NewCompletionClient(logger, client.Models, config.CompletionModel, config.SystemPrompt, vertex),
		llm.NewTranscriber(logger, client.Models, config.TranscriptionModel),
		nil
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG)
	} else {
		options = options.WithLoggingLevel(badger.WARNING)
	}
	return options
}

// EntryMapper renders users and conversations in the debug inspector.
func EntryMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)
	entry, err := repositories.DescribeEntry(key, val)
	if err != nil {
		row.Detail = "Error: unmarshal failed"
		return row
	}
	row.Type = entry.Kind
	row.Detail = entry.Detail
	return row
}
