package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v9"

	"github.com/nmuhammads/Chat-watcher/pkg/auth"
	"github.com/nmuhammads/Chat-watcher/pkg/database"
	"github.com/nmuhammads/Chat-watcher/pkg/domain"
	"github.com/nmuhammads/Chat-watcher/pkg/logger"
	"github.com/nmuhammads/Chat-watcher/pkg/match"
	"github.com/nmuhammads/Chat-watcher/pkg/nanogpt"
	"github.com/nmuhammads/Chat-watcher/pkg/repository"
	"github.com/nmuhammads/Chat-watcher/pkg/service"
	"github.com/nmuhammads/Chat-watcher/pkg/services"
	"github.com/nmuhammads/Chat-watcher/pkg/telegram"
	"github.com/nmuhammads/Chat-watcher/pkg/telegram/handlers"
)

type Config struct {
	TelegramBotToken         string        `env:"TELEGRAM_BOT_TOKEN,required"`
	TelegramAdminUserIDs     []int64       `env:"TELEGRAM_ADMIN_USER_IDS" envSeparator:" "`
	AdminChatID              int64         `env:"ADMIN_CHAT_ID"`
	TelegramListenerPoolSize int           `env:"TELEGRAM_LISTENER_POOL_SIZE" envDefault:"10"`
	PgURL                    string        `env:"DATABASE_URL"`
	PgHost                   string        `env:"DB_HOST" envDefault:"localhost:5432"`
	NanoGPTAPIKey            string        `env:"NANOGPT_API_KEY"`
	NanoGPTBaseURL           string        `env:"NANOGPT_BASE_URL" envDefault:"https://nano-gpt.com/api/v1"`
	GenerationTimeout        time.Duration `env:"GENERATION_TIMEOUT" envDefault:"30s"`
	MatchThreshold           int           `env:"TRIGGER_MATCH_THRESHOLD" envDefault:"85"`
	SessionWindow            time.Duration `env:"SESSION_WINDOW" envDefault:"6h"`
	SessionDepth             int           `env:"SESSION_DEPTH" envDefault:"5"`
}

func main() {
	slog.SetDefault(slog.New(logger.NewHandler(os.Stderr, logger.DefaultOptions)))

	if err := runMain(); err != nil {
		slog.Error("shutting down due to error", logger.Err(err))
		os.Exit(1)
	}
	slog.Info("shutdown complete")
}

func runMain() error {
	serviceGroup, err := setupServices()
	if err != nil {
		return err
	}

	ctx, cancelFn := context.WithCancel(context.Background())
	defer cancelFn()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGHUP)
		select {
		case s := <-sigCh:
			slog.Info("shutting down due to signal", "signal", s.String())
			cancelFn()
		case <-ctx.Done():
		}
	}()

	return serviceGroup.Run(ctx)
}

func setupServices() (service.Group, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parsing env config: %w", err)
	}

	telegramClient, err := telegram.NewClient(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("creating telegram client: %w", err)
	}
	authenticator := auth.NewAuthenticator(cfg.TelegramAdminUserIDs)

	db, err := database.NewPostgres(cfg.PgURL, cfg.PgHost)
	if err != nil {
		return nil, fmt.Errorf("creating db: %w", err)
	}

	triggersRepository := repository.NewTriggersRepository(db)
	configRepository := repository.NewConfigRepository(db)
	cooldownRepository := repository.NewCooldownRepository()
	sessionRepository := repository.NewSessionRepository(cfg.SessionWindow, cfg.SessionDepth)

	triggerService := services.NewTriggerService(triggersRepository)
	if err := triggerService.Reload(context.Background()); err != nil {
		return nil, fmt.Errorf("loading triggers: %w", err)
	}

	configService := services.NewConfigService(configRepository)

	if cfg.NanoGPTAPIKey == "" {
		slog.Warn("NANOGPT_API_KEY is not set, AI triggers will fall back")
	}
	generator := nanogpt.NewClient(cfg.NanoGPTAPIKey, cfg.NanoGPTBaseURL, configService)

	responseCh := make(chan domain.Response)

	dispatchService := services.NewDispatchService(
		triggerService,
		match.NewMatcher(cfg.MatchThreshold),
		cooldownRepository,
		sessionRepository,
		generator,
		cfg.AdminChatID,
		cfg.GenerationTimeout,
		responseCh,
	)

	registry := telegram.NewRegistry(
		handlers.NewStart(responseCh),
		handlers.NewChatID(responseCh),
		handlers.NewReloadTriggers(triggerService, authenticator, responseCh),
		handlers.NewReloadConfig(configService, authenticator, responseCh),
		handlers.NewShowConfig(configService, authenticator, responseCh),
		handlers.NewForget(sessionRepository, responseCh),
		handlers.NewWatchMessage(dispatchService),
	)

	var serviceGroup service.Group

	listener, err := service.NewTelegramListener(
		telegramClient,
		registry,
		responseCh,
		cfg.TelegramListenerPoolSize,
	)
	if err != nil {
		return nil, fmt.Errorf("creating telegram listener: %w", err)
	}
	serviceGroup = append(serviceGroup, listener)

	return serviceGroup, nil
}
