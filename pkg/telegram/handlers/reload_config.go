package handlers

import (
	"context"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/nmuhammads/Chat-watcher/pkg/domain"
	"github.com/nmuhammads/Chat-watcher/pkg/logger"
)

type reloadConfig struct {
	config        ConfigCache
	authenticator Authenticator
	responseCh    chan<- domain.Response
}

func NewReloadConfig(config ConfigCache, authenticator Authenticator, responseCh chan<- domain.Response) *reloadConfig {
	return &reloadConfig{
		config:        config,
		authenticator: authenticator,
		responseCh:    responseCh,
	}
}

func (r *reloadConfig) CanHandle(u *tgbotapi.Update) bool {
	return u.Message != nil && u.Message.IsCommand() && u.Message.Command() == "aiconfig_reload"
}

func (r *reloadConfig) Handle(ctx context.Context, u *tgbotapi.Update) {
	if !r.authenticator.IsAdmin(u.Message.From.ID) {
		slog.WarnContext(ctx, "unauthorized ai config reload attempt", "userID", u.Message.From.ID)
		return
	}

	if err := r.config.Refresh(ctx); err != nil {
		slog.ErrorContext(ctx, "refreshing ai config", logger.Err(err))
		r.responseCh <- domain.Response{
			ChatID: u.Message.Chat.ID,
			Text:   "Failed to reload AI config, check the logs.",
		}
		return
	}

	r.responseCh <- domain.Response{
		ChatID: u.Message.Chat.ID,
		Text:   "🔄 AI config reloaded from database.",
	}
}
