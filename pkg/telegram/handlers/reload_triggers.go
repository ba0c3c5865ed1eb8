package handlers

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/nmuhammads/Chat-watcher/pkg/domain"
	"github.com/nmuhammads/Chat-watcher/pkg/logger"
)

type reloadTriggers struct {
	triggers      TriggerReloader
	authenticator Authenticator
	responseCh    chan<- domain.Response
}

func NewReloadTriggers(triggers TriggerReloader, authenticator Authenticator, responseCh chan<- domain.Response) *reloadTriggers {
	return &reloadTriggers{
		triggers:      triggers,
		authenticator: authenticator,
		responseCh:    responseCh,
	}
}

func (r *reloadTriggers) CanHandle(u *tgbotapi.Update) bool {
	return u.Message != nil && u.Message.IsCommand() && u.Message.Command() == "reload"
}

func (r *reloadTriggers) Handle(ctx context.Context, u *tgbotapi.Update) {
	if !r.authenticator.IsAdmin(u.Message.From.ID) {
		slog.WarnContext(ctx, "unauthorized reload attempt", "userID", u.Message.From.ID)
		return
	}

	if err := r.triggers.Reload(ctx); err != nil {
		slog.ErrorContext(ctx, "reloading triggers", logger.Err(err))
		r.responseCh <- domain.Response{
			ChatID: u.Message.Chat.ID,
			Text:   "Failed to reload triggers, check the logs.",
		}
		return
	}

	r.responseCh <- domain.Response{
		ChatID: u.Message.Chat.ID,
		Text:   fmt.Sprintf("🔄 Triggers reloaded from database: %d", r.triggers.Count()),
	}
}
