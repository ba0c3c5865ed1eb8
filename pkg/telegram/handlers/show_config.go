package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/nmuhammads/Chat-watcher/pkg/domain"
)

type showConfig struct {
	config        ConfigCache
	authenticator Authenticator
	responseCh    chan<- domain.Response
}

func NewShowConfig(config ConfigCache, authenticator Authenticator, responseCh chan<- domain.Response) *showConfig {
	return &showConfig{
		config:        config,
		authenticator: authenticator,
		responseCh:    responseCh,
	}
}

func (s *showConfig) CanHandle(u *tgbotapi.Update) bool {
	return u.Message != nil && u.Message.IsCommand() && u.Message.Command() == "aiconfig"
}

func (s *showConfig) Handle(ctx context.Context, u *tgbotapi.Update) {
	if !s.authenticator.IsAdmin(u.Message.From.ID) {
		slog.WarnContext(ctx, "unauthorized ai config inspect attempt", "userID", u.Message.From.ID)
		return
	}

	values := s.config.Snapshot()
	if len(values) == 0 {
		s.responseCh <- domain.Response{
			ChatID: u.Message.Chat.ID,
			Text:   "AI config cache is empty.",
		}
		return
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString("⚙️ **AI config**\n")
	for _, k := range keys {
		fmt.Fprintf(&sb, "`%s` = `%s`\n", k, values[k])
	}

	s.responseCh <- domain.Response{
		ChatID: u.Message.Chat.ID,
		Text:   sb.String(),
	}
}
