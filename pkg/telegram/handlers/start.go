package handlers

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/nmuhammads/Chat-watcher/pkg/domain"
)

type start struct {
	responseCh chan<- domain.Response
}

func NewStart(responseCh chan<- domain.Response) *start {
	return &start{responseCh: responseCh}
}

func (s *start) CanHandle(u *tgbotapi.Update) bool {
	return u.Message != nil && u.Message.IsCommand() && u.Message.Command() == "start"
}

func (s *start) Handle(ctx context.Context, u *tgbotapi.Update) {
	s.responseCh <- domain.Response{
		ChatID: u.Message.Chat.ID,
		Text:   "Bot is running! I am watching the chat.",
	}
}
