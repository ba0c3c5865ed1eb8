package handlers

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/nmuhammads/Chat-watcher/pkg/domain"
)

// forget drops the chat's AI conversation session so the next AI trigger
// starts with a clean context.
type forget struct {
	sessions   SessionClearer
	responseCh chan<- domain.Response
}

func NewForget(sessions SessionClearer, responseCh chan<- domain.Response) *forget {
	return &forget{sessions: sessions, responseCh: responseCh}
}

func (f *forget) CanHandle(u *tgbotapi.Update) bool {
	return u.Message != nil && u.Message.IsCommand() && u.Message.Command() == "forget"
}

func (f *forget) Handle(ctx context.Context, u *tgbotapi.Update) {
	f.sessions.Clear(u.Message.Chat.ID)

	f.responseCh <- domain.Response{
		ChatID: u.Message.Chat.ID,
		Text:   "🧹 Conversation context cleared.",
	}
}
