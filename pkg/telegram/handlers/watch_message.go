package handlers

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/samber/lo"

	"github.com/nmuhammads/Chat-watcher/pkg/domain"
)

type Dispatcher interface {
	DispatchMessage(ctx context.Context, msg domain.Message)
}

// watchMessage is the fallback handler: every plain message (text or
// captioned media) is offered to the trigger pipeline.
type watchMessage struct {
	dispatcher Dispatcher
}

func NewWatchMessage(dispatcher Dispatcher) *watchMessage {
	return &watchMessage{dispatcher: dispatcher}
}

func (w *watchMessage) CanHandle(u *tgbotapi.Update) bool {
	return u.Message != nil && !u.Message.IsCommand()
}

func (w *watchMessage) Handle(ctx context.Context, u *tgbotapi.Update) {
	m := u.Message

	text, _ := lo.Coalesce(m.Text, m.Caption)

	msg := domain.Message{
		ChatID:       m.Chat.ID,
		MessageID:    m.MessageID,
		Text:         text,
		SentAt:       time.Unix(int64(m.Date), 0),
		ChatTitle:    m.Chat.Title,
		ChatUsername: m.Chat.UserName,
	}
	if m.From != nil {
		msg.From = domain.User{
			ID:       m.From.ID,
			FullName: userFullName(m.From),
			Username: m.From.UserName,
		}
	}

	w.dispatcher.DispatchMessage(ctx, msg)
}

func userFullName(u *tgbotapi.User) string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
