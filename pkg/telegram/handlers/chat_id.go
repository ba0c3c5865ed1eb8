package handlers

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/samber/lo"

	"github.com/nmuhammads/Chat-watcher/pkg/domain"
)

// chatID answers /chatid with the identifiers needed to configure
// chat-scoped triggers.
type chatID struct {
	responseCh chan<- domain.Response
}

func NewChatID(responseCh chan<- domain.Response) *chatID {
	return &chatID{responseCh: responseCh}
}

func (c *chatID) CanHandle(u *tgbotapi.Update) bool {
	return u.Message != nil && u.Message.IsCommand() && u.Message.Command() == "chatid"
}

func (c *chatID) Handle(ctx context.Context, u *tgbotapi.Update) {
	title, _ := lo.Coalesce(u.Message.Chat.Title, "Private Chat")

	c.responseCh <- domain.Response{
		ChatID: u.Message.Chat.ID,
		Text: fmt.Sprintf("📍 **Chat Info**\n"+
			"**Title:** %s\n"+
			"**Chat ID:** `%d`\n\n"+
			"_Use this ID to create chat-specific triggers._",
			title, u.Message.Chat.ID),
	}
}
