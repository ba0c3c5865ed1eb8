package telegram

import (
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/nmuhammads/Chat-watcher/pkg/domain"
	"github.com/nmuhammads/Chat-watcher/pkg/logger"
)

type client struct {
	bot       *tgbotapi.BotAPI
	updatesCh tgbotapi.UpdatesChannel
}

func NewClient(token string) (*client, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("creating bot api instance: %w", err)
	}

	slog.Info("authorized on telegram", "account", bot.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	return &client{
		bot:       bot,
		updatesCh: bot.GetUpdatesChan(u),
	}, nil
}

func (c *client) GetUpdates() tgbotapi.UpdatesChannel {
	return c.updatesCh
}

// SendResponse delivers one outbound action. All failures end here as log
// lines; nothing propagates back into the dispatch pipeline.
func (c *client) SendResponse(response *domain.Response) {
	switch {
	case response.StickerFileID != "":
		c.sendSticker(response)
	case response.PhotoFileID != "":
		c.sendPhoto(response)
	default:
		c.sendText(response)
	}
}

// sendText renders the text from Markdown to Telegram HTML; when Telegram
// rejects the formatted message it is resent as plain text.
func (c *client) sendText(response *domain.Response) {
	msg := tgbotapi.NewMessage(response.ChatID, ToTelegramHTML(response.Text))
	msg.ReplyToMessageID = response.ReplyToMessageID
	msg.ParseMode = tgbotapi.ModeHTML

	if _, err := c.bot.Send(msg); err != nil {
		slog.Warn("sending formatted message, retrying as plain text", "chatID", response.ChatID, logger.Err(err))
		c.sendPlainText(response.ChatID, response.ReplyToMessageID, response.Text)
	}
}

func (c *client) sendPlainText(chatID int64, replyToMessageID int, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyToMessageID = replyToMessageID

	if _, err := c.bot.Send(msg); err != nil {
		slog.Error("sending plain text message", "chatID", chatID, logger.Err(err))
	}
}

func (c *client) sendSticker(response *domain.Response) {
	msg := tgbotapi.NewSticker(response.ChatID, tgbotapi.FileID(response.StickerFileID))
	msg.ReplyToMessageID = response.ReplyToMessageID

	if _, err := c.bot.Send(msg); err != nil {
		slog.Error("sending sticker", "chatID", response.ChatID, logger.Err(err))
	}
}

func (c *client) sendPhoto(response *domain.Response) {
	msg := tgbotapi.NewPhoto(response.ChatID, tgbotapi.FileID(response.PhotoFileID))
	msg.ReplyToMessageID = response.ReplyToMessageID

	if _, err := c.bot.Send(msg); err != nil {
		slog.Error("sending photo", "chatID", response.ChatID, logger.Err(err))
	}
}
