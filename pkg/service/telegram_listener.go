package service

import (
	"context"
	"log/slog"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/nmuhammads/Chat-watcher/pkg/domain"
	"github.com/nmuhammads/Chat-watcher/pkg/logger"
)

type TelegramClient interface {
	GetUpdates() tgbotapi.UpdatesChannel
	SendResponse(response *domain.Response)
}

type UpdateHandler interface {
	HandleUpdate(ctx context.Context, update *tgbotapi.Update)
}

// telegramListener pumps updates into the handler registry and drains the
// response channel back into the telegram client. Updates are processed on
// a bounded pool of goroutines so one slow generative call does not stall
// the stream.
type telegramListener struct {
	client     TelegramClient
	handler    UpdateHandler
	responseCh <-chan domain.Response
	poolSize   int
	wg         sync.WaitGroup
}

func NewTelegramListener(
	client TelegramClient,
	handler UpdateHandler,
	responseCh <-chan domain.Response,
	poolSize int,
) (*telegramListener, error) {
	return &telegramListener{
		client:     client,
		handler:    handler,
		responseCh: responseCh,
		poolSize:   poolSize,
	}, nil
}

func (t *telegramListener) Name() string { return "telegram listener" }

func (t *telegramListener) Run(ctx context.Context) error {
	slog.Info("starting telegram listener service")
	defer slog.Info("stopped telegram listener service")

	workerPool := make(chan struct{}, t.poolSize)

	for {
		select {
		case <-ctx.Done():
			t.wg.Wait()
			return nil
		case update := <-t.client.GetUpdates():
			t.wg.Add(1)
			go func(update tgbotapi.Update) {
				defer t.wg.Done()
				// Acquire the slot here, not in the select loop: the loop
				// must stay free to drain responseCh or the pool could
				// deadlock against blocked senders.
				workerPool <- struct{}{}
				defer func() { <-workerPool }()
				t.processUpdate(ctx, &update)
			}(update)
		case response := <-t.responseCh:
			t.client.SendResponse(&response)
		}
	}
}

func (t *telegramListener) processUpdate(ctx context.Context, update *tgbotapi.Update) {
	ctx = logger.ContextWithRequestID(ctx, int64(update.UpdateID))

	if update.Message == nil {
		slog.DebugContext(ctx, "skipping non-message update")
		return
	}

	slog.InfoContext(ctx, "processing update", "chatID", update.Message.Chat.ID)

	t.handler.HandleUpdate(ctx, update)
}
