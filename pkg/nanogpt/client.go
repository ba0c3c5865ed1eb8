package nanogpt

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	openai "github.com/sashabaranov/go-openai"

	"github.com/nmuhammads/Chat-watcher/pkg/domain"
	"github.com/nmuhammads/Chat-watcher/pkg/logger"
)

type ConfigProvider interface {
	Get(ctx context.Context, key, fallback string) string
}

// client talks to the NanoGPT OpenAI-compatible completions API. Model and
// temperature come from the app config cache unless the caller overrides
// the model per trigger.
type client struct {
	api    *openai.Client
	config ConfigProvider
}

// NewClient accepts an empty api key so the bot can run without AI
// triggers configured; generation calls will then fail and the dispatcher
// substitutes its fallback text.
func NewClient(apiKey, baseURL string, config ConfigProvider) *client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &client{
		api:    openai.NewClientWithConfig(cfg),
		config: config,
	}
}

// Generate produces one assistant reply. The system prompt comes from the
// trigger, history from the chat session. It does not retry; callers bound
// it with a context timeout.
func (c *client) Generate(ctx context.Context, systemPrompt, userMessage string, history []domain.ChatMessage, modelOverride string) (string, error) {
	model := modelOverride
	if model == "" {
		model = c.config.Get(ctx, domain.AIModelKey, domain.DefaultModel)
	}

	temperature, err := strconv.ParseFloat(c.config.Get(ctx, domain.AITemperatureKey, domain.DefaultTemperature), 32)
	if err != nil {
		slog.WarnContext(ctx, "invalid ai_temperature config value, using default", logger.Err(err))
		temperature, _ = strconv.ParseFloat(domain.DefaultTemperature, 32)
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, m := range history {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userMessage,
	})

	slog.InfoContext(ctx, "calling generation backend", "model", model, "historyLen", len(history))

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Temperature: float32(temperature),
		Messages:    messages,
	})
	if err != nil {
		return "", fmt.Errorf("creating chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in completion response")
	}

	return resp.Choices[0].Message.Content, nil
}
