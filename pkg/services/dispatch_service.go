package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/nmuhammads/Chat-watcher/pkg/domain"
	"github.com/nmuhammads/Chat-watcher/pkg/logger"
)

type TriggerProvider interface {
	Snapshot() []domain.Trigger
}

type Matcher interface {
	Match(text string, chatID int64, triggers []domain.Trigger) (domain.Trigger, bool)
}

type CooldownRepository interface {
	Admit(chatID, triggerID int64, cooldown time.Duration, at time.Time) bool
}

type SessionRepository interface {
	GetContext(chatID int64, at time.Time) []domain.ChatMessage
	Append(chatID int64, role, content string, at time.Time)
}

type Generator interface {
	Generate(ctx context.Context, systemPrompt, userMessage string, history []domain.ChatMessage, modelOverride string) (string, error)
}

// dispatchService runs the match → admit → respond → record pipeline for
// every inbound group message.
type dispatchService struct {
	triggers          TriggerProvider
	matcher           Matcher
	cooldowns         CooldownRepository
	sessions          SessionRepository
	generator         Generator
	adminChatID       int64
	generationTimeout time.Duration
	responseCh        chan<- domain.Response
}

func NewDispatchService(
	triggers TriggerProvider,
	matcher Matcher,
	cooldowns CooldownRepository,
	sessions SessionRepository,
	generator Generator,
	adminChatID int64,
	generationTimeout time.Duration,
	responseCh chan<- domain.Response,
) *dispatchService {
	return &dispatchService{
		triggers:          triggers,
		matcher:           matcher,
		cooldowns:         cooldowns,
		sessions:          sessions,
		generator:         generator,
		adminChatID:       adminChatID,
		generationTimeout: generationTimeout,
		responseCh:        responseCh,
	}
}

// DispatchMessage offers one inbound message to the pipeline. Nothing here
// is fatal: a failed response still consumes the cooldown window, so a
// flaky backend cannot cause retry storms.
func (d *dispatchService) DispatchMessage(ctx context.Context, msg domain.Message) {
	if msg.Text == "" {
		return
	}

	trigger, ok := d.matcher.Match(msg.Text, msg.ChatID, d.triggers.Snapshot())
	if !ok {
		return
	}

	// Admission marks the fire before any generation work. A second
	// message arriving while a slow generative call is in flight must be
	// denied, not doubled.
	if !d.cooldowns.Admit(msg.ChatID, trigger.ID, trigger.Cooldown, msg.SentAt) {
		slog.DebugContext(ctx, "trigger on cooldown", "chatID", msg.ChatID, "triggerID", trigger.ID)
		return
	}

	slog.InfoContext(ctx, "trigger fired", "chatID", msg.ChatID, "triggerID", trigger.ID, "kind", trigger.Kind)

	response := domain.Response{ChatID: msg.ChatID, ReplyToMessageID: msg.MessageID}

	switch trigger.Kind {
	case domain.TriggerKindText:
		response.Text = trigger.Response
	case domain.TriggerKindSticker:
		response.StickerFileID = trigger.Response
	case domain.TriggerKindPhoto:
		response.PhotoFileID = trigger.Response
	case domain.TriggerKindAI:
		response.Text = d.generateReply(ctx, msg, trigger)
	default:
		slog.WarnContext(ctx, "unknown trigger kind", "triggerID", trigger.ID, "kind", trigger.Kind)
		return
	}

	d.responseCh <- response

	d.notifyAdmin(ctx, msg, trigger)
}

// generateReply resolves an ai-kind trigger: the trigger response is the
// system prompt, the chat session supplies history. On backend failure the
// fixed fallback text is returned and the session is left untouched.
func (d *dispatchService) generateReply(ctx context.Context, msg domain.Message, trigger domain.Trigger) string {
	history := d.sessions.GetContext(msg.ChatID, msg.SentAt)

	genCtx, cancel := context.WithTimeout(ctx, d.generationTimeout)
	defer cancel()

	reply, err := d.generator.Generate(genCtx, trigger.Response, msg.Text, history, trigger.Model)
	if err != nil {
		slog.ErrorContext(ctx, "generation failed", "triggerID", trigger.ID, logger.Err(err))
		return domain.GenerationFallbackMessage
	}

	d.sessions.Append(msg.ChatID, domain.ChatRoleUser, msg.Text, msg.SentAt)
	d.sessions.Append(msg.ChatID, domain.ChatRoleAssistant, reply, msg.SentAt)

	return reply
}

// notifyAdmin sends a best-effort side-channel note about who triggered
// what. Failures stay inside the telegram client; they never unwind the
// dispatch.
func (d *dispatchService) notifyAdmin(ctx context.Context, msg domain.Message, trigger domain.Trigger) {
	if d.adminChatID == 0 {
		return
	}

	user, _ := lo.Coalesce(msg.From.FullName, "Unknown")
	username, _ := lo.Coalesce(msg.From.Username, "NoUsername")
	chatTitle, _ := lo.Coalesce(msg.ChatTitle, "Private Chat")

	d.responseCh <- domain.Response{
		ChatID: d.adminChatID,
		Text: fmt.Sprintf("🔔 **Trigger used!**\n"+
			"👤 **User:** %s (@%s)\n"+
			"📍 **Chat:** %s\n"+
			"🔗 **Link:** [Message](%s)\n"+
			"📝 **Text:** `%s`",
			user, username, chatTitle, messageLink(msg), snippet(msg.Text, 50)),
	}
}

// messageLink builds a t.me link to the triggering message where Telegram
// allows one: public chats link by username, private supergroups by the
// chat id with its -100 prefix stripped.
func messageLink(msg domain.Message) string {
	switch {
	case msg.ChatUsername != "":
		return fmt.Sprintf("https://t.me/%s/%d", msg.ChatUsername, msg.MessageID)
	case msg.ChatID < 0:
		cid := strings.TrimPrefix(fmt.Sprint(msg.ChatID), "-100")
		return fmt.Sprintf("https://t.me/c/%s/%d", cid, msg.MessageID)
	default:
		return "no link available"
	}
}

func snippet(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
