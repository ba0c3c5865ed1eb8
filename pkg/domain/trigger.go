package domain

import "time"

// TriggerKind is the closed set of response kinds a trigger can carry.
// The dispatcher switches over it exhaustively; adding a kind means
// adding a handler arm there.
type TriggerKind string

const (
	TriggerKindText    TriggerKind = "text"
	TriggerKindAI      TriggerKind = "ai"
	TriggerKindSticker TriggerKind = "sticker"
	TriggerKindPhoto   TriggerKind = "photo"
)

// GlobalChatID marks a trigger that applies to every chat. Telegram never
// assigns chat id 0, so it doubles as the "global" sentinel.
const GlobalChatID int64 = 0

// Trigger is a keyword-to-response rule. Triggers are loaded in bulk and
// treated as an immutable snapshot; nothing mutates them after load.
type Trigger struct {
	ID       int64
	Keywords []string
	// Response is the literal reply for text kind, the system prompt for
	// ai kind, and a Telegram file id for sticker/photo kinds.
	Response string
	Kind     TriggerKind
	Cooldown time.Duration
	// ChatID scopes the trigger to one chat; GlobalChatID applies it
	// everywhere.
	ChatID int64
	// Model overrides the configured generation model for ai kind.
	Model string
}

func (t Trigger) IsGlobal() bool { return t.ChatID == GlobalChatID }
