package domain

import "time"

// Message is the inbound event offered to the dispatcher. SentAt carries
// the Telegram message timestamp, not the processing time; the cooldown
// tracker relies on that.
type Message struct {
	ChatID       int64
	MessageID    int
	Text         string
	SentAt       time.Time
	From         User
	ChatTitle    string
	ChatUsername string
}

type User struct {
	ID       int64
	FullName string
	Username string
}
