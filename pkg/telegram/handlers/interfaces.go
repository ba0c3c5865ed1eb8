package handlers

import "context"

type Authenticator interface {
	IsAdmin(userID int64) bool
}

type TriggerReloader interface {
	Reload(ctx context.Context) error
	Count() int
}

type ConfigCache interface {
	Refresh(ctx context.Context) error
	Snapshot() map[string]string
}

type SessionClearer interface {
	Clear(chatID int64)
}
