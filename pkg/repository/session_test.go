package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/nmuhammads/Chat-watcher/pkg/domain"
)

const sessionWindow = 6 * time.Hour

func TestSessionTrimsToDepth(t *testing.T) {
	repo := NewSessionRepository(sessionWindow, 5)
	base := time.Unix(1700000000, 0)

	for i := 0; i < 7; i++ {
		repo.Append(1, domain.ChatRoleUser, fmt.Sprintf("msg-%d", i), base.Add(time.Duration(i)*time.Minute))
	}

	got := repo.GetContext(1, base.Add(10*time.Minute))
	if len(got) != 5 {
		t.Fatalf("expected 5 messages, got %d", len(got))
	}
	for i, m := range got {
		expected := fmt.Sprintf("msg-%d", i+2)
		if m.Content != expected {
			t.Errorf("message %d: expected %q, got %q", i, expected, m.Content)
		}
	}
}

func TestSessionExpiry(t *testing.T) {
	repo := NewSessionRepository(sessionWindow, 5)
	base := time.Unix(1700000000, 0)

	repo.Append(1, domain.ChatRoleUser, "old", base)

	if got := repo.GetContext(1, base.Add(sessionWindow)); len(got) != 1 {
		t.Errorf("session should still be valid exactly at the window, got %d messages", len(got))
	}

	if got := repo.GetContext(1, base.Add(sessionWindow+time.Second)); got != nil {
		t.Errorf("expected expired session to read empty, got %v", got)
	}
}

func TestSessionAppendAfterExpiryStartsFresh(t *testing.T) {
	repo := NewSessionRepository(sessionWindow, 5)
	base := time.Unix(1700000000, 0)

	repo.Append(1, domain.ChatRoleUser, "old", base)
	repo.Append(1, domain.ChatRoleUser, "new", base.Add(sessionWindow+time.Second))

	got := repo.GetContext(1, base.Add(sessionWindow+2*time.Second))
	if len(got) != 1 || got[0].Content != "new" {
		t.Errorf("expected fresh session with just the new message, got %v", got)
	}
}

func TestSessionClear(t *testing.T) {
	repo := NewSessionRepository(sessionWindow, 5)
	base := time.Unix(1700000000, 0)

	repo.Append(1, domain.ChatRoleUser, "hi", base)
	repo.Clear(1)

	if got := repo.GetContext(1, base); got != nil {
		t.Errorf("expected cleared session to read empty, got %v", got)
	}
}

func TestSessionChatsAreIndependent(t *testing.T) {
	repo := NewSessionRepository(sessionWindow, 5)
	base := time.Unix(1700000000, 0)

	repo.Append(1, domain.ChatRoleUser, "chat one", base)
	repo.Append(2, domain.ChatRoleUser, "chat two", base)
	repo.Clear(1)

	if got := repo.GetContext(2, base); len(got) != 1 || got[0].Content != "chat two" {
		t.Errorf("clearing one chat must not touch another, got %v", got)
	}
}

func TestSessionContextIsACopy(t *testing.T) {
	repo := NewSessionRepository(sessionWindow, 5)
	base := time.Unix(1700000000, 0)

	repo.Append(1, domain.ChatRoleUser, "original", base)

	got := repo.GetContext(1, base)
	got[0].Content = "mutated"

	if again := repo.GetContext(1, base); again[0].Content != "original" {
		t.Error("GetContext must return a copy, not the live buffer")
	}
}
