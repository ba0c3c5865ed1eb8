package repository

import (
	"sync"
	"time"

	"github.com/nmuhammads/Chat-watcher/pkg/domain"
)

type sessionEntry struct {
	messages  []domain.ChatMessage
	startedAt time.Time
}

// sessionRepository keeps a per-chat rolling conversation buffer for AI
// triggers. Sessions expire lazily: a read or write past the window starts
// from scratch, no background sweep. State is process-local and lost on
// restart.
type sessionRepository struct {
	mu       sync.Mutex
	sessions map[int64]*sessionEntry
	window   time.Duration
	depth    int
}

func NewSessionRepository(window time.Duration, depth int) *sessionRepository {
	return &sessionRepository{
		sessions: make(map[int64]*sessionEntry),
		window:   window,
		depth:    depth,
	}
}

// GetContext returns a copy of the chat's buffer, or nil when there is no
// session or it has expired relative to at. An expired session is dropped
// on the spot.
func (s *sessionRepository) GetContext(chatID int64, at time.Time) []domain.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[chatID]
	if !ok {
		return nil
	}

	if s.expired(entry, at) {
		delete(s.sessions, chatID)
		return nil
	}

	messages := make([]domain.ChatMessage, len(entry.messages))
	copy(messages, entry.messages)
	return messages
}

// Append adds one turn to the chat's session, starting a fresh window when
// the buffer is empty or stale, and trims the buffer to the most recent
// depth entries.
func (s *sessionRepository) Append(chatID int64, role, content string, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[chatID]
	if !ok || s.expired(entry, at) {
		entry = &sessionEntry{startedAt: at}
		s.sessions[chatID] = entry
	}

	entry.messages = append(entry.messages, domain.ChatMessage{Role: role, Content: content})
	if len(entry.messages) > s.depth {
		entry.messages = entry.messages[len(entry.messages)-s.depth:]
	}
}

func (s *sessionRepository) Clear(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, chatID)
}

func (s *sessionRepository) expired(entry *sessionEntry, at time.Time) bool {
	return entry.startedAt.IsZero() || at.Sub(entry.startedAt) > s.window
}
