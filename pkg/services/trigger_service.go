package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/nmuhammads/Chat-watcher/pkg/domain"
)

type TriggersRepository interface {
	GetAll(ctx context.Context) ([]domain.Trigger, error)
}

// triggerService holds the current trigger snapshot. Readers go through an
// atomic pointer so a reload can never expose a partially replaced list.
type triggerService struct {
	repo     TriggersRepository
	snapshot atomic.Pointer[[]domain.Trigger]
}

func NewTriggerService(repo TriggersRepository) *triggerService {
	s := &triggerService{repo: repo}
	empty := []domain.Trigger{}
	s.snapshot.Store(&empty)
	return s
}

// Reload fetches the full trigger list and swaps the snapshot wholesale.
func (s *triggerService) Reload(ctx context.Context) error {
	triggers, err := s.repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("reloading triggers: %w", err)
	}

	s.snapshot.Store(&triggers)
	slog.InfoContext(ctx, "triggers reloaded", "count", len(triggers))
	return nil
}

func (s *triggerService) Snapshot() []domain.Trigger {
	return *s.snapshot.Load()
}

func (s *triggerService) Count() int {
	return len(s.Snapshot())
}
