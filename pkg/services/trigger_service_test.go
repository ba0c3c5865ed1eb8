package services

import (
	"context"
	"errors"
	"testing"

	"github.com/nmuhammads/Chat-watcher/pkg/domain"
)

type fakeTriggersRepository struct {
	triggers []domain.Trigger
	err      error
}

func (f *fakeTriggersRepository) GetAll(ctx context.Context) ([]domain.Trigger, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.triggers, nil
}

func TestTriggerServiceReload(t *testing.T) {
	repo := &fakeTriggersRepository{triggers: []domain.Trigger{{ID: 1}, {ID: 2}}}
	svc := NewTriggerService(repo)

	if got := svc.Count(); got != 0 {
		t.Fatalf("expected empty snapshot before first reload, got %d", got)
	}

	if err := svc.Reload(context.Background()); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if got := svc.Count(); got != 2 {
		t.Errorf("expected 2 triggers after reload, got %d", got)
	}
}

func TestTriggerServiceReloadFailureKeepsSnapshot(t *testing.T) {
	repo := &fakeTriggersRepository{triggers: []domain.Trigger{{ID: 1}}}
	svc := NewTriggerService(repo)

	if err := svc.Reload(context.Background()); err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	repo.err = errors.New("connection refused")
	if err := svc.Reload(context.Background()); err == nil {
		t.Fatal("expected reload error")
	}

	if got := svc.Count(); got != 1 {
		t.Errorf("failed reload must keep the previous snapshot, got %d triggers", got)
	}
}
