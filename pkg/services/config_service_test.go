package services

import (
	"context"
	"errors"
	"testing"

	"github.com/nmuhammads/Chat-watcher/pkg/domain"
)

type fakeConfigRepository struct {
	values map[string]string
	err    error
	calls  int
}

func (f *fakeConfigRepository) GetAll(ctx context.Context) (map[string]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.values, nil
}

func (f *fakeConfigRepository) GetByKey(ctx context.Context, key string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	value, ok := f.values[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return value, nil
}

func TestConfigServiceGetCachesValues(t *testing.T) {
	repo := &fakeConfigRepository{values: map[string]string{"ai_model": "gpt-4o"}}
	svc := NewConfigService(repo)

	ctx := context.Background()
	if got := svc.Get(ctx, "ai_model", "default"); got != "gpt-4o" {
		t.Fatalf("expected stored value, got %q", got)
	}
	svc.Get(ctx, "ai_model", "default")

	if repo.calls != 1 {
		t.Errorf("expected one repository read, got %d", repo.calls)
	}
}

func TestConfigServiceGetFallsBack(t *testing.T) {
	tests := []struct {
		name string
		repo *fakeConfigRepository
	}{
		{"missing key", &fakeConfigRepository{values: map[string]string{}}},
		{"store unreachable", &fakeConfigRepository{err: errors.New("connection refused")}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			svc := NewConfigService(test.repo)
			if got := svc.Get(context.Background(), "ai_model", "fallback"); got != "fallback" {
				t.Errorf("expected fallback, got %q", got)
			}
		})
	}
}

func TestConfigServiceRefreshReplacesCache(t *testing.T) {
	repo := &fakeConfigRepository{values: map[string]string{"ai_model": "gpt-4o-mini"}}
	svc := NewConfigService(repo)

	ctx := context.Background()
	svc.Get(ctx, "ai_model", "default")

	repo.values = map[string]string{"ai_model": "o3-mini", "ai_temperature": "0.2"}
	if err := svc.Refresh(ctx); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	if got := svc.Get(ctx, "ai_model", "default"); got != "o3-mini" {
		t.Errorf("expected refreshed value, got %q", got)
	}
	if got := svc.Snapshot(); len(got) != 2 {
		t.Errorf("expected snapshot of 2 values, got %v", got)
	}
}
