package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/nmuhammads/Chat-watcher/pkg/domain"
	"github.com/nmuhammads/Chat-watcher/pkg/logger"
)

type ConfigRepository interface {
	GetAll(ctx context.Context) (map[string]string, error)
	GetByKey(ctx context.Context, key string) (string, error)
}

// configService is a read-through cache over the app_config table. Values
// are cached on first use and dropped wholesale by Refresh.
type configService struct {
	repo ConfigRepository

	mu     sync.RWMutex
	values map[string]string
}

func NewConfigService(repo ConfigRepository) *configService {
	return &configService{
		repo:   repo,
		values: make(map[string]string),
	}
}

// Get returns the config value for key, falling back to the given default
// when the key is absent or the store is unreachable.
func (c *configService) Get(ctx context.Context, key, fallback string) string {
	c.mu.RLock()
	value, ok := c.values[key]
	c.mu.RUnlock()
	if ok {
		return value
	}

	value, err := c.repo.GetByKey(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			slog.WarnContext(ctx, "fetching config value", "key", key, logger.Err(err))
		}
		return fallback
	}

	c.mu.Lock()
	c.values[key] = value
	c.mu.Unlock()

	return value
}

// Refresh repopulates the cache from the store in one shot.
func (c *configService) Refresh(ctx context.Context) error {
	values, err := c.repo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("refreshing config cache: %w", err)
	}

	c.mu.Lock()
	c.values = values
	c.mu.Unlock()

	slog.InfoContext(ctx, "config cache refreshed", "count", len(values))
	return nil
}

// Snapshot returns a copy of the cached values, for the admin inspect
// command.
func (c *configService) Snapshot() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	values := make(map[string]string, len(c.values))
	for k, v := range c.values {
		values[k] = v
	}
	return values
}
