package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nmuhammads/Chat-watcher/pkg/domain"
)

type configRepository struct {
	db *sql.DB
}

func NewConfigRepository(db *sql.DB) *configRepository {
	return &configRepository{db: db}
}

func (c *configRepository) GetAll(ctx context.Context) (map[string]string, error) {
	const query = `
		SELECT key, value
		FROM app_config
	`

	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fetching app config: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scanning config row: %w", err)
		}
		values[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating config rows: %w", err)
	}

	return values, nil
}

func (c *configRepository) GetByKey(ctx context.Context, key string) (string, error) {
	const query = `
		SELECT value
		FROM app_config
		WHERE key = $1
	`

	var value string
	if err := c.db.QueryRowContext(ctx, query, key).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("fetching config value by key: %w", err)
	}

	return value, nil
}
