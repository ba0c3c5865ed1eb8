package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nmuhammads/Chat-watcher/pkg/domain"
)

type triggersRepository struct {
	db *sql.DB
}

func NewTriggersRepository(db *sql.DB) *triggersRepository {
	return &triggersRepository{db: db}
}

// GetAll fetches the full trigger list in table order. Callers treat the
// result as an immutable snapshot.
func (t *triggersRepository) GetAll(ctx context.Context) ([]domain.Trigger, error) {
	const query = `
		SELECT id, keywords, response, kind, cooldown_seconds, chat_id, ai_model
		FROM triggers
		ORDER BY id
	`

	rows, err := t.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fetching triggers: %w", err)
	}
	defer rows.Close()

	var triggers []domain.Trigger
	for rows.Next() {
		var (
			trigger         domain.Trigger
			keywordsRaw     []byte
			kind            string
			cooldownSeconds int
			chatID          sql.NullInt64
			model           sql.NullString
		)

		if err := rows.Scan(&trigger.ID, &keywordsRaw, &trigger.Response, &kind, &cooldownSeconds, &chatID, &model); err != nil {
			return nil, fmt.Errorf("scanning trigger row: %w", err)
		}

		if err := json.Unmarshal(keywordsRaw, &trigger.Keywords); err != nil {
			return nil, fmt.Errorf("decoding keywords for trigger %d: %w", trigger.ID, err)
		}

		trigger.Kind = domain.TriggerKind(kind)
		trigger.Cooldown = time.Duration(cooldownSeconds) * time.Second
		trigger.ChatID = chatID.Int64
		trigger.Model = model.String

		triggers = append(triggers, trigger)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating trigger rows: %w", err)
	}

	return triggers, nil
}
