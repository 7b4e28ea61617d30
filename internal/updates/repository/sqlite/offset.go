package sqlite

import (
	"context"
	"database/sql"
	"errors"

	repo "telegram-bot-framework/internal/updates/repository"
)

// Load returns zero when no offset was stored for this bot.
func (r *implRepository) Load(ctx context.Context) (int64, error) {
	const query = `SELECT next_offset FROM update_offsets WHERE bot_id = ?`

	var offset int64
	err := r.db.QueryRowContext(ctx, query, r.botID).Scan(&offset)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Load"), err)
		return 0, repo.ErrFailedToLoad
	}
	return offset, nil
}

func (r *implRepository) Save(ctx context.Context, offset int64) error {
	const query = `
		INSERT INTO update_offsets (bot_id, next_offset, updated_at)
		VALUES (?, ?, datetime('now'))
		ON CONFLICT(bot_id) DO UPDATE SET
			next_offset = excluded.next_offset,
			updated_at = excluded.updated_at`

	if _, err := r.db.ExecContext(ctx, query, r.botID, offset); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Save"), err)
		return repo.ErrFailedToSave
	}
	return nil
}
