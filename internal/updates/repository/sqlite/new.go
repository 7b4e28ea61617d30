package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"telegram-bot-framework/internal/updates/repository"
	"telegram-bot-framework/pkg/log"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS update_offsets (
    bot_id TEXT PRIMARY KEY,
    next_offset INTEGER NOT NULL,
    updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
);`

type implRepository struct {
	db    *sql.DB
	l     log.Logger
	botID string
}

// Open creates or opens the offset database at path. botID keys the row, so
// several bots may share one file.
func Open(path, botID string, l log.Logger) (repository.OffsetRepository, func() error, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("pinging database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("running migrations: %w", err)
	}

	return New(db, botID, l), db.Close, nil
}

// New wraps an already migrated database.
func New(db *sql.DB, botID string, l log.Logger) repository.OffsetRepository {
	if db == nil {
		panic("updates/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l, botID: botID}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("updates/repository/sqlite.%s", method)
}
