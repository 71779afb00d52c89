// internal/database/database.go
package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jason-s-yu/shbot/service/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS ledger_snapshots (
	id BIGSERIAL PRIMARY KEY,
	session_id UUID NOT NULL,
	game_id TEXT NOT NULL,
	bot TEXT NOT NULL,
	strategy TEXT NOT NULL,
	trigger TEXT NOT NULL,
	entries JSONB NOT NULL,
	recorded_at TIMESTAMPTZ NOT NULL
);
`

// Store archives ledger snapshots in Postgres. Nothing reads them back
// during play.
type Store struct {
	db *sql.DB
}

// NewStore wraps an open database.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Open connects through the pgx driver and creates the table if needed.
func Open(ctx context.Context, url string) (*Store, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}
	s := NewStore(db)
	if err := s.Init(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Init creates the snapshot table.
func (s *Store) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate ledger_snapshots: %w", err)
	}
	return nil
}

// Record archives one ledger dump.
func (s *Store) Record(ctx context.Context, rec models.LedgerRecord) error {
	entries, err := json.Marshal(rec.Entries)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO ledger_snapshots (session_id, game_id, bot, strategy, trigger, entries, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = s.db.ExecContext(ctx, query,
		rec.SessionID.String(), rec.GameID, rec.Bot, rec.Strategy, rec.Trigger, string(entries), rec.At,
	)
	if err != nil {
		return fmt.Errorf("failed to archive ledger of %s: %w", rec.Bot, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
