package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mhofer/farmfinder/internal/common"
)

// SQLiteTokenStore persists the slot in the client database so a session
// survives restarts. One row under a fixed key; sqlite commits each
// statement before returning, which gives the required durability.
type SQLiteTokenStore struct {
	db *sql.DB
}

func NewSQLiteTokenStore(db *sql.DB) *SQLiteTokenStore {
	return &SQLiteTokenStore{db: db}
}

func (s *SQLiteTokenStore) Get(ctx context.Context) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM session WHERE key = ?`, common.TokenStorageKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session slot: %w", err)
	}
	return value, nil
}

func (s *SQLiteTokenStore) Set(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, common.TokenStorageKey, token)
	if err != nil {
		return fmt.Errorf("failed to write session slot: %w", err)
	}
	return nil
}

func (s *SQLiteTokenStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM session WHERE key = ?`, common.TokenStorageKey)
	if err != nil {
		return fmt.Errorf("failed to clear session slot: %w", err)
	}
	return nil
}
