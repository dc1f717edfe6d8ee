// Package prefs persists flat key/value settings (theme choice, custom
// background, session token) in the local mirror database. Values are stored
// JSON-encoded.
package prefs

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

type Prefs struct {
	db *sql.DB
}

func New(db *sql.DB) *Prefs {
	return &Prefs{db: db}
}

func (p *Prefs) Set(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode preference %q: %w", key, err)
	}
	_, err = p.db.ExecContext(ctx, `
		INSERT INTO preferences (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, string(b))
	if err != nil {
		return fmt.Errorf("failed to set preference %q: %w", key, err)
	}
	return nil
}

// Get decodes the stored value into dst and reports whether it succeeded.
// Missing keys and corrupt values leave dst untouched, so callers keep
// whatever default they pre-filled.
func (p *Prefs) Get(ctx context.Context, key string, dst any) bool {
	var raw string
	err := p.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) || err != nil {
		return false
	}
	return json.Unmarshal([]byte(raw), dst) == nil
}

// GetString returns the stored string value or fallback when the key is
// missing or not a string.
func (p *Prefs) GetString(ctx context.Context, key, fallback string) string {
	var s string
	if p.Get(ctx, key, &s) {
		return s
	}
	return fallback
}

func (p *Prefs) Remove(ctx context.Context, key string) error {
	_, err := p.db.ExecContext(ctx, `DELETE FROM preferences WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to remove preference %q: %w", key, err)
	}
	return nil
}

func (p *Prefs) Clear(ctx context.Context) error {
	_, err := p.db.ExecContext(ctx, `DELETE FROM preferences`)
	if err != nil {
		return fmt.Errorf("failed to clear preferences: %w", err)
	}
	return nil
}
