// Package localstore is the offline-first mirror for quiz attempts, chat
// messages and notes. Records accumulate locally with a synced flag and are
// later flushed to the backend as size-estimated metadata, never as full
// payloads.
package localstore

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/quizgen/quizgen/internal/client/migrations"
	"github.com/quizgen/quizgen/internal/client/prefs"

	_ "modernc.org/sqlite"
)

// TokenKey is the preferences key holding the bearer token attached to
// backup requests when present.
const TokenKey = "jwt"

// Store is a durable local mirror backed by SQLite. It owns the database
// handle: open it on startup and close it on shutdown.
type Store struct {
	db         *sql.DB
	prefs      *prefs.Prefs
	httpClient *http.Client
}

// Open opens (and migrates) the local database at dsn.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open local database: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate local database: %w", err)
	}

	return &Store{
		db:         db,
		prefs:      prefs.New(db),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Prefs exposes the key/value settings stored alongside the mirror.
func (s *Store) Prefs() *prefs.Prefs {
	return s.prefs
}

// DB exposes the underlying handle for callers that need raw access.
func (s *Store) DB() *sql.DB {
	return s.db
}
