// Package introstore is the persistent, process-wide intro store: the
// canonical map from episode id to its detected Intro, backed by SQLite.
// Merge is the only mutation path and always runs inside the same
// critical section that flushes to disk, with a busy-retry loop around
// writes to absorb transient SQLITE_BUSY contention.
package introstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"introscan/internal/episode"
)

type Store struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

const (
	sqliteBusyCode          = 5
	busyRetryAttempts       = 5
	busyRetryInitialBackoff = 10 * time.Millisecond
	busyRetryMaxBackoff     = 200 * time.Millisecond
)

func ensureContext(ctx context.Context) context.Context {
	if ctx != nil {
		return ctx
	}
	return context.Background()
}

func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	var coder interface{ Code() int }
	if errors.As(err, &coder) && coder.Code() == sqliteBusyCode {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

func retryOnBusy(ctx context.Context, op func() error) error {
	delay := busyRetryInitialBackoff
	var lastErr error
	for attempt := 0; attempt < busyRetryAttempts; attempt++ {
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if !isSQLiteBusy(lastErr) || attempt == busyRetryAttempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		if next := delay * 2; next <= busyRetryMaxBackoff {
			delay = next
		}
	}
	return lastErr
}

// Open initializes or connects to the intro store database at dbPath.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("introstore: open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("introstore: apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Merge writes intros into the store under the intros mutex, so a
// concurrent read of Intros() never observes a partially-flushed season.
func (s *Store) Merge(ctx context.Context, intros episode.SeasonIntros) error {
	if len(intros) == 0 {
		return nil
	}
	ctx = ensureContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	return retryOnBusy(ctx, func() error {
		tx, err := s.db.BeginTx(ctx, nil)
		if err != nil {
			return err
		}
		defer func() { _ = tx.Rollback() }()

		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO intros (episode_id, start_seconds, end_seconds, updated_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(episode_id) DO UPDATE SET
				start_seconds = excluded.start_seconds,
				end_seconds = excluded.end_seconds,
				updated_at = excluded.updated_at
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		now := time.Now().UTC().Format(time.RFC3339)
		for id, intro := range intros {
			if _, err := stmt.ExecContext(ctx, id.String(), intro.Start, intro.End, now); err != nil {
				return err
			}
		}
		return tx.Commit()
	})
}

// Intros returns every intro currently in the store.
func (s *Store) Intros(ctx context.Context) (episode.SeasonIntros, error) {
	ctx = ensureContext(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx, "SELECT episode_id, start_seconds, end_seconds FROM intros")
	if err != nil {
		return nil, fmt.Errorf("introstore: query intros: %w", err)
	}
	defer rows.Close()

	out := make(episode.SeasonIntros)
	for rows.Next() {
		var idStr string
		var intro episode.Intro
		if err := rows.Scan(&idStr, &intro.Start, &intro.End); err != nil {
			return nil, fmt.Errorf("introstore: scan intro row: %w", err)
		}
		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil, fmt.Errorf("introstore: parse episode id %q: %w", idStr, err)
		}
		intro.EpisodeID = id
		out[id] = intro
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// SaveTimestamps persists a single episode's intro immediately, bypassing
// the season merge path - used by manual corrections applied outside a
// scan run.
func (s *Store) SaveTimestamps(ctx context.Context, intro episode.Intro) error {
	return s.Merge(ctx, episode.SeasonIntros{intro.EpisodeID: intro})
}

// SaveConfiguration persists a single configuration key/value pair, used
// to remember state that must survive process restarts (e.g. whether EDL
// files need regenerating).
func (s *Store) SaveConfiguration(ctx context.Context, key, value string) error {
	ctx = ensureContext(ctx)
	return retryOnBusy(ctx, func() error {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO configuration (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, key, value)
		return err
	})
}
