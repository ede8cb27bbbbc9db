// Package leaderboard ranks finished episodes in a SQLite database
package leaderboard

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/lixenwraith/turtle-dive/config"
	"github.com/lixenwraith/turtle-dive/leaderboard/migrations"
	"github.com/lixenwraith/turtle-dive/parameter"
)

// Entry is one ranked result
type Entry struct {
	ID        uuid.UUID
	Name      string
	Score     int
	CreatedAt time.Time
}

// Store persists the ranking in SQLite, keeping only the top MaxEntries results
type Store struct {
	db         *sql.DB
	maxEntries int
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens or creates the database at path and applies embedded migrations
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// One writer; avoids SQLITE_BUSY between pooled connections
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(ctx, db, migrations.FS); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{db: db, maxEntries: parameter.LeaderboardSize}, nil
}

// Close closes the database handle
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Add records a result, prunes the ranking to the top entries and returns it
// The name is normalized; a nil ID gets a fresh one and a zero time becomes now
func (s *Store) Add(ctx context.Context, e Entry) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if e.Score < 0 {
		return nil, fmt.Errorf("score %d must not be negative", e.Score)
	}
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	e.Name = config.NormalizeName(e.Name)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin add: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO scores (id, name, score, created_at) VALUES (?, ?, ?, ?)`,
		e.ID.String(), e.Name, e.Score, toMillis(e.CreatedAt),
	); err != nil {
		return nil, fmt.Errorf("insert score: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM scores WHERE seq NOT IN (
		   SELECT seq FROM scores ORDER BY score DESC, seq ASC LIMIT ?
		 )`,
		s.maxEntries,
	); err != nil {
		return nil, fmt.Errorf("prune scores: %w", err)
	}

	top, err := queryTop(ctx, tx, s.maxEntries)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit add: %w", err)
	}
	return top, nil
}

// Top returns up to n entries, best first; ties keep insertion order
func (s *Store) Top(ctx context.Context, n int) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if n <= 0 || n > s.maxEntries {
		n = s.maxEntries
	}
	return queryTop(ctx, s.db, n)
}

// Clear removes all entries
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM scores`); err != nil {
		return fmt.Errorf("clear scores: %w", err)
	}
	return nil
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func queryTop(ctx context.Context, q querier, n int) ([]Entry, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT id, name, score, created_at FROM scores ORDER BY score DESC, seq ASC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("query top: %w", err)
	}
	defer rows.Close()

	entries := make([]Entry, 0, n)
	for rows.Next() {
		var (
			id        string
			e         Entry
			createdAt int64
		)
		if err := rows.Scan(&id, &e.Name, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("parse score id %q: %w", id, err)
		}
		e.ID = parsed
		e.CreatedAt = fromMillis(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scores: %w", err)
	}
	return entries, nil
}
