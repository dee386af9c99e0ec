// SPDX-License-Identifier: MIT

// Package sqlite stores traces in an embedded SQLite database (pure Go driver).
// Each trace is one row; the full trace is kept as JSON in the body column and
// the indexed columns mirror its ID, engine, state and creation time.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/katalvlaran/stepwise/core"
	"github.com/katalvlaran/stepwise/store"
)

//go:embed schema.sql
var schemaSQL string

// Memory opens a private in-memory database.
const Memory = ":memory:"

// Store implements store.Store on a SQLite database.
type Store struct {
	db *sql.DB
}

var _ store.Store = (*Store)(nil)

// Open creates or opens the database at path and applies the schema.
// Parent directories are created as needed.
func Open(path string) (*Store, error) {
	if path != Memory {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// one connection: an in-memory database is per connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Save upserts the trace row.
func (s *Store) Save(ctx context.Context, t *core.Trace) error {
	if t == nil || t.ID == "" {
		return store.ErrNoID
	}
	body, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal trace: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO traces (id, engine, state, created_at, body)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			engine = excluded.engine,
			state = excluded.state,
			created_at = excluded.created_at,
			body = excluded.body`,
		t.ID, t.Engine, t.State.String(), t.CreatedAt.UnixNano(), string(body))
	if err != nil {
		return fmt.Errorf("failed to save trace: %w", err)
	}

	return nil
}

// Load reads one trace.
func (s *Store) Load(ctx context.Context, id string) (*core.Trace, error) {
	var body string
	err := s.db.QueryRowContext(ctx, `SELECT body FROM traces WHERE id = ?`, id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.NotFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load trace: %w", err)
	}

	return decode(body)
}

// List returns every trace, newest first.
func (s *Store) List(ctx context.Context) ([]*core.Trace, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT body FROM traces ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list traces: %w", err)
	}
	defer rows.Close()

	out := []*core.Trace{}
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("failed to scan trace: %w", err)
		}
		t, err := decode(body)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list traces: %w", err)
	}

	return out, nil
}

// Delete removes one trace.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM traces WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete trace: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete trace: %w", err)
	}
	if n == 0 {
		return store.NotFound(id)
	}

	return nil
}

// CountByState returns how many stored traces ended in each state.
func (s *Store) CountByState(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT state, COUNT(*) FROM traces GROUP BY state`)
	if err != nil {
		return nil, fmt.Errorf("failed to count traces: %w", err)
	}
	defer rows.Close()

	out := make(map[string]int)
	for rows.Next() {
		var (
			state string
			n     int
		)
		if err := rows.Scan(&state, &n); err != nil {
			return nil, fmt.Errorf("failed to scan count: %w", err)
		}
		out[state] = n
	}

	return out, rows.Err()
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}

func decode(body string) (*core.Trace, error) {
	var t core.Trace
	if err := json.Unmarshal([]byte(body), &t); err != nil {
		return nil, fmt.Errorf("failed to unmarshal trace: %w", err)
	}

	return &t, nil
}
