// Package journal keeps an SQLite audit trail of rename runs: one row per
// run and one row per attempted rename, successful or not. It is read by
// the history command and never used to undo anything.
package journal

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/backmassage/kebab-rename/internal/naming"
	"github.com/backmassage/kebab-rename/internal/planner"
)

//go:embed schema.sql
var schemaSQL string

// RunInfo summarizes one recorded run.
type RunInfo struct {
	ID        string
	Root      string
	Style     naming.Style
	StartedAt time.Time
	Attempted int
	Renamed   int
}

// Failed is the number of attempted renames that did not succeed.
func (r RunInfo) Failed() int { return r.Attempted - r.Renamed }

// RenameRecord is one attempted rename.
type RenameRecord struct {
	ID         int64
	RunID      string
	OldPath    string
	NewPath    string
	IsDir      bool
	OK         bool
	Error      string
	RecordedAt time.Time
}

// Store is an open journal database.
type Store struct {
	db     *sql.DB
	dbPath string
	now    func() time.Time
}

// Open opens or creates the journal at path, creating parent directories
// as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create journal directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	pragmas := []string{
		"PRAGMA busy_timeout=5000", // must be first
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("set %s: %w", p, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("init journal schema: %w", err)
	}

	return &Store{db: db, dbPath: path, now: time.Now}, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.dbPath }

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Run is an open run. It implements the executor's Recorder.
type Run struct {
	ID    string
	store *Store
}

// StartRun records a new run for root and returns it.
func (s *Store) StartRun(ctx context.Context, root string, style naming.Style) (*Run, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, root, style, started_at) VALUES (?, ?, ?, ?)`,
		id, root, string(style), s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}
	return &Run{ID: id, store: s}, nil
}

// Record stores the outcome of one rename. rerr is nil on success.
func (r *Run) Record(e planner.Entry, rerr error) error {
	msg := ""
	if rerr != nil {
		msg = rerr.Error()
	}
	_, err := r.store.db.Exec(
		`INSERT INTO renames (run_id, old_path, new_path, is_dir, ok, error, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, e.OldPath, e.NewPath, e.IsDir, rerr == nil, msg, r.store.now().UTC())
	if err != nil {
		return fmt.Errorf("record rename %s: %w", e.OldPath, err)
	}
	return nil
}

// Runs returns the most recent runs first. limit <= 0 returns all.
func (s *Store) Runs(ctx context.Context, limit int) ([]RunInfo, error) {
	query := `
		SELECT r.id, r.root, r.style, r.started_at,
		       COUNT(n.id), COALESCE(SUM(n.ok), 0)
		FROM runs r
		LEFT JOIN renames n ON n.run_id = r.id
		GROUP BY r.id
		ORDER BY r.rowid DESC`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var out []RunInfo
	for rows.Next() {
		var ri RunInfo
		var style string
		if err := rows.Scan(&ri.ID, &ri.Root, &style, &ri.StartedAt, &ri.Attempted, &ri.Renamed); err != nil {
			return nil, fmt.Errorf("scan run row: %w", err)
		}
		ri.Style = naming.Style(style)
		out = append(out, ri)
	}
	return out, rows.Err()
}

// Renames returns the renames recorded for runID in the order attempted.
func (s *Store) Renames(ctx context.Context, runID string) ([]RenameRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, run_id, old_path, new_path, is_dir, ok, error, recorded_at
		 FROM renames WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("query renames: %w", err)
	}
	defer rows.Close()

	var out []RenameRecord
	for rows.Next() {
		var rr RenameRecord
		if err := rows.Scan(&rr.ID, &rr.RunID, &rr.OldPath, &rr.NewPath, &rr.IsDir, &rr.OK, &rr.Error, &rr.RecordedAt); err != nil {
			return nil, fmt.Errorf("scan rename row: %w", err)
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}
