// Package countstore accumulates raw token counts in SQLite.
//
// Counting a large corpus can take many invocations; the store lets each run
// add partial counts for a source and later export the totals as the
// pre-sorted frequency file the consolidation loader consumes. This is the
// only persistent state in the tool, and it sits strictly upstream of the
// engine: consolidation itself never touches it.
package countstore

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	_ "modernc.org/sqlite"

	"rankdict/internal/fileutil"
)

// Store manages token count persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the count database and applies the schema.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure count db directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) initSchema(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS token_counts (
    source TEXT NOT NULL,
    token  TEXT NOT NULL,
    count  INTEGER NOT NULL,
    PRIMARY KEY (source, token)
);
CREATE INDEX IF NOT EXISTS idx_token_counts_source_count
    ON token_counts (source, count DESC);`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Add merges a batch of token counts into the named source inside one
// transaction. Existing counts are incremented, not replaced.
func (s *Store) Add(ctx context.Context, source string, counts map[string]int) error {
	if len(counts) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO token_counts (source, token, count) VALUES (?, ?, ?)
ON CONFLICT (source, token) DO UPDATE SET count = count + excluded.count`)
	if err != nil {
		return fmt.Errorf("prepare upsert: %w", err)
	}
	defer stmt.Close()

	// Deterministic insert order keeps runs reproducible for debugging.
	tokens := make([]string, 0, len(counts))
	for token := range counts {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)

	for _, token := range tokens {
		if _, err := stmt.ExecContext(ctx, source, token, counts[token]); err != nil {
			return fmt.Errorf("upsert count for %q: %w", token, err)
		}
	}
	return tx.Commit()
}

// TokenCount is one token with its accumulated count.
type TokenCount struct {
	Token string
	Count int
}

// Ranked returns a source's tokens sorted by descending count, ties broken
// lexicographically — the frequency-file ordering the loader expects.
func (s *Store) Ranked(ctx context.Context, source string) ([]TokenCount, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT token, count FROM token_counts
WHERE source = ?
ORDER BY count DESC, token ASC`, source)
	if err != nil {
		return nil, fmt.Errorf("query counts: %w", err)
	}
	defer rows.Close()

	var ranked []TokenCount
	for rows.Next() {
		var tc TokenCount
		if err := rows.Scan(&tc.Token, &tc.Count); err != nil {
			return nil, fmt.Errorf("scan count row: %w", err)
		}
		ranked = append(ranked, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate counts: %w", err)
	}
	return ranked, nil
}

// Sources lists every source with at least one counted token.
func (s *Store) Sources(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT source FROM token_counts ORDER BY source`)
	if err != nil {
		return nil, fmt.Errorf("query sources: %w", err)
	}
	defer rows.Close()

	var sources []string
	for rows.Next() {
		var source string
		if err := rows.Scan(&source); err != nil {
			return nil, fmt.Errorf("scan source row: %w", err)
		}
		sources = append(sources, source)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sources: %w", err)
	}
	return sources, nil
}

// Reset deletes all accumulated counts for a source.
func (s *Store) Reset(ctx context.Context, source string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM token_counts WHERE source = ?`, source); err != nil {
		return fmt.Errorf("reset counts for %s: %w", source, err)
	}
	return nil
}

// Export writes a source's accumulated counts to path as "token count" lines
// in descending-count order, the input format the consolidation loader reads.
func (s *Store) Export(ctx context.Context, source, path string) (int, error) {
	ranked, err := s.Ranked(ctx, source)
	if err != nil {
		return 0, err
	}

	var buf bytes.Buffer
	for _, tc := range ranked {
		fmt.Fprintf(&buf, "%s %d\n", tc.Token, tc.Count)
	}
	if err := fileutil.WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		return 0, err
	}
	return len(ranked), nil
}
