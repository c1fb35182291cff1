// Package storage provides SQLite-based persistence for finished games.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const timeLayout = "2006-01-02 15:04:05.000"

// Store manages the SQLite database connection for game results.
type Store struct {
	db *sql.DB
}

// Result is the outcome of one dealt game.
type Result struct {
	ID        string // UUID, assigned on save when empty
	Variant   string
	Seed      int64
	Won       bool
	Moves     int
	Duration  time.Duration // Stored with second precision
	CreatedAt time.Time
}

// VariantStats contains aggregated statistics for a variant.
type VariantStats struct {
	Variant    string
	Played     int
	Won        int
	BestMoves  int           // Fewest moves in a won game, 0 if none won
	Fastest    time.Duration // Shortest won game, 0 if none won
	LastPlayed time.Time
}

// WinRate returns the fraction of played games that were won.
func (s VariantStats) WinRate() float64 {
	if s.Played == 0 {
		return 0
	}
	return float64(s.Won) / float64(s.Played)
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id TEXT PRIMARY KEY,
			variant TEXT NOT NULL,
			seed INTEGER NOT NULL,
			won INTEGER NOT NULL DEFAULT 0,
			moves INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_results_variant ON results(variant);
		CREATE INDEX IF NOT EXISTS idx_results_best ON results(variant, won, moves);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished game and returns its ID.
func (s *Store) SaveResult(r Result) (string, error) {
	if r.Variant == "" {
		return "", errors.New("storage: result has no variant")
	}
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO results (id, variant, seed, won, moves, duration_secs, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Variant, r.Seed, r.Won, r.Moves,
		int64(r.Duration/time.Second),
		r.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save result: %w", err)
	}

	return r.ID, nil
}

// RecentResults retrieves the most recent results, newest first.
// An empty variant matches every variant.
func (s *Store) RecentResults(variant string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, variant, seed, won, moves, duration_secs, created_at
		 FROM results
		 WHERE ? = '' OR variant = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		variant, variant, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	return scanResults(rows)
}

// BestResults retrieves won games for a variant, fewest moves first.
// Ties are broken by duration.
func (s *Store) BestResults(variant string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, variant, seed, won, moves, duration_secs, created_at
		 FROM results
		 WHERE variant = ? AND won = 1
		 ORDER BY moves ASC, duration_secs ASC, rowid ASC
		 LIMIT ?`,
		variant, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best results: %w", err)
	}
	return scanResults(rows)
}

// ResultByID retrieves a single result. Returns nil if it does not exist.
func (s *Store) ResultByID(id string) (*Result, error) {
	rows, err := s.db.Query(
		`SELECT id, variant, seed, won, moves, duration_secs, created_at
		 FROM results
		 WHERE id = ?`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query result: %w", err)
	}

	results, err := scanResults(rows)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}

// ClearResults deletes all results for the given variant.
func (s *Store) ClearResults(variant string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE variant = ?", variant)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// Stats retrieves aggregated statistics for a specific variant.
func (s *Store) Stats(variant string) (*VariantStats, error) {
	rows, err := s.db.Query(statsQuery+` WHERE variant = ? GROUP BY variant`, variant)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get variant stats: %w", err)
	}

	all, err := scanStats(rows)
	if err != nil {
		return nil, err
	}
	if st, ok := all[variant]; ok {
		return st, nil
	}
	return &VariantStats{Variant: variant}, nil
}

// AllStats retrieves statistics for every variant that has been played.
func (s *Store) AllStats() (map[string]*VariantStats, error) {
	rows, err := s.db.Query(statsQuery + ` GROUP BY variant`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all variant stats: %w", err)
	}
	return scanStats(rows)
}

const statsQuery = `
	SELECT variant,
	       COUNT(*),
	       COALESCE(SUM(won), 0),
	       MIN(CASE WHEN won = 1 THEN moves END),
	       MIN(CASE WHEN won = 1 THEN duration_secs END),
	       MAX(created_at)
	FROM results`

func scanResults(rows *sql.Rows) ([]Result, error) {
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var secs int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Variant, &r.Seed, &r.Won, &r.Moves, &secs, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(secs) * time.Second
		r.CreatedAt = parseTimestamp(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

func scanStats(rows *sql.Rows) (map[string]*VariantStats, error) {
	defer rows.Close()

	stats := make(map[string]*VariantStats)
	for rows.Next() {
		var st VariantStats
		var bestMoves, fastest sql.NullInt64
		var lastPlayed any
		if err := rows.Scan(&st.Variant, &st.Played, &st.Won, &bestMoves, &fastest, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		if bestMoves.Valid {
			st.BestMoves = int(bestMoves.Int64)
		}
		if fastest.Valid {
			st.Fastest = time.Duration(fastest.Int64) * time.Second
		}
		st.LastPlayed = parseTimestamp(lastPlayed)
		stats[st.Variant] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// parseTimestamp handles both time.Time and string column values.
func parseTimestamp(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		for _, layout := range []string{timeLayout, "2006-01-02 15:04:05"} {
			if parsed, err := time.Parse(layout, v); err == nil {
				return parsed
			}
		}
	case []byte:
		return parseTimestamp(string(v))
	}
	return time.Time{}
}
