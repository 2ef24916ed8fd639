// Package storage provides SQLite-based persistence for finished solver runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/freckers/internal/search"
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run represents one finished solve of a board.
type Run struct {
	ID        int64
	RunID     string // generated on save when empty
	BoardID   string
	Heuristic string
	Found     bool
	Turns     int    // -1 when no solution was found
	Expanded  int
	Moves     string // one move per line
	Duration  time.Duration
	CreatedAt time.Time
}

// BoardStats contains aggregated statistics for a board.
type BoardStats struct {
	BoardID     string
	Runs        int
	Solved      int
	BestTurns   int // -1 when never solved
	AvgExpanded float64
	LastRun     time.Time
}

const timeLayout = "2006-01-02 15:04:05"

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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			board_id TEXT NOT NULL,
			heuristic TEXT NOT NULL,
			found INTEGER NOT NULL,
			turns INTEGER NOT NULL,
			expanded INTEGER NOT NULL DEFAULT 0,
			moves TEXT NOT NULL DEFAULT '',
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_board_id ON runs(board_id);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(board_id, found, turns);
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

// SaveRun records a finished run.
// Returns the ID of the inserted record and the run ID used.
func (s *Store) SaveRun(run Run) (int64, string, error) {
	if run.RunID == "" {
		run.RunID = uuid.NewString()
	}

	result, err := s.db.Exec(
		`INSERT INTO runs (run_id, board_id, heuristic, found, turns, expanded, moves, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RunID,
		run.BoardID,
		run.Heuristic,
		run.Found,
		run.Turns,
		run.Expanded,
		run.Moves,
		run.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, "", fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, run.RunID, nil
}

// RecentRuns retrieves the most recent runs for the given board.
func (s *Store) RecentRuns(boardID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, board_id, heuristic, found, turns, expanded, moves, duration_ms, created_at
		 FROM runs
		 WHERE board_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		boardID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// BestRun returns the solved run with the fewest turns for the board.
// Returns nil if the board has never been solved.
func (s *Store) BestRun(boardID string) (*Run, error) {
	row := s.db.QueryRow(
		`SELECT id, run_id, board_id, heuristic, found, turns, expanded, moves, duration_ms, created_at
		 FROM runs
		 WHERE board_id = ? AND found = 1
		 ORDER BY turns ASC, id ASC
		 LIMIT 1`,
		boardID,
	)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// RunByID retrieves a run by its run ID. Returns nil if not found.
func (s *Store) RunByID(runID string) (*Run, error) {
	row := s.db.QueryRow(
		`SELECT id, run_id, board_id, heuristic, found, turns, expanded, moves, duration_ms, created_at
		 FROM runs
		 WHERE run_id = ?`,
		runID,
	)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// ClearRuns deletes all runs for the given board.
func (s *Store) ClearRuns(boardID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE board_id = ?", boardID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// GetBoardStats retrieves aggregated statistics for a specific board.
func (s *Store) GetBoardStats(boardID string) (*BoardStats, error) {
	stats := &BoardStats{BoardID: boardID}

	var best sql.NullInt64
	var lastRun any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(found), 0), MIN(CASE WHEN found = 1 THEN turns END),
		        COALESCE(AVG(expanded), 0), MAX(created_at)
		 FROM runs WHERE board_id = ?`,
		boardID,
	).Scan(&stats.Runs, &stats.Solved, &best, &stats.AvgExpanded, &lastRun)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get board stats: %w", err)
	}

	stats.BestTurns = -1
	if best.Valid {
		stats.BestTurns = int(best.Int64)
	}
	stats.LastRun = parseTime(lastRun)

	return stats, nil
}

// GetAllBoardStats retrieves statistics for all boards that have runs.
func (s *Store) GetAllBoardStats() (map[string]*BoardStats, error) {
	rows, err := s.db.Query(
		`SELECT board_id, COUNT(*), SUM(found), MIN(CASE WHEN found = 1 THEN turns END),
		        AVG(expanded), MAX(created_at)
		 FROM runs
		 GROUP BY board_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all board stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*BoardStats)
	for rows.Next() {
		var st BoardStats
		var best sql.NullInt64
		var lastRun any
		if err := rows.Scan(&st.BoardID, &st.Runs, &st.Solved, &best, &st.AvgExpanded, &lastRun); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}

		st.BestTurns = -1
		if best.Valid {
			st.BestTurns = int(best.Int64)
		}
		st.LastRun = parseTime(lastRun)

		stats[st.BoardID] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var run Run
	var durationMs int64
	var createdAt any

	err := sc.Scan(
		&run.ID,
		&run.RunID,
		&run.BoardID,
		&run.Heuristic,
		&run.Found,
		&run.Turns,
		&run.Expanded,
		&run.Moves,
		&durationMs,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return run, err
	}
	if err != nil {
		return run, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	run.Duration = time.Duration(durationMs) * time.Millisecond
	run.CreatedAt = parseTime(createdAt)
	return run, nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// RunFromResult builds a Run record for a finished search on boardID.
func RunFromResult(boardID string, res search.Result, elapsed time.Duration) Run {
	lines := make([]string, len(res.Moves))
	for i, m := range res.Moves {
		lines[i] = m.String()
	}
	return Run{
		BoardID:   boardID,
		Heuristic: res.Heuristic,
		Found:     res.Found,
		Turns:     res.Turns(),
		Expanded:  res.Expanded,
		Moves:     strings.Join(lines, "\n"),
		Duration:  elapsed,
	}
}
