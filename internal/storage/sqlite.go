// Package storage provides SQLite-based persistence for finished rounds.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Result is the outcome of a finished round.
type Result string

const (
	ResultWin  Result = "win"
	ResultLose Result = "lose"
)

// Store manages the SQLite database connection for round history.
type Store struct {
	db *sql.DB
}

// Round represents one finished round.
type Round struct {
	ID         int64
	LevelID    string
	Complexity string
	Result     Result
	StepsUsed  int
	RoundSteps int
	Player     string
	CreatedAt  time.Time
}

// LevelStats contains aggregated results for a level.
type LevelStats struct {
	LevelID    string
	Played     int
	Wins       int
	Losses     int
	BestSteps  int     // Fewest steps in a win, 0 without wins
	AvgSteps   float64 // Average steps over wins
	LastPlayed time.Time
}

// WinRate returns the share of won rounds in [0, 1].
func (s LevelStats) WinRate() float64 {
	if s.Played == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Played)
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
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			complexity TEXT NOT NULL,
			result TEXT NOT NULL CHECK (result IN ('win', 'lose')),
			steps_used INTEGER NOT NULL,
			round_steps INTEGER NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_level_id ON rounds(level_id);
		CREATE INDEX IF NOT EXISTS idx_rounds_best ON rounds(level_id, result, steps_used);
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

// SaveRound records a finished round and returns the ID of the inserted record.
func (s *Store) SaveRound(r Round) (int64, error) {
	if r.Result != ResultWin && r.Result != ResultLose {
		return 0, fmt.Errorf("storage: invalid result %q", r.Result)
	}

	result, err := s.db.Exec(
		`INSERT INTO rounds (level_id, complexity, result, steps_used, round_steps, player)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.LevelID, r.Complexity, string(r.Result), r.StepsUsed, r.RoundSteps, r.Player,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const roundColumns = `id, level_id, complexity, result, steps_used, round_steps, player, created_at`

// RecentRounds retrieves the latest rounds, newest first.
// An empty levelID selects every level.
func (s *Store) RecentRounds(levelID string, limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+roundColumns+`
		 FROM rounds
		 WHERE ? = '' OR level_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		levelID, levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	return collectRounds(rows)
}

// BestRounds retrieves the won rounds of a level that used the fewest steps.
func (s *Store) BestRounds(levelID string, limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+roundColumns+`
		 FROM rounds
		 WHERE level_id = ? AND result = 'win'
		 ORDER BY steps_used ASC, created_at ASC, id ASC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best rounds: %w", err)
	}
	return collectRounds(rows)
}

// LevelStats retrieves aggregated results for a level.
// A level without rounds yields zero stats.
func (s *Store) LevelStats(levelID string) (*LevelStats, error) {
	rows, err := s.db.Query(statsQuery+` WHERE level_id = ? GROUP BY level_id`, levelID)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	all, err := collectStats(rows)
	if err != nil {
		return nil, err
	}
	if stats, ok := all[levelID]; ok {
		return stats, nil
	}
	return &LevelStats{LevelID: levelID}, nil
}

// AllLevelStats retrieves statistics for every level that has been played.
func (s *Store) AllLevelStats() (map[string]*LevelStats, error) {
	rows, err := s.db.Query(statsQuery + ` GROUP BY level_id`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all level stats: %w", err)
	}
	return collectStats(rows)
}

// ClearRounds deletes the history of a level. An empty levelID clears everything.
func (s *Store) ClearRounds(levelID string) error {
	_, err := s.db.Exec("DELETE FROM rounds WHERE ? = '' OR level_id = ?", levelID, levelID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

const statsQuery = `
	SELECT level_id,
	       COUNT(*),
	       SUM(CASE WHEN result = 'win' THEN 1 ELSE 0 END),
	       COALESCE(MIN(CASE WHEN result = 'win' THEN steps_used END), 0),
	       COALESCE(AVG(CASE WHEN result = 'win' THEN steps_used END), 0),
	       MAX(created_at)
	FROM rounds`

func collectStats(rows *sql.Rows) (map[string]*LevelStats, error) {
	defer rows.Close()

	stats := make(map[string]*LevelStats)
	for rows.Next() {
		var st LevelStats
		var lastPlayed any
		if err := rows.Scan(&st.LevelID, &st.Played, &st.Wins, &st.BestSteps, &st.AvgSteps, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.Losses = st.Played - st.Wins
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.LevelID] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

func collectRounds(rows *sql.Rows) ([]Round, error) {
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var r Round
		var result string
		var createdAt any
		if err := rows.Scan(&r.ID, &r.LevelID, &r.Complexity, &result,
			&r.StepsUsed, &r.RoundSteps, &r.Player, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Result = Result(result)
		r.CreatedAt = parseTime(createdAt)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return rounds, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
