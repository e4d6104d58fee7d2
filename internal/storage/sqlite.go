// Package storage persists lifetime statistics as a JSON record and archives
// completed games in SQLite.
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

	"github.com/vovakirdan/dilemma/internal/games/dilemma"
)

// ErrNoPath is returned by Open when no database path is configured.
var ErrNoPath = errors.New("storage: no database path configured")

// Store manages the SQLite database connection for the game archive.
type Store struct {
	db *sql.DB
}

// GameRecord is one archived, completed game.
type GameRecord struct {
	ID            string
	Difficulty    string
	Rounds        int
	PlayerScore   int
	OpponentScore int
	Outcome       string
	Moves         string // Encoded history, see dilemma.EncodeHistory
	CreatedAt     time.Time
}

// Differential returns player score minus opponent score.
func (r GameRecord) Differential() int {
	return r.PlayerScore - r.OpponentScore
}

// History decodes the archived moves.
func (r GameRecord) History() []dilemma.HistoryEntry {
	return dilemma.DecodeHistory(r.Moves)
}

// DifficultyStats aggregates archived games of one difficulty.
type DifficultyStats struct {
	Difficulty  string
	GamesCount  int
	Wins        int
	AvgScore    float64
	BestScore   int
	CoopPercent float64 // Share of player moves that were Cooperate
	LastPlayed  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
// An empty path means the archive is disabled and yields ErrNoPath.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, ErrNoPath
	}

	// Expand ~ to home directory
	if dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS games (
			id TEXT PRIMARY KEY,
			difficulty TEXT NOT NULL,
			rounds INTEGER NOT NULL,
			player_score INTEGER NOT NULL,
			opponent_score INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			cooperations INTEGER NOT NULL DEFAULT 0,
			moves TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_created ON games(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_games_difficulty ON games(difficulty);
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

// SaveGame archives a finished game and returns its generated ID.
func (s *Store) SaveGame(snap dilemma.Snapshot) (string, error) {
	if snap.Phase != dilemma.PhaseFinished {
		return "", fmt.Errorf("storage: cannot archive game: %w", dilemma.ErrGameNotFinished)
	}

	cooperations := 0
	for _, h := range snap.History {
		if h.Player == dilemma.Cooperate {
			cooperations++
		}
	}

	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO games
		 (id, difficulty, rounds, player_score, opponent_score, outcome, cooperations, moves)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		snap.Difficulty.String(),
		snap.TotalRounds,
		snap.PlayerScore,
		snap.OpponentScore,
		snap.Outcome().String(),
		cooperations,
		dilemma.EncodeHistory(snap.History),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save game: %w", err)
	}

	return id, nil
}

// RecentGames retrieves the most recently archived games, newest first.
func (s *Store) RecentGames(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, difficulty, rounds, player_score, opponent_score, outcome, moves, created_at
		 FROM games
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var records []GameRecord
	for rows.Next() {
		var r GameRecord
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.Difficulty,
			&r.Rounds,
			&r.PlayerScore,
			&r.OpponentScore,
			&r.Outcome,
			&r.Moves,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// GameByID retrieves an archived game. Returns nil if it does not exist.
func (s *Store) GameByID(id string) (*GameRecord, error) {
	var r GameRecord
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, difficulty, rounds, player_score, opponent_score, outcome, moves, created_at
		 FROM games
		 WHERE id = ?`,
		id,
	).Scan(
		&r.ID,
		&r.Difficulty,
		&r.Rounds,
		&r.PlayerScore,
		&r.OpponentScore,
		&r.Outcome,
		&r.Moves,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query game: %w", err)
	}

	r.CreatedAt = parseTime(createdAt)
	return &r, nil
}

// DifficultySummary aggregates the archive per difficulty.
func (s *Store) DifficultySummary() (map[string]*DifficultyStats, error) {
	rows, err := s.db.Query(
		`SELECT difficulty,
		        COUNT(*),
		        SUM(CASE WHEN outcome = 'win' THEN 1 ELSE 0 END),
		        AVG(player_score),
		        MAX(player_score),
		        SUM(cooperations),
		        SUM(rounds),
		        MAX(created_at)
		 FROM games
		 GROUP BY difficulty`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot summarize games: %w", err)
	}
	defer rows.Close()

	summary := make(map[string]*DifficultyStats)
	for rows.Next() {
		var ds DifficultyStats
		var coops, rounds int
		var lastPlayed any
		if err := rows.Scan(
			&ds.Difficulty,
			&ds.GamesCount,
			&ds.Wins,
			&ds.AvgScore,
			&ds.BestScore,
			&coops,
			&rounds,
			&lastPlayed,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan summary row: %w", err)
		}
		if rounds > 0 {
			ds.CoopPercent = float64(coops) / float64(rounds) * 100
		}
		ds.LastPlayed = parseTime(lastPlayed)
		summary[ds.Difficulty] = &ds
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return summary, nil
}

// ClearGames deletes every archived game.
func (s *Store) ClearGames() error {
	if _, err := s.db.Exec("DELETE FROM games"); err != nil {
		return fmt.Errorf("storage: cannot clear games: %w", err)
	}
	return nil
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
