// Package storage provides SQLite-based persistence for finished games.
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

// Store manages the SQLite database connection for game results.
type Store struct {
	db *sql.DB
}

// GameRecord represents one finished game.
type GameRecord struct {
	ID        int64
	Score     int
	MaxScore  int // Engine max score at the moment the game ended
	BestTile  int
	Won       bool // True when the 2048 tile was reached
	Duration  int  // Duration in seconds
	CreatedAt time.Time
}

// Stats contains aggregated statistics over all recorded games.
type Stats struct {
	GamesCount int
	Wins       int
	HighScore  int
	BestTile   int
	AvgScore   float64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path. It creates the
// parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
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
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			max_score INTEGER NOT NULL,
			best_tile INTEGER NOT NULL,
			won INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_score ON games(score DESC);
		CREATE INDEX IF NOT EXISTS idx_games_created ON games(created_at DESC);
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

// SaveGame records a finished game. Returns the ID of the inserted record.
func (s *Store) SaveGame(rec GameRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO games (score, max_score, best_tile, won, duration_secs)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.Score, rec.MaxScore, rec.BestTile, rec.Won, rec.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save game: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopGames retrieves the best N games ordered by score descending.
func (s *Store) TopGames(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, score, max_score, best_tile, won, duration_secs, created_at
		 FROM games
		 ORDER BY score DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var records []GameRecord
	for rows.Next() {
		rec, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// RecentGames retrieves the most recently finished games.
func (s *Store) RecentGames(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, score, max_score, best_tile, won, duration_secs, created_at
		 FROM games
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var records []GameRecord
	for rows.Next() {
		rec, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// scanGame reads one game row, tolerating both time.Time and string
// datetimes from the driver.
func scanGame(rows *sql.Rows) (GameRecord, error) {
	var rec GameRecord
	var createdAt any
	if err := rows.Scan(&rec.ID, &rec.Score, &rec.MaxScore, &rec.BestTile, &rec.Won, &rec.Duration, &createdAt); err != nil {
		return rec, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	switch v := createdAt.(type) {
	case time.Time:
		rec.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			rec.CreatedAt = parsed
		}
	}
	return rec, nil
}

// HighScore returns the highest recorded score, or 0 if no games exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM games").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// GetStats retrieves aggregated statistics over all recorded games.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0), COALESCE(MAX(score), 0),
		        COALESCE(MAX(best_tile), 0), COALESCE(AVG(score), 0)
		 FROM games`,
	).Scan(&stats.GamesCount, &stats.Wins, &stats.HighScore, &stats.BestTile, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM games ORDER BY created_at DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		switch v := lastPlayed.(type) {
		case time.Time:
			stats.LastPlayed = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				stats.LastPlayed = parsed
			}
		}
	}

	return stats, nil
}

// ClearGames deletes every recorded game.
func (s *Store) ClearGames() error {
	_, err := s.db.Exec("DELETE FROM games")
	if err != nil {
		return fmt.Errorf("storage: cannot clear games: %w", err)
	}
	return nil
}
