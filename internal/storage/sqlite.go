// Package storage provides SQLite-based persistence for finished runs and
// small settings such as the best score. Uses the pure-Go modernc.org/sqlite
// driver through sqlx to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sqlx.DB
}

// ScoreEntry represents a single finished run.
type ScoreEntry struct {
	ID        int64     `json:"id"`
	GameID    string    `json:"gameId"`
	Score     int       `json:"score"`
	Binned    int       `json:"binned"`
	CreatedAt time.Time `json:"createdAt"`
}

// scoreRow is the raw row; created_at comes back as time.Time or text
// depending on how the value was written.
type scoreRow struct {
	ID        int64  `db:"id"`
	GameID    string `db:"game_id"`
	Score     int    `db:"score"`
	Binned    int    `db:"binned"`
	CreatedAt any    `db:"created_at"`
}

func (r scoreRow) entry() ScoreEntry {
	return ScoreEntry{
		ID:        r.ID,
		GameID:    r.GameID,
		Score:     r.Score,
		Binned:    r.Binned,
		CreatedAt: parseTime(r.CreatedAt),
	}
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

	db, err := sqlx.Connect("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// SQLite serializes writers; one connection avoids SQLITE_BUSY between
	// concurrent web sessions.
	db.SetMaxOpenConns(1)

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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			binned INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// SaveScore records a finished run for the given game.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(gameID string, score, binned int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, score, binned) VALUES (?, ?, ?)",
		gameID, score, binned,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores for the given game.
// Results are ordered by score descending.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	var rows []scoreRow
	err := s.db.Select(&rows,
		`SELECT id, game_id, score, binned, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}

	return entries(rows), nil
}

// AllScores retrieves all scores for the given game (no limit).
func (s *Store) AllScores(gameID string) ([]ScoreEntry, error) {
	var rows []scoreRow
	err := s.db.Select(&rows,
		`SELECT id, game_id, score, binned, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}

	return entries(rows), nil
}

func entries(rows []scoreRow) []ScoreEntry {
	out := make([]ScoreEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.entry())
	}
	return out
}

// HighScore returns the highest recorded score for the given game.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.Get(&score, "SELECT MAX(score) FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all scores for the given game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID      string    `json:"gameId"`
	GamesCount  int       `json:"gamesCount"`
	HighScore   int       `json:"highScore"`
	AvgScore    float64   `json:"avgScore"`
	TotalScore  int64     `json:"totalScore"`
	TotalBinned int64     `json:"totalBinned"`
	LastPlayed  time.Time `json:"lastPlayed"`
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	var row struct {
		Count      int     `db:"games"`
		High       int     `db:"high"`
		Avg        float64 `db:"avg"`
		Total      int64   `db:"total"`
		Binned     int64   `db:"binned"`
		LastPlayed any     `db:"last_played"`
	}

	err := s.db.Get(&row,
		`SELECT COUNT(*) AS games,
		        COALESCE(MAX(score), 0) AS high,
		        COALESCE(AVG(score), 0) AS avg,
		        COALESCE(SUM(score), 0) AS total,
		        COALESCE(SUM(binned), 0) AS binned,
		        MAX(created_at) AS last_played
		 FROM scores WHERE game_id = ?`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	return &GameStats{
		GameID:      gameID,
		GamesCount:  row.Count,
		HighScore:   row.High,
		AvgScore:    row.Avg,
		TotalScore:  row.Total,
		TotalBinned: row.Binned,
		LastPlayed:  parseTime(row.LastPlayed),
	}, nil
}

// Settings returns the key/value view of the settings table.
func (s *Store) Settings() *Settings {
	return &Settings{db: s.db}
}

// Settings stores small string values by key.
type Settings struct {
	db *sqlx.DB
}

// Get returns the value stored under key and whether it exists.
func (k *Settings) Get(key string) (string, bool, error) {
	var value string
	err := k.db.Get(&value, "SELECT value FROM settings WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read setting %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (k *Settings) Set(key, value string) error {
	_, err := k.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write setting %q: %w", key, err)
	}
	return nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	case []byte:
		if parsed, err := time.Parse("2006-01-02 15:04:05", string(t)); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
