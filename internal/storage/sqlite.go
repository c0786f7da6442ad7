// Package storage provides persistence for the score ledger and the
// history of finished games. The SQLite backend uses the pure-Go
// modernc.org/sqlite driver to avoid CGO dependencies.
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

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Backend names understood by the registry.
const (
	BackendSQLite = "sqlite"
	BackendJSON   = "json"
)

func init() {
	registry.Register(BackendSQLite, "~/.t2048/t2048.db", func(path string) (registry.Backend, error) {
		return Open(path)
	})
}

// Store manages the SQLite database connection for ledger persistence.
type Store struct {
	db *sql.DB
}

// GameRecord is a single finished game.
type GameRecord struct {
	ID        string
	Score     int
	MaxTile   int
	Moves     int
	Won       bool
	CreatedAt time.Time
}

// Stats contains aggregated statistics over recorded games.
type Stats struct {
	GamesCount int
	Wins       int
	HighScore  int
	AvgScore   float64
	BestTile   int
	LastPlayed time.Time
}

var _ registry.Backend = (*Store)(nil)

// expandPath expands a leading ~ to the home directory.
func expandPath(path string) (string, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	return path, nil
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := expandPath(dbPath)
	if err != nil {
		return nil, err
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
		CREATE TABLE IF NOT EXISTS ledger (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			best_score INTEGER NOT NULL DEFAULT 0,
			total_score INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS games (
			id TEXT PRIMARY KEY,
			score INTEGER NOT NULL,
			max_tile INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			won INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_top ON games(score DESC);
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

// Load reads the persisted ledger.
// Returns t2048.ErrLedgerNotFound if nothing has been saved yet.
func (s *Store) Load() (t2048.Ledger, error) {
	var l t2048.Ledger
	err := s.db.QueryRow(
		"SELECT best_score, total_score FROM ledger WHERE id = 1",
	).Scan(&l.BestScore, &l.TotalScore)

	if errors.Is(err, sql.ErrNoRows) {
		return t2048.Ledger{}, t2048.ErrLedgerNotFound
	}
	if err != nil {
		return t2048.Ledger{}, fmt.Errorf("storage: cannot query ledger: %w", err)
	}
	return l, nil
}

// Save overwrites the persisted ledger.
func (s *Store) Save(l t2048.Ledger) error {
	_, err := s.db.Exec(
		`INSERT INTO ledger (id, best_score, total_score, updated_at)
		 VALUES (1, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET
		   best_score = excluded.best_score,
		   total_score = excluded.total_score,
		   updated_at = excluded.updated_at`,
		l.BestScore, l.TotalScore,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save ledger: %w", err)
	}
	return nil
}

// RecordGame stores a finished game and returns its generated ID.
func (s *Store) RecordGame(snap t2048.Snapshot) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		"INSERT INTO games (id, score, max_tile, moves, won) VALUES (?, ?, ?, ?, ?)",
		id, snap.Score, snap.MaxTile, snap.Moves, snap.Won,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot record game: %w", err)
	}
	return id, nil
}

// TopGames retrieves the N best finished games, highest score first.
func (s *Store) TopGames(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryGames(
		`SELECT id, score, max_tile, moves, won, created_at
		 FROM games
		 ORDER BY score DESC, rowid ASC
		 LIMIT ?`,
		limit,
	)
}

// RecentGames retrieves the N most recently finished games.
func (s *Store) RecentGames(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryGames(
		`SELECT id, score, max_tile, moves, won, created_at
		 FROM games
		 ORDER BY rowid DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) queryGames(query string, args ...any) ([]GameRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var records []GameRecord
	for rows.Next() {
		var r GameRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Score, &r.MaxTile, &r.Moves, &r.Won, &createdAt); err != nil {
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

// HighScore returns the highest recorded game score, or 0 if none exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM games").Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Stats aggregates all recorded games.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0), COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0), COALESCE(MAX(max_tile), 0)
		 FROM games`,
	).Scan(&stats.GamesCount, &stats.Wins, &stats.HighScore, &stats.AvgScore, &stats.BestTile)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		"SELECT created_at FROM games ORDER BY rowid DESC LIMIT 1",
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// Reset deletes the ledger and all recorded games.
func (s *Store) Reset() error {
	if _, err := s.db.Exec("DELETE FROM ledger; DELETE FROM games;"); err != nil {
		return fmt.Errorf("storage: cannot reset: %w", err)
	}
	return nil
}

// parseTime handles DATETIME columns returned as time.Time or text.
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
