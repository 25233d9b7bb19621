// Package storage provides SQLite-based persistence for finished matches.
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

// Store manages the SQLite database connection for match history.
type Store struct {
	db *sql.DB
}

// MatchResult is the outcome of one finished game. In-progress games are
// never stored.
type MatchResult struct {
	ID         string // UUID; generated by SaveMatch when empty
	GameID     string
	Player     string
	Seed       int64
	LeftScore  int // Built-in opponent
	RightScore int // Player
	Winner     string
	Ticks      int
	CreatedAt  time.Time
}

// PlayerRecord aggregates a player's results.
type PlayerRecord struct {
	Player     string
	Played     int
	Wins       int
	Losses     int
	LastPlayed time.Time
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
		CREATE TABLE IF NOT EXISTS matches (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			player TEXT NOT NULL,
			seed INTEGER NOT NULL DEFAULT 0,
			left_score INTEGER NOT NULL,
			right_score INTEGER NOT NULL,
			winner TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_matches_created ON matches(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_matches_player ON matches(player);
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

// SaveMatch records a finished match and returns its ID.
// A missing ID or timestamp is filled in.
func (s *Store) SaveMatch(m MatchResult) (string, error) {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO matches
		 (id, game_id, player, seed, left_score, right_score, winner, ticks, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.GameID, m.Player, m.Seed, m.LeftScore, m.RightScore, m.Winner, m.Ticks,
		m.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save match: %w", err)
	}
	return m.ID, nil
}

// MatchByID returns the match with the given ID, or nil if there is none.
func (s *Store) MatchByID(id string) (*MatchResult, error) {
	row := s.db.QueryRow(
		`SELECT id, game_id, player, seed, left_score, right_score, winner, ticks, created_at
		 FROM matches WHERE id = ?`,
		id,
	)
	m, err := scanMatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	return &m, nil
}

// RecentMatches returns the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, player, seed, left_score, right_score, winner, ticks, created_at
		 FROM matches
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var matches []MatchResult
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		matches = append(matches, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return matches, nil
}

// Record returns the win/loss record of player. winner is the side name
// recorded for player wins.
func (s *Store) Record(player, winner string) (*PlayerRecord, error) {
	rec := &PlayerRecord{Player: player}

	var last sql.NullString
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN winner = ? THEN 1 ELSE 0 END), 0),
		        MAX(created_at)
		 FROM matches WHERE player = ?`,
		winner, player,
	).Scan(&rec.Played, &rec.Wins, &last)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get record: %w", err)
	}

	rec.Losses = rec.Played - rec.Wins
	if last.Valid {
		rec.LastPlayed = parseTime(last.String)
	}
	return rec, nil
}

// ClearMatches deletes every stored match.
func (s *Store) ClearMatches() error {
	if _, err := s.db.Exec("DELETE FROM matches"); err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

const timeLayout = "2006-01-02 15:04:05.000"

type scanner interface {
	Scan(dest ...any) error
}

func scanMatch(sc scanner) (MatchResult, error) {
	var m MatchResult
	var createdAt any
	if err := sc.Scan(&m.ID, &m.GameID, &m.Player, &m.Seed, &m.LeftScore, &m.RightScore,
		&m.Winner, &m.Ticks, &createdAt); err != nil {
		return MatchResult{}, err
	}

	// The driver may hand back a DATETIME column as time.Time or as text.
	switch v := createdAt.(type) {
	case time.Time:
		m.CreatedAt = v
	case string:
		m.CreatedAt = parseTime(v)
	}
	return m, nil
}

func parseTime(v string) time.Time {
	for _, layout := range []string{timeLayout, "2006-01-02 15:04:05", time.RFC3339Nano} {
		if parsed, err := time.Parse(layout, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
