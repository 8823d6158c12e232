// Package storage provides SQLite-based persistence for finished games.
// Each row keeps the seed, the settings and the input log, so any stored
// game can be replayed. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tetra/internal/core"
)

// ErrNotFound is returned when a game ID does not exist.
var ErrNotFound = errors.New("storage: game not found")

// Store manages the SQLite database connection for game history.
type Store struct {
	db *sql.DB
}

// GameEntry is one stored game.
type GameEntry struct {
	ID        int64
	Recording core.Recording
	CreatedAt time.Time
}

// GameStats contains aggregated statistics for a game variant.
type GameStats struct {
	GameID      string
	GamesCount  int
	TotalLines  int
	TotalPieces int
	LastPlayed  time.Time
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
		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			tick_rate INTEGER NOT NULL,
			rows INTEGER NOT NULL,
			columns INTEGER NOT NULL,
			gravity_ms INTEGER NOT NULL,
			randomizer TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			pieces INTEGER NOT NULL DEFAULT 0,
			lines INTEGER NOT NULL DEFAULT 0,
			game_over INTEGER NOT NULL DEFAULT 0,
			inputs TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_game_id ON games(game_id);
		CREATE INDEX IF NOT EXISTS idx_games_recent ON games(game_id, created_at DESC);
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

// SaveGame records a finished (or abandoned) game with its input log.
// Returns the ID of the inserted record.
func (s *Store) SaveGame(rec core.Recording) (int64, error) {
	inputs, err := json.Marshal(rec.Inputs)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot encode input log: %w", err)
	}

	result, err := s.db.Exec(
		`INSERT INTO games
		 (game_id, seed, tick_rate, rows, columns, gravity_ms, randomizer, ticks, pieces, lines, game_over, inputs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.GameID, rec.Seed, rec.TickRate, rec.Rows, rec.Columns, rec.GravityMS,
		rec.Randomizer, int64(rec.Ticks), rec.Pieces, rec.Lines, rec.GameOver, string(inputs),
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

const selectGames = `SELECT id, game_id, seed, tick_rate, rows, columns, gravity_ms, randomizer,
	ticks, pieces, lines, game_over, inputs, created_at FROM games`

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanGame(row rowScanner) (GameEntry, error) {
	var (
		e         GameEntry
		ticks     int64
		inputs    string
		createdAt any
	)
	rec := &e.Recording
	err := row.Scan(&e.ID, &rec.GameID, &rec.Seed, &rec.TickRate, &rec.Rows, &rec.Columns,
		&rec.GravityMS, &rec.Randomizer, &ticks, &rec.Pieces, &rec.Lines, &rec.GameOver,
		&inputs, &createdAt)
	if err != nil {
		return e, err
	}

	rec.Ticks = uint64(ticks)
	if err := json.Unmarshal([]byte(inputs), &rec.Inputs); err != nil {
		return e, fmt.Errorf("storage: game %d has a corrupt input log: %w", e.ID, err)
	}
	e.CreatedAt = parseTime(createdAt)
	return e, nil
}

// parseTime handles both time.Time and the string form SQLite may return.
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

// RecentGames returns the latest games, newest first.
// An empty gameID returns games of every variant.
func (s *Store) RecentGames(gameID string, limit int) ([]GameEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	query := selectGames + ` WHERE (? = '' OR game_id = ?) ORDER BY created_at DESC, id DESC LIMIT ?`
	rows, err := s.db.Query(query, gameID, gameID, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var entries []GameEntry
	for rows.Next() {
		e, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// GameByID loads a single stored game. Returns ErrNotFound if it does not exist.
func (s *Store) GameByID(id int64) (GameEntry, error) {
	e, err := scanGame(s.db.QueryRow(selectGames+` WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return GameEntry{}, ErrNotFound
	}
	if err != nil {
		return GameEntry{}, fmt.Errorf("storage: cannot load game %d: %w", id, err)
	}
	return e, nil
}

// GameStats retrieves aggregated statistics for a game variant.
func (s *Store) GameStats(gameID string) (GameStats, error) {
	stats := GameStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(lines), 0), COALESCE(SUM(pieces), 0),
		        MAX(created_at)
		 FROM games WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.TotalLines, &stats.TotalPieces, &lastPlayed)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// ClearGames deletes all stored games for the given variant.
func (s *Store) ClearGames(gameID string) error {
	_, err := s.db.Exec("DELETE FROM games WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear games: %w", err)
	}
	return nil
}
