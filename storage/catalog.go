// Package storage keeps recorded replays: the encoded files live in a gdata
// blob store and a SQLite catalog indexes them.
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

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrNotFound is returned when a replay key is unknown.
var ErrNotFound = errors.New("storage: not found")

// Catalog indexes stored replays.
type Catalog struct {
	db *sql.DB
}

// Entry is one catalogued replay.
type Entry struct {
	ID         int64
	Key        string
	Match      string
	Stage      string
	Characters []string
	Winner     string
	Frames     int
	Duration   float64
	Checksum   uint32
	Seed       uint64
	RecordedAt time.Time
}

// OpenCatalog creates or opens the catalog database at dbPath, creating
// parent directories and running migrations.
func OpenCatalog(dbPath string) (*Catalog, error) {
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

	c := &Catalog{db: db}
	if err := c.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return c, nil
}

func (c *Catalog) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS replays (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			key TEXT NOT NULL UNIQUE,
			match_name TEXT NOT NULL,
			stage TEXT NOT NULL,
			characters TEXT NOT NULL,
			winner TEXT NOT NULL DEFAULT '',
			frames INTEGER NOT NULL,
			duration REAL NOT NULL,
			checksum INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			recorded_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_replays_recorded ON replays(recorded_at DESC);
	`
	_, err := c.db.Exec(schema)
	return err
}

func (c *Catalog) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// Add records a replay and returns its row id.
func (c *Catalog) Add(e Entry) (int64, error) {
	result, err := c.db.Exec(
		`INSERT INTO replays (key, match_name, stage, characters, winner, frames, duration, checksum, seed, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Key, e.Match, e.Stage, strings.Join(e.Characters, ","), e.Winner,
		e.Frames, e.Duration, int64(e.Checksum), int64(e.Seed), e.RecordedAt.Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot add replay %s: %w", e.Key, err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

const entryColumns = `id, key, match_name, stage, characters, winner, frames, duration, checksum, seed, recorded_at`

// Get looks a replay up by key.
func (c *Catalog) Get(key string) (Entry, error) {
	row := c.db.QueryRow(`SELECT `+entryColumns+` FROM replays WHERE key = ?`, key)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("storage: replay %s: %w", key, ErrNotFound)
	}
	if err != nil {
		return Entry{}, fmt.Errorf("storage: cannot read replay %s: %w", key, err)
	}
	return e, nil
}

// List returns the most recent replays first.
func (c *Catalog) List(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := c.db.Query(`SELECT `+entryColumns+` FROM replays ORDER BY recorded_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list replays: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan replay: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: cannot list replays: %w", err)
	}
	return out, nil
}

// Remove deletes a replay from the catalog.
func (c *Catalog) Remove(key string) error {
	result, err := c.db.Exec(`DELETE FROM replays WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("storage: cannot remove replay %s: %w", key, err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("storage: replay %s: %w", key, ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (Entry, error) {
	var (
		e          Entry
		characters string
		checksum   int64
		seed       int64
		recorded   int64
	)
	err := s.Scan(&e.ID, &e.Key, &e.Match, &e.Stage, &characters, &e.Winner,
		&e.Frames, &e.Duration, &checksum, &seed, &recorded)
	if err != nil {
		return Entry{}, err
	}
	if characters != "" {
		e.Characters = strings.Split(characters, ",")
	}
	e.Checksum = uint32(checksum)
	e.Seed = uint64(seed)
	e.RecordedAt = time.Unix(recorded, 0)
	return e, nil
}
