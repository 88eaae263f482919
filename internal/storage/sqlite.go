// Package storage provides the SQLite-backed word pack catalog.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Only word pools are stored here, never game state.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/wordsearch/internal/core"
	"github.com/vovakirdan/wordsearch/internal/registry"
)

// Store manages the SQLite database connection for the pack catalog.
// It is safe for concurrent use.
type Store struct {
	db *sql.DB
}

// PackSummary describes a stored pack without its words.
type PackSummary struct {
	Name      string
	Title     string
	Words     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	dbPath, err := core.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		PRAGMA foreign_keys = ON;

		CREATE TABLE IF NOT EXISTS packs (
			name TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS pack_words (
			pack TEXT NOT NULL REFERENCES packs(name) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			word TEXT NOT NULL,
			PRIMARY KEY (pack, position)
		);
		CREATE INDEX IF NOT EXISTS idx_pack_words_pack ON pack_words(pack);
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

// SavePack stores p, replacing any pack with the same name.
// Word order is preserved.
func (s *Store) SavePack(ctx context.Context, p registry.Pack) error {
	if p.Name == "" {
		return errors.New("storage: pack has no name")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM pack_words WHERE pack = ?", p.Name); err != nil {
		return fmt.Errorf("storage: cannot clear pack words: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO packs (name, title) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET title = excluded.title`,
		p.Name, p.Title,
	); err != nil {
		return fmt.Errorf("storage: cannot save pack: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO pack_words (pack, position, word) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, w := range p.Words {
		if _, err := stmt.ExecContext(ctx, p.Name, i, w); err != nil {
			return fmt.Errorf("storage: cannot save word %q: %w", w, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit pack: %w", err)
	}
	return nil
}

// Pack loads a pack by name.
// Returns registry.ErrPackNotFound if no such pack is stored.
func (s *Store) Pack(ctx context.Context, name string) (registry.Pack, error) {
	p := registry.Pack{Name: name}

	err := s.db.QueryRowContext(ctx, "SELECT title FROM packs WHERE name = ?", name).Scan(&p.Title)
	if errors.Is(err, sql.ErrNoRows) {
		return registry.Pack{}, fmt.Errorf("storage: %q: %w", name, registry.ErrPackNotFound)
	}
	if err != nil {
		return registry.Pack{}, fmt.Errorf("storage: cannot query pack: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT word FROM pack_words WHERE pack = ? ORDER BY position",
		name,
	)
	if err != nil {
		return registry.Pack{}, fmt.Errorf("storage: cannot query words: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return registry.Pack{}, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		p.Words = append(p.Words, w)
	}

	if err := rows.Err(); err != nil {
		return registry.Pack{}, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return p, nil
}

// ListPacks returns summaries of all stored packs, sorted by name.
func (s *Store) ListPacks(ctx context.Context) ([]PackSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT p.name, p.title, COUNT(w.word), p.created_at
		 FROM packs p
		 LEFT JOIN pack_words w ON w.pack = p.name
		 GROUP BY p.name
		 ORDER BY p.name`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query packs: %w", err)
	}
	defer rows.Close()

	var summaries []PackSummary
	for rows.Next() {
		var ps PackSummary
		var createdAt any
		if err := rows.Scan(&ps.Name, &ps.Title, &ps.Words, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		ps.CreatedAt = parseTime(createdAt)
		summaries = append(summaries, ps)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return summaries, nil
}

// DeletePack removes a pack and its words.
// Returns registry.ErrPackNotFound if no such pack is stored.
func (s *Store) DeletePack(ctx context.Context, name string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM pack_words WHERE pack = ?", name); err != nil {
		return fmt.Errorf("storage: cannot delete pack words: %w", err)
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM packs WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete pack: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("storage: %q: %w", name, registry.ErrPackNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
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
	}
	return time.Time{}
}
