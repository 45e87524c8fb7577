// Package store persists word lists and entries in a local SQLite
// database. The rest of the application treats it as an opaque object
// store: insert, delete, query. Scoring writes arrive fire-and-forget
// through the study.Persister interface.
package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tanvi/lexi/internal/vocab"
)

// Store wraps the gorm handle and exposes the repositories.
type Store struct {
	db *gorm.DB
}

// Open connects to the SQLite database at dsn, applies recommended
// pragmas, and runs auto-migration.
func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := db.AutoMigrate(&vocab.WordList{}, &vocab.WordEntry{}); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying gorm handle for raw queries.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Lists returns a ListRepo backed by this store.
func (s *Store) Lists() ListRepo {
	return &listRepo{db: s.db}
}

// Entries returns an EntryRepo backed by this store.
func (s *Store) Entries() EntryRepo {
	return &entryRepo{db: s.db}
}

// SaveEntry satisfies study.Persister. Errors surface to the caller but
// the study engine ignores them by contract.
func (s *Store) SaveEntry(e *vocab.WordEntry) error {
	return s.Entries().Save(context.Background(), e)
}

// SaveList satisfies study.Persister. Records the list's usage bump so
// "most recent list" ordering reflects sessions, not just edits.
func (s *Store) SaveList(l *vocab.WordList) error {
	return s.Lists().Save(context.Background(), l)
}

// Reset deletes every list and entry. The schema stays in place.
func (s *Store) Reset(ctx context.Context) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&vocab.WordEntry{}).Error; err != nil {
			return fmt.Errorf("delete entries: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&vocab.WordList{}).Error; err != nil {
			return fmt.Errorf("delete lists: %w", err)
		}
		return nil
	})
}

// applyPragmas configures SQLite for single-user performance and turns
// on foreign key enforcement so cascade/nullify delete rules apply.
func applyPragmas(db *gorm.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if err := db.Exec(p).Error; err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. LEXI_DB environment variable
// 2. $XDG_DATA_HOME/lexi/lexi.db
// 3. ~/.local/share/lexi/lexi.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("LEXI_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "lexi", "lexi.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
