package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

func init() {
	// The modernc driver registers as "sqlite", which sqlx does not know;
	// teach it the bindvar style so named/rebound queries work.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Store is the gateway to the SQLite database. All curriculum and progress
// queries go through its Get/Select/Exec façade; rows are scanned into
// typed structs at this boundary.
type Store struct {
	db *sqlx.DB
}

// Open connects to the SQLite database at dsn, applies recommended pragmas
// and runs the schema migration. The connection pool is capped at one
// connection: this is a single-operator tool and SQLite has a single writer.
func Open(dsn string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// Get runs a query expected to return at most one row and scans it into
// dest. Returns sql.ErrNoRows (wrapped by sqlx) when nothing matches.
func (s *Store) Get(dest any, query string, args ...any) error {
	return s.db.Get(dest, query, args...)
}

// Select runs a query and scans all rows into the slice pointed to by dest.
func (s *Store) Select(dest any, query string, args ...any) error {
	return s.db.Select(dest, query, args...)
}

// Exec runs a mutating statement and returns the number of rows affected.
func (s *Store) Exec(query string, args ...any) (int64, error) {
	res, err := s.db.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return n, nil
}

// ExecID runs an INSERT and returns the generated row id.
func (s *Store) ExecID(query string, args ...any) (int64, error) {
	res, err := s.db.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// DB returns the underlying sqlx handle for raw access.
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// applyPragmas configures SQLite for single-user interactive use.
func applyPragmas(db *sqlx.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. TEACHMATE_DB environment variable
// 2. $XDG_DATA_HOME/teachmate/teachmate.db
// 3. ~/.local/share/teachmate/teachmate.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("TEACHMATE_DB"); p != "" {
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

	p := filepath.Join(dataHome, "teachmate", "teachmate.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
