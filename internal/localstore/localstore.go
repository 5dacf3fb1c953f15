// Package localstore is the device-local persistence layer: the serialized
// session blob plus the language and theme preferences, in a sqlite file
// under the app data directory. It is read once at startup and written on
// every auth change and preference toggle.
package localstore

import (
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"

	"storefront/internal/domain"
)

//go:embed sql/*.sql
var migrationsFS embed.FS

const (
	keySession  = "session"
	keyLanguage = "language"
	keyTheme    = "theme"
)

// Store wraps the local sqlite database.
type Store struct {
	db     *sql.DB
	logger *log.Logger
}

// Open opens (or creates) the database at path and applies schema
// migrations.
func Open(path string, logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open local db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping local db: %w", err)
	}
	if err := applyMigrations(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db, logger: logger}, nil
}

func applyMigrations(db *sql.DB) error {
	srcDriver, err := iofs.New(migrationsFS, "sql")
	if err != nil {
		return fmt.Errorf("init iofs: %w", err)
	}
	dbDriver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("init sqlite driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", srcDriver, "sqlite3", dbDriver)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("migrate up: %w (hint: ensure every migration version has both `.up.sql` and `.down.sql`)", err)
		}
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveSession persists the session blob as JSON.
func (s *Store) SaveSession(sess domain.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return s.set(keySession, string(raw))
}

// LoadSession reads the persisted session. Returns domain.ErrNotFound when
// no session was saved.
func (s *Store) LoadSession() (*domain.Session, error) {
	raw, err := s.get(keySession)
	if err != nil {
		return nil, err
	}
	var sess domain.Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &sess, nil
}

// ClearSession removes the persisted session on logout.
func (s *Store) ClearSession() error {
	_, err := s.db.Exec(`DELETE FROM app_state WHERE key = ?`, keySession)
	return err
}

// Language returns the saved UI language, or def when none was saved.
func (s *Store) Language(def string) string {
	return s.pref(keyLanguage, def)
}

// SetLanguage persists the UI language.
func (s *Store) SetLanguage(lang string) error {
	return s.set(keyLanguage, lang)
}

// Theme returns the saved theme preference, or def when none was saved.
func (s *Store) Theme(def string) string {
	return s.pref(keyTheme, def)
}

// SetTheme persists the theme preference.
func (s *Store) SetTheme(theme string) error {
	return s.set(keyTheme, theme)
}

func (s *Store) pref(key, def string) string {
	v, err := s.get(key)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Printf("read %s: %v", key, err)
		}
		return def
	}
	return v
}

func (s *Store) set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value,
	)
	return err
}

func (s *Store) get(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM app_state WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", domain.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}
