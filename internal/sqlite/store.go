// Package sqlite persists custom unit and prefix registrations in a
// SQLite database, so symbols defined on the command line survive across
// invocations. The built-in tables are compiled in; this store holds only
// user additions.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Sentinel errors returned by store operations.
var (
	ErrAlreadyAttached = errors.New("store is already attached")
	ErrStoreDetached   = errors.New("store is not attached")
	ErrNotFound        = errors.New("symbol not found")
)

// dbFileName is the database file created inside Config.DataDir.
const dbFileName = "gauge.db"

// Store is a SQLite-backed vocabulary of user-defined units and prefixes.
// It is not usable until Attach succeeds; after Detach all operations
// return ErrStoreDetached.
type Store struct {
	mu       sync.RWMutex
	attached bool
	config   Config
	db       *sql.DB
}

// NewStore creates an unattached store. Call Attach with a Config before use.
func NewStore() *Store {
	return &Store{}
}

// Attach opens (creating if necessary) the database under config.DataDir
// and ensures the schema exists. Existing rows are preserved.
// Returns ErrAlreadyAttached if called twice without a Detach in between.
func (s *Store) Attach(config Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return err
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("initializing schema: %w", err)
		}
	}

	s.db = db
	s.config = config
	s.attached = true

	return nil
}

// Detach closes the database. Idempotent.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return err
		}
		s.db = nil
	}

	s.attached = false
	return nil
}

// generateUUID generates a new UUID v7 for row IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
