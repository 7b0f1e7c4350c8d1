// Package sqlite implements the SQLite project store for poseek. The
// database is the durable working copy of a project: the active schema
// snapshot, the registered images, and every placed keypoint survive
// between runs, independent of any CSV or COCO export.
package sqlite

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/poseek/poseek/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// DBFileName is the project database file created under the data
// directory.
const DBFileName = "poseek.db"

// Compile-time interface check: Backend must implement Project.
var _ types.Project = (*Backend)(nil)

// Backend implements the Project interface on a SQLite database.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB

	// schema caches the active schema snapshot; nil until loaded.
	schema *types.Schema
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach opens (or creates) the project database under config.DataDir and
// applies the schema DDL. Unlike a cache, the database is the source of
// truth for working annotations, so an existing file is never removed.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, DBFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening project database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return fmt.Errorf("applying project schema: %w", err)
	}

	b.db = db
	b.config = config
	b.attached = true
	b.schema = nil
	return nil
}

// Detach closes the database. Safe to call on a detached backend.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	b.attached = false
	b.schema = nil

	if err := b.db.Close(); err != nil {
		return fmt.Errorf("closing project database: %w", err)
	}
	b.db = nil
	return nil
}

// checkAttached returns ErrProjectDetached unless Attach succeeded.
// Callers must hold b.mu.
func (b *Backend) checkAttached() error {
	if !b.attached {
		return types.ErrProjectDetached
	}
	return nil
}
