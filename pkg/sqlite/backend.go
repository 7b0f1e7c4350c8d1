// Package sqlite provides the public API for the SQLite project store.
// It exposes the factory function while keeping implementation details
// internal.
//
// Example:
//
//	project := sqlite.NewBackend()
//	err := project.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".poseek-db",
//	})
//	defer project.Detach()
package sqlite

import (
	"github.com/poseek/poseek/internal/sqlite"
	"github.com/poseek/poseek/pkg/types"
)

// NewBackend creates a new SQLite project store.
// The store is not attached; call Attach with a Config to initialize.
func NewBackend() types.Project {
	return sqlite.NewBackend()
}
