// This file implements the active schema snapshot: one row holding the
// keypoint schema every annotation operation validates against.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/poseek/poseek/pkg/types"
)

// SaveSchema validates the schema and replaces the stored snapshot.
// Points whose body part is not in the new schema are purged in the same
// transaction; every later operation validates names against the active
// snapshot, so stale rows would otherwise be unreachable.
func (b *Backend) SaveSchema(schema types.Schema) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.checkAttached(); err != nil {
		return err
	}
	if err := schema.Validate(); err != nil {
		return err
	}

	bodyparts, err := json.Marshal(schema.BodyParts)
	if err != nil {
		return fmt.Errorf("encoding bodyparts: %w", err)
	}
	connections, err := json.Marshal(schema.Connections)
	if err != nil {
		return fmt.Errorf("encoding connections: %w", err)
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	if _, err := tx.Exec(`INSERT INTO schema_snapshot (snapshot_id, name, bodyparts, connections, updated_at)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(snapshot_id) DO UPDATE SET
			name = excluded.name,
			bodyparts = excluded.bodyparts,
			connections = excluded.connections,
			updated_at = excluded.updated_at`,
		schema.Name, string(bodyparts), string(connections), now); err != nil {
		return fmt.Errorf("saving schema snapshot: %w", err)
	}

	placeholders := make([]string, len(schema.BodyParts))
	args := make([]any, len(schema.BodyParts))
	for i, part := range schema.BodyParts {
		placeholders[i] = "?"
		args[i] = part
	}
	if _, err := tx.Exec(
		"DELETE FROM points WHERE bodypart NOT IN ("+strings.Join(placeholders, ", ")+")",
		args...,
	); err != nil {
		return fmt.Errorf("purging stale points: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing schema snapshot: %w", err)
	}

	cp := schema
	b.schema = &cp
	return nil
}

// LoadSchema returns the active schema snapshot.
// Returns ErrNoActiveSchema if none has been saved.
func (b *Backend) LoadSchema() (types.Schema, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.checkAttached(); err != nil {
		return types.Schema{}, err
	}
	return b.loadSchemaLocked()
}

// loadSchemaLocked hydrates the snapshot row, consulting the cache first.
// Callers must hold b.mu.
func (b *Backend) loadSchemaLocked() (types.Schema, error) {
	if b.schema != nil {
		return *b.schema, nil
	}

	var name, bodyparts, connections string
	err := b.db.QueryRow(
		"SELECT name, bodyparts, connections FROM schema_snapshot WHERE snapshot_id = 1",
	).Scan(&name, &bodyparts, &connections)
	if err == sql.ErrNoRows {
		return types.Schema{}, types.ErrNoActiveSchema
	}
	if err != nil {
		return types.Schema{}, fmt.Errorf("loading schema snapshot: %w", err)
	}

	schema := types.Schema{Name: name}
	if err := json.Unmarshal([]byte(bodyparts), &schema.BodyParts); err != nil {
		return types.Schema{}, fmt.Errorf("decoding bodyparts: %w", err)
	}
	if err := json.Unmarshal([]byte(connections), &schema.Connections); err != nil {
		return types.Schema{}, fmt.Errorf("decoding connections: %w", err)
	}
	if err := schema.Validate(); err != nil {
		return types.Schema{}, fmt.Errorf("stored schema snapshot: %w", err)
	}

	b.schema = &schema
	return schema, nil
}
