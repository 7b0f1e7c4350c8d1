// This file implements image registration and keypoint persistence.
// Point records carry UUID v7 ids so their creation order is recoverable.
package sqlite

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/poseek/poseek/pkg/types"
)

// AddImages registers image filenames, preserving first-seen order.
// Already-known names are ignored.
func (b *Backend) AddImages(names ...string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.checkAttached(); err != nil {
		return err
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, name := range names {
		if name == "" {
			return types.ErrInvalidData
		}
		if _, err := tx.Exec(
			"INSERT OR IGNORE INTO images (image, first_seen) VALUES (?, ?)",
			name, now,
		); err != nil {
			return fmt.Errorf("registering image %s: %w", name, err)
		}
	}
	return tx.Commit()
}

// Images returns registered image filenames in first-seen order.
func (b *Backend) Images() ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if err := b.checkAttached(); err != nil {
		return nil, err
	}

	rows, err := b.db.Query("SELECT image FROM images ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("listing images: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning image row: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// SetPoint upserts one keypoint for an image, registering the image if it
// is not yet known. Returns ErrUnknownBodyPart if the body part is not in
// the active schema, ErrNoActiveSchema if no schema has been saved.
func (b *Backend) SetPoint(image, bodypart string, p types.Point) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.checkAttached(); err != nil {
		return err
	}
	if image == "" {
		return types.ErrInvalidData
	}

	schema, err := b.loadSchemaLocked()
	if err != nil {
		return err
	}
	if _, ok := schema.Index(bodypart); !ok {
		return types.ErrUnknownBodyPart
	}

	pointID, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generating point id: %w", err)
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	if _, err := tx.Exec(
		"INSERT OR IGNORE INTO images (image, first_seen) VALUES (?, ?)",
		image, now,
	); err != nil {
		return fmt.Errorf("registering image %s: %w", image, err)
	}

	if _, err := tx.Exec(`INSERT INTO points (point_id, image, bodypart, x, y, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(image, bodypart) DO UPDATE SET
			x = excluded.x,
			y = excluded.y,
			updated_at = excluded.updated_at`,
		pointID.String(), image, bodypart, p.X, p.Y, now, now,
	); err != nil {
		return fmt.Errorf("saving point %s/%s: %w", image, bodypart, err)
	}
	return tx.Commit()
}

// DeletePoints removes the named keypoints from an image. Absent points
// are skipped. Returns ErrUnknownBodyPart if any name is not in the
// active schema; in that case nothing is deleted.
func (b *Backend) DeletePoints(image string, bodyparts ...string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.checkAttached(); err != nil {
		return err
	}

	schema, err := b.loadSchemaLocked()
	if err != nil {
		return err
	}
	for _, part := range bodyparts {
		if _, ok := schema.Index(part); !ok {
			return types.ErrUnknownBodyPart
		}
	}

	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, part := range bodyparts {
		if _, err := tx.Exec(
			"DELETE FROM points WHERE image = ? AND bodypart = ?",
			image, part,
		); err != nil {
			return fmt.Errorf("deleting point %s/%s: %w", image, part, err)
		}
	}
	return tx.Commit()
}

// Points returns the placed keypoints for an image, keyed by body part
// name. An unknown image yields an empty map.
func (b *Backend) Points(image string) (map[string]types.Point, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if err := b.checkAttached(); err != nil {
		return nil, err
	}

	rows, err := b.db.Query(
		"SELECT bodypart, x, y FROM points WHERE image = ?", image,
	)
	if err != nil {
		return nil, fmt.Errorf("querying points for %s: %w", image, err)
	}
	defer rows.Close()

	points := make(map[string]types.Point)
	for rows.Next() {
		var part string
		var p types.Point
		if err := rows.Scan(&part, &p.X, &p.Y); err != nil {
			return nil, fmt.Errorf("scanning point row: %w", err)
		}
		points[part] = p
	}
	return points, rows.Err()
}
