package types

import "errors"

// Project lifecycle and lookup errors.
var (
	ErrProjectDetached = errors.New("project is detached")
	ErrAlreadyAttached = errors.New("project is already attached")
	ErrNoActiveSchema  = errors.New("no active schema in project")
	ErrNotFound        = errors.New("record not found")
	ErrInvalidData     = errors.New("invalid record data")
)

// Project is the persistent working store for annotations. Implementations
// keep the active schema snapshot and the per-image points durable between
// runs, before any CSV or COCO export happens.
type Project interface {
	// Attach initializes the store from a validated Config.
	// Returns ErrAlreadyAttached on a second call.
	Attach(config Config) error

	// Detach releases resources. Safe to call on a detached project.
	Detach() error

	// SaveSchema replaces the active schema snapshot.
	SaveSchema(schema Schema) error

	// LoadSchema returns the active schema snapshot.
	// Returns ErrNoActiveSchema if none has been saved.
	LoadSchema() (Schema, error)

	// AddImages registers image filenames, preserving first-seen order.
	// Already-known names are ignored.
	AddImages(names ...string) error

	// Images returns registered image filenames in first-seen order.
	Images() ([]string, error)

	// SetPoint upserts one keypoint for an image. The image is registered
	// if it is not yet known. Returns ErrUnknownBodyPart if the body part
	// is not in the active schema.
	SetPoint(image, bodypart string, p Point) error

	// DeletePoints removes the named keypoints from an image. Absent
	// points are skipped. Returns ErrUnknownBodyPart if any name is not
	// in the active schema.
	DeletePoints(image string, bodyparts ...string) error

	// Points returns the placed keypoints for an image, keyed by body
	// part name. An unknown image yields an empty map.
	Points(image string) (map[string]Point, error)
}
