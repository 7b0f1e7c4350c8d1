package types

import "errors"

// Store operation errors.
var (
	ErrUnknownBodyPart = errors.New("body part not in active schema")
)

// Point is a keypoint coordinate in image pixel space. Coordinates are
// accepted as placed; points outside the image bounds are valid.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Store holds the placed keypoints for a single image, keyed by body part
// name. The key domain is bounded by the body part set of the schema the
// store was created with; every mutating operation rejects names outside
// that set.
type Store struct {
	schema Schema
	points map[string]Point
}

// NewStore creates an empty store bound to the given schema.
func NewStore(schema Schema) *Store {
	return &Store{
		schema: schema,
		points: make(map[string]Point),
	}
}

// SetPoint inserts or overwrites the coordinate for a body part.
// Returns ErrUnknownBodyPart if the name is not in the schema.
func (st *Store) SetPoint(bodypart string, x, y float64) error {
	if _, ok := st.schema.Index(bodypart); !ok {
		return ErrUnknownBodyPart
	}
	st.points[bodypart] = Point{X: x, Y: y}
	return nil
}

// DeletePoint clears the coordinate for a body part. Deleting an absent
// point is not an error. Returns ErrUnknownBodyPart if the name is not in
// the schema.
func (st *Store) DeletePoint(bodypart string) error {
	if _, ok := st.schema.Index(bodypart); !ok {
		return ErrUnknownBodyPart
	}
	delete(st.points, bodypart)
	return nil
}

// DeleteSelected clears the coordinates for multiple body parts. All names
// are validated first; if any is unknown, no point is deleted.
func (st *Store) DeleteSelected(bodyparts ...string) error {
	for _, part := range bodyparts {
		if _, ok := st.schema.Index(part); !ok {
			return ErrUnknownBodyPart
		}
	}
	for _, part := range bodyparts {
		delete(st.points, part)
	}
	return nil
}

// Point returns the coordinate for a body part and whether it is placed.
func (st *Store) Point(bodypart string) (Point, bool) {
	p, ok := st.points[bodypart]
	return p, ok
}

// Points returns a copy of all placed points keyed by body part name.
func (st *Store) Points() map[string]Point {
	result := make(map[string]Point, len(st.points))
	for k, v := range st.points {
		result[k] = v
	}
	return result
}

// Len returns the number of placed points.
func (st *Store) Len() int {
	return len(st.points)
}

// Schema returns the schema the store is bound to.
func (st *Store) Schema() Schema {
	return st.schema
}
