package types

import "errors"

// Schema validation errors.
var (
	ErrPoseNameEmpty        = errors.New("pose name must not be empty")
	ErrNoBodyParts          = errors.New("schema must define at least one body part")
	ErrBodyPartEmpty        = errors.New("body part name must not be empty")
	ErrDuplicateBodyPart    = errors.New("duplicate body part name")
	ErrConnectionOutOfRange = errors.New("connection index out of range")
	ErrConnectionSelfLoop   = errors.New("connection joins a body part to itself")
	ErrDuplicateConnection  = errors.New("duplicate connection")
)

// Connection is an unordered pair of body part indices forming one
// skeleton edge.
type Connection [2]int

// Schema is the user-defined keypoint layout: an ordered list of body part
// names plus the skeleton connections between them. A Schema is a value
// type; once loaded into a session it is never mutated.
type Schema struct {
	Name        string       `json:"name" yaml:"name"`
	BodyParts   []string     `json:"bodyparts" yaml:"bodyparts"`
	Connections []Connection `json:"connections" yaml:"connections"`
}

// Define builds a Schema from a pose name, ordered body part names, and
// skeleton connections. Returns a sentinel error from this package if the
// definition is not well-formed.
func Define(name string, bodyparts []string, connections []Connection) (Schema, error) {
	s := Schema{
		Name:        name,
		BodyParts:   append([]string(nil), bodyparts...),
		Connections: append([]Connection(nil), connections...),
	}
	if err := s.Validate(); err != nil {
		return Schema{}, err
	}
	return s, nil
}

// Validate checks that the schema is well-formed: the pose name and every
// body part name is non-empty, body part names are unique, and every
// connection references two distinct existing body part indices.
func (s Schema) Validate() error {
	if s.Name == "" {
		return ErrPoseNameEmpty
	}
	if len(s.BodyParts) == 0 {
		return ErrNoBodyParts
	}

	seen := make(map[string]bool, len(s.BodyParts))
	for _, part := range s.BodyParts {
		if part == "" {
			return ErrBodyPartEmpty
		}
		if seen[part] {
			return ErrDuplicateBodyPart
		}
		seen[part] = true
	}

	edges := make(map[Connection]bool, len(s.Connections))
	for _, conn := range s.Connections {
		a, b := conn[0], conn[1]
		if a < 0 || a >= len(s.BodyParts) || b < 0 || b >= len(s.BodyParts) {
			return ErrConnectionOutOfRange
		}
		if a == b {
			return ErrConnectionSelfLoop
		}
		// Connections are unordered; normalize before the duplicate check.
		if b < a {
			a, b = b, a
		}
		key := Connection{a, b}
		if edges[key] {
			return ErrDuplicateConnection
		}
		edges[key] = true
	}
	return nil
}

// Index returns the position of the named body part in schema order, and
// whether the name belongs to the schema.
func (s Schema) Index(bodypart string) (int, bool) {
	for i, part := range s.BodyParts {
		if part == bodypart {
			return i, true
		}
	}
	return 0, false
}

// NumKeypoints returns the number of body parts in the schema.
func (s Schema) NumKeypoints() int {
	return len(s.BodyParts)
}
