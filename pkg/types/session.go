package types

import "errors"

// Session errors.
var (
	ErrUnknownImage = errors.New("image not in session")
	ErrNoImages     = errors.New("session has no images")
)

// Session owns the active schema, the per-image annotation stores, and the
// current image cursor. Stores are created lazily when an image is first
// visited and do not outlive the session.
type Session struct {
	schema Schema
	images []string
	stores map[string]*Store
	cursor int
}

// NewSession creates a session over the given image filenames. The image
// order is preserved and becomes the export row order.
func NewSession(schema Schema, images []string) *Session {
	return &Session{
		schema: schema,
		images: append([]string(nil), images...),
		stores: make(map[string]*Store),
	}
}

// Schema returns the active schema.
func (s *Session) Schema() Schema {
	return s.schema
}

// Images returns the image filenames in iteration order.
func (s *Session) Images() []string {
	return append([]string(nil), s.images...)
}

// Current returns the filename under the cursor.
// Returns ErrNoImages for an empty session.
func (s *Session) Current() (string, error) {
	if len(s.images) == 0 {
		return "", ErrNoImages
	}
	return s.images[s.cursor], nil
}

// Next advances the cursor, clamping at the last image, and returns the
// new current filename.
func (s *Session) Next() (string, error) {
	if len(s.images) == 0 {
		return "", ErrNoImages
	}
	if s.cursor < len(s.images)-1 {
		s.cursor++
	}
	return s.images[s.cursor], nil
}

// Prev moves the cursor back, clamping at the first image, and returns the
// new current filename.
func (s *Session) Prev() (string, error) {
	if len(s.images) == 0 {
		return "", ErrNoImages
	}
	if s.cursor > 0 {
		s.cursor--
	}
	return s.images[s.cursor], nil
}

// Store returns the annotation store for an image, creating it on first
// visit. Returns ErrUnknownImage if the filename is not part of the
// session.
func (s *Session) Store(filename string) (*Store, error) {
	if st, ok := s.stores[filename]; ok {
		return st, nil
	}
	found := false
	for _, img := range s.images {
		if img == filename {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrUnknownImage
	}
	st := NewStore(s.schema)
	s.stores[filename] = st
	return st, nil
}

// Visited reports whether a store has been created for the image.
func (s *Session) Visited(filename string) bool {
	_, ok := s.stores[filename]
	return ok
}

// Annotated returns the number of images with at least one placed point.
func (s *Session) Annotated() int {
	n := 0
	for _, st := range s.stores {
		if st.Len() > 0 {
			n++
		}
	}
	return n
}
