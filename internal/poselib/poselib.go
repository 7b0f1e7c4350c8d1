// Package poselib reads and writes the pose library file: a YAML mapping
// of pose name to keypoint schema that annotation sessions load their
// active schema from.
package poselib

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/poseek/poseek/pkg/types"
)

// DefaultFileName is the pose library file created under the config
// directory.
const DefaultFileName = "keypoints.yaml"

// Library is a collection of keypoint schemas keyed by pose name.
type Library map[string]types.Schema

// Load reads a pose library from path. A missing file is not an error and
// yields an empty library. Every schema in the file is validated; the
// first invalid one fails the load.
func Load(path string) (Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Library{}, nil
		}
		return nil, fmt.Errorf("reading pose library: %w", err)
	}

	lib := Library{}
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("parsing pose library %s: %w", path, err)
	}

	for pose, schema := range lib {
		if err := schema.Validate(); err != nil {
			return nil, fmt.Errorf("pose %q: %w", pose, err)
		}
	}
	return lib, nil
}

// Save atomically writes the library to path using the temp-file, rename
// pattern. The parent directory must exist.
func Save(path string, lib Library) error {
	data, err := yaml.Marshal(lib)
	if err != nil {
		return fmt.Errorf("encoding pose library: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".poselib-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing pose library: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing pose library: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming pose library: %w", err)
	}
	return nil
}

// Get returns the schema for a pose name.
// Returns types.ErrNotFound if the pose is not in the library.
func (l Library) Get(pose string) (types.Schema, error) {
	schema, ok := l[pose]
	if !ok {
		return types.Schema{}, types.ErrNotFound
	}
	return schema, nil
}

// Set validates and stores a schema under its pose name, replacing any
// existing entry.
func (l Library) Set(schema types.Schema) error {
	if err := schema.Validate(); err != nil {
		return err
	}
	l[schema.Name] = schema
	return nil
}

// Delete removes a pose from the library.
// Returns types.ErrNotFound if the pose is not in the library.
func (l Library) Delete(pose string) error {
	if _, ok := l[pose]; !ok {
		return types.ErrNotFound
	}
	delete(l, pose)
	return nil
}

// Poses returns the pose names in sorted order.
func (l Library) Poses() []string {
	poses := make([]string, 0, len(l))
	for pose := range l {
		poses = append(poses, pose)
	}
	sort.Strings(poses)
	return poses
}
