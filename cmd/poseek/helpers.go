// Shared helpers for poseek CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/poseek/poseek/internal/export"
	"github.com/poseek/poseek/internal/imagedir"
	"github.com/poseek/poseek/internal/poselib"
	"github.com/poseek/poseek/internal/sqlite"
	"github.com/poseek/poseek/pkg/types"
)

// attachProject resolves the data directory, creates a SQLite project
// store, and attaches it. The caller must defer project.Detach().
func attachProject() (*sqlite.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	project := sqlite.NewBackend()
	if err := project.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach project: %w", err)
	}

	return project, nil
}

// libraryPath returns the pose library location under the config dir.
func libraryPath() (string, error) {
	configDir, err := resolveConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(configDir, poselib.DefaultFileName), nil
}

// loadLibrary loads the pose library, returning it with its path.
func loadLibrary() (poselib.Library, string, error) {
	path, err := libraryPath()
	if err != nil {
		return nil, "", err
	}
	lib, err := poselib.Load(path)
	if err != nil {
		return nil, "", err
	}
	return lib, path, nil
}

// buildSession assembles a session over the images in dir: the active
// schema comes from the project store, and every image with stored
// points gets a hydrated annotation store.
func buildSession(project types.Project, dir string) (*types.Session, error) {
	schema, err := project.LoadSchema()
	if err != nil {
		return nil, err
	}

	images, err := imagedir.List(dir)
	if err != nil {
		return nil, err
	}

	sess := types.NewSession(schema, images)
	for _, image := range images {
		points, err := project.Points(image)
		if err != nil {
			return nil, err
		}
		if len(points) == 0 {
			continue
		}
		st, err := sess.Store(image)
		if err != nil {
			return nil, err
		}
		for part, p := range points {
			if err := st.SetPoint(part, p.X, p.Y); err != nil {
				return nil, err
			}
		}
	}
	return sess, nil
}

// saveSession writes every visited store back to the project: points
// placed in the session are upserted, points removed in the session are
// deleted.
func saveSession(project types.Project, sess *types.Session) error {
	for _, image := range sess.Images() {
		if !sess.Visited(image) {
			continue
		}
		st, err := sess.Store(image)
		if err != nil {
			return err
		}
		current := st.Points()

		stored, err := project.Points(image)
		if err != nil {
			return err
		}
		var removed []string
		for part := range stored {
			if _, ok := current[part]; !ok {
				removed = append(removed, part)
			}
		}
		if len(removed) > 0 {
			if err := project.DeletePoints(image, removed...); err != nil {
				return err
			}
		}

		for part, p := range current {
			if err := project.SetPoint(image, part, p); err != nil {
				return err
			}
		}
	}
	return nil
}

// cocoOptions builds the COCO export options from config, probing image
// dimensions under dir.
func cocoOptions(dir string) export.COCOOptions {
	return export.COCOOptions{
		CategoryName:  configCategoryName,
		Supercategory: configSupercategory,
		Dimensions: func(filename string) (int, int, error) {
			return imagedir.Dimensions(filepath.Join(dir, filename))
		},
	}
}

// printJSON renders v as indented JSON on stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
