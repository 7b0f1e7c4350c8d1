// Package export serializes an annotation session to the two exchange
// formats: the Keypoints.csv table and the COCO keypoints JSON.
package export

import (
	"fmt"
	"os"
	"path/filepath"
)

// Conventional output file names.
const (
	CSVFileName  = "Keypoints.csv"
	COCOFileName = "annotations.json"
)

// writeFileAtomic writes data to path using the temp-file, fsync, rename
// pattern so a failed save never leaves a truncated export behind.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".export-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing export: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing export: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming export: %w", err)
	}
	return nil
}
