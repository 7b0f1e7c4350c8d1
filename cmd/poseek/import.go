// Import command loads annotations from a CSV file into the project.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/poseek/poseek/internal/export"
)

var importDir string

var importCmd = &cobra.Command{
	Use:   "import <csv-file>",
	Short: "Import annotations from a Keypoints.csv file",
	Long: `Import reads a keypoint CSV file and stores its points in the project.

The CSV header must match the active schema. Rows for filenames not
present in the image directory are skipped, as are cells that cannot
be parsed.

Example:
  poseek import ./frames/Keypoints.csv --dir ./frames`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importDir, "dir", "", "image directory the CSV refers to (required)")
	_ = importCmd.MarkFlagRequired("dir")
}

func runImport(cmd *cobra.Command, args []string) error {
	project, err := attachProject()
	if err != nil {
		return err
	}
	defer project.Detach()

	sess, err := buildSession(project, importDir)
	if err != nil {
		return err
	}

	imported, err := export.ReadCSV(args[0], sess)
	if err != nil {
		return fmt.Errorf("read csv: %w", err)
	}

	if err := saveSession(project, sess); err != nil {
		return fmt.Errorf("save imported points: %w", err)
	}

	fmt.Printf("Imported %d images from %s\n", imported, args[0])
	return nil
}
