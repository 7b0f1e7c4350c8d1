// Export command writes annotation files from the project store.
package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/poseek/poseek/internal/export"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export <csv|coco> <dir>",
	Short: "Export annotations for an image directory",
	Long: `Export builds a session from the project store over the images in a
directory and writes the annotation file.

Formats:
  csv   Keypoints.csv with one row per annotated image
  coco  annotations.json in COCO keypoint format

The file is written into the image directory unless --out is given.

Example:
  poseek export csv ./frames
  poseek export coco ./frames --out /tmp/annotations.json`,
	Args: cobra.ExactArgs(2),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file path (default: inside the image directory)")
}

func runExport(cmd *cobra.Command, args []string) error {
	format, dir := args[0], args[1]

	project, err := attachProject()
	if err != nil {
		return err
	}
	defer project.Detach()

	sess, err := buildSession(project, dir)
	if err != nil {
		return err
	}

	switch format {
	case "csv":
		out := exportOut
		if out == "" {
			out = filepath.Join(dir, export.CSVFileName)
		}
		if err := export.WriteCSV(out, sess); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
		fmt.Printf("Wrote %s (%d annotated images)\n", out, sess.Annotated())
	case "coco":
		out := exportOut
		if out == "" {
			out = filepath.Join(dir, export.COCOFileName)
		}
		if err := export.WriteCOCO(out, sess, cocoOptions(dir)); err != nil {
			return fmt.Errorf("write coco: %w", err)
		}
		fmt.Printf("Wrote %s (%d annotated images)\n", out, sess.Annotated())
	default:
		return fmt.Errorf("unknown format %q (valid: csv, coco)", format)
	}
	return nil
}
