// Point delete command removes keypoints from an image.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var pointDeleteCmd = &cobra.Command{
	Use:   "delete <image> <bodypart>...",
	Short: "Delete keypoints from an image",
	Long: `Delete removes the named keypoints from an image. Body parts with no
placed point are skipped. All names are validated against the active
schema before anything is removed.

Example:
  poseek point delete frame0001.png snout leftear`,
	Args: cobra.MinimumNArgs(2),
	RunE: runPointDelete,
}

func runPointDelete(cmd *cobra.Command, args []string) error {
	image, bodyparts := args[0], args[1:]

	project, err := attachProject()
	if err != nil {
		return err
	}
	defer project.Detach()

	if err := project.DeletePoints(image, bodyparts...); err != nil {
		return fmt.Errorf("delete points: %w", err)
	}

	fmt.Printf("Deleted %s from %s\n", strings.Join(bodyparts, ", "), image)
	return nil
}
