// Point set command upserts one keypoint.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/poseek/poseek/pkg/types"
)

var pointSetCmd = &cobra.Command{
	Use:   "set <image> <bodypart> <x> <y>",
	Short: "Set a keypoint for an image",
	Long: `Set places or moves a keypoint. The body part must belong to the
active schema; the image is registered on first use.

Example:
  poseek point set frame0001.png snout 312.5 204.0`,
	Args: cobra.ExactArgs(4),
	RunE: runPointSet,
}

func runPointSet(cmd *cobra.Command, args []string) error {
	image, bodypart := args[0], args[1]
	x, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("invalid x %q: %w", args[2], types.ErrInvalidData)
	}
	y, err := strconv.ParseFloat(args[3], 64)
	if err != nil {
		return fmt.Errorf("invalid y %q: %w", args[3], types.ErrInvalidData)
	}

	project, err := attachProject()
	if err != nil {
		return err
	}
	defer project.Detach()

	if err := project.SetPoint(image, bodypart, types.Point{X: x, Y: y}); err != nil {
		return fmt.Errorf("set point: %w", err)
	}

	fmt.Printf("Set %s on %s at (%s, %s)\n", bodypart, image, args[2], args[3])
	return nil
}
