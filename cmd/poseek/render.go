// Render command draws annotated copies of an image directory.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/poseek/poseek/internal/render"
)

var renderPointRadius float64

var renderCmd = &cobra.Command{
	Use:   "render <srcdir> [destdir]",
	Short: "Render images with their keypoints drawn on",
	Long: `Render draws every annotated image with its keypoints and skeleton
connections and writes the result to the destination directory.
Unannotated images are copied unchanged.

When no destination is given, output goes to an Export subdirectory
of the source.

Example:
  poseek render ./frames
  poseek render ./frames ./labeled --point-radius 6`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().Float64Var(&renderPointRadius, "point-radius", 0, "keypoint marker radius in pixels (default 4)")
}

func runRender(cmd *cobra.Command, args []string) error {
	srcDir := args[0]
	destDir := srcDir
	if len(args) == 2 {
		destDir = args[1]
	}

	project, err := attachProject()
	if err != nil {
		return err
	}
	defer project.Detach()

	sess, err := buildSession(project, srcDir)
	if err != nil {
		return err
	}

	written, err := render.Directory(srcDir, destDir, sess, render.Options{PointRadius: renderPointRadius})
	if err != nil {
		return fmt.Errorf("render images: %w", err)
	}

	fmt.Printf("Rendered %d images\n", written)
	return nil
}
