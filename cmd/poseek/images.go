// Images command lists the images in a directory with annotation progress.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/poseek/poseek/internal/imagedir"
)

var imagesCmd = &cobra.Command{
	Use:   "images <dir>",
	Short: "List images in a directory with annotation counts",
	Long: `Images scans a directory for supported image files, sorts them in
natural order, and reports how many keypoints of the active schema
each one has in the project store.

Supported formats: jpg, jpeg, png, bmp, gif, webp.`,
	Args: cobra.ExactArgs(1),
	RunE: runImages,
}

func runImages(cmd *cobra.Command, args []string) error {
	names, err := imagedir.List(args[0])
	if err != nil {
		return fmt.Errorf("list images: %w", err)
	}

	project, err := attachProject()
	if err != nil {
		return err
	}
	defer project.Detach()

	schema, err := project.LoadSchema()
	if err != nil {
		return err
	}
	total := schema.NumKeypoints()

	type imageStatus struct {
		Filename string `json:"filename"`
		Placed   int    `json:"placed"`
		Total    int    `json:"total"`
	}

	statuses := make([]imageStatus, 0, len(names))
	for _, name := range names {
		points, err := project.Points(name)
		if err != nil {
			return err
		}
		statuses = append(statuses, imageStatus{Filename: name, Placed: len(points), Total: total})
	}

	if flagJSON {
		return printJSON(statuses)
	}
	for _, s := range statuses {
		fmt.Printf("%s\t%d/%d\n", s.Filename, s.Placed, s.Total)
	}
	return nil
}
