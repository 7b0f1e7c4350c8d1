// Point list command prints stored keypoints for an image.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pointListCmd = &cobra.Command{
	Use:   "list <image>",
	Short: "List stored keypoints for an image",
	Args:  cobra.ExactArgs(1),
	RunE:  runPointList,
}

func runPointList(cmd *cobra.Command, args []string) error {
	project, err := attachProject()
	if err != nil {
		return err
	}
	defer project.Detach()

	points, err := project.Points(args[0])
	if err != nil {
		return fmt.Errorf("load points: %w", err)
	}

	if flagJSON {
		return printJSON(points)
	}

	schema, err := project.LoadSchema()
	if err != nil {
		return err
	}
	for _, part := range schema.BodyParts {
		p, ok := points[part]
		if !ok {
			fmt.Printf("%s\t-\n", part)
			continue
		}
		fmt.Printf("%s\t(%g, %g)\n", part, p.X, p.Y)
	}
	return nil
}
