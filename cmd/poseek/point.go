// Point command groups keypoint operations on the project store.
package main

import (
	"github.com/spf13/cobra"
)

var pointCmd = &cobra.Command{
	Use:   "point",
	Short: "Manage keypoints in the project store",
	Long: `Point reads and writes individual keypoints directly against the
project store, outside of an interactive annotation session.`,
}

func init() {
	pointCmd.AddCommand(pointSetCmd)
	pointCmd.AddCommand(pointDeleteCmd)
	pointCmd.AddCommand(pointListCmd)
}
