// Version command for the poseek CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/poseek/poseek/pkg/poseek"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the poseek version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("poseek", poseek.Version)
	},
}
