// Schema command groups the pose schema operations.
package main

import (
	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Manage pose schemas",
	Long: `Schema manages the pose library: named keypoint schemas with their
body parts and skeleton connections.

A schema must be activated with "schema use" before points can be
placed or annotations exported.`,
}

func init() {
	schemaCmd.AddCommand(schemaDefineCmd)
	schemaCmd.AddCommand(schemaListCmd)
	schemaCmd.AddCommand(schemaShowCmd)
	schemaCmd.AddCommand(schemaDeleteCmd)
	schemaCmd.AddCommand(schemaUseCmd)
}
