// Schema delete command removes a pose from the library.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/poseek/poseek/internal/poselib"
)

var schemaDeleteCmd = &cobra.Command{
	Use:   "delete <pose>",
	Short: "Delete a pose from the library",
	Args:  cobra.ExactArgs(1),
	RunE:  runSchemaDelete,
}

func runSchemaDelete(cmd *cobra.Command, args []string) error {
	lib, path, err := loadLibrary()
	if err != nil {
		return err
	}

	if err := lib.Delete(args[0]); err != nil {
		return fmt.Errorf("pose %q: %w", args[0], err)
	}
	if err := poselib.Save(path, lib); err != nil {
		return fmt.Errorf("save pose library: %w", err)
	}

	fmt.Printf("Deleted pose %q\n", args[0])
	return nil
}
