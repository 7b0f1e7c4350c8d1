// Schema use command activates a pose for the project.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var schemaUseCmd = &cobra.Command{
	Use:   "use <pose>",
	Short: "Activate a pose schema for the project",
	Long: `Use snapshots the named pose from the library into the project store.
All point operations and exports follow the active schema.

Later edits to the library do not affect the project until "use" is
run again.`,
	Args: cobra.ExactArgs(1),
	RunE: runSchemaUse,
}

func runSchemaUse(cmd *cobra.Command, args []string) error {
	lib, _, err := loadLibrary()
	if err != nil {
		return err
	}

	schema, err := lib.Get(args[0])
	if err != nil {
		return fmt.Errorf("pose %q: %w", args[0], err)
	}

	project, err := attachProject()
	if err != nil {
		return err
	}
	defer project.Detach()

	if err := project.SaveSchema(schema); err != nil {
		return fmt.Errorf("activate schema: %w", err)
	}

	fmt.Printf("Active pose is now %q (%d body parts)\n", schema.Name, len(schema.BodyParts))
	return nil
}
