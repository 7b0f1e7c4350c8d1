// Schema show command prints one pose schema.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var schemaShowCmd = &cobra.Command{
	Use:   "show <pose>",
	Short: "Show a pose schema",
	Args:  cobra.ExactArgs(1),
	RunE:  runSchemaShow,
}

func runSchemaShow(cmd *cobra.Command, args []string) error {
	lib, _, err := loadLibrary()
	if err != nil {
		return err
	}

	schema, err := lib.Get(args[0])
	if err != nil {
		return fmt.Errorf("pose %q: %w", args[0], err)
	}

	if flagJSON {
		return printJSON(schema)
	}

	fmt.Printf("Pose: %s\n", schema.Name)
	fmt.Println("Body parts:")
	for i, part := range schema.BodyParts {
		fmt.Printf("  %d: %s\n", i, part)
	}
	if len(schema.Connections) > 0 {
		fmt.Println("Connections:")
		for _, conn := range schema.Connections {
			fmt.Printf("  %s - %s\n", schema.BodyParts[conn[0]], schema.BodyParts[conn[1]])
		}
	}
	return nil
}
