// Schema list command enumerates poses in the library.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var schemaListCmd = &cobra.Command{
	Use:   "list",
	Short: "List poses in the library",
	Args:  cobra.NoArgs,
	RunE:  runSchemaList,
}

func runSchemaList(cmd *cobra.Command, args []string) error {
	lib, _, err := loadLibrary()
	if err != nil {
		return err
	}

	poses := lib.Poses()
	if flagJSON {
		return printJSON(poses)
	}
	for _, pose := range poses {
		schema := lib[pose]
		fmt.Printf("%s\t%d body parts\t%d connections\n",
			pose, len(schema.BodyParts), len(schema.Connections))
	}
	return nil
}
