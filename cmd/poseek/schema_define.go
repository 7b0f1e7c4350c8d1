// Schema define command adds a pose schema to the library.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/poseek/poseek/internal/poselib"
	"github.com/poseek/poseek/pkg/types"
)

var (
	defineName        string
	defineBodyParts   []string
	defineConnections []string
)

var schemaDefineCmd = &cobra.Command{
	Use:   "define",
	Short: "Define a pose schema in the library",
	Long: `Define validates a pose schema and stores it in the pose library.

Body parts are given in order; connections reference them by index.

Example:
  poseek schema define --name mouse \
    --bodyparts snout,leftear,rightear,tailbase \
    --connections 0-1,0-2,1-3,2-3`,
	Args: cobra.NoArgs,
	RunE: runSchemaDefine,
}

func init() {
	schemaDefineCmd.Flags().StringVar(&defineName, "name", "", "pose name (required)")
	schemaDefineCmd.Flags().StringSliceVar(&defineBodyParts, "bodyparts", nil, "ordered body part names (required)")
	schemaDefineCmd.Flags().StringSliceVar(&defineConnections, "connections", nil, "skeleton edges as index pairs, e.g. 0-1,1-2")
	_ = schemaDefineCmd.MarkFlagRequired("name")
	_ = schemaDefineCmd.MarkFlagRequired("bodyparts")
}

func runSchemaDefine(cmd *cobra.Command, args []string) error {
	connections, err := parseConnections(defineConnections)
	if err != nil {
		return err
	}

	schema, err := types.Define(defineName, defineBodyParts, connections)
	if err != nil {
		return fmt.Errorf("define schema: %w", err)
	}

	lib, path, err := loadLibrary()
	if err != nil {
		return err
	}
	if err := lib.Set(schema); err != nil {
		return err
	}
	if err := poselib.Save(path, lib); err != nil {
		return fmt.Errorf("save pose library: %w", err)
	}

	if flagJSON {
		return printJSON(schema)
	}
	fmt.Printf("Defined pose %q with %d body parts and %d connections\n",
		schema.Name, len(schema.BodyParts), len(schema.Connections))
	return nil
}

// parseConnections turns "0-1" style pairs into connection indices.
func parseConnections(pairs []string) ([]types.Connection, error) {
	connections := make([]types.Connection, 0, len(pairs))
	for _, pair := range pairs {
		parts := strings.SplitN(pair, "-", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid connection %q (expected a-b): %w", pair, types.ErrInvalidData)
		}
		a, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid connection %q: %w", pair, types.ErrInvalidData)
		}
		b, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid connection %q: %w", pair, types.ErrInvalidData)
		}
		connections = append(connections, types.Connection{a, b})
	}
	return connections, nil
}
