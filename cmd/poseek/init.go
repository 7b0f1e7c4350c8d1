// Init command bootstraps a poseek project.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/poseek/poseek/internal/poselib"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the poseek config and project store",
	Long: `Init creates the configuration directory with a default config.yaml
and an empty pose library, and initializes the project database under
the data directory.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir, err := resolveConfigDir()
	if err != nil {
		return err
	}

	// PersistentPreRunE already wrote config.yaml; make sure the pose
	// library exists too.
	lib, path, err := loadLibrary()
	if err != nil {
		return err
	}
	if err := poselib.Save(path, lib); err != nil {
		return err
	}

	project, err := attachProject()
	if err != nil {
		return err
	}
	defer project.Detach()

	dataDir, err := resolveDataDir()
	if err != nil {
		return err
	}

	fmt.Printf("Initialized poseek project\n")
	fmt.Printf("  config: %s\n", configDir)
	fmt.Printf("  data:   %s\n", dataDir)
	return nil
}
