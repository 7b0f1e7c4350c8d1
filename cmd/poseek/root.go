// Root command for the poseek CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/poseek/poseek/internal/paths"
	"github.com/poseek/poseek/pkg/poseek"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// Values loaded from config.yaml by PersistentPreRunE so all subcommands
// can use them.
var (
	configDataDir       string
	configCategoryName  string
	configSupercategory string
)

var rootCmd = &cobra.Command{
	Use:           "poseek",
	Short:         "Poseek is a keypoint annotation toolkit",
	Version:       poseek.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		configCategoryName = cfg.GetString(cfgKeyCategoryName)
		configSupercategory = cfg.GetString(cfgKeySupercategory)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.poseek-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(pointCmd)
	rootCmd.AddCommand(imagesCmd)
	rootCmd.AddCommand(annotateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(renderCmd)
}

// resolveDataDir returns the data directory path following the
// precedence: --data-dir flag > config.yaml data_dir > POSEEK_DATA_DIR
// env > default $(CWD)/.poseek-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > POSEEK_CONFIG_DIR env > platform
// default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
