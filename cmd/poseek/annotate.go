// Annotate command runs the interactive annotation session.
package main

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/poseek/poseek/internal/export"
	"github.com/poseek/poseek/internal/tui"
	"github.com/poseek/poseek/pkg/types"
)

var annotateCmd = &cobra.Command{
	Use:   "annotate <dir>",
	Short: "Annotate images interactively",
	Long: `Annotate opens an interactive session over the images in a directory.

Keys:
  f          place the current body part at the cursor
  d / a      next / previous image
  arrows     move the cursor
  tab / j    next body part
  shift+tab / k  previous body part
  space      toggle selection of the current body part
  delete     remove the selected (or current) points
  esc        clear the selection
  ctrl+s     save to the project store and write CSV and COCO files
  q          quit

Saving writes Keypoints.csv and annotations.json into the image
directory alongside the project store update.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnnotate,
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	dir := args[0]

	project, err := attachProject()
	if err != nil {
		return err
	}
	defer project.Detach()

	sess, err := buildSession(project, dir)
	if err != nil {
		return err
	}
	if _, err := sess.Current(); err != nil {
		return fmt.Errorf("no images in %s: %w", dir, err)
	}

	saver := func(s *types.Session) error {
		if err := saveSession(project, s); err != nil {
			return fmt.Errorf("save session: %w", err)
		}
		if err := export.WriteCSV(filepath.Join(dir, export.CSVFileName), s); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
		if err := export.WriteCOCO(filepath.Join(dir, export.COCOFileName), s, cocoOptions(dir)); err != nil {
			return fmt.Errorf("write coco: %w", err)
		}
		return nil
	}

	app := tui.NewApp(sess, saver)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run annotation session: %w", err)
	}
	return nil
}
