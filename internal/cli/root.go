// Package cli provides the command-line interface for quadrant.
package cli

import (
	"fmt"

	"github.com/runoshun/quadrant/internal/app"
	"github.com/runoshun/quadrant/internal/domain"
	"github.com/runoshun/quadrant/internal/tui"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupBoard  = "board"
	groupGoal   = "goal"
	groupReport = "report"
	groupSetup  = "setup"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = tui.Run

// NewRootCommand creates the root command for quadrant.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var server, view string

	root := &cobra.Command{
		Use:   "quadrant",
		Short: "Urgent/important task board for the terminal",
		Long: `quadrant shows the tasks of a day or an ISO week on a 2x2 board
split by urgency and importance, backed by a remote task store.

Running quadrant without a subcommand opens the interactive board.
Tasks carried over from earlier periods are shown with a badge and are
always updated in the period they came from.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil {
				return nil
			}

			if c.AppConfig != nil {
				for _, w := range c.AppConfig.Warnings {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
				}
			}

			if view != "" {
				kind, err := domain.ParsePeriodKind(view)
				if err != nil {
					return err
				}
				c.AppConfig.Board.DefaultView = string(kind)
			}
			if server != "" {
				c.UseServer(server)
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	root.PersistentFlags().StringVar(&server, "server", "", "Task store URL (overrides store.base_url)")
	root.PersistentFlags().StringVar(&view, "view", "", "Default period: daily or weekly")

	// Define command groups
	root.AddGroup(
		&cobra.Group{ID: groupBoard, Title: "Board Commands:"},
		&cobra.Group{ID: groupGoal, Title: "Weekly Goals:"},
		&cobra.Group{ID: groupReport, Title: "Reports:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	boardCmds := []*cobra.Command{
		newListCommand(c),
		newAddCommand(c),
		newActionCommand(c, domain.ActionStart),
		newActionCommand(c, domain.ActionDone),
		newActionCommand(c, domain.ActionCancel),
		newProgressCommand(c),
		newNoteCommand(c),
		newMoveCommand(c),
		newDeleteCommand(c),
	}
	for _, cmd := range boardCmds {
		cmd.GroupID = groupBoard
	}

	goalCmd := newGoalCommand(c)
	goalCmd.GroupID = groupGoal

	reportCmd := newReportCommand(c)
	reportCmd.GroupID = groupReport

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(boardCmds...)
	root.AddCommand(goalCmd, reportCmd, configCmd)

	return root
}
