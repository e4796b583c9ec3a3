package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/runoshun/quadrant/internal/app"
	"github.com/runoshun/quadrant/internal/domain"
	"github.com/runoshun/quadrant/internal/usecase"
	"github.com/spf13/cobra"
)

// newGoalCommand creates the goal command.
func newGoalCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage weekly goals",
		Long: `Manage the goal list of an ISO week.

Goals are numbered from 1 in the order "quadrant goal list" shows them.
Without --week or --date the current week is used.`,
		// No RunE: shows subcommand list when called without arguments
	}

	cmd.AddCommand(newGoalListCommand(c))
	cmd.AddCommand(newGoalAddCommand(c))
	cmd.AddCommand(newGoalEditCommand(c, usecase.GoalComplete, "Mark a goal as completed"))
	cmd.AddCommand(newGoalEditCommand(c, usecase.GoalReopen, "Mark a goal as not completed"))
	cmd.AddCommand(newGoalDeleteCommand(c))

	return cmd
}

func registerWeekFlags(cmd *cobra.Command, period *periodFlags) {
	cmd.Flags().StringVar(&period.week, "week", "", "ISO week (YYYY-Www)")
	cmd.Flags().StringVar(&period.date, "date", "", "Any day of the week (YYYY-MM-DD)")
	cmd.MarkFlagsMutuallyExclusive("week", "date")
}

// newGoalListCommand creates the goal list subcommand.
func newGoalListCommand(c *app.Container) *cobra.Command {
	var period periodFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the goals of a week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			week, err := period.weekKey(c)
			if err != nil {
				return err
			}
			state, err := loadState(cmd.Context(), c, week)
			if err != nil {
				return err
			}
			goals := state.Snapshot.Goals
			w := cmd.OutOrStdout()
			if len(goals) == 0 {
				_, _ = fmt.Fprintf(w, "No goals for %s\n", week)
				return nil
			}
			for i, g := range goals {
				check := " "
				if g.Completed {
					check = "x"
				}
				_, _ = fmt.Fprintf(w, "%d. [%s] %s\n", i+1, check, g.Description)
			}
			return nil
		},
	}
	registerWeekFlags(cmd, &period)
	return cmd
}

// newGoalAddCommand creates the goal add subcommand.
func newGoalAddCommand(c *app.Container) *cobra.Command {
	var period periodFlags

	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Add a goal to a week",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			week, err := period.weekKey(c)
			if err != nil {
				return err
			}
			out, err := c.EditGoalUseCase().Execute(cmd.Context(), usecase.EditGoalInput{
				Week:        week,
				Op:          usecase.GoalAdd,
				Description: strings.Join(args, " "),
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", out.Message, week)
			return nil
		},
	}
	registerWeekFlags(cmd, &period)
	return cmd
}

// newGoalEditCommand creates a subcommand toggling a goal.
func newGoalEditCommand(c *app.Container, op usecase.GoalOp, short string) *cobra.Command {
	var period periodFlags

	cmd := &cobra.Command{
		Use:   op.String() + " <number>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGoalEdit(cmd, c, &period, op, args[0])
		},
	}
	registerWeekFlags(cmd, &period)
	return cmd
}

// newGoalDeleteCommand creates the goal rm subcommand.
func newGoalDeleteCommand(c *app.Container) *cobra.Command {
	var period periodFlags
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm <number>",
		Aliases: []string{"delete"},
		Short:   "Delete a goal",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && confirmDelete(c) {
				ok, err := confirm(cmd, fmt.Sprintf("Delete goal %s?", args[0]))
				if err != nil {
					return err
				}
				if !ok {
					return errAborted
				}
			}
			return runGoalEdit(cmd, c, &period, usecase.GoalDelete, args[0])
		},
	}
	registerWeekFlags(cmd, &period)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

// runGoalEdit resolves a 1-based goal number against the current list and
// applies op to it.
func runGoalEdit(cmd *cobra.Command, c *app.Container, period *periodFlags, op usecase.GoalOp, number string) error {
	n, err := strconv.Atoi(number)
	if err != nil || n < 1 {
		return fmt.Errorf("goal %q: %w", number, domain.ErrGoalNotFound)
	}
	week, err := period.weekKey(c)
	if err != nil {
		return err
	}
	state, err := loadState(cmd.Context(), c, week)
	if err != nil {
		return err
	}
	goals := state.Snapshot.Goals
	if n > len(goals) {
		return fmt.Errorf("goal %d of %d in %s: %w", n, len(goals), week, domain.ErrGoalNotFound)
	}

	out, err := c.EditGoalUseCase().Execute(cmd.Context(), usecase.EditGoalInput{
		Week:  week,
		Op:    op,
		Index: n - 1,
		Count: len(goals),
	})
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", out.Message, goals[n-1].Description)
	return nil
}
