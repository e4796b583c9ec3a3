package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/runoshun/quadrant/internal/app"
	"github.com/runoshun/quadrant/internal/domain"
	"github.com/runoshun/quadrant/internal/usecase"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// errAborted is returned when a confirmation prompt is declined.
var errAborted = errors.New("aborted")

// Output formats of the list command.
const (
	outputText = "text"
	outputYAML = "yaml"
)

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var period periodFlags
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the tasks of a period",
		Long: `Display the board of a day or a week, one quadrant at a time.

Carryover tasks are listed after the quadrant's own tasks and are marked
with the period they came from.

Examples:
  # Today's board
  quadrant list

  # This week's board with goals
  quadrant list --weekly

  # A past day as YAML
  quadrant list --date 2024-03-01 -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output != outputText && output != outputYAML {
				return fmt.Errorf("unknown output format %q (want text or yaml)", output)
			}
			key, err := period.key(c)
			if err != nil {
				return err
			}
			state, err := loadState(cmd.Context(), c, key)
			if err != nil {
				return err
			}
			if output == outputYAML {
				return printBoardYAML(cmd.OutOrStdout(), state)
			}
			printBoard(cmd.OutOrStdout(), state)
			return nil
		},
	}

	period.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "Output format: text or yaml")

	return cmd
}

// newAddCommand creates the add command.
func newAddCommand(c *app.Container) *cobra.Command {
	var period periodFlags
	var opts struct {
		Priority    string
		Tags        string
		Description string
		DueDate     string
		File        string
		DryRun      bool
	}

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add tasks to a period",
		Long: `Add a task to a day or a week.

The priority is a quadrant label (紧急重要, 紧急不重要, 不紧急重要, 不紧急不重要)
or one of the aliases ui, uni, nui and nuni. It defaults to 紧急重要.

With --file, tasks are read from a YAML file instead: one task, a list of
tasks, or several documents separated by "---". Use "-" to read stdin.

Examples:
  quadrant add "Write report" -p uni --tags work,writing
  quadrant add --weekly "Plan sprint" --due 2024-03-08
  quadrant add --file tasks.yaml --dry-run`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := period.key(c)
			if err != nil {
				return err
			}

			var drafts []domain.TaskDraft
			switch {
			case opts.File != "":
				if len(args) > 0 {
					return errors.New("cannot combine a title with --file")
				}
				content, err := readInput(cmd.InOrStdin(), opts.File)
				if err != nil {
					return err
				}
				drafts, err = domain.ParseTaskDrafts(content)
				if err != nil {
					return fmt.Errorf("parse %s: %w", opts.File, err)
				}
			case len(args) == 1:
				drafts = []domain.TaskDraft{{
					Title:       args[0],
					Priority:    domain.Priority(opts.Priority),
					Description: opts.Description,
					DueDate:     opts.DueDate,
					Tags:        domain.ParseTags(opts.Tags),
				}}
			default:
				return domain.ErrEmptyTitle
			}

			uc := c.CreateTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.CreateTasksInput{
				Key:    key,
				Drafts: drafts,
				DryRun: opts.DryRun,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			verb := "Added"
			if opts.DryRun {
				verb = "Would add"
			}
			for _, d := range out.Drafts {
				_, _ = fmt.Fprintf(w, "%s [%s] %s to %s\n", verb, d.Priority, d.Title, key)
			}
			return nil
		},
	}

	period.register(cmd)
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "", "Quadrant label or alias")
	cmd.Flags().StringVar(&opts.Tags, "tags", "", "Comma-separated tags")
	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "Task description")
	cmd.Flags().StringVar(&opts.DueDate, "due", "", "Due date (weekly tasks only)")
	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "Read tasks from a YAML file")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Validate without creating")

	return cmd
}

var actionShort = map[domain.Action]string{
	domain.ActionStart:  "Start a todo task",
	domain.ActionDone:   "Complete a task",
	domain.ActionCancel: "Cancel an in-progress task",
}

// newActionCommand creates a command applying a payload-free action.
func newActionCommand(c *app.Container, action domain.Action) *cobra.Command {
	var period periodFlags

	cmd := &cobra.Command{
		Use:   string(action) + " <id>",
		Short: actionShort[action],
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, c, &period, args[0], action, nil)
		},
	}
	period.register(cmd)
	return cmd
}

// newProgressCommand creates the progress command.
func newProgressCommand(c *app.Container) *cobra.Command {
	var period periodFlags

	cmd := &cobra.Command{
		Use:   "progress <id> <percent>",
		Short: "Set the progress of an in-progress task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := strconv.Atoi(strings.TrimSuffix(args[1], "%"))
			if err != nil {
				return fmt.Errorf("progress %q: %w", args[1], domain.ErrInvalidProgress)
			}
			return runAction(cmd, c, &period, args[0], domain.ActionProgress, p)
		},
	}
	period.register(cmd)
	return cmd
}

// newNoteCommand creates the note command.
func newNoteCommand(c *app.Container) *cobra.Command {
	var period periodFlags

	cmd := &cobra.Command{
		Use:   "note <id> <text>",
		Short: "Replace the note of an in-progress task",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, c, &period, args[0], domain.ActionNote, strings.Join(args[1:], " "))
		},
	}
	period.register(cmd)
	return cmd
}

// newMoveCommand creates the move command.
func newMoveCommand(c *app.Container) *cobra.Command {
	var period periodFlags

	cmd := &cobra.Command{
		Use:   "move <id> <priority>",
		Short: "Move a task to another quadrant",
		Long: `Move a task to another quadrant.

The priority is a quadrant label or one of the aliases ui, uni, nui and nuni.
Carryover tasks are moved in the period they came from.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := domain.ParsePriority(args[1])
			if err != nil {
				return fmt.Errorf("priority %q: %w", args[1], err)
			}
			return runAction(cmd, c, &period, args[0], domain.ActionPriority, string(p))
		},
	}
	period.register(cmd)
	return cmd
}

// newDeleteCommand creates the rm command.
func newDeleteCommand(c *app.Container) *cobra.Command {
	var period periodFlags
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && confirmDelete(c) {
				ok, err := confirm(cmd, fmt.Sprintf("Delete task %s?", args[0]))
				if err != nil {
					return err
				}
				if !ok {
					return errAborted
				}
			}
			return runAction(cmd, c, &period, args[0], domain.ActionDelete, nil)
		},
	}
	period.register(cmd)
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

// runAction finds the task on the selected board and dispatches the action.
// The board is fetched first so carryover tasks reach their origin period.
func runAction(cmd *cobra.Command, c *app.Container, period *periodFlags, id string, action domain.Action, value any) error {
	key, err := period.key(c)
	if err != nil {
		return err
	}
	state, err := loadState(cmd.Context(), c, key)
	if err != nil {
		return err
	}
	task, _, ok := state.Board.Find(id)
	if !ok {
		return fmt.Errorf("task %s in %s: %w", id, key, domain.ErrTaskNotFound)
	}

	uc := c.DispatchActionUseCase()
	out, err := uc.Execute(cmd.Context(), usecase.DispatchActionInput{
		Viewed: key,
		Task:   task,
		Action: action,
		Value:  value,
	})
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (#%s)\n", out.Message, task.Title, task.ID)
	return nil
}

func loadState(ctx context.Context, c *app.Container, key domain.AddressingKey) (*usecase.BoardState, error) {
	out, err := c.LoadBoardUseCase().Execute(ctx, usecase.LoadBoardInput{Key: key})
	if err != nil {
		return nil, err
	}
	return out.State, nil
}

func confirmDelete(c *app.Container) bool {
	return c.AppConfig == nil || c.AppConfig.Board.ConfirmDelete
}

// confirm asks a yes/no question on the command's input.
func confirm(cmd *cobra.Command, question string) (bool, error) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", question)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// readInput reads a file, or stdin when path is "-".
func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		content, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return content, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return content, nil
}

// printBoard writes the board as one table per quadrant.
func printBoard(w io.Writer, state *usecase.BoardState) {
	key := state.Snapshot.Period
	s := state.Stats
	_, _ = fmt.Fprintf(w, "%s (%s)  total %d  done %d  in progress %d  todo %d  rate %d%%\n",
		key, key.Kind().Display(), s.Total, s.Done, s.InProgress, s.Todo, s.Rate)

	if _, ok := key.(domain.YearWeekKey); ok {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, "Goals:")
		if len(state.Snapshot.Goals) == 0 {
			_, _ = fmt.Fprintln(w, "  (none)")
		}
		for i, g := range state.Snapshot.Goals {
			check := " "
			if g.Completed {
				check = "x"
			}
			_, _ = fmt.Fprintf(w, "  %d. [%s] %s\n", i+1, check, g.Description)
		}
	}

	for _, qv := range state.Board.View() {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintf(w, "%s (%d)\n", qv.Priority, len(qv.Cards))
		if len(qv.Cards) == 0 {
			continue
		}
		tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
		for _, card := range qv.Cards {
			t := card.Task
			status := string(t.Status)
			if t.Status == domain.StatusInProgress {
				status = fmt.Sprintf("%s %d%%", t.Status, t.Progress)
			}
			tags := "-"
			if len(t.Tags) > 0 {
				tags = "#" + strings.Join(t.Tags, " #")
			}
			title := t.Title
			if card.Badge != "" {
				title += " [" + card.Badge + "]"
			}
			_, _ = fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", t.ID, status, tags, title)
		}
		_ = tw.Flush()
	}
}

// boardExport is the YAML form of a board.
type boardExport struct {
	Period    string           `yaml:"period"`
	Kind      string           `yaml:"kind"`
	Goals     []goalExport     `yaml:"goals,omitempty"`
	Quadrants []quadrantExport `yaml:"quadrants"`
	Stats     statsExport      `yaml:"stats"`
}

type quadrantExport struct {
	Priority string       `yaml:"priority"`
	Tasks    []taskExport `yaml:"tasks"`
}

// taskExport is one exported task.
// Fields are ordered to minimize memory padding.
type taskExport struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Status      string   `yaml:"status"`
	Notes       string   `yaml:"notes,omitempty"`
	Description string   `yaml:"description,omitempty"`
	DueDate     string   `yaml:"due_date,omitempty"`
	Source      string   `yaml:"source,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
	Progress    int      `yaml:"progress,omitempty"`
}

type goalExport struct {
	Description string `yaml:"description"`
	Completed   bool   `yaml:"completed"`
}

type statsExport struct {
	Total      int `yaml:"total"`
	Done       int `yaml:"done"`
	InProgress int `yaml:"in_progress"`
	Todo       int `yaml:"todo"`
	Rate       int `yaml:"rate"`
}

// printBoardYAML writes the board in the order it is displayed.
func printBoardYAML(w io.Writer, state *usecase.BoardState) error {
	key := state.Snapshot.Period
	s := state.Stats
	export := boardExport{
		Period: key.String(),
		Kind:   string(key.Kind()),
		Stats:  statsExport{Total: s.Total, Done: s.Done, InProgress: s.InProgress, Todo: s.Todo, Rate: s.Rate},
	}
	for _, g := range state.Snapshot.Goals {
		export.Goals = append(export.Goals, goalExport{Description: g.Description, Completed: g.Completed})
	}
	for _, qv := range state.Board.View() {
		q := quadrantExport{Priority: string(qv.Priority), Tasks: []taskExport{}}
		for _, card := range qv.Cards {
			t := card.Task
			q.Tasks = append(q.Tasks, taskExport{
				ID:          t.ID,
				Title:       t.Title,
				Status:      string(t.Status),
				Notes:       t.Notes,
				Description: t.Description,
				DueDate:     t.DueDate,
				Source:      t.Source,
				Tags:        t.Tags,
				Progress:    t.Progress,
			})
		}
		export.Quadrants = append(export.Quadrants, q)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(export); err != nil {
		return fmt.Errorf("encode board: %w", err)
	}
	return enc.Close()
}
