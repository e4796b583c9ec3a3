package tui

import (
	"context"
	"errors"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/quadrant/internal/app"
	"github.com/runoshun/quadrant/internal/domain"
	"github.com/runoshun/quadrant/internal/infra/httpstore"
	"github.com/runoshun/quadrant/internal/usecase"
)

// toast is a transient notification in the footer.
type toast struct {
	text    string
	seq     int
	isError bool
}

// pressPoint is a left-button press on a card that may turn into a drag.
type pressPoint struct {
	taskID string
	x, y   int
}

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteAll

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	config    *domain.Config

	// Board state
	state *usecase.BoardState // Last successful load of key
	board *domain.Board       // Displayed board; may carry an optimistic move
	key   domain.AddressingKey
	press *pressPoint

	// Components (structs with pointers)
	keys    KeyMap
	styles  Styles
	help    help.Model
	spinner spinner.Model
	input   textinput.Model
	report  viewport.Model
	drag    domain.Drag
	toast   toast

	// Strings
	reportTitle   string
	reportContent string
	newTitle      string
	confirmTaskID string

	// Numeric state (smaller types last)
	mode        Mode
	confirm     ConfirmAction
	cursor      domain.Location
	scroll      [domain.QuadrantCount]int
	goalCursor  int
	confirmGoal int
	prioCursor  int
	progress    int
	pending     int
	width       int
	height      int
	focusGoals  bool
}

// New creates a new TUI Model with the given container.
// The board opens on the current period of the configured default view.
func New(c *app.Container) *Model {
	ti := textinput.New()
	ti.CharLimit = 200

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = DefaultStyles().Header

	cfg := c.AppConfig
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}

	return &Model{
		container: c,
		config:    cfg,
		key:       domain.CurrentKey(cfg.Board.View(), c.Clock.Now()),
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
		help:      help.New(),
		spinner:   sp,
		input:     ti,
		report:    viewport.New(0, 0),
		mode:      ModeNormal,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return m.startPending(m.loadBoard(m.key))
}

// Run starts the board in the alternate screen and blocks until it exits.
func Run(c *app.Container) error {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if c.AppConfig == nil || c.AppConfig.TUI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	_, err := tea.NewProgram(New(c), opts...).Run()
	return err
}

// Key returns the viewed period.
func (m *Model) Key() domain.AddressingKey {
	return m.key
}

// Board returns the displayed board, or nil while loading.
func (m *Model) Board() *domain.Board {
	return m.board
}

// Mode returns the current UI mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// SelectedTask returns the task under the cursor, or nil if none.
func (m *Model) SelectedTask() *domain.Task {
	if m.board == nil {
		return nil
	}
	return m.board.CardAt(m.cursor)
}

// goals returns the goals of the viewed week.
func (m *Model) goals() []domain.Goal {
	if m.state == nil || m.state.Snapshot == nil {
		return nil
	}
	return m.state.Snapshot.Goals
}

// startPending counts a remote call and starts the spinner for the first one.
func (m *Model) startPending(cmd tea.Cmd) tea.Cmd {
	m.pending++
	if m.pending == 1 {
		return tea.Batch(cmd, m.spinner.Tick)
	}
	return cmd
}

// donePending uncounts a finished remote call.
func (m *Model) donePending() {
	if m.pending > 0 {
		m.pending--
	}
}

// loadBoard returns a command that fetches a period.
func (m *Model) loadBoard(key domain.AddressingKey) tea.Cmd {
	uc := m.container.LoadBoardUseCase()
	return func() tea.Msg {
		out, err := uc.Execute(context.Background(), usecase.LoadBoardInput{Key: key})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgBoardLoaded{Key: key, State: out.State}
	}
}

// dispatchAction returns a command that applies an action to a task.
// The task is copied so the command never observes later board changes.
func (m *Model) dispatchAction(task *domain.Task, action domain.Action, value any) tea.Cmd {
	uc := m.container.DispatchActionUseCase()
	viewed := m.key
	t := task.Clone()
	return func() tea.Msg {
		out, err := uc.Execute(context.Background(), usecase.DispatchActionInput{
			Viewed: viewed,
			Task:   t,
			Action: action,
			Value:  value,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgMutated{Key: viewed, State: out.State, Message: out.Message}
	}
}

// dropTask returns a command that runs the drop protocol for a released card.
func (m *Model) dropTask(board *domain.Board, session domain.DragSession, target domain.DropTarget) tea.Cmd {
	uc := m.container.DropTaskUseCase()
	viewed := m.key
	return func() tea.Msg {
		out, err := uc.Execute(context.Background(), usecase.DropTaskInput{
			Viewed:  viewed,
			Board:   board,
			Session: session,
			Target:  target,
		})
		if errors.Is(err, domain.ErrPriorityChange) {
			return MsgDropRejected{Key: viewed, Board: board, Err: err}
		}
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgMutated{Key: viewed, State: out.State, Message: out.Message}
	}
}

// createTask returns a command that adds a task to the viewed period.
func (m *Model) createTask(draft domain.TaskDraft) tea.Cmd {
	uc := m.container.CreateTasksUseCase()
	viewed := m.key
	return func() tea.Msg {
		out, err := uc.Execute(context.Background(), usecase.CreateTasksInput{
			Key:    viewed,
			Drafts: []domain.TaskDraft{draft},
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgMutated{Key: viewed, State: out.State, Message: "任务已添加"}
	}
}

// editGoal returns a command that mutates the viewed week's goals.
func (m *Model) editGoal(op usecase.GoalOp, index int, description string) tea.Cmd {
	week, ok := m.key.(domain.YearWeekKey)
	if !ok {
		return nil
	}
	uc := m.container.EditGoalUseCase()
	in := usecase.EditGoalInput{
		Week:        week,
		Op:          op,
		Index:       index,
		Count:       len(m.goals()),
		Description: description,
	}
	return func() tea.Msg {
		out, err := uc.Execute(context.Background(), in)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgMutated{Key: week, State: out.State, Message: out.Message}
	}
}

// fetchReport returns a command that fetches the report of the viewed period.
func (m *Model) fetchReport() tea.Cmd {
	uc := m.container.FetchReportUseCase()
	req, title := reportRequestFor(m.key)
	return func() tea.Msg {
		out, err := uc.Execute(context.Background(), usecase.FetchReportInput{Request: req})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgReportLoaded{Title: title, Content: out.Content}
	}
}

// copyText returns a command that writes text to the system clipboard.
func copyText(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return MsgError{Err: err}
		}
		return MsgCopied{Text: text}
	}
}

// reportRequestFor builds the report request covering a viewed period.
func reportRequestFor(key domain.AddressingKey) (domain.ReportRequest, string) {
	switch k := key.(type) {
	case domain.YearWeekKey:
		return domain.ReportRequest{Kind: domain.ReportWeekly, Week: k}, "周报 " + k.Display()
	case domain.DateKey:
		return domain.ReportRequest{Kind: domain.ReportDaily, Date: k}, "日报 " + k.Date
	}
	return domain.ReportRequest{}, ""
}

// errorText returns the notification for a failed operation. Store failures
// show the server's message; everything else shows the error itself.
func errorText(err error) string {
	var reqErr *httpstore.RequestError
	if errors.As(err, &reqErr) {
		return httpstore.Notification(err)
	}
	return err.Error()
}
