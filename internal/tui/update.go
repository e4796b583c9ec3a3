package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/quadrant/internal/domain"
	"github.com/runoshun/quadrant/internal/usecase"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeReport()
		m.ensureVisible()
		return m, nil

	case spinner.TickMsg:
		if m.pending == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case MsgBoardLoaded:
		m.donePending()
		if msg.Key != m.key {
			return m, nil
		}
		m.setState(msg.State)
		return m, nil

	case MsgMutated:
		m.donePending()
		if msg.Key == m.key {
			m.setState(msg.State)
		}
		return m, m.showToast(msg.Message, false)

	case MsgError:
		// The board keeps its last state; nothing is reloaded.
		m.donePending()
		return m, m.showToast(errorText(msg.Err), true)

	case MsgDropRejected:
		// The task never left its quadrant on the server.
		m.donePending()
		if msg.Key == m.key && msg.Board != nil {
			m.restoreBoard(msg.Board)
		}
		return m, m.showToast(errorText(msg.Err), true)

	case MsgClearToast:
		if msg.Seq == m.toast.seq {
			m.toast = toast{seq: m.toast.seq}
		}
		return m, nil

	case MsgReportLoaded:
		m.donePending()
		m.reportTitle = msg.Title
		m.reportContent = msg.Content
		m.mode = ModeReport
		m.resizeReport()
		return m, nil

	case MsgCopied:
		return m, m.showToast("已复制: "+msg.Text, false)
	}

	if m.mode.IsInputMode() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKeyMsg routes a key press to the handler of the current mode.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeGrab:
		return m.handleGrabMode(msg)
	case ModeConfirm:
		return m.handleConfirmMode(msg)
	case ModeInputTitle:
		return m.handleInputTitleMode(msg)
	case ModeChoosePriority:
		return m.handleChoosePriorityMode(msg)
	case ModeEditProgress:
		return m.handleEditProgressMode(msg)
	case ModeEditNote:
		return m.handleEditNoteMode(msg)
	case ModeInputGoal:
		return m.handleInputGoalMode(msg)
	case ModeJumpDate:
		return m.handleJumpDateMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	case ModeReport:
		return m.handleReportMode(msg)
	}

	return m, nil
}

// handleNormalMode handles keys in normal mode.
func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.focusGoals {
		if model, cmd, handled := m.handleGoalsMode(msg); handled {
			return model, cmd
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil

	// Periods
	case key.Matches(msg, m.keys.PrevPeriod):
		return m, m.navigate(domain.Shift(m.key, -1))

	case key.Matches(msg, m.keys.NextPeriod):
		return m, m.navigate(domain.Shift(m.key, 1))

	case key.Matches(msg, m.keys.Today):
		return m, m.navigate(domain.CurrentKey(m.key.Kind(), m.container.Clock.Now()))

	case key.Matches(msg, m.keys.ToggleView):
		return m, m.navigate(toggledKey(m.key))

	case key.Matches(msg, m.keys.JumpDate):
		return m.openInput(ModeJumpDate, "YYYY-MM-DD / YYYY-Www", "")

	case key.Matches(msg, m.keys.Refresh):
		return m, m.startPending(m.loadBoard(m.key))

	case key.Matches(msg, m.keys.Report):
		return m, m.startPending(m.fetchReport())

	// Cards
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.Left):
		if m.cursor.Quadrant%2 == 1 {
			m.selectQuadrant(m.cursor.Quadrant - 1)
		}
		return m, nil

	case key.Matches(msg, m.keys.Right):
		if m.cursor.Quadrant%2 == 0 {
			m.selectQuadrant(m.cursor.Quadrant + 1)
		}
		return m, nil

	case key.Matches(msg, m.keys.NextQuad):
		m.selectQuadrant((m.cursor.Quadrant + 1) % domain.QuadrantCount)
		return m, nil

	case key.Matches(msg, m.keys.FocusGoals):
		if _, ok := m.key.(domain.YearWeekKey); ok {
			m.focusGoals = true
			m.goalCursor = min(m.goalCursor, max(0, len(m.goals())-1))
		}
		return m, nil

	case key.Matches(msg, m.keys.AddGoal):
		if _, ok := m.key.(domain.YearWeekKey); ok {
			return m.openInput(ModeInputGoal, "本周目标", "")
		}
		return m, nil

	case key.Matches(msg, m.keys.New):
		if m.board == nil {
			return m, nil
		}
		return m.openInput(ModeInputTitle, "任务标题", "")

	// Task actions
	case key.Matches(msg, m.keys.Start):
		return m.actOnSelected(domain.ActionStart)

	case key.Matches(msg, m.keys.Done):
		return m.actOnSelected(domain.ActionDone)

	case key.Matches(msg, m.keys.Cancel):
		return m.actOnSelected(domain.ActionCancel)

	case key.Matches(msg, m.keys.Progress):
		return m.actOnSelected(domain.ActionProgress)

	case key.Matches(msg, m.keys.Note):
		return m.actOnSelected(domain.ActionNote)

	case key.Matches(msg, m.keys.Delete):
		return m.actOnSelected(domain.ActionDelete)

	case key.Matches(msg, m.keys.Grab):
		return m.grabSelected()

	case key.Matches(msg, m.keys.Copy):
		if task := m.SelectedTask(); task != nil {
			return m, copyText(fmt.Sprintf("%s (#%s)", task.Title, task.ID))
		}
		return m, nil
	}

	return m, nil
}

// handleGoalsMode handles keys while the goal list has focus.
// Keys it does not claim fall through to normal mode.
func (m *Model) handleGoalsMode(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	goals := m.goals()
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.FocusGoals):
		m.focusGoals = false
		return m, nil, true

	case key.Matches(msg, m.keys.Up):
		if m.goalCursor > 0 {
			m.goalCursor--
		}
		return m, nil, true

	case key.Matches(msg, m.keys.Down):
		if m.goalCursor < len(goals)-1 {
			m.goalCursor++
		}
		return m, nil, true

	case key.Matches(msg, m.keys.Toggle):
		if m.goalCursor >= len(goals) {
			return m, nil, true
		}
		op := usecase.GoalComplete
		if goals[m.goalCursor].Completed {
			op = usecase.GoalReopen
		}
		return m, m.startPending(m.editGoal(op, m.goalCursor, "")), true

	case key.Matches(msg, m.keys.Delete):
		if m.goalCursor >= len(goals) {
			return m, nil, true
		}
		if !m.config.Board.ConfirmDelete {
			return m, m.startPending(m.editGoal(usecase.GoalDelete, m.goalCursor, "")), true
		}
		m.mode = ModeConfirm
		m.confirm = ConfirmDeleteGoal
		m.confirmGoal = m.goalCursor
		return m, nil, true
	}
	return m, nil, false
}

// actOnSelected applies an action to the selected card. Payload actions open
// their editor first; delete asks for confirmation when configured. Illegal
// actions are still routed through the use case, which rejects them without
// touching the store.
func (m *Model) actOnSelected(action domain.Action) (tea.Model, tea.Cmd) {
	task := m.SelectedTask()
	if task == nil {
		return m, nil
	}
	legal := task.Status.Allows(action)

	switch {
	case legal && action == domain.ActionProgress:
		m.progress = task.Progress
		return m.openInput(ModeEditProgress, "0-100", strconv.Itoa(task.Progress))

	case legal && action == domain.ActionNote:
		return m.openInput(ModeEditNote, "备注", task.Notes)

	case legal && action == domain.ActionDelete && m.config.Board.ConfirmDelete:
		m.mode = ModeConfirm
		m.confirm = ConfirmDeleteTask
		m.confirmTaskID = task.ID
		return m, nil
	}

	return m, m.startPending(m.dispatchAction(task, action, nil))
}

// handleConfirmMode handles keys in the confirmation dialog.
func (m *Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), msg.String() == "n", msg.String() == "N":
		m.mode = ModeNormal
		m.confirm = ConfirmNone
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		action := m.confirm
		m.mode = ModeNormal
		m.confirm = ConfirmNone
		switch action {
		case ConfirmNone:
			// Nothing to confirm
		case ConfirmDeleteTask:
			if m.board == nil {
				return m, nil
			}
			task, _, ok := m.board.Find(m.confirmTaskID)
			if !ok {
				return m, nil
			}
			return m, m.startPending(m.dispatchAction(task, domain.ActionDelete, nil))
		case ConfirmDeleteGoal:
			return m, m.startPending(m.editGoal(usecase.GoalDelete, m.confirmGoal, ""))
		}
	}

	return m, nil
}

// openInput focuses the text input for an input mode.
func (m *Model) openInput(mode Mode, placeholder, value string) (tea.Model, tea.Cmd) {
	m.mode = mode
	m.input.Reset()
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

// closeInput returns to normal mode.
func (m *Model) closeInput() {
	m.mode = ModeNormal
	m.input.Blur()
	m.input.Reset()
}

// handleInputTitleMode handles keys in title input mode.
func (m *Model) handleInputTitleMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.closeInput()
		return m, nil

	case msg.Type == tea.KeyEnter:
		title := strings.TrimSpace(m.input.Value())
		if title == "" {
			return m, nil
		}
		m.newTitle = title
		m.closeInput()
		m.mode = ModeChoosePriority
		m.prioCursor = m.cursor.Quadrant
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleChoosePriorityMode handles the quadrant picker of a new task.
func (m *Model) handleChoosePriorityMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.newTitle = ""
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		return m.submitNewTask()

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		m.prioCursor = (m.prioCursor + 2) % domain.QuadrantCount
		return m, nil

	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Right):
		m.prioCursor ^= 1
		return m, nil

	case key.Matches(msg, m.keys.NextQuad):
		m.prioCursor = (m.prioCursor + 1) % domain.QuadrantCount
		return m, nil
	}

	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '4' {
		m.prioCursor = int(s[0] - '1')
		return m.submitNewTask()
	}
	return m, nil
}

func (m *Model) submitNewTask() (tea.Model, tea.Cmd) {
	draft := domain.TaskDraft{
		Title:    m.newTitle,
		Priority: domain.Priorities()[m.prioCursor],
	}
	m.mode = ModeNormal
	m.newTitle = ""
	return m, m.startPending(m.createTask(draft))
}

// handleEditProgressMode handles the progress editor. Arrows step by ten;
// digits may also be typed.
func (m *Model) handleEditProgressMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.closeInput()
		return m, nil

	case msg.Type == tea.KeyEnter:
		return m.submitEditor(domain.ActionProgress, m.input.Value())

	case msg.Type == tea.KeyLeft, msg.Type == tea.KeyDown:
		m.stepProgress(-10)
		return m, nil

	case msg.Type == tea.KeyRight, msg.Type == tea.KeyUp:
		m.stepProgress(10)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) stepProgress(delta int) {
	if n, err := strconv.Atoi(strings.TrimSpace(m.input.Value())); err == nil {
		m.progress = n
	}
	m.progress = max(0, min(100, m.progress+delta))
	m.input.SetValue(strconv.Itoa(m.progress))
	m.input.CursorEnd()
}

// handleEditNoteMode handles the note editor.
func (m *Model) handleEditNoteMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.closeInput()
		return m, nil

	case msg.Type == tea.KeyEnter:
		return m.submitEditor(domain.ActionNote, m.input.Value())
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submitEditor sends the value of a payload editor for the selected card.
func (m *Model) submitEditor(action domain.Action, value string) (tea.Model, tea.Cmd) {
	m.closeInput()
	task := m.SelectedTask()
	if task == nil {
		return m, nil
	}
	return m, m.startPending(m.dispatchAction(task, action, value))
}

// handleInputGoalMode handles the new goal input.
func (m *Model) handleInputGoalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.closeInput()
		return m, nil

	case msg.Type == tea.KeyEnter:
		desc := m.input.Value()
		m.closeInput()
		return m, m.startPending(m.editGoal(usecase.GoalAdd, 0, desc))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleJumpDateMode handles the go-to-date input.
func (m *Model) handleJumpDateMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.closeInput()
		return m, nil

	case msg.Type == tea.KeyEnter:
		target, err := parseJump(m.input.Value(), m.key.Kind())
		m.closeInput()
		if err != nil {
			return m, m.showToast(errorText(err), true)
		}
		return m, m.navigate(target)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleHelpMode closes the help overlay on any key.
func (m *Model) handleHelpMode(_ tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.mode = ModeNormal
	return m, nil
}

// handleReportMode scrolls the report viewer.
func (m *Model) handleReportMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ReportClose):
		m.mode = ModeNormal
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		return m, copyText(m.reportContent)
	}

	var cmd tea.Cmd
	m.report, cmd = m.report.Update(msg)
	return m, cmd
}

// navigate switches the viewed period. The old board is dropped at once so
// nothing of it is shown or acted on while the new one loads.
func (m *Model) navigate(key domain.AddressingKey) tea.Cmd {
	if m.drag.Active() {
		m.cancelDrag()
	}
	m.key = key
	m.state = nil
	m.board = nil
	m.cursor = domain.Location{}
	m.scroll = [domain.QuadrantCount]int{}
	m.goalCursor = 0
	m.focusGoals = false
	return m.startPending(m.loadBoard(key))
}

// restoreBoard shows a previously displayed board again, keeping the
// selection on the same task.
func (m *Model) restoreBoard(board *domain.Board) {
	var selectedID string
	if t := m.SelectedTask(); t != nil {
		selectedID = t.ID
	}
	if m.drag.Active() {
		m.cancelDrag()
	}
	m.board = board
	if _, loc, ok := m.board.Find(selectedID); ok && selectedID != "" {
		m.cursor = loc
	} else {
		m.cursor.Index = m.clampIndex(m.cursor.Quadrant, m.cursor.Index)
	}
	m.ensureVisible()
}

// setState replaces the board with a fresh load. The selection follows the
// selected task if it is still there.
func (m *Model) setState(state *usecase.BoardState) {
	if state == nil {
		return
	}
	var selectedID string
	if t := m.SelectedTask(); t != nil {
		selectedID = t.ID
	}

	m.state = state
	m.board = state.Board
	if m.drag.Active() {
		// A lifted card that vanished cannot be dropped.
		if s, ok := m.drag.Session(); ok {
			if _, _, found := m.board.Find(s.TaskID); !found {
				m.cancelDrag()
			}
		}
	}

	if _, loc, ok := m.board.Find(selectedID); ok && selectedID != "" {
		m.cursor = loc
	} else {
		m.cursor.Index = m.clampIndex(m.cursor.Quadrant, m.cursor.Index)
	}
	m.goalCursor = min(m.goalCursor, max(0, len(m.goals())-1))
	for qi := range m.scroll {
		m.scroll[qi] = min(m.scroll[qi], max(0, m.board.Quadrants[qi].Len()-1))
	}
	m.ensureVisible()
}

// moveCursor moves the selection within the quadrant.
func (m *Model) moveCursor(delta int) {
	if m.board == nil {
		return
	}
	m.cursor.Index = m.clampIndex(m.cursor.Quadrant, m.cursor.Index+delta)
	m.ensureVisible()
}

// selectQuadrant moves the selection to another quadrant, keeping the row.
func (m *Model) selectQuadrant(qi int) {
	m.cursor = domain.Location{Quadrant: qi, Index: m.clampIndex(qi, m.cursor.Index)}
	m.ensureVisible()
}

func (m *Model) clampIndex(qi, index int) int {
	if m.board == nil {
		return 0
	}
	n := m.board.Quadrants[qi].Len()
	return max(0, min(index, n-1))
}

// showToast shows a notification and schedules its removal.
func (m *Model) showToast(text string, isError bool) tea.Cmd {
	m.toast = toast{text: text, isError: isError, seq: m.toast.seq + 1}
	seq := m.toast.seq
	return tea.Tick(m.config.TUI.ToastDuration(), func(time.Time) tea.Msg {
		return MsgClearToast{Seq: seq}
	})
}

// toggledKey switches between the daily and weekly view, keeping the day or
// the week that contains it.
func toggledKey(k domain.AddressingKey) domain.AddressingKey {
	switch k := k.(type) {
	case domain.DateKey:
		return domain.ISOWeekOf(k.Time())
	case domain.YearWeekKey:
		start, _ := domain.WeekRange(k)
		return domain.NewDateKey(start)
	}
	return k
}

// parseJump parses a go-to input. A week in a daily view switches to the
// weekly view; a date in a weekly view opens the week containing it.
func parseJump(s string, kind domain.PeriodKind) (domain.AddressingKey, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, "-W") {
		w, err := domain.ParseWeekKey(s)
		if err != nil {
			return nil, err
		}
		return w, nil
	}
	d, err := domain.ParseDateKey(s)
	if err != nil {
		return nil, err
	}
	if kind == domain.KindWeekly {
		return domain.ISOWeekOf(d.Time()), nil
	}
	return d, nil
}
