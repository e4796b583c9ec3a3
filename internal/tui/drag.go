package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/quadrant/internal/domain"
)

// handleMouse handles pointer input. A left press selects a card; moving
// with the button held lifts it, and releasing drops it where the
// placeholder is.
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.config.TUI.Mouse || m.board == nil {
		return m, nil
	}
	if m.mode != ModeNormal && !m.drag.Active() {
		return m, nil
	}

	// Handle active drags: motion updates the target, release ends the drag.
	switch msg.Action {
	case tea.MouseActionRelease:
		m.press = nil
		if m.drag.Active() {
			return m.finishDrag()
		}
		return m, nil

	case tea.MouseActionMotion:
		if m.drag.Active() {
			m.hoverAt(msg.X, msg.Y)
			return m, nil
		}
		if m.press != nil && msg.Button == tea.MouseButtonLeft && (msg.X != m.press.x || msg.Y != m.press.y) {
			id := m.press.taskID
			m.press = nil
			if err := m.beginDrag(id); err != nil {
				return m, m.showToast(errorText(err), true)
			}
			m.hoverAt(msg.X, msg.Y)
		}
		return m, nil

	case tea.MouseActionPress:
	}

	l := m.computeLayout(false)
	qi, inBody := l.quadrantAt(msg.X, msg.Y)

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if inBody && m.scroll[qi] > 0 {
			m.scroll[qi]--
		}

	case tea.MouseButtonWheelDown:
		if inBody && l.Quadrants[qi].Below > 0 {
			m.scroll[qi]++
		}

	case tea.MouseButtonLeft:
		if l.Goals.contains(msg.X, msg.Y) {
			goals := m.goals()
			if row := msg.Y - l.Goals.Y - 1; row >= 0 && len(goals) > 0 {
				m.focusGoals = true
				m.goalCursor = min(goalOffset(m.goalCursor, len(goals))+row, len(goals)-1)
			}
			return m, nil
		}
		if !inBody {
			return m, nil
		}
		m.focusGoals = false
		card, ok := l.Quadrants[qi].cardAt(msg.Y)
		if !ok {
			m.cursor = domain.Location{Quadrant: qi, Index: m.clampIndex(qi, m.cursor.Index)}
			return m, nil
		}
		m.cursor = domain.Location{Quadrant: qi, Index: card.Index}
		m.press = &pressPoint{taskID: card.ID, x: msg.X, y: msg.Y}
		m.ensureVisible()

	default:
	}
	return m, nil
}

// hoverAt points the drop target at the quadrant body under the pointer,
// or clears it outside every body.
func (m *Model) hoverAt(x, y int) {
	l := m.computeLayout(false)
	qi, ok := l.quadrantAt(x, y)
	if !ok {
		m.drag.Hover(nil)
		return
	}
	q := l.Quadrants[qi]
	m.drag.Hover(&domain.DropTarget{Priority: q.Priority, Index: q.insertionIndex(y)})
}

// beginDrag lifts the card with the given ID.
func (m *Model) beginDrag(id string) error {
	session, err := domain.BeginDrag(m.board, id)
	if err != nil {
		return err
	}
	m.drag.Begin(session)
	return nil
}

// finishDrag drops the lifted card. Without a target the drag is cancelled
// and nothing is sent. Otherwise the move is shown at once and the drop
// protocol runs against the board as it was when the card was released.
// A refused priority change puts that board back.
func (m *Model) finishDrag() (tea.Model, tea.Cmd) {
	m.mode = ModeNormal
	session, target, err := m.drag.Drop()
	m.drag.Reset()
	if err != nil {
		return m, nil
	}

	released := m.board
	moved := released.Clone()
	if err := moved.Move(session.TaskID, target.Priority, target.Index); err != nil {
		return m, m.showToast(errorText(err), true)
	}
	m.board = moved
	if _, loc, ok := moved.Find(session.TaskID); ok {
		m.cursor = loc
	}
	m.ensureVisible()
	return m, m.startPending(m.dropTask(released, session, target))
}

// cancelDrag abandons the drag without a request.
func (m *Model) cancelDrag() {
	m.drag.Cancel()
	m.drag.Reset()
	m.press = nil
	m.mode = ModeNormal
}

// grabSelected starts a keyboard drag of the selected card.
func (m *Model) grabSelected() (tea.Model, tea.Cmd) {
	task := m.SelectedTask()
	if task == nil {
		return m, nil
	}
	if err := m.beginDrag(task.ID); err != nil {
		return m, m.showToast(errorText(err), true)
	}
	m.mode = ModeGrab
	return m, nil
}

// handleGrabMode moves the placeholder of a keyboard drag.
// Up and down walk through cards and continue into the quadrant above or
// below; left and right switch to the neighboring column.
func (m *Model) handleGrabMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	target, ok := m.drag.Target()
	if !ok {
		session, _ := m.drag.Session()
		target = domain.DropTarget{Priority: session.FromPriority, Index: session.FromIndex}
	}
	qi := target.Priority.Index()

	switch {
	case key.Matches(msg, m.keys.Escape):
		m.cancelDrag()
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		return m.finishDrag()

	case key.Matches(msg, m.keys.Up):
		switch {
		case target.Index > 0:
			target.Index--
		case qi >= 2:
			qi -= 2
			target.Index = m.liftedCount(qi)
		}

	case key.Matches(msg, m.keys.Down):
		switch {
		case target.Index < m.liftedCount(qi):
			target.Index++
		case qi < 2:
			qi += 2
			target.Index = 0
		}

	case key.Matches(msg, m.keys.Left):
		if qi%2 == 1 {
			qi--
			target.Index = min(target.Index, m.liftedCount(qi))
		}

	case key.Matches(msg, m.keys.Right):
		if qi%2 == 0 {
			qi++
			target.Index = min(target.Index, m.liftedCount(qi))
		}

	case key.Matches(msg, m.keys.NextQuad):
		qi = (qi + 1) % domain.QuadrantCount
		target.Index = min(target.Index, m.liftedCount(qi))

	default:
		return m, nil
	}

	target.Priority = domain.Priorities()[qi]
	m.drag.Hover(&target)
	if target.Index < m.scroll[qi] {
		m.scroll[qi] = target.Index
	}
	return m, nil
}

// liftedCount returns the number of cards in a quadrant, not counting the
// card being dragged.
func (m *Model) liftedCount(qi int) int {
	n := m.board.Quadrants[qi].Len()
	if s, ok := m.drag.Session(); ok && s.FromPriority == m.board.Quadrants[qi].Priority {
		n--
	}
	return n
}
