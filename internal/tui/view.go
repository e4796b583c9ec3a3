package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/runoshun/quadrant/internal/domain"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.mode {
	case ModeHelp:
		return m.viewHelp()
	case ModeReport:
		return m.viewReport()
	case ModeNormal, ModeGrab, ModeConfirm, ModeInputTitle, ModeChoosePriority,
		ModeEditProgress, ModeEditNote, ModeInputGoal, ModeJumpDate:
	}

	if m.width < minWidth || m.gridRect().H < minGridHeight {
		return m.styles.Footer.Render(fmt.Sprintf("终端窗口太小 (%dx%d)", m.width, m.height))
	}
	return m.viewBoard()
}

// viewBoard renders the header, goals, quadrant grid and footer.
func (m *Model) viewBoard() string {
	l := m.computeLayout(true)

	parts := []string{m.viewHeader(), m.viewStats()}
	if goals := m.viewGoals(l.Goals); goals != "" {
		parts = append(parts, goals)
	}

	var boxes [domain.QuadrantCount]string
	for qi := range l.Quadrants {
		boxes[qi] = m.viewQuadrant(l.Quadrants[qi], qi)
	}
	parts = append(parts,
		lipgloss.JoinHorizontal(lipgloss.Top, boxes[0], boxes[1]),
		lipgloss.JoinHorizontal(lipgloss.Top, boxes[2], boxes[3]),
		m.viewStatusLine(),
		m.viewFooter(),
	)
	return strings.Join(parts, "\n")
}

// viewHeader renders the period line.
func (m *Model) viewHeader() string {
	var period string
	switch k := m.key.(type) {
	case domain.YearWeekKey:
		period = k.Display()
	case domain.DateKey:
		period = k.Date + " " + weekdayName(k)
	}

	line := m.styles.Header.Render("◆ "+period) + " " +
		m.styles.HeaderKind.Render("· "+m.key.Kind().Display())
	if m.pending > 0 {
		line += " " + m.spinner.View()
	}
	if s, ok := m.drag.Session(); ok && m.board != nil {
		if t, _, found := m.board.Find(s.TaskID); found {
			line += "  " + m.styles.CardDragging.Render("移动中: "+t.Title)
		}
	}
	return m.fit(line)
}

// viewStats renders the counts of the viewed period.
func (m *Model) viewStats() string {
	if m.state == nil {
		return m.styles.Stats.Render("加载中...")
	}
	s := m.state.Stats
	item := func(label string, n int) string {
		return m.styles.Stats.Render(label+" ") + m.styles.StatsValue.Render(fmt.Sprint(n))
	}
	line := strings.Join([]string{
		item("总计", s.Total),
		item("已完成", s.Done),
		item("进行中", s.InProgress),
		item("待办", s.Todo),
		m.styles.Stats.Render("完成率 ") + m.styles.StatsValue.Render(fmt.Sprintf("%d%%", s.Rate)),
	}, "  ")
	return m.fit(line)
}

// viewGoals renders the weekly goal list, or nothing in a daily view.
func (m *Model) viewGoals(area rect) string {
	if area.H == 0 {
		return ""
	}
	goals := m.goals()
	done := 0
	for _, g := range goals {
		if g.Completed {
			done++
		}
	}

	titleStyle := m.styles.GoalsBlurred
	if m.focusGoals {
		titleStyle = m.styles.GoalsTitle
	}
	lines := []string{titleStyle.Render(fmt.Sprintf("本周目标 (%d/%d)", done, len(goals)))}
	if len(goals) == 0 {
		lines = append(lines, m.styles.Goals.Render(m.styles.GoalsBlurred.Render("暂无目标，按 a 添加")))
	}

	offset := goalOffset(m.goalCursor, len(goals))
	for i := offset; i < len(goals) && i < offset+maxGoalLines; i++ {
		g := goals[i]
		check := "[ ]"
		style := m.styles.GoalOpen
		if g.Completed {
			check = "[x]"
			style = m.styles.GoalDone
		}
		if m.focusGoals && i == m.goalCursor {
			style = m.styles.GoalSelected
		}
		lines = append(lines, m.styles.Goals.Render(fmt.Sprintf("%d. %s ", i+1, check)+style.Render(g.Description)))
	}
	for i, line := range lines {
		lines[i] = m.fit(line)
	}
	return strings.Join(lines, "\n")
}

// goalOffset returns the first goal shown so the cursor stays visible.
func goalOffset(cursor, n int) int {
	if n <= maxGoalLines {
		return 0
	}
	return max(0, min(cursor-maxGoalLines+1, n-maxGoalLines))
}

// viewQuadrant renders a bordered quadrant from its layout.
func (m *Model) viewQuadrant(q quadrantBox, qi int) string {
	if q.Outer.W < 2 || q.Outer.H < 3 {
		return ""
	}
	innerW := q.Outer.W - 2

	style := m.styles.Quadrant.BorderForeground(Colors.Muted)
	target, hovering := m.drag.Target()
	switch {
	case m.drag.Active() && hovering && target.Priority == q.Priority:
		style = style.Border(lipgloss.ThickBorder()).BorderForeground(Colors.Primary)
	case !m.drag.Active() && !m.focusGoals && m.cursor.Quadrant == qi:
		style = style.BorderForeground(QuadrantColor(q.Priority))
	}

	title := m.styles.QuadrantTitle.Foreground(QuadrantColor(q.Priority)).Render(string(q.Priority)) +
		" " + m.styles.QuadrantCount.Render(fmt.Sprint(q.Total))
	var scroll []string
	if q.Hidden > 0 {
		scroll = append(scroll, fmt.Sprintf("↑%d", q.Hidden))
	}
	if q.Below > 0 {
		scroll = append(scroll, fmt.Sprintf("↓%d", q.Below))
	}
	if len(scroll) > 0 {
		title += "  " + m.styles.ScrollIndicator.Render(strings.Join(scroll, " "))
	}

	body := make([]string, q.Body.H)
	for _, c := range q.Cards {
		for i, line := range c.Lines {
			if row := c.Top - q.Body.Y + i; row >= 0 && row < len(body) {
				body[row] = line
			}
		}
	}
	if q.Placeholder >= 0 {
		if row := q.Placeholder - q.Body.Y; row < len(body) {
			body[row] = m.styles.Placeholder.Render(strings.Repeat("─", max(0, innerW-2)) + " ▸")
		}
	}
	if q.Total == 0 && q.Placeholder < 0 && len(body) > 0 {
		hint := domain.EmptyQuadrantHint
		pad := max(0, (innerW-runewidth.StringWidth(hint))/2)
		body[len(body)/2] = strings.Repeat(" ", pad) + m.styles.EmptyHint.Render(hint)
	}

	lines := append([]string{title}, body...)
	for i, line := range lines {
		lines[i] = truncate.StringWithTail(line, uint(innerW), "")
	}
	return style.Width(innerW).Height(q.Outer.H - 2).Render(strings.Join(lines, "\n"))
}

// viewStatusLine renders the active prompt, or the latest notification.
func (m *Model) viewStatusLine() string {
	switch m.mode {
	case ModeConfirm:
		return m.fit(m.viewConfirm())
	case ModeInputTitle:
		return m.fit(m.styles.InputPrompt.Render("新任务: ") + m.input.View())
	case ModeChoosePriority:
		return m.fit(m.viewPriorityPicker())
	case ModeEditProgress:
		return m.fit(m.styles.InputPrompt.Render("进度 (←/→ ±10): ") + m.input.View())
	case ModeEditNote:
		return m.fit(m.styles.InputPrompt.Render("备注: ") + m.input.View())
	case ModeInputGoal:
		return m.fit(m.styles.InputPrompt.Render("新目标: ") + m.input.View())
	case ModeJumpDate:
		return m.fit(m.styles.InputPrompt.Render("跳转到: ") + m.input.View())
	case ModeNormal, ModeGrab, ModeHelp, ModeReport:
	}

	if m.toast.text == "" {
		return ""
	}
	style := m.styles.Toast
	if m.toast.isError {
		style = m.styles.ToastError
	}
	return m.fit(style.Render(m.toast.text))
}

// viewConfirm renders the confirmation prompt.
func (m *Model) viewConfirm() string {
	var subject string
	switch m.confirm {
	case ConfirmDeleteTask:
		if m.board != nil {
			if t, _, ok := m.board.Find(m.confirmTaskID); ok {
				subject = fmt.Sprintf("删除任务「%s」?", t.Title)
			}
		}
	case ConfirmDeleteGoal:
		if goals := m.goals(); m.confirmGoal < len(goals) {
			subject = fmt.Sprintf("删除目标「%s」?", goals[m.confirmGoal].Description)
		}
	case ConfirmNone:
	}
	if subject == "" {
		subject = m.confirm.String() + "?"
	}
	return m.styles.DialogTitle.Render(subject) + " " + m.styles.DialogPrompt.Render("[y] 确认  [n] 取消")
}

// viewPriorityPicker renders the quadrant choice of a new task.
func (m *Model) viewPriorityPicker() string {
	choices := make([]string, 0, domain.QuadrantCount)
	for i, p := range domain.Priorities() {
		label := fmt.Sprintf("[%d] %s", i+1, p)
		if i == m.prioCursor {
			choices = append(choices, m.styles.ChoiceActive.Render("▸"+label))
		} else {
			choices = append(choices, m.styles.Choice.Render(" "+label))
		}
	}
	return m.styles.InputPrompt.Render("分类: ") + strings.Join(choices, " ")
}

// viewFooter renders the key hints of the current mode.
func (m *Model) viewFooter() string {
	var bindings []key.Binding
	switch {
	case m.mode == ModeGrab || m.drag.Active():
		bindings = m.keys.GrabHelp()
	case m.mode == ModeNormal && m.focusGoals:
		bindings = []key.Binding{m.keys.Up, m.keys.Down, m.keys.Toggle, m.keys.Delete, m.keys.AddGoal, m.keys.Escape}
	case m.mode == ModeNormal:
		bindings = m.keys.ShortHelp()
	default:
		bindings = []key.Binding{m.keys.Enter, m.keys.Escape}
	}
	return m.fit(m.help.ShortHelpView(bindings))
}

// viewHelp renders the full key reference.
func (m *Model) viewHelp() string {
	title := m.styles.DialogTitle.Render("Keybindings")
	body := m.help.FullHelpView(m.keys.FullHelp())
	hint := m.styles.Footer.Render("press any key to close")
	return m.styles.Help.Render(title + "\n\n" + body + "\n\n" + hint)
}

// fit truncates a rendered line to the terminal width.
func (m *Model) fit(line string) string {
	return truncate.StringWithTail(line, uint(max(0, m.width)), "")
}

func weekdayName(k domain.DateKey) string {
	names := [...]string{"周日", "周一", "周二", "周三", "周四", "周五", "周六"}
	return names[k.Time().Weekday()]
}
