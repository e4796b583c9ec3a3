package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/quadrant/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestView_BeforeFirstResize(t *testing.T) {
	m, _ := newTestModel(t, daySnapshot())
	m.width = 0

	assert.Equal(t, "Loading...", m.View())
}

func TestView_DailyBoard(t *testing.T) {
	m, _ := newTestModel(t, daySnapshot())

	out := m.View()

	assert.Contains(t, out, "2024-03-05 周二")
	assert.Contains(t, out, "每日")
	for _, p := range domain.Priorities() {
		assert.Contains(t, out, string(p))
	}
	assert.Contains(t, out, "Write spec")
	assert.Contains(t, out, "遗留 2024-03-01")
	assert.Contains(t, out, "总计")
	assert.Contains(t, out, "完成率")
	assert.NotContains(t, out, "本周目标")
}

func TestView_EmptyQuadrantHint(t *testing.T) {
	m, _ := newTestModel(t, &domain.Snapshot{
		Period: today,
		Tasks: []*domain.Task{
			{ID: "a", Title: "Only task", Priority: domain.PriorityUrgentImportant, Status: domain.StatusTodo},
		},
	})

	out := m.View()

	assert.Equal(t, 3, strings.Count(out, domain.EmptyQuadrantHint))
}

func TestView_WeeklyGoals(t *testing.T) {
	m, _ := newTestModel(t, weekSnapshot())
	press(t, m, "w")

	out := m.View()

	assert.Contains(t, out, "2024 年第 10 周")
	assert.Contains(t, out, "本周目标 (1/2)")
	assert.Contains(t, out, "1. [ ] Finish draft")
	assert.Contains(t, out, "2. [x] Run 3 times")
}

func TestView_WeeklyWithoutGoals(t *testing.T) {
	m, _ := newTestModel(t, daySnapshot())
	press(t, m, "w")

	assert.Contains(t, m.View(), "暂无目标，按 a 添加")
}

func TestView_TerminalTooSmall(t *testing.T) {
	m, _ := newTestModel(t, daySnapshot())
	m.Update(tea.WindowSizeMsg{Width: 30, Height: 10})

	assert.Contains(t, m.View(), "终端窗口太小 (30x10)")
}

func TestView_SelectedCardExpanded(t *testing.T) {
	m, _ := newTestModel(t, daySnapshot())
	selectTask(t, m, "b")

	out := m.View()

	assert.Contains(t, out, "#work")
	assert.Contains(t, out, "40%")
	assert.Contains(t, out, "[d]")
}

func TestView_DragShowsPlaceholderAndHeader(t *testing.T) {
	m, _ := newTestModel(t, daySnapshot())
	selectTask(t, m, "a")
	press(t, m, "m", "right")

	out := m.View()

	assert.Contains(t, out, "移动中: Write spec")
	assert.Contains(t, out, "▸")
	assert.Contains(t, out, "─")
}

func TestView_ConfirmPrompt(t *testing.T) {
	m, _ := newTestModel(t, daySnapshot())
	selectTask(t, m, "c")
	press(t, m, "x")

	assert.Contains(t, m.View(), "删除任务「Book flights」?")
}

func TestView_Toast(t *testing.T) {
	m, _ := newTestModel(t, daySnapshot())
	m.showToast("操作已完成", false)

	assert.Contains(t, m.View(), "操作已完成")
}

func TestView_Help(t *testing.T) {
	m, _ := newTestModel(t, daySnapshot())
	press(t, m, "?")

	out := m.View()

	assert.Contains(t, out, "Keybindings")
	assert.Contains(t, out, "press any key to close")
}

func TestWeekdayName(t *testing.T) {
	assert.Equal(t, "周一", weekdayName(domain.DateKey{Date: "2024-03-04"}))
	assert.Equal(t, "周日", weekdayName(domain.DateKey{Date: "2024-03-10"}))
}
