package tui

import (
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/quadrant/internal/app"
	"github.com/runoshun/quadrant/internal/domain"
	"github.com/runoshun/quadrant/internal/testutil"
	"github.com/stretchr/testify/require"
)

var (
	today    = domain.DateKey{Date: "2024-03-05"}
	thisWeek = domain.YearWeekKey{Year: 2024, Week: 10}
	testNow  = time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
)

// daySnapshot has two native cards in the first quadrant, one in the second,
// a carryover card from March 1st in the third and a done card in the fourth.
func daySnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		Period: today,
		Tasks: []*domain.Task{
			{ID: "a", Title: "Write spec", Priority: domain.PriorityUrgentImportant, Status: domain.StatusTodo, CreatedAt: "2024-03-05 08:00"},
			{ID: "b", Title: "Review PR", Priority: domain.PriorityUrgentImportant, Status: domain.StatusInProgress, Progress: 40, Tags: []string{"work"}},
			{ID: "c", Title: "Book flights", Priority: domain.PriorityUrgentNotImportant, Status: domain.StatusTodo},
			{ID: "e", Title: "Water plants", Priority: domain.PriorityNotUrgentNotImportant, Status: domain.StatusDone},
		},
		Carryover: []*domain.Task{
			{
				ID: "d", Title: "Old task", Priority: domain.PriorityNotUrgentImportant, Status: domain.StatusTodo,
				Carryover: true, Source: "2024-03-01", Origin: domain.DateKey{Date: "2024-03-01"},
			},
		},
	}
}

// weekSnapshot is week 10 of 2024 with one task and two goals.
func weekSnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		Period: thisWeek,
		Tasks: []*domain.Task{
			{ID: "w1", Title: "Quarterly plan", Priority: domain.PriorityNotUrgentImportant, Status: domain.StatusTodo},
		},
		Goals: []domain.Goal{
			{Index: 0, Description: "Finish draft"},
			{Index: 1, Description: "Run 3 times", Completed: true},
		},
	}
}

// newTestModel returns a sized model whose first load has completed.
func newTestModel(t *testing.T, snapshots ...*domain.Snapshot) (*Model, *testutil.MockTaskStore) {
	t.Helper()
	store := testutil.NewMockTaskStore(snapshots...)
	c := app.NewWithDeps(app.Config{}, domain.NewDefaultConfig(), store, &testutil.MockClock{NowTime: testNow}, &testutil.MockLogger{})
	m := New(c)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	settle(t, m, m.Init())
	require.NotNil(t, m.Board(), "initial load should complete")
	return m, store
}

// execCmd runs a command and flattens batches. Spinner ticks are dropped and
// timers that do not fire promptly are skipped.
func execCmd(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		switch msg := msg.(type) {
		case nil, spinner.TickMsg:
			return nil
		case tea.BatchMsg:
			var out []tea.Msg
			for _, c := range msg {
				out = append(out, execCmd(t, c)...)
			}
			return out
		default:
			return []tea.Msg{msg}
		}
	case <-time.After(100 * time.Millisecond):
		return nil
	}
}

// settle feeds the results of cmd back into the model. Follow-up commands
// are notification timers and are not run.
func settle(t *testing.T, m *Model, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	msgs := execCmd(t, cmd)
	for _, msg := range msgs {
		m.Update(msg)
	}
	return msgs
}

// press sends a key and settles the command it returns.
func press(t *testing.T, m *Model, keys ...string) {
	t.Helper()
	for _, k := range keys {
		_, cmd := m.Update(keyMsg(k))
		settle(t, m, cmd)
	}
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

// selectTask moves the cursor onto the task with the given ID.
func selectTask(t *testing.T, m *Model, id string) {
	t.Helper()
	_, loc, ok := m.Board().Find(id)
	require.True(t, ok, "task %s should be on the board", id)
	m.cursor = loc
}

func cardIDs(q domain.Quadrant) []string {
	cards := q.Cards()
	ids := make([]string, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	return ids
}
