package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/quadrant/internal/domain"
	"github.com/runoshun/quadrant/internal/infra/httpstore"
	"github.com/runoshun/quadrant/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// List Command Tests
// =============================================================================

func TestListCommand_Text(t *testing.T) {
	c := newTestContainer(testutil.NewMockTaskStore(daySnapshot()))

	out, err := execute(t, c, "", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "2024-03-05 (每日)")
	assert.Contains(t, out, "紧急重要 (2)")
	assert.Contains(t, out, "不紧急不重要 (0)")
	assert.Contains(t, out, "Write spec")
	assert.Contains(t, out, "in_progress 40%")
	assert.Contains(t, out, "#work")
	assert.Contains(t, out, "Old task [遗留 2024-03-01]")
	assert.NotContains(t, out, "Goals:")
}

func TestListCommand_WeeklyShowsGoals(t *testing.T) {
	c := newTestContainer(testutil.NewMockTaskStore(weekSnapshot()))

	out, err := execute(t, c, "", "list", "--week", "2024-W10")

	require.NoError(t, err)
	assert.Contains(t, out, "2024-W10 (每周)")
	assert.Contains(t, out, "1. [ ] Finish draft")
	assert.Contains(t, out, "2. [x] Run 3 times")
}

func TestListCommand_YAML(t *testing.T) {
	c := newTestContainer(testutil.NewMockTaskStore(daySnapshot()))

	out, err := execute(t, c, "", "list", "-o", "yaml")
	require.NoError(t, err)

	var export boardExport
	require.NoError(t, yaml.Unmarshal([]byte(out), &export))
	assert.Equal(t, "2024-03-05", export.Period)
	assert.Equal(t, "daily", export.Kind)
	require.Len(t, export.Quadrants, 4)
	assert.Equal(t, "紧急重要", export.Quadrants[0].Priority)
	require.Len(t, export.Quadrants[0].Tasks, 2)
	assert.Equal(t, "b", export.Quadrants[0].Tasks[1].ID)
	assert.Equal(t, 40, export.Quadrants[0].Tasks[1].Progress)
	assert.Equal(t, "2024-03-01", export.Quadrants[2].Tasks[0].Source)
	assert.Empty(t, export.Quadrants[3].Tasks)
	assert.Equal(t, 4, export.Stats.Total)
}

func TestListCommand_InvalidOutput(t *testing.T) {
	c := newTestContainer(testutil.NewMockTaskStore(daySnapshot()))

	_, err := execute(t, c, "", "list", "-o", "json")

	assert.Error(t, err)
}

func TestListCommand_InvalidDate(t *testing.T) {
	store := testutil.NewMockTaskStore()
	c := newTestContainer(store)

	_, err := execute(t, c, "", "list", "--date", "2024-02-30")

	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
	assert.Empty(t, store.Calls)
}

func TestListCommand_ServerError(t *testing.T) {
	store := testutil.NewMockTaskStore()
	store.FetchErr = &httpstore.RequestError{Method: "GET", Path: "/api/daily", StatusCode: 500, Message: "请求失败 (500)"}
	c := newTestContainer(store)

	_, err := execute(t, c, "", "list")

	assert.ErrorIs(t, err, domain.ErrRequestFailed)
}

// =============================================================================
// Add Command Tests
// =============================================================================

func TestAddCommand_Title(t *testing.T) {
	store := testutil.NewMockTaskStore()
	c := newTestContainer(store)

	out, err := execute(t, c, "", "add", "Write report", "-p", "uni", "--tags", "work, writing")

	require.NoError(t, err)
	assert.Contains(t, out, "Added [紧急不重要] Write report to 2024-03-05")
	creates := store.CallsTo("Create")
	require.Len(t, creates, 1)
	assert.Equal(t, today, creates[0].Key)
	draft := creates[0].Value.(domain.TaskDraft)
	assert.Equal(t, domain.PriorityUrgentNotImportant, draft.Priority)
	assert.Equal(t, []string{"work", "writing"}, draft.Tags)
}

func TestAddCommand_Weekly(t *testing.T) {
	store := testutil.NewMockTaskStore()
	c := newTestContainer(store)

	_, err := execute(t, c, "", "add", "-w", "Plan sprint", "--due", "2024-03-08")

	require.NoError(t, err)
	creates := store.CallsTo("Create")
	require.Len(t, creates, 1)
	assert.Equal(t, thisWeek, creates[0].Key)
	assert.Equal(t, "2024-03-08", creates[0].Value.(domain.TaskDraft).DueDate)
}

func TestAddCommand_File(t *testing.T) {
	store := testutil.NewMockTaskStore()
	c := newTestContainer(store)
	path := filepath.Join(t.TempDir(), "tasks.yaml")
	content := "title: Write draft\npriority: 不紧急重要\n---\n- title: Review PR\n  priority: ui\n- title: Book flights\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	out, err := execute(t, c, "", "add", "--file", path)

	require.NoError(t, err)
	assert.Len(t, store.CallsTo("Create"), 3)
	assert.Contains(t, out, "Added [不紧急重要] Write draft")
	assert.Contains(t, out, "Added [紧急重要] Book flights")
}

func TestAddCommand_Stdin(t *testing.T) {
	store := testutil.NewMockTaskStore()
	c := newTestContainer(store)

	_, err := execute(t, c, "- title: From stdin\n", "add", "--file", "-")

	require.NoError(t, err)
	creates := store.CallsTo("Create")
	require.Len(t, creates, 1)
	assert.Equal(t, "From stdin", creates[0].Text)
}

func TestAddCommand_DryRun(t *testing.T) {
	store := testutil.NewMockTaskStore()
	c := newTestContainer(store)

	out, err := execute(t, c, "", "add", "Write report", "--dry-run")

	require.NoError(t, err)
	assert.Contains(t, out, "Would add [紧急重要] Write report")
	assert.Empty(t, store.CallsTo("Create"))
}

func TestAddCommand_Errors(t *testing.T) {
	tests := []struct {
		want error
		name string
		args []string
	}{
		{name: "no title", args: []string{"add"}, want: domain.ErrEmptyTitle},
		{name: "blank title", args: []string{"add", "  "}, want: domain.ErrEmptyTitle},
		{name: "unknown priority", args: []string{"add", "Task", "-p", "urgent"}, want: domain.ErrInvalidPriority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testutil.NewMockTaskStore()
			c := newTestContainer(store)

			_, err := execute(t, c, "", tt.args...)

			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, store.CallsTo("Create"))
		})
	}
}

// =============================================================================
// Action Command Tests
// =============================================================================

func TestActionCommands(t *testing.T) {
	tests := []struct {
		value   any
		wantKey domain.AddressingKey
		name    string
		action  domain.Action
		args    []string
	}{
		{name: "start", args: []string{"start", "a"}, action: domain.ActionStart, wantKey: today},
		{name: "done", args: []string{"done", "b"}, action: domain.ActionDone, wantKey: today},
		{name: "cancel", args: []string{"cancel", "b"}, action: domain.ActionCancel, wantKey: today},
		{name: "progress", args: []string{"progress", "b", "60%"}, action: domain.ActionProgress, wantKey: today, value: 60},
		{name: "note", args: []string{"note", "b", "waiting", "on", "CI"}, action: domain.ActionNote, wantKey: today, value: "waiting on CI"},
		{name: "move", args: []string{"move", "a", "nuni"}, action: domain.ActionPriority, wantKey: today, value: "不紧急不重要"},
		{name: "carryover done", args: []string{"done", "d"}, action: domain.ActionDone, wantKey: domain.DateKey{Date: "2024-03-01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testutil.NewMockTaskStore(daySnapshot())
			c := newTestContainer(store)

			out, err := execute(t, c, "", tt.args...)

			require.NoError(t, err)
			assert.Equal(t, []string{"Fetch", "Update", "Fetch"}, store.Methods())
			update := store.CallsTo("Update")[0]
			assert.Equal(t, tt.action, update.Action)
			assert.Equal(t, tt.wantKey, update.Key)
			assert.Equal(t, tt.value, update.Value)
			assert.Contains(t, out, tt.action.SuccessMessage())
		})
	}
}

func TestActionCommand_Errors(t *testing.T) {
	tests := []struct {
		want error
		name string
		args []string
	}{
		{name: "unknown task", args: []string{"start", "zzz"}, want: domain.ErrTaskNotFound},
		{name: "illegal action", args: []string{"start", "b"}, want: domain.ErrActionNotAllowed},
		{name: "progress on todo", args: []string{"progress", "a", "50"}, want: domain.ErrActionNotAllowed},
		{name: "progress out of range", args: []string{"progress", "b", "150"}, want: domain.ErrInvalidProgress},
		{name: "progress not a number", args: []string{"progress", "b", "half"}, want: domain.ErrInvalidProgress},
		{name: "unknown priority", args: []string{"move", "a", "top"}, want: domain.ErrInvalidPriority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testutil.NewMockTaskStore(daySnapshot())
			c := newTestContainer(store)

			_, err := execute(t, c, "", tt.args...)

			assert.ErrorIs(t, err, tt.want)
			assert.Empty(t, store.CallsTo("Update"), "nothing is sent for a rejected action")
		})
	}
}

func TestActionCommand_WeekFlag(t *testing.T) {
	store := testutil.NewMockTaskStore(weekSnapshot())
	c := newTestContainer(store)

	_, err := execute(t, c, "", "start", "w1", "--week", "2024-W10")

	require.NoError(t, err)
	assert.Equal(t, thisWeek, store.CallsTo("Update")[0].Key)
}

func TestDeleteCommand_Confirm(t *testing.T) {
	store := testutil.NewMockTaskStore(daySnapshot())
	c := newTestContainer(store)

	out, err := execute(t, c, "y\n", "rm", "c")

	require.NoError(t, err)
	assert.Contains(t, out, "Delete task c? [y/N]")
	deletes := store.CallsTo("Delete")
	require.Len(t, deletes, 1)
	assert.Equal(t, "c", deletes[0].TaskID)
}

func TestDeleteCommand_Declined(t *testing.T) {
	store := testutil.NewMockTaskStore(daySnapshot())
	c := newTestContainer(store)

	_, err := execute(t, c, "n\n", "rm", "c")

	assert.ErrorIs(t, err, errAborted)
	assert.Empty(t, store.Calls)
}

func TestDeleteCommand_Yes(t *testing.T) {
	store := testutil.NewMockTaskStore(daySnapshot())
	c := newTestContainer(store)

	out, err := execute(t, c, "", "rm", "--yes", "d")

	require.NoError(t, err)
	assert.NotContains(t, out, "[y/N]")
	deletes := store.CallsTo("Delete")
	require.Len(t, deletes, 1)
	assert.Equal(t, domain.DateKey{Date: "2024-03-01"}, deletes[0].Key)
}

func TestDeleteCommand_ConfirmDisabled(t *testing.T) {
	store := testutil.NewMockTaskStore(daySnapshot())
	c := newTestContainer(store)
	c.AppConfig.Board.ConfirmDelete = false

	_, err := execute(t, c, "", "rm", "c")

	require.NoError(t, err)
	assert.Len(t, store.CallsTo("Delete"), 1)
}
