package cli

import (
	"testing"

	"github.com/runoshun/quadrant/internal/domain"
	"github.com/runoshun/quadrant/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalList(t *testing.T) {
	c := newTestContainer(testutil.NewMockTaskStore(weekSnapshot()))

	out, err := execute(t, c, "", "goal", "list")

	require.NoError(t, err)
	assert.Equal(t, "1. [ ] Finish draft\n2. [x] Run 3 times\n", out)
}

func TestGoalList_Empty(t *testing.T) {
	c := newTestContainer(testutil.NewMockTaskStore())

	out, err := execute(t, c, "", "goal", "list", "--week", "2024-W09")

	require.NoError(t, err)
	assert.Contains(t, out, "No goals for 2024-W09")
}

func TestGoalAdd(t *testing.T) {
	store := testutil.NewMockTaskStore(weekSnapshot())
	c := newTestContainer(store)

	out, err := execute(t, c, "", "goal", "add", "Read", "two", "books", "--date", "2024-03-10")

	require.NoError(t, err)
	assert.Contains(t, out, "目标已添加 (2024-W10)")
	adds := store.CallsTo("AddGoal")
	require.Len(t, adds, 1)
	assert.Equal(t, "Read two books", adds[0].Text)
	assert.Equal(t, thisWeek, adds[0].Key)
}

func TestGoalAdd_Empty(t *testing.T) {
	store := testutil.NewMockTaskStore(weekSnapshot())
	c := newTestContainer(store)

	_, err := execute(t, c, "", "goal", "add", " ")

	assert.ErrorIs(t, err, domain.ErrEmptyGoal)
	assert.Empty(t, store.CallsTo("AddGoal"))
}

func TestGoalToggle(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		index   int
		checked bool
	}{
		{name: "done", args: []string{"goal", "done", "1"}, index: 0, checked: true},
		{name: "undo", args: []string{"goal", "undo", "2"}, index: 1, checked: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testutil.NewMockTaskStore(weekSnapshot())
			c := newTestContainer(store)

			_, err := execute(t, c, "", tt.args...)

			require.NoError(t, err)
			sets := store.CallsTo("SetGoal")
			require.Len(t, sets, 1)
			assert.Equal(t, tt.index, sets[0].Index)
			assert.Equal(t, tt.checked, sets[0].Checked)
			assert.Equal(t, []string{"Fetch", "SetGoal", "Fetch"}, store.Methods())
		})
	}
}

func TestGoalDelete(t *testing.T) {
	store := testutil.NewMockTaskStore(weekSnapshot())
	c := newTestContainer(store)

	out, err := execute(t, c, "y\n", "goal", "rm", "2")

	require.NoError(t, err)
	assert.Contains(t, out, "目标已删除: Run 3 times")
	deletes := store.CallsTo("DeleteGoal")
	require.Len(t, deletes, 1)
	assert.Equal(t, 1, deletes[0].Index)
}

func TestGoalEdit_InvalidNumber(t *testing.T) {
	tests := []struct {
		name   string
		number string
	}{
		{name: "zero", number: "0"},
		{name: "past the end", number: "3"},
		{name: "not a number", number: "first"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testutil.NewMockTaskStore(weekSnapshot())
			c := newTestContainer(store)

			_, err := execute(t, c, "", "goal", "done", tt.number)

			assert.ErrorIs(t, err, domain.ErrGoalNotFound)
			assert.Empty(t, store.CallsTo("SetGoal"))
		})
	}
}
