package usecase_test

import (
	"context"
	"testing"

	"github.com/runoshun/quadrant/internal/domain"
	"github.com/runoshun/quadrant/internal/testutil"
	"github.com/runoshun/quadrant/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditGoal_Execute(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		message string
		in      usecase.EditGoalInput
		checked bool
	}{
		{
			name:    "add",
			in:      usecase.EditGoalInput{Op: usecase.GoalAdd, Week: viewedWeek, Description: " run 3x "},
			method:  "AddGoal",
			message: "目标已添加",
		},
		{
			name:    "complete",
			in:      usecase.EditGoalInput{Op: usecase.GoalComplete, Week: viewedWeek, Index: 0, Count: 1},
			method:  "SetGoal",
			message: "目标已完成",
			checked: true,
		},
		{
			name:    "reopen",
			in:      usecase.EditGoalInput{Op: usecase.GoalReopen, Week: viewedWeek, Index: 0, Count: 1},
			method:  "SetGoal",
			message: "目标已恢复",
		},
		{
			name:    "delete",
			in:      usecase.EditGoalInput{Op: usecase.GoalDelete, Week: viewedWeek, Index: 0, Count: 1},
			method:  "DeleteGoal",
			message: "目标已删除",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStore()
			uc := usecase.NewEditGoal(store, store, &testutil.MockLogger{})

			out, err := uc.Execute(context.Background(), tt.in)

			require.NoError(t, err)
			assert.Equal(t, []string{tt.method, "Fetch"}, store.Methods())
			call := store.Calls[0]
			assert.Equal(t, viewedWeek, call.Key)
			assert.Equal(t, tt.checked, call.Checked)
			if tt.in.Op == usecase.GoalAdd {
				assert.Equal(t, "run 3x", call.Text)
			}
			assert.Equal(t, tt.message, out.Message)
			assert.Len(t, out.State.Snapshot.Goals, 1)
		})
	}
}

func TestEditGoal_Rejected(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		in      usecase.EditGoalInput
	}{
		{name: "empty description", in: usecase.EditGoalInput{Op: usecase.GoalAdd, Week: viewedWeek, Description: "  "}, wantErr: domain.ErrEmptyGoal},
		{name: "stale index", in: usecase.EditGoalInput{Op: usecase.GoalComplete, Week: viewedWeek, Index: 1, Count: 1}, wantErr: domain.ErrGoalNotFound},
		{name: "negative index", in: usecase.EditGoalInput{Op: usecase.GoalDelete, Week: viewedWeek, Index: -1, Count: 1}, wantErr: domain.ErrGoalNotFound},
		{name: "bad week", in: usecase.EditGoalInput{Op: usecase.GoalAdd, Week: domain.YearWeekKey{Year: 2024, Week: 60}, Description: "x"}, wantErr: domain.ErrInvalidPeriod},
		{name: "bad op", in: usecase.EditGoalInput{Op: usecase.GoalOp(9), Week: viewedWeek, Count: 1}, wantErr: domain.ErrInvalidAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStore()
			uc := usecase.NewEditGoal(store, store, &testutil.MockLogger{})

			_, err := uc.Execute(context.Background(), tt.in)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, store.Calls)
		})
	}
}

func TestEditGoal_FailureSkipsReload(t *testing.T) {
	store := newStore()
	store.GoalErr = domain.ErrRequestFailed
	uc := usecase.NewEditGoal(store, store, &testutil.MockLogger{})

	_, err := uc.Execute(context.Background(), usecase.EditGoalInput{Op: usecase.GoalDelete, Week: viewedWeek, Count: 1})

	assert.ErrorIs(t, err, domain.ErrRequestFailed)
	assert.Equal(t, []string{"DeleteGoal"}, store.Methods())
}

func TestGoalOp_String(t *testing.T) {
	assert.Equal(t, "undo", usecase.GoalReopen.String())
	assert.Equal(t, "unknown", usecase.GoalOp(9).String())
}
