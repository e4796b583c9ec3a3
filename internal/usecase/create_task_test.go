package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/runoshun/quadrant/internal/domain"
	"github.com/runoshun/quadrant/internal/testutil"
	"github.com/runoshun/quadrant/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTasks_Execute(t *testing.T) {
	// Setup
	store := newStore()
	uc := usecase.NewCreateTasks(store, &testutil.MockLogger{})

	// Execute
	out, err := uc.Execute(context.Background(), usecase.CreateTasksInput{
		Key: viewedWeek,
		Drafts: []domain.TaskDraft{
			{Title: " write report ", Priority: "nui", DueDate: "02/16", Tags: []string{"work"}},
			{Title: "call bank"},
		},
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"Create", "Create", "Fetch"}, store.Methods())
	first := store.CallsTo("Create")[0].Value.(domain.TaskDraft)
	assert.Equal(t, "write report", first.Title)
	assert.Equal(t, domain.PriorityNotUrgentImportant, first.Priority)
	assert.Equal(t, "02/16", first.DueDate)
	second := store.CallsTo("Create")[1].Value.(domain.TaskDraft)
	assert.Equal(t, domain.PriorityUrgentImportant, second.Priority)
	assert.NotNil(t, out.State)
}

func TestCreateTasks_DailyDropsDueDate(t *testing.T) {
	store := testutil.NewMockTaskStore()
	uc := usecase.NewCreateTasks(store, &testutil.MockLogger{})

	_, err := uc.Execute(context.Background(), usecase.CreateTasksInput{
		Key:    domain.DateKey{Date: "2024-02-14"},
		Drafts: []domain.TaskDraft{{Title: "x", DueDate: "02/20"}},
	})

	require.NoError(t, err)
	assert.Empty(t, store.CallsTo("Create")[0].Value.(domain.TaskDraft).DueDate)
}

func TestCreateTasks_ValidatesBeforeSending(t *testing.T) {
	store := newStore()
	uc := usecase.NewCreateTasks(store, &testutil.MockLogger{})

	_, err := uc.Execute(context.Background(), usecase.CreateTasksInput{
		Key:    viewedWeek,
		Drafts: []domain.TaskDraft{{Title: "ok"}, {Title: "  "}},
	})

	assert.ErrorIs(t, err, domain.ErrEmptyTitle)
	assert.Contains(t, err.Error(), "task 2")
	assert.Empty(t, store.Calls)
}

func TestCreateTasks_DryRun(t *testing.T) {
	store := newStore()
	uc := usecase.NewCreateTasks(store, &testutil.MockLogger{})

	out, err := uc.Execute(context.Background(), usecase.CreateTasksInput{
		Key:    viewedWeek,
		Drafts: []domain.TaskDraft{{Title: "a", Priority: "低"}},
		DryRun: true,
	})

	require.NoError(t, err)
	assert.Empty(t, store.Calls)
	assert.Nil(t, out.State)
	assert.Equal(t, domain.PriorityNotUrgentNotImportant, out.Drafts[0].Priority)
}

func TestCreateTasks_Errors(t *testing.T) {
	uc := usecase.NewCreateTasks(newStore(), &testutil.MockLogger{})

	_, err := uc.Execute(context.Background(), usecase.CreateTasksInput{Drafts: []domain.TaskDraft{{Title: "a"}}})
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)

	_, err = uc.Execute(context.Background(), usecase.CreateTasksInput{Key: viewedWeek})
	assert.ErrorIs(t, err, domain.ErrNoTasksInFile)
}

func TestCreateTasks_StoreFailureSkipsReload(t *testing.T) {
	store := newStore()
	store.CreateErr = errors.New("down")
	uc := usecase.NewCreateTasks(store, &testutil.MockLogger{})

	_, err := uc.Execute(context.Background(), usecase.CreateTasksInput{
		Key:    viewedWeek,
		Drafts: []domain.TaskDraft{{Title: "a"}, {Title: "b"}},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), `create task 1 ("a")`)
	assert.Equal(t, []string{"Create"}, store.Methods())
}
