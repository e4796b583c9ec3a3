package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/quadrant/internal/domain"
)

// CreateTasksInput contains the parameters for creating tasks in a period.
type CreateTasksInput struct {
	Key    domain.AddressingKey
	Drafts []domain.TaskDraft
	DryRun bool // If true, validate without creating
}

// CreateTasksOutput contains the result of creating tasks.
type CreateTasksOutput struct {
	State  *BoardState        // Reloaded board, nil in dry-run mode
	Drafts []domain.TaskDraft // Normalized drafts
}

// CreateTasks creates one or more tasks, then reloads the period.
type CreateTasks struct {
	store  domain.TaskStore
	logger domain.Logger
}

// NewCreateTasks creates a new CreateTasks use case.
func NewCreateTasks(store domain.TaskStore, logger domain.Logger) *CreateTasks {
	return &CreateTasks{
		store:  store,
		logger: logger,
	}
}

// Execute validates every draft before sending the first one.
// Daily tasks carry no due date.
func (uc *CreateTasks) Execute(ctx context.Context, in CreateTasksInput) (*CreateTasksOutput, error) {
	if in.Key == nil {
		return nil, domain.ErrInvalidPeriod
	}
	if len(in.Drafts) == 0 {
		return nil, domain.ErrNoTasksInFile
	}

	drafts := make([]domain.TaskDraft, len(in.Drafts))
	for i, d := range in.Drafts {
		n, err := d.Normalize()
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		if in.Key.Kind() == domain.KindDaily {
			n.DueDate = ""
		}
		drafts[i] = n
	}

	if in.DryRun {
		return &CreateTasksOutput{Drafts: drafts}, nil
	}

	for i, d := range drafts {
		if err := uc.store.Create(ctx, in.Key, d); err != nil {
			return nil, fmt.Errorf("create task %d (%q): %w", i+1, d.Title, err)
		}
		uc.logger.Info("", "task", fmt.Sprintf("created %q in %s", d.Title, in.Key))
	}

	state, err := reload(ctx, uc.store, in.Key)
	if err != nil {
		return nil, err
	}
	return &CreateTasksOutput{State: state, Drafts: drafts}, nil
}
