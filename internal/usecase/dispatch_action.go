package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/runoshun/quadrant/internal/domain"
)

// DispatchActionInput contains the parameters for acting on a task.
// Fields are ordered to minimize memory padding.
type DispatchActionInput struct {
	Viewed domain.AddressingKey // Currently viewed period
	Value  any                  // int or numeric string for progress, string for note and priority
	Task   *domain.Task
	Action domain.Action
}

// DispatchActionOutput contains the reloaded board.
type DispatchActionOutput struct {
	State   *BoardState
	Message string // Success notification
}

// DispatchAction applies one action to one task, then reloads the viewed period.
type DispatchAction struct {
	store  domain.TaskStore
	logger domain.Logger
}

// NewDispatchAction creates a new DispatchAction use case.
func NewDispatchAction(store domain.TaskStore, logger domain.Logger) *DispatchAction {
	return &DispatchAction{
		store:  store,
		logger: logger,
	}
}

// Execute validates the action against the task's status, sends it to the
// task's own period and reloads. Nothing is sent when validation fails, and
// nothing is reloaded when the request fails.
func (uc *DispatchAction) Execute(ctx context.Context, in DispatchActionInput) (*DispatchActionOutput, error) {
	if in.Task == nil {
		return nil, domain.ErrTaskNotFound
	}
	if !in.Task.Status.Allows(in.Action) {
		if _, err := domain.ParseAction(string(in.Action)); err != nil {
			return nil, fmt.Errorf("%s: %w", in.Action, err)
		}
		return nil, fmt.Errorf("%s on %s task: %w", in.Action, in.Task.Status, domain.ErrActionNotAllowed)
	}

	value, err := normalizeValue(in.Action, in.Value)
	if err != nil {
		return nil, err
	}

	key, err := domain.Resolve(in.Task, in.Viewed)
	if err != nil {
		return nil, fmt.Errorf("resolve period: %w", err)
	}

	if in.Action == domain.ActionDelete {
		if err := uc.store.Delete(ctx, key, in.Task.ID); err != nil {
			uc.logger.Warn(in.Task.ID, "action", fmt.Sprintf("delete in %s failed: %v", key, err))
			return nil, fmt.Errorf("delete task: %w", err)
		}
	} else {
		update := domain.TaskUpdate{Action: in.Action, Value: value}
		if err := uc.store.Update(ctx, key, in.Task.ID, update); err != nil {
			uc.logger.Warn(in.Task.ID, "action", fmt.Sprintf("%s in %s failed: %v", in.Action, key, err))
			return nil, fmt.Errorf("update task: %w", err)
		}
	}
	uc.logger.Info(in.Task.ID, "action", fmt.Sprintf("%s in %s", in.Action, key))

	state, err := reload(ctx, uc.store, in.Viewed)
	if err != nil {
		return nil, err
	}
	return &DispatchActionOutput{
		State:   state,
		Message: in.Action.SuccessMessage(),
	}, nil
}

// normalizeValue checks and converts the payload of an action.
func normalizeValue(action domain.Action, value any) (any, error) {
	switch action {
	case domain.ActionProgress:
		p, err := progressValue(value)
		if err != nil {
			return nil, err
		}
		return p, nil
	case domain.ActionNote:
		s, _ := value.(string)
		return s, nil
	case domain.ActionPriority:
		s, _ := value.(string)
		if p, ok := value.(domain.Priority); ok {
			s = string(p)
		}
		p, err := domain.ParsePriority(s)
		if err != nil {
			return nil, fmt.Errorf("priority %q: %w", s, err)
		}
		return string(p), nil
	case domain.ActionStart, domain.ActionDone, domain.ActionCancel, domain.ActionDelete:
	}
	return nil, nil
}

func progressValue(value any) (int, error) {
	var p int
	switch v := value.(type) {
	case int:
		p = v
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("progress %q: %w", v, domain.ErrInvalidProgress)
		}
		p = n
	default:
		return 0, fmt.Errorf("progress %v: %w", value, domain.ErrInvalidProgress)
	}
	if p < 0 || p > 100 {
		return 0, fmt.Errorf("progress %d: %w", p, domain.ErrInvalidProgress)
	}
	return p, nil
}
