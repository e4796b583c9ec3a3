package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/quadrant/internal/domain"
)

// DropTaskInput contains the parameters for completing a drag.
// Fields are ordered to minimize memory padding.
type DropTaskInput struct {
	Viewed  domain.AddressingKey
	Board   *domain.Board // Board as rendered when the card was released
	Session domain.DragSession
	Target  domain.DropTarget
}

// DropTaskOutput contains the result of a drop.
type DropTaskOutput struct {
	Moved           *domain.Board // Board after the optimistic move
	State           *BoardState   // Reloaded board
	Order           []string      // Order sent to the store, nil if none was sent
	Message         string
	PriorityChanged bool
}

// DropTask applies a drag-and-drop: an optional priority change, the
// reorder of native tasks and a reload.
type DropTask struct {
	store  domain.TaskStore
	logger domain.Logger
}

// NewDropTask creates a new DropTask use case.
func NewDropTask(store domain.TaskStore, logger domain.Logger) *DropTask {
	return &DropTask{
		store:  store,
		logger: logger,
	}
}

// Execute runs the drop protocol. Everything it needs about the dragged card
// comes from the session value, never from the live board.
func (uc *DropTask) Execute(ctx context.Context, in DropTaskInput) (*DropTaskOutput, error) {
	if in.Board == nil || in.Viewed == nil {
		return nil, domain.ErrInvalidPeriod
	}
	s := in.Session

	moved := in.Board.Clone()
	if err := moved.Move(s.TaskID, in.Target.Priority, in.Target.Index); err != nil {
		return nil, fmt.Errorf("move task: %w", err)
	}

	out := &DropTaskOutput{Moved: moved, Message: "顺序已调整"}

	if in.Target.Priority != s.FromPriority {
		key, err := domain.Resolve(s.Task(), in.Viewed)
		if err != nil {
			return nil, fmt.Errorf("resolve period: %w", err)
		}
		update := domain.TaskUpdate{Action: domain.ActionPriority, Value: string(in.Target.Priority)}
		if err := uc.store.Update(ctx, key, s.TaskID, update); err != nil {
			uc.logger.Warn(s.TaskID, "drag", fmt.Sprintf("priority change in %s failed: %v", key, err))
			return nil, fmt.Errorf("%w: %w", domain.ErrPriorityChange, err)
		}
		uc.logger.Info(s.TaskID, "drag", fmt.Sprintf("priority %s -> %s in %s", s.FromPriority, in.Target.Priority, key))
		out.PriorityChanged = true
		out.Message = domain.ActionPriority.SuccessMessage()
	}

	if !s.Carryover {
		order := moved.NativeOrder()
		if err := uc.store.Reorder(ctx, in.Viewed, order); err != nil {
			uc.logger.Warn(s.TaskID, "drag", fmt.Sprintf("reorder %s failed: %v", in.Viewed, err))
			return nil, fmt.Errorf("reorder tasks: %w", err)
		}
		uc.logger.Debug(s.TaskID, "drag", fmt.Sprintf("reordered %s: %v", in.Viewed, order))
		out.Order = order
	}

	state, err := reload(ctx, uc.store, in.Viewed)
	if err != nil {
		return nil, err
	}
	out.State = state
	return out, nil
}
