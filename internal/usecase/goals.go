package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/quadrant/internal/domain"
)

// GoalOp is a goal list mutation.
type GoalOp int

const (
	GoalAdd GoalOp = iota
	GoalComplete
	GoalReopen
	GoalDelete
)

func (op GoalOp) String() string {
	switch op {
	case GoalAdd:
		return "add"
	case GoalComplete:
		return "done"
	case GoalReopen:
		return "undo"
	case GoalDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// EditGoalInput contains the parameters for a goal mutation.
// Fields are ordered to minimize memory padding.
type EditGoalInput struct {
	Description string // GoalAdd only
	Week        domain.YearWeekKey
	Op          GoalOp
	Index       int // Zero-based position in the week's list; ignored for GoalAdd
	Count       int // Number of goals currently shown, used to reject stale indexes
}

// EditGoalOutput contains the reloaded board.
type EditGoalOutput struct {
	State   *BoardState
	Message string
}

// EditGoal adds, toggles or deletes a weekly goal, then reloads the week.
// Goals are addressed by position, so the caller must pass the count of the
// list the index was taken from.
type EditGoal struct {
	goals  domain.GoalStore
	store  domain.TaskStore
	logger domain.Logger
}

// NewEditGoal creates a new EditGoal use case.
func NewEditGoal(goals domain.GoalStore, store domain.TaskStore, logger domain.Logger) *EditGoal {
	return &EditGoal{
		goals:  goals,
		store:  store,
		logger: logger,
	}
}

// Execute applies the mutation.
func (uc *EditGoal) Execute(ctx context.Context, in EditGoalInput) (*EditGoalOutput, error) {
	if in.Week.Week < 1 || in.Week.Week > domain.ISOWeeksInYear(in.Week.Year) {
		return nil, fmt.Errorf("week %s: %w", in.Week, domain.ErrInvalidPeriod)
	}
	if in.Op != GoalAdd && (in.Index < 0 || in.Index >= in.Count) {
		return nil, fmt.Errorf("goal %d of %d: %w", in.Index+1, in.Count, domain.ErrGoalNotFound)
	}

	var err error
	var msg string
	switch in.Op {
	case GoalAdd:
		desc := strings.TrimSpace(in.Description)
		if desc == "" {
			return nil, domain.ErrEmptyGoal
		}
		err = uc.goals.AddGoal(ctx, in.Week, desc)
		msg = "目标已添加"
	case GoalComplete:
		err = uc.goals.SetGoal(ctx, in.Week, in.Index, true)
		msg = "目标已完成"
	case GoalReopen:
		err = uc.goals.SetGoal(ctx, in.Week, in.Index, false)
		msg = "目标已恢复"
	case GoalDelete:
		err = uc.goals.DeleteGoal(ctx, in.Week, in.Index)
		msg = "目标已删除"
	default:
		return nil, fmt.Errorf("goal op %d: %w", in.Op, domain.ErrInvalidAction)
	}
	if err != nil {
		return nil, fmt.Errorf("%s goal: %w", in.Op, err)
	}
	uc.logger.Info("", "goal", fmt.Sprintf("%s goal %d in %s", in.Op, in.Index, in.Week))

	state, err := reload(ctx, uc.store, in.Week)
	if err != nil {
		return nil, err
	}
	return &EditGoalOutput{State: state, Message: msg}, nil
}
