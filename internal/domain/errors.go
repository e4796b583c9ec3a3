package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrActionNotAllowed   = errors.New("action not allowed for task status")
	ErrInvalidAction      = errors.New("invalid action")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidPriority    = errors.New("invalid priority")
	ErrInvalidProgress    = errors.New("progress must be between 0 and 100")
	ErrMalformedSourceKey = errors.New("malformed carryover source key")
	ErrPeriodKindMismatch = errors.New("addressing key does not match view kind")
	ErrInvalidPeriod      = errors.New("invalid period")
	ErrInvalidRange       = errors.New("invalid date range")
	ErrEmptyTitle         = errors.New("title cannot be empty")
	ErrEmptyGoal          = errors.New("goal description cannot be empty")
	ErrGoalNotFound       = errors.New("goal not found")
	ErrNotCarryover       = errors.New("task is not a carryover task")
	ErrRequestFailed      = errors.New("request failed")
	ErrConfigExists       = errors.New("config file already exists")
	ErrNoDragSession      = errors.New("no drag in progress")
	ErrPriorityChange     = errors.New("change priority")
	ErrEmptyFile          = errors.New("file is empty")
	ErrNoTasksInFile      = errors.New("no tasks found in file")
)
