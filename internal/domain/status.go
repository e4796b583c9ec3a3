package domain

import "slices"

// Status represents the lifecycle state of a task.
type Status string

const (
	StatusTodo       Status = "todo"        // Created, not started
	StatusInProgress Status = "in_progress" // Started, progress tracked
	StatusDone       Status = "done"        // Completed
	StatusCancelled  Status = "cancelled"   // Abandoned
)

// AllStatuses returns all valid status values.
func AllStatuses() []Status {
	return []Status{
		StatusTodo,
		StatusInProgress,
		StatusDone,
		StatusCancelled,
	}
}

// Action is a user intent applied to a single task.
type Action string

const (
	ActionStart    Action = "start"
	ActionDone     Action = "done"
	ActionCancel   Action = "cancel"
	ActionProgress Action = "progress"
	ActionNote     Action = "note"
	ActionDelete   Action = "delete"
	ActionPriority Action = "priority"
)

// legalActions defines the actions offered per status.
// Terminal statuses only allow deletion.
//
//	todo ──start──▶ in_progress ──done──▶ done
//	  └────done────────────────┘  └─cancel─▶ cancelled
var legalActions = map[Status][]Action{
	StatusTodo:       {ActionStart, ActionDone, ActionDelete},
	StatusInProgress: {ActionDone, ActionCancel, ActionProgress, ActionNote, ActionDelete},
	StatusDone:       {ActionDelete},
	StatusCancelled:  {ActionDelete},
}

// Actions returns the actions a card with this status offers, in display order.
// The returned slice is a copy.
func (s Status) Actions() []Action {
	return slices.Clone(legalActions[s])
}

// Allows reports whether the action is legal from this status.
// ActionPriority is a drag/move operation and is allowed for every known status.
func (s Status) Allows(a Action) bool {
	if a == ActionPriority {
		return s.IsValid()
	}
	return slices.Contains(legalActions[s], a)
}

// Next returns the status a task ends up in after the action.
// Payload actions and priority changes keep the status.
func (s Status) Next(a Action) Status {
	switch a {
	case ActionStart:
		return StatusInProgress
	case ActionDone:
		return StatusDone
	case ActionCancel:
		return StatusCancelled
	default:
		return s
	}
}

// IsTerminal returns true if the status is a terminal state.
func (s Status) IsTerminal() bool {
	return s == StatusDone || s == StatusCancelled
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone, StatusCancelled:
		return true
	default:
		return false
	}
}

// Display returns the board label of the status.
func (s Status) Display() string {
	switch s {
	case StatusTodo:
		return "待办"
	case StatusInProgress:
		return "进行中"
	case StatusDone:
		return "已完成"
	case StatusCancelled:
		return "已取消"
	default:
		return string(s)
	}
}

// ParseAction converts a string into an Action.
func ParseAction(s string) (Action, error) {
	switch a := Action(s); a {
	case ActionStart, ActionDone, ActionCancel, ActionProgress, ActionNote, ActionDelete, ActionPriority:
		return a, nil
	}
	return "", ErrInvalidAction
}

// HasPayload reports whether the action carries a value.
func (a Action) HasPayload() bool {
	return a == ActionProgress || a == ActionNote || a == ActionPriority
}

// Display returns the button label of the action.
func (a Action) Display() string {
	switch a {
	case ActionStart:
		return "开始"
	case ActionDone:
		return "完成"
	case ActionCancel:
		return "取消"
	case ActionProgress:
		return "进度"
	case ActionNote:
		return "备注"
	case ActionDelete:
		return "删除"
	case ActionPriority:
		return "分类"
	default:
		return string(a)
	}
}

// SuccessMessage is the notification shown after the action succeeds.
func (a Action) SuccessMessage() string {
	switch a {
	case ActionStart:
		return "任务已开始"
	case ActionDone:
		return "任务已完成"
	case ActionCancel:
		return "任务已取消"
	case ActionProgress:
		return "进度已更新"
	case ActionNote:
		return "备注已更新"
	case ActionDelete:
		return "任务已删除"
	case ActionPriority:
		return "分类已更新"
	default:
		return "已更新"
	}
}
