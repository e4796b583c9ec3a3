// Package tui provides the terminal quadrant board.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal         Mode = iota // Default navigation mode
	ModeGrab                       // Keyboard drag of the selected card
	ModeConfirm                    // Confirmation dialog mode
	ModeInputTitle                 // Title input mode (for new task)
	ModeChoosePriority             // Quadrant picker for a new task
	ModeEditProgress               // Progress slider of an in-progress task
	ModeEditNote                   // Note editor of an in-progress task
	ModeInputGoal                  // Goal description input (weekly only)
	ModeJumpDate                   // Date input for jumping to a period
	ModeHelp                       // Help overlay mode
	ModeReport                     // Rendered report view
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeGrab:
		return "grab"
	case ModeConfirm:
		return "confirm"
	case ModeInputTitle:
		return "input_title"
	case ModeChoosePriority:
		return "choose_priority"
	case ModeEditProgress:
		return "edit_progress"
	case ModeEditNote:
		return "edit_note"
	case ModeInputGoal:
		return "input_goal"
	case ModeJumpDate:
		return "jump_date"
	case ModeHelp:
		return "help"
	case ModeReport:
		return "report"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeInputTitle, ModeEditProgress, ModeEditNote, ModeInputGoal, ModeJumpDate:
		return true
	case ModeNormal, ModeGrab, ModeConfirm, ModeChoosePriority, ModeHelp, ModeReport:
		return false
	}
	return false
}

// ConfirmAction represents the type of action requiring confirmation.
type ConfirmAction int

const (
	ConfirmNone       ConfirmAction = iota
	ConfirmDeleteTask               // Delete task
	ConfirmDeleteGoal               // Delete weekly goal
)

// String returns a human-readable description of the action.
func (a ConfirmAction) String() string {
	switch a {
	case ConfirmNone:
		return ""
	case ConfirmDeleteTask:
		return "delete task"
	case ConfirmDeleteGoal:
		return "delete goal"
	}
	return ""
}
