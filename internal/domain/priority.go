package domain

// Priority is the quadrant label of a task.
// Values are the wire labels used by the store.
type Priority string

const (
	PriorityUrgentImportant       Priority = "紧急重要"
	PriorityUrgentNotImportant    Priority = "紧急不重要"
	PriorityNotUrgentImportant    Priority = "不紧急重要"
	PriorityNotUrgentNotImportant Priority = "不紧急不重要"
)

// QuadrantCount is the number of quadrants on the board.
const QuadrantCount = 4

// Priorities returns the quadrant labels in board order
// (top-left, top-right, bottom-left, bottom-right).
func Priorities() [QuadrantCount]Priority {
	return [QuadrantCount]Priority{
		PriorityUrgentImportant,
		PriorityUrgentNotImportant,
		PriorityNotUrgentImportant,
		PriorityNotUrgentNotImportant,
	}
}

// legacyPriorities maps the old high/medium/low labels.
var legacyPriorities = map[string]Priority{
	"高": PriorityUrgentImportant,
	"中": PriorityNotUrgentImportant,
	"低": PriorityNotUrgentNotImportant,
}

// ParsePriority converts a wire or legacy label, or a short alias
// (ui, uni, nui, nuni), into a Priority.
func ParsePriority(s string) (Priority, error) {
	switch p := Priority(s); p {
	case PriorityUrgentImportant, PriorityUrgentNotImportant, PriorityNotUrgentImportant, PriorityNotUrgentNotImportant:
		return p, nil
	}
	if p, ok := legacyPriorities[s]; ok {
		return p, nil
	}
	switch s {
	case "ui":
		return PriorityUrgentImportant, nil
	case "uni":
		return PriorityUrgentNotImportant, nil
	case "nui":
		return PriorityNotUrgentImportant, nil
	case "nuni":
		return PriorityNotUrgentNotImportant, nil
	}
	return "", ErrInvalidPriority
}

// Index returns the board position of the quadrant, or -1 if unknown.
func (p Priority) Index() int {
	for i, q := range Priorities() {
		if q == p {
			return i
		}
	}
	return -1
}

// IsValid returns true if the priority is one of the four quadrant labels.
func (p Priority) IsValid() bool {
	return p.Index() >= 0
}

// Short returns the short alias of the quadrant.
func (p Priority) Short() string {
	switch p {
	case PriorityUrgentImportant:
		return "ui"
	case PriorityUrgentNotImportant:
		return "uni"
	case PriorityNotUrgentImportant:
		return "nui"
	case PriorityNotUrgentNotImportant:
		return "nuni"
	default:
		return ""
	}
}
