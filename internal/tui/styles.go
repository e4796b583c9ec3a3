package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/quadrant/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	// Base colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color

	// Title/text colors
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
	DescNormal    lipgloss.Color

	// Quadrant colors, in board order
	UrgentImportant       lipgloss.Color
	UrgentNotImportant    lipgloss.Color
	NotUrgentImportant    lipgloss.Color
	NotUrgentNotImportant lipgloss.Color

	// Status colors
	Todo       lipgloss.Color
	InProgress lipgloss.Color
	Done       lipgloss.Color
	Cancelled  lipgloss.Color

	// Carryover badge and tags
	Badge lipgloss.Color
	Tag   lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green
	Warning:   lipgloss.Color("#FDCB6E"), // Yellow

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)
	DescNormal:    lipgloss.Color("#B2BEC3"), // Light gray

	UrgentImportant:       lipgloss.Color("#E17055"), // Orange red
	UrgentNotImportant:    lipgloss.Color("#FDCB6E"), // Yellow
	NotUrgentImportant:    lipgloss.Color("#0984E3"), // Blue
	NotUrgentNotImportant: lipgloss.Color("#636E72"), // Gray

	Todo:       lipgloss.Color("#74B9FF"), // Light blue
	InProgress: lipgloss.Color("#FDCB6E"), // Yellow
	Done:       lipgloss.Color("#00B894"), // Green
	Cancelled:  lipgloss.Color("#636E72"), // Gray

	Badge: lipgloss.Color("#FAB1A0"), // Peach
	Tag:   lipgloss.Color("#81ECEC"), // Cyan
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// Header
	Header     lipgloss.Style
	HeaderKind lipgloss.Style
	Stats      lipgloss.Style
	StatsValue lipgloss.Style

	// Quadrants
	Quadrant        lipgloss.Style
	QuadrantTitle   lipgloss.Style
	QuadrantCount   lipgloss.Style
	EmptyHint       lipgloss.Style
	Placeholder     lipgloss.Style
	ScrollIndicator lipgloss.Style

	// Cards
	CardTitle         lipgloss.Style
	CardTitleSelected lipgloss.Style
	CardTitleDone     lipgloss.Style
	CardDragging      lipgloss.Style
	CardCursor        lipgloss.Style
	CardID            lipgloss.Style
	CardMeta          lipgloss.Style
	CardNotes         lipgloss.Style
	CardActions       lipgloss.Style
	Badge             lipgloss.Style
	Tag               lipgloss.Style
	ProgressFull      lipgloss.Style
	ProgressEmpty     lipgloss.Style

	// Status badges
	StatusTodo       lipgloss.Style
	StatusInProgress lipgloss.Style
	StatusDone       lipgloss.Style
	StatusCancelled  lipgloss.Style

	// Goals
	Goals        lipgloss.Style
	GoalsTitle   lipgloss.Style
	GoalDone     lipgloss.Style
	GoalOpen     lipgloss.Style
	GoalSelected lipgloss.Style
	GoalsBlurred lipgloss.Style

	// Toast
	Toast      lipgloss.Style
	ToastError lipgloss.Style

	// Dialog
	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogPrompt lipgloss.Style
	Choice       lipgloss.Style
	ChoiceActive lipgloss.Style

	// Input
	Input       lipgloss.Style
	InputPrompt lipgloss.Style

	// Help/footer
	Help      lipgloss.Style
	Footer    lipgloss.Style
	FooterKey lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		HeaderKind: lipgloss.NewStyle().
			Foreground(Colors.Secondary),

		Stats: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		StatsValue: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal).
			Bold(true),

		Quadrant: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted),

		QuadrantTitle: lipgloss.NewStyle().
			Bold(true),

		QuadrantCount: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		EmptyHint: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Italic(true),

		Placeholder: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		ScrollIndicator: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		CardTitle: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		CardTitleSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		CardTitleDone: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Strikethrough(true),

		CardDragging: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Faint(true),

		CardCursor: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		CardID: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		CardMeta: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		CardNotes: lipgloss.NewStyle().
			Foreground(Colors.DescNormal).
			Italic(true),

		CardActions: lipgloss.NewStyle().
			Foreground(Colors.Secondary),

		Badge: lipgloss.NewStyle().
			Foreground(Colors.Badge),

		Tag: lipgloss.NewStyle().
			Foreground(Colors.Tag),

		ProgressFull: lipgloss.NewStyle().
			Foreground(Colors.Success),

		ProgressEmpty: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		StatusTodo: lipgloss.NewStyle().
			Foreground(Colors.Todo),

		StatusInProgress: lipgloss.NewStyle().
			Foreground(Colors.InProgress),

		StatusDone: lipgloss.NewStyle().
			Foreground(Colors.Done),

		StatusCancelled: lipgloss.NewStyle().
			Foreground(Colors.Cancelled),

		Goals: lipgloss.NewStyle().
			PaddingLeft(1),

		GoalsTitle: lipgloss.NewStyle().
			Foreground(Colors.Secondary).
			Bold(true),

		GoalDone: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Strikethrough(true),

		GoalOpen: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		GoalSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		GoalsBlurred: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Toast: lipgloss.NewStyle().
			Foreground(Colors.Success).
			Bold(true),

		ToastError: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),

		Dialog: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		DialogPrompt: lipgloss.NewStyle(),

		Choice: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		ChoiceActive: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		Input: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		InputPrompt: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		Help: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		FooterKey: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),
	}
}

// QuadrantColor returns the accent color of a quadrant.
func QuadrantColor(p domain.Priority) lipgloss.Color {
	switch p {
	case domain.PriorityUrgentImportant:
		return Colors.UrgentImportant
	case domain.PriorityUrgentNotImportant:
		return Colors.UrgentNotImportant
	case domain.PriorityNotUrgentImportant:
		return Colors.NotUrgentImportant
	case domain.PriorityNotUrgentNotImportant:
		return Colors.NotUrgentNotImportant
	default:
		return Colors.Muted
	}
}

// StatusStyle returns the style for a given status.
func (s Styles) StatusStyle(status domain.Status) lipgloss.Style {
	switch status {
	case domain.StatusTodo:
		return s.StatusTodo
	case domain.StatusInProgress:
		return s.StatusInProgress
	case domain.StatusDone:
		return s.StatusDone
	case domain.StatusCancelled:
		return s.StatusCancelled
	default:
		return s.StatusTodo
	}
}

// StatusIcon returns an icon for a given status.
func StatusIcon(status domain.Status) string {
	switch status {
	case domain.StatusTodo:
		return "○"
	case domain.StatusInProgress:
		return "●"
	case domain.StatusDone:
		return "✓"
	case domain.StatusCancelled:
		return "−"
	default:
		return "?"
	}
}
