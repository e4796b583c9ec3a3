package tui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
	"github.com/runoshun/quadrant/internal/domain"
)

const progressBarWidth = 10

// actionKeys maps card actions to their keys, in card order.
var actionKeys = map[domain.Action]string{
	domain.ActionStart:    "s",
	domain.ActionDone:     "d",
	domain.ActionCancel:   "c",
	domain.ActionProgress: "p",
	domain.ActionNote:     "e",
	domain.ActionDelete:   "x",
}

// cardLines renders a card as lines no wider than width.
// Unselected cards take two lines; the selected card also shows its details
// and the keys of its legal actions.
func (m *Model) cardLines(c domain.CardModel, width int, selected bool) []string {
	t := c.Task

	cursor := "  "
	titleStyle := m.styles.CardTitle
	if selected {
		cursor = m.styles.CardCursor.Render("▸ ")
		titleStyle = m.styles.CardTitleSelected
	}
	if t.Status.IsTerminal() {
		titleStyle = m.styles.CardTitleDone
	}

	titleWidth := max(1, width-4)
	title := t.Title
	if runewidth.StringWidth(title) > titleWidth {
		title = runewidth.Truncate(title, titleWidth, "...")
	}
	icon := m.styles.StatusStyle(t.Status).Render(StatusIcon(t.Status))
	lines := []string{cursor + icon + " " + titleStyle.Render(title)}

	info := []string{m.styles.StatusStyle(t.Status).Render(t.Status.Display())}
	if t.Status == domain.StatusInProgress {
		info = append(info, m.progressBar(t.Progress))
	}
	if c.Badge != "" {
		info = append(info, m.styles.Badge.Render(c.Badge))
	}
	if len(t.Tags) > 0 {
		info = append(info, m.styles.Tag.Render("#"+strings.Join(t.Tags, " #")))
	}
	lines = append(lines, "    "+strings.Join(info, " "))

	if selected {
		for _, meta := range c.Meta() {
			lines = append(lines, "    "+m.styles.CardMeta.Render(meta))
		}
		if t.Notes != "" {
			lines = append(lines, "    "+m.styles.CardNotes.Render("备注: "+t.Notes))
		}
		if t.Description != "" {
			lines = append(lines, "    "+m.styles.CardNotes.Render(singleLine(t.Description)))
		}
		lines = append(lines, "    "+m.styles.CardID.Render("#"+t.ID))
		lines = append(lines, "    "+m.styles.CardActions.Render(actionHints(c)))
	}

	for i, line := range lines {
		lines[i] = truncate.StringWithTail(line, uint(max(0, width)), "")
	}
	return lines
}

// actionHints lists the card's actions with their keys.
func actionHints(c domain.CardModel) string {
	hints := make([]string, 0, len(c.Actions)+1)
	for _, a := range c.Actions {
		if k, ok := actionKeys[a]; ok {
			hints = append(hints, fmt.Sprintf("[%s]%s", k, a.Display()))
		}
	}
	hints = append(hints, "[m]移动")
	return strings.Join(hints, " ")
}

func (m *Model) progressBar(progress int) string {
	p := max(0, min(progress, 100))
	filled := p * progressBarWidth / 100
	return m.styles.ProgressFull.Render(strings.Repeat("▰", filled)) +
		m.styles.ProgressEmpty.Render(strings.Repeat("▱", progressBarWidth-filled)) +
		fmt.Sprintf(" %d%%", p)
}

func singleLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}
