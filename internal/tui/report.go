package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders a report for a terminal of the given width.
func RenderMarkdown(md string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(max(20, width)),
	)
	if err != nil {
		return "", fmt.Errorf("create renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

// resizeReport fits the report viewer to the window and re-renders the
// report at the new width. The raw Markdown is shown if rendering fails.
func (m *Model) resizeReport() {
	m.report.Width = m.width
	m.report.Height = max(1, m.height-2)
	if m.reportContent == "" {
		m.report.SetContent("")
		return
	}
	rendered, err := RenderMarkdown(m.reportContent, m.width-4)
	if err != nil {
		rendered = m.reportContent
	}
	m.report.SetContent(strings.TrimRight(rendered, "\n"))
	m.report.GotoTop()
}

// viewReport renders the report viewer.
func (m *Model) viewReport() string {
	title := m.styles.DialogTitle.Render(m.reportTitle)
	footer := m.help.ShortHelpView([]key.Binding{
		m.keys.Up, m.keys.Down, m.keys.Copy, m.keys.ReportClose,
	})
	return m.fit(title) + "\n" + m.report.View() + "\n" + m.fit(footer)
}
