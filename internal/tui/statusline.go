package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/runoshun/tasklist/internal/domain"
)

// renderFilterTabs renders the three filter modes with the current one highlighted.
func (m *Model) renderFilterTabs() string {
	tabs := make([]string, 0, len(domain.AllFilters()))
	for i, f := range domain.AllFilters() {
		label := fmt.Sprintf("%d %s", i+1, f)
		if f == m.board.Filter {
			tabs = append(tabs, m.styles.FilterActive.Render(label))
		} else {
			tabs = append(tabs, m.styles.FilterInactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderCounts renders the active/completed summary for the whole list.
func (m *Model) renderCounts() string {
	return m.styles.Counts.Render(fmt.Sprintf("%d active, %d completed", m.active, m.completed))
}

// renderStatusLine renders the last error or notice, truncated to the window width.
// Errors win over notices.
func (m *Model) renderStatusLine() string {
	var line string
	switch {
	case m.err != nil:
		line = m.styles.ErrorMsg.Render("Error: " + singleLine(m.err.Error()))
	case m.notice != "":
		line = m.styles.Notice.Render(singleLine(m.notice))
	default:
		return ""
	}
	if w := m.contentWidth(); w > 0 {
		line = truncate.StringWithTail(line, uint(w), "…")
	}
	return line
}

func (m *Model) contentWidth() int {
	return m.width - m.styles.App.GetHorizontalFrameSize()
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
