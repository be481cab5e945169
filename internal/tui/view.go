package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"

	"github.com/runoshun/tasklist/internal/domain"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.mode == ModeHelp {
		return m.styles.App.Render(m.viewHelp())
	}

	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	if status := m.renderStatusLine(); status != "" {
		b.WriteString(status)
	}
	b.WriteString("\n")
	b.WriteString(m.viewList())

	switch m.mode {
	case ModeAdd, ModeImport:
		b.WriteString("\n")
		b.WriteString(m.viewInput())
	case ModeConfirm:
		b.WriteString("\n")
		b.WriteString(m.viewConfirm())
	case ModeNormal, ModeHelp:
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	return m.styles.App.Render(b.String())
}

func (m *Model) viewHeader() string {
	left := lipgloss.JoinHorizontal(lipgloss.Top,
		m.styles.Title.Render("Tasks"),
		"  ",
		m.renderFilterTabs(),
	)
	right := m.renderCounts()

	gap := m.contentWidth() - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		return left
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m *Model) viewList() string {
	if len(m.rows) == 0 {
		return m.styles.EmptyList.Render(m.emptyMessage())
	}
	return m.taskList.View()
}

func (m *Model) emptyMessage() string {
	switch m.board.Filter {
	case domain.FilterActive:
		if m.board.List.Len() > 0 {
			return "Nothing left to do."
		}
	case domain.FilterCompleted:
		if m.board.List.Len() > 0 {
			return "No completed tasks."
		}
	case domain.FilterAll:
	}
	return "No tasks yet. Press a to add one."
}

func (m *Model) viewInput() string {
	title := "Add task"
	if m.mode == ModeImport {
		title = "Import shared list (replaces all tasks)"
	}
	content := m.styles.DialogTitle.Render(title) + "\n" + m.textInput.View()
	return m.styles.Dialog.Render(content)
}

func (m *Model) viewConfirm() string {
	task, ok := m.board.List.Get(m.confirmID)
	if !ok {
		return ""
	}
	text := task.Text
	if w := m.contentWidth() - 20; w > 0 {
		text = runewidth.Truncate(text, w, "…")
	}
	content := m.styles.DialogTitle.Render("Delete task") + "\n" +
		fmt.Sprintf("Delete %q? ", text) +
		m.styles.FooterKey.Render("y") + "/" + m.styles.FooterKey.Render("N")
	return m.styles.Dialog.Render(content)
}

func (m *Model) viewFooter() string {
	var line string
	switch m.mode {
	case ModeAdd, ModeImport:
		line = m.help.ShortHelpView([]key.Binding{m.keys.Submit, m.keys.Escape})
	case ModeConfirm:
		line = m.help.ShortHelpView([]key.Binding{m.keys.Confirm, m.keys.Escape})
	case ModeNormal, ModeHelp:
		line = m.help.ShortHelpView(m.keys.ShortHelp())
	}
	if w := m.contentWidth(); w > 0 {
		line = truncate.StringWithTail(line, uint(w), "")
	}
	return m.styles.Footer.Render(line)
}

func (m *Model) viewHelp() string {
	title := m.styles.Title.Render("Keybindings")
	legend := m.styles.Counts.Render(
		"Age: " +
			m.styles.Age(domain.AgeRecent).Render("recent ≤3 days") + "  " +
			m.styles.Age(domain.AgeAging).Render("aging 4-10 days") + "  " +
			m.styles.Age(domain.AgeStale).Render("stale >10 days"),
	)
	return title + "\n\n" + m.help.FullHelpView(m.keys.FullHelp()) + "\n\n" + legend
}
