package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/runoshun/tasklist/internal/domain"
)

// taskItem wraps a visible row for the list component.
type taskItem struct {
	row domain.VisibleTask
}

// FilterValue implements list.Item.
func (i taskItem) FilterValue() string { return i.row.Text }

// taskDelegate renders one task per line.
type taskDelegate struct {
	styles Styles
}

func newTaskDelegate(styles Styles) taskDelegate {
	return taskDelegate{styles: styles}
}

// Height implements list.ItemDelegate.
func (d taskDelegate) Height() int { return 1 }

// Spacing implements list.ItemDelegate.
func (d taskDelegate) Spacing() int { return 0 }

// Update implements list.ItemDelegate.
func (d taskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

// Render implements list.ItemDelegate.
func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(taskItem)
	if !ok {
		return
	}
	_, _ = io.WriteString(w, d.renderRow(ti.row, index == m.Index(), m.Width()))
}

// renderRow lays out: cursor, [n], checkbox, text, (Added: date), age label.
// The text column absorbs truncation so the age label always stays visible.
func (d taskDelegate) renderRow(row domain.VisibleTask, selected bool, width int) string {
	cursor := "  "
	if selected {
		cursor = d.styles.Cursor.Render("> ")
	}

	index := fmt.Sprintf("[%d] ", row.DisplayIndex)
	box := d.styles.Checkbox.Render("[ ] ")
	if row.Completed {
		box = d.styles.CheckboxDone.Render("[x] ")
	}

	date := row.CreatedDate
	if date == "" {
		date = "-"
	}
	added := fmt.Sprintf(" (Added: %s) ", date)
	label := "— " + row.AgeLabel

	fixed := 2 + runewidth.StringWidth(index) + 4 + runewidth.StringWidth(added) + runewidth.StringWidth(label)
	text := row.Text
	if width > 0 {
		avail := width - fixed
		if avail < 1 {
			avail = 1
		}
		text = runewidth.Truncate(text, avail, "…")
	}

	textStyle := d.styles.TaskText
	switch {
	case row.Completed:
		textStyle = d.styles.TaskDone
	case selected:
		textStyle = d.styles.TaskSelected
	}

	var b strings.Builder
	b.WriteString(cursor)
	b.WriteString(d.styles.Index.Render(index))
	b.WriteString(box)
	b.WriteString(textStyle.Render(text))
	b.WriteString(d.styles.Date.Render(added))
	b.WriteString(d.styles.Age(row.Age).Render(label))
	return b.String()
}
