package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/tasklist/internal/domain"
)

// Colors holds the palette used by the TUI.
type Colors struct {
	Primary    lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Subtle     lipgloss.Color
	Selection  lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color

	// Age indicator colours
	Recent  lipgloss.Color
	Aging   lipgloss.Color
	Stale   lipgloss.Color
	Unknown lipgloss.Color
}

// DefaultColors returns the default palette.
func DefaultColors() Colors {
	return Colors{
		Primary:    lipgloss.Color("#7AA2F7"),
		Background: lipgloss.Color("#1A1B26"),
		Text:       lipgloss.Color("#C0CAF5"),
		Muted:      lipgloss.Color("#565F89"),
		Subtle:     lipgloss.Color("#3B4261"),
		Selection:  lipgloss.Color("#283457"),
		Error:      lipgloss.Color("#F7768E"),
		Success:    lipgloss.Color("#9ECE6A"),

		Recent:  lipgloss.Color("#9ECE6A"),
		Aging:   lipgloss.Color("#E0AF68"),
		Stale:   lipgloss.Color("#F7768E"),
		Unknown: lipgloss.Color("#565F89"),
	}
}

// Styles contains all lipgloss styles for the TUI.
type Styles struct {
	App    lipgloss.Style
	Header lipgloss.Style
	Title  lipgloss.Style

	FilterActive   lipgloss.Style
	FilterInactive lipgloss.Style
	Counts         lipgloss.Style

	Cursor        lipgloss.Style
	Index         lipgloss.Style
	TaskText      lipgloss.Style
	TaskDone      lipgloss.Style
	TaskSelected  lipgloss.Style
	Date          lipgloss.Style
	Checkbox      lipgloss.Style
	CheckboxDone  lipgloss.Style
	EmptyList     lipgloss.Style
	InputPrompt   lipgloss.Style
	Dialog        lipgloss.Style
	DialogTitle   lipgloss.Style
	Notice        lipgloss.Style
	ErrorMsg      lipgloss.Style
	Footer        lipgloss.Style
	FooterKey     lipgloss.Style

	ageStyles map[domain.AgeCategory]lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	c := DefaultColors()
	return Styles{
		App: lipgloss.NewStyle().
			Padding(0, 1),
		Header: lipgloss.NewStyle().
			MarginBottom(1),
		Title: lipgloss.NewStyle().
			Foreground(c.Primary).
			Bold(true),

		FilterActive: lipgloss.NewStyle().
			Foreground(c.Background).
			Background(c.Primary).
			Padding(0, 1),
		FilterInactive: lipgloss.NewStyle().
			Foreground(c.Muted).
			Padding(0, 1),
		Counts: lipgloss.NewStyle().
			Foreground(c.Muted),

		Cursor: lipgloss.NewStyle().
			Foreground(c.Primary).
			Bold(true),
		Index: lipgloss.NewStyle().
			Foreground(c.Muted),
		TaskText: lipgloss.NewStyle().
			Foreground(c.Text),
		TaskDone: lipgloss.NewStyle().
			Foreground(c.Muted).
			Strikethrough(true),
		TaskSelected: lipgloss.NewStyle().
			Foreground(c.Text).
			Bold(true),
		Date: lipgloss.NewStyle().
			Foreground(c.Muted),
		Checkbox: lipgloss.NewStyle().
			Foreground(c.Muted),
		CheckboxDone: lipgloss.NewStyle().
			Foreground(c.Success),
		EmptyList: lipgloss.NewStyle().
			Foreground(c.Muted).
			Italic(true).
			Padding(1, 2),
		InputPrompt: lipgloss.NewStyle().
			Foreground(c.Primary).
			Bold(true),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c.Primary).
			Padding(0, 1),
		DialogTitle: lipgloss.NewStyle().
			Foreground(c.Primary).
			Bold(true),
		Notice: lipgloss.NewStyle().
			Foreground(c.Success),
		ErrorMsg: lipgloss.NewStyle().
			Foreground(c.Error).
			Bold(true),
		Footer: lipgloss.NewStyle().
			Foreground(c.Muted).
			MarginTop(1),
		FooterKey: lipgloss.NewStyle().
			Foreground(c.Primary),

		ageStyles: map[domain.AgeCategory]lipgloss.Style{
			domain.AgeRecent:  lipgloss.NewStyle().Foreground(c.Recent),
			domain.AgeAging:   lipgloss.NewStyle().Foreground(c.Aging),
			domain.AgeStale:   lipgloss.NewStyle().Foreground(c.Stale).Bold(true),
			domain.AgeUnknown: lipgloss.NewStyle().Foreground(c.Unknown).Italic(true),
		},
	}
}

// Age returns the style for an age category.
func (s Styles) Age(a domain.AgeCategory) lipgloss.Style {
	if st, ok := s.ageStyles[a]; ok {
		return st
	}
	return s.ageStyles[domain.AgeUnknown]
}
