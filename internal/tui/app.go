package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/tasklist/internal/app"
	"github.com/runoshun/tasklist/internal/domain"
	"github.com/runoshun/tasklist/internal/usecase"
)

// Model is the main bubbletea model for the TUI.
// All use cases run inside Update so the board is only touched from one goroutine.
// Fields are ordered to minimize memory padding.
type Model struct {
	// Pointer fields (8 bytes each)
	container *app.Container
	board     *domain.Board
	err       error

	// Slices (24 bytes each)
	rows []domain.VisibleTask

	// Structs
	keys      KeyMap
	styles    Styles
	help      help.Model
	taskList  list.Model
	textInput textinput.Model

	// Strings
	notice string

	// Ints
	mode      Mode
	width     int
	height    int
	active    int
	completed int
	noticeSeq int
	confirmID domain.TaskID
}

// New creates a new TUI model over a loaded board.
// startupErr is a share import failure from the startup link; it is shown once.
func New(c *app.Container, board *domain.Board, startupErr error) *Model {
	styles := DefaultStyles()

	l := list.New(nil, newTaskDelegate(styles), 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	ti := textinput.New()
	ti.CharLimit = 500
	ti.Width = 60

	m := &Model{
		container: c,
		board:     board,
		keys:      DefaultKeyMap(),
		styles:    styles,
		help:      help.New(),
		taskList:  l,
		textInput: ti,
		mode:      ModeNormal,
	}
	if startupErr != nil {
		m.err = importError(startupErr)
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// refresh rebuilds the visible rows from the board and keeps the cursor in range.
func (m *Model) refresh() {
	out, err := m.container.ListVisibleUseCase().Execute(context.Background(), usecase.ListVisibleInput{
		Board: m.board,
	})
	if err != nil {
		m.err = err
		return
	}
	m.rows = out.Tasks
	m.active = out.Active
	m.completed = out.Completed

	items := make([]list.Item, len(m.rows))
	for i, row := range m.rows {
		items[i] = taskItem{row: row}
	}
	cursor := m.taskList.Index()
	m.taskList.SetItems(items)
	if cursor >= len(items) {
		cursor = len(items) - 1
	}
	if cursor >= 0 {
		m.taskList.Select(cursor)
	}
}

// selectedRow returns the row under the cursor.
func (m *Model) selectedRow() (domain.VisibleTask, bool) {
	item, ok := m.taskList.SelectedItem().(taskItem)
	if !ok {
		return domain.VisibleTask{}, false
	}
	return item.row, true
}

// shareBaseURL returns the configured share link base, if any.
func (m *Model) shareBaseURL() string {
	if m.container.AppConfig == nil {
		return ""
	}
	return m.container.AppConfig.Share.BaseURL
}

// importError prefixes share failures with their class for display.
func importError(err error) error {
	if class := domain.FailureClass(err); class != "" {
		return fmt.Errorf("import failed (%s): %w", class, err)
	}
	return err
}
