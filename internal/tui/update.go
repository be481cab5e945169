package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/tasklist/internal/domain"
	"github.com/runoshun/tasklist/internal/usecase"
)

const noticeTimeout = 3 * time.Second

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeList()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case MsgError:
		m.err = msg.Err
		m.notice = ""
		return m, nil

	case MsgNotice:
		return m, m.setNotice(msg.Text)

	case MsgClearNotice:
		if msg.Seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil
	}
	return m, nil
}

// resizeList gives the list whatever height the header and footer leave.
func (m *Model) resizeList() {
	// header(2) + status(1) + footer(2) + app padding
	h := m.height - 6
	if m.mode.IsInputMode() || m.mode == ModeConfirm {
		h -= 4
	}
	if h < 1 {
		h = 1
	}
	w := m.width - 2
	if w < 1 {
		w = 1
	}
	m.taskList.SetSize(w, h)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, even while typing.
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeAdd, ModeImport:
		return m.handleInputMode(msg)
	case ModeConfirm:
		return m.handleConfirmMode(msg)
	case ModeHelp:
		if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Escape) || key.Matches(msg, m.keys.Quit) {
			m.mode = ModeNormal
		}
		return m, nil
	case ModeNormal:
	}
	return m.handleNormalMode(msg)
}

func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.Add):
		return m, m.startInput(ModeAdd, "New task: ", "What needs to be done?")

	case key.Matches(msg, m.keys.Import):
		return m, m.startInput(ModeImport, "Share code: ", "paste a share code or link")

	case key.Matches(msg, m.keys.Toggle):
		return m, m.toggleSelected()

	case key.Matches(msg, m.keys.Delete):
		row, ok := m.selectedRow()
		if !ok {
			return m, nil
		}
		m.confirmID = row.ID
		m.mode = ModeConfirm
		m.resizeList()
		return m, nil

	case key.Matches(msg, m.keys.CycleFilter):
		return m, m.setFilter(m.board.Filter.Next())
	case key.Matches(msg, m.keys.FilterAll):
		return m, m.setFilter(domain.FilterAll)
	case key.Matches(msg, m.keys.FilterActive):
		return m, m.setFilter(domain.FilterActive)
	case key.Matches(msg, m.keys.FilterCompleted):
		return m, m.setFilter(domain.FilterCompleted)

	case key.Matches(msg, m.keys.Export):
		return m, m.export(false)
	case key.Matches(msg, m.keys.ExportLink):
		return m, m.export(true)
	}

	var cmd tea.Cmd
	m.taskList, cmd = m.taskList.Update(msg)
	return m, cmd
}

func (m *Model) handleInputMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.exitInput()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		value := m.textInput.Value()
		mode := m.mode
		m.exitInput()
		if mode == ModeAdd {
			return m, m.addTask(value)
		}
		return m, m.importList(value)
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m *Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := m.confirmID
	m.confirmID = 0
	m.mode = ModeNormal
	m.resizeList()
	if key.Matches(msg, m.keys.Confirm) {
		return m, m.deleteTask(id)
	}
	return m, nil
}

func (m *Model) startInput(mode Mode, prompt, placeholder string) tea.Cmd {
	m.mode = mode
	m.textInput.Reset()
	m.textInput.Prompt = prompt
	m.textInput.Placeholder = placeholder
	m.resizeList()
	return m.textInput.Focus()
}

func (m *Model) exitInput() {
	m.textInput.Blur()
	m.textInput.Reset()
	m.mode = ModeNormal
	m.resizeList()
}

// Actions. Each runs its use case synchronously, refreshes the rows and
// returns a command that reports the outcome as a message.

func (m *Model) addTask(text string) tea.Cmd {
	out, err := m.container.AddTaskUseCase().Execute(context.Background(), usecase.AddTaskInput{
		Board: m.board,
		Text:  text,
	})
	if errors.Is(err, domain.ErrEmptyInput) {
		return nil
	}
	if err != nil {
		return errCmd(err)
	}
	m.err = nil
	m.refresh()
	m.selectID(out.Task.ID)
	return noticeCmd(fmt.Sprintf("Added: %s", out.Task.Text))
}

func (m *Model) toggleSelected() tea.Cmd {
	row, ok := m.selectedRow()
	if !ok {
		return nil
	}
	_, err := m.container.ToggleTaskUseCase().Execute(context.Background(), usecase.ToggleTaskInput{
		Board: m.board,
		ID:    row.ID,
	})
	m.refresh()
	if err != nil {
		return errCmd(err)
	}
	m.err = nil
	return nil
}

func (m *Model) deleteTask(id domain.TaskID) tea.Cmd {
	out, err := m.container.DeleteTaskUseCase().Execute(context.Background(), usecase.DeleteTaskInput{
		Board: m.board,
		ID:    id,
	})
	m.refresh()
	if err != nil {
		return errCmd(err)
	}
	m.err = nil
	if !out.Found {
		return nil
	}
	return noticeCmd(fmt.Sprintf("Deleted: %s", out.Task.Text))
}

func (m *Model) setFilter(f domain.Filter) tea.Cmd {
	_, err := m.container.SetFilterUseCase().Execute(context.Background(), usecase.SetFilterInput{
		Board: m.board,
		Mode:  string(f),
	})
	if err != nil {
		return errCmd(err)
	}
	m.taskList.Select(0)
	m.refresh()
	return nil
}

func (m *Model) export(withURL bool) tea.Cmd {
	if withURL && m.shareBaseURL() == "" {
		return errCmd(domain.ErrNoShareBaseURL)
	}
	out, err := m.container.ExportListUseCase().Execute(context.Background(), usecase.ExportListInput{
		Board:   m.board,
		WithURL: withURL,
		Copy:    true,
	})
	if err != nil {
		return errCmd(err)
	}
	m.err = nil
	if out.URL != "" {
		return noticeCmd("Copied share link to clipboard")
	}
	return noticeCmd("Copied share code to clipboard")
}

func (m *Model) importList(input string) tea.Cmd {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	out, err := m.container.ImportListUseCase().Execute(context.Background(), usecase.ImportListInput{
		Board: m.board,
		Input: input,
	})
	if err != nil {
		return errCmd(importError(err))
	}
	m.err = nil
	m.taskList.Select(0)
	m.refresh()
	return noticeCmd(fmt.Sprintf("Imported %d tasks", out.Count))
}

// selectID moves the cursor to the row with the given ID, if visible.
func (m *Model) selectID(id domain.TaskID) {
	for i, row := range m.rows {
		if row.ID == id {
			m.taskList.Select(i)
			return
		}
	}
}

func (m *Model) setNotice(text string) tea.Cmd {
	m.noticeSeq++
	m.notice = text
	seq := m.noticeSeq
	return tea.Tick(noticeTimeout, func(time.Time) tea.Msg {
		return MsgClearNotice{Seq: seq}
	})
}

func errCmd(err error) tea.Cmd {
	return func() tea.Msg { return MsgError{Err: err} }
}

func noticeCmd(text string) tea.Cmd {
	return func() tea.Msg { return MsgNotice{Text: text} }
}
