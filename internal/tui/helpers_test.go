package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/runoshun/tasklist/internal/app"
	"github.com/runoshun/tasklist/internal/domain"
	"github.com/runoshun/tasklist/internal/testutil"
)

var testNow = time.Date(2024, 1, 20, 15, 0, 0, 0, time.Local)

// plainColorProfile disables ANSI output so views can be matched as text.
func plainColorProfile(t *testing.T) {
	t.Helper()
	prev := lipgloss.DefaultRenderer().ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() {
		lipgloss.SetColorProfile(prev)
	})
}

type fixture struct {
	model     *Model
	store     *testutil.MockTaskListStore
	clipboard *testutil.MockClipboard
	container *app.Container
}

// newFixture builds a sized model over a board seeded with texts.
// A "x:" prefix marks a task completed.
func newFixture(t *testing.T, startupErr error, texts ...string) *fixture {
	t.Helper()
	plainColorProfile(t)

	list := domain.NewTaskList()
	for _, text := range texts {
		done := len(text) > 2 && text[:2] == "x:"
		if done {
			text = text[2:]
		}
		task, err := list.Add(text, "2024-01-18")
		if err != nil {
			t.Fatalf("seed %q: %v", text, err)
		}
		if done {
			if _, err := list.Toggle(task.ID); err != nil {
				t.Fatalf("seed toggle: %v", err)
			}
		}
	}

	store := testutil.NewMockTaskListStore(list)
	clip := &testutil.MockClipboard{}
	c := app.NewWithDeps(app.Config{
		ProjectDir:      t.TempDir(),
		GlobalConfigDir: t.TempDir(),
	}, nil, store, &testutil.MockClock{NowTime: testNow}, nil)
	c.Clipboard = clip

	m := New(c, domain.NewBoard(store.Load()), startupErr)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	return &fixture{model: m, store: store, clipboard: clip, container: c}
}

// press sends one key and returns the resulting command without running it.
func (f *fixture) press(k string) tea.Cmd {
	_, cmd := f.model.Update(keyMsg(k))
	return cmd
}

// act sends one key and delivers the message produced by the action command.
func (f *fixture) act(k string) {
	if cmd := f.press(k); cmd != nil {
		f.model.Update(cmd())
	}
}

// typeText types s into the focused input.
func (f *fixture) typeText(s string) {
	f.model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func (f *fixture) visibleTexts() []string {
	out := make([]string, 0, len(f.model.rows))
	for _, row := range f.model.rows {
		out = append(out, row.Text)
	}
	return out
}

func (f *fixture) savedTexts() []string {
	if f.store.Saved == nil {
		return nil
	}
	tasks := f.store.Saved.Tasks()
	out := make([]string, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, task.Text)
	}
	return out
}
