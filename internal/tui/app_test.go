package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/tasklist/internal/domain"
)

func TestNew_ShowsStartupImportError(t *testing.T) {
	startupErr := fmt.Errorf("%w: bad base64", domain.ErrDecode)
	f := newFixture(t, startupErr, "Keep me")

	require.Error(t, f.model.err)
	assert.Contains(t, f.model.View(), "import failed (DecodeError)")
	assert.Equal(t, []string{"Keep me"}, f.visibleTexts())
}

func TestView_LoadingBeforeResize(t *testing.T) {
	plainColorProfile(t)
	f := newFixture(t, nil)
	f.model.width = 0
	assert.Equal(t, "Loading...", f.model.View())
}

func TestView_RowLayout(t *testing.T) {
	f := newFixture(t, nil, "Buy milk", "x:Walk dog")

	view := f.model.View()
	assert.Contains(t, view, "[1] [ ] Buy milk (Added: 2024-01-18) — 2 days past")
	assert.Contains(t, view, "[2] [x] Walk dog (Added: 2024-01-18) — 2 days past")
	assert.Contains(t, view, "1 active, 1 completed")
}

func TestView_EmptyMessages(t *testing.T) {
	f := newFixture(t, nil)
	assert.Contains(t, f.model.View(), "No tasks yet")

	f = newFixture(t, nil, "Open")
	f.act("3")
	assert.Contains(t, f.model.View(), "No completed tasks.")
}

func TestAdd_ThroughInput(t *testing.T) {
	f := newFixture(t, nil, "First")

	f.press("a")
	assert.Equal(t, ModeAdd, f.model.mode)
	f.typeText("  Second  ")
	cmd := f.press("enter")
	require.NotNil(t, cmd)
	f.model.Update(cmd())

	assert.Equal(t, ModeNormal, f.model.mode)
	assert.Equal(t, []string{"First", "Second"}, f.visibleTexts())
	assert.Equal(t, []string{"First", "Second"}, f.savedTexts())
	assert.Equal(t, "Added: Second", f.model.notice)
	assert.Equal(t, 1, f.model.taskList.Index())
}

func TestAdd_BlankIsIgnored(t *testing.T) {
	f := newFixture(t, nil, "First")

	f.press("a")
	f.typeText("   ")
	cmd := f.press("enter")

	assert.Nil(t, cmd)
	assert.Equal(t, []string{"First"}, f.visibleTexts())
	assert.Nil(t, f.model.err)
	assert.Equal(t, 0, f.store.SaveCount)
}

func TestAdd_EscapeCancels(t *testing.T) {
	f := newFixture(t, nil)

	f.press("a")
	f.typeText("Never mind")
	f.press("esc")

	assert.Equal(t, ModeNormal, f.model.mode)
	assert.Empty(t, f.visibleTexts())
}

func TestInputMode_QuitKeyIsText(t *testing.T) {
	f := newFixture(t, nil)

	f.press("a")
	f.press("q")

	assert.Equal(t, ModeAdd, f.model.mode)
	assert.Equal(t, "q", f.model.textInput.Value())
}

func TestToggle_UnderActiveFilterTargetsSelectedTask(t *testing.T) {
	f := newFixture(t, nil, "x:A", "B", "C")

	f.act("2")
	require.Equal(t, []string{"B", "C"}, f.visibleTexts())

	f.press("down")
	f.act("space")

	tasks := f.store.Saved.Tasks()
	assert.True(t, tasks[0].Completed)
	assert.False(t, tasks[1].Completed)
	assert.True(t, tasks[2].Completed, "C is the second visible row")
	assert.Equal(t, []string{"B"}, f.visibleTexts())
}

func TestDelete_ConfirmRemovesSelected(t *testing.T) {
	f := newFixture(t, nil, "x:A", "B", "x:C")

	f.act("3")
	require.Equal(t, []string{"A", "C"}, f.visibleTexts())
	f.press("down")
	f.press("d")
	assert.Equal(t, ModeConfirm, f.model.mode)
	assert.Contains(t, f.model.View(), `Delete "C"?`)

	f.act("y")

	assert.Equal(t, ModeNormal, f.model.mode)
	assert.Equal(t, []string{"A", "B"}, f.savedTexts())
	assert.Equal(t, []string{"A"}, f.visibleTexts())
	assert.Equal(t, "Deleted: C", f.model.notice)
}

func TestDelete_AnyOtherKeyCancels(t *testing.T) {
	f := newFixture(t, nil, "A")

	f.press("d")
	f.act("n")

	assert.Equal(t, ModeNormal, f.model.mode)
	assert.Equal(t, []string{"A"}, f.visibleTexts())
	assert.Equal(t, 0, f.store.SaveCount)
}

func TestDelete_EmptyListDoesNothing(t *testing.T) {
	f := newFixture(t, nil)

	f.press("d")
	assert.Equal(t, ModeNormal, f.model.mode)
}

func TestFilter_CycleAndDirect(t *testing.T) {
	f := newFixture(t, nil, "A", "x:B")

	f.act("f")
	assert.Equal(t, domain.FilterActive, f.model.board.Filter)
	f.act("f")
	assert.Equal(t, domain.FilterCompleted, f.model.board.Filter)
	assert.Equal(t, []string{"B"}, f.visibleTexts())
	f.act("f")
	assert.Equal(t, domain.FilterAll, f.model.board.Filter)

	f.act("2")
	assert.Equal(t, []string{"A"}, f.visibleTexts())
	f.act("1")
	assert.Equal(t, []string{"A", "B"}, f.visibleTexts())
	assert.Equal(t, 0, f.store.SaveCount, "filter is never persisted")
}

func TestExport_CopiesShareCode(t *testing.T) {
	f := newFixture(t, nil, "A", "x:B")

	f.act("e")

	require.NotEmpty(t, f.clipboard.Text)
	tasks, err := f.container.Codec.Decode(f.clipboard.Text, "2024-01-20")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "B", tasks[1].Text)
	assert.True(t, tasks[1].Completed)
	assert.Equal(t, "Copied share code to clipboard", f.model.notice)
}

func TestExport_LinkNeedsBaseURL(t *testing.T) {
	f := newFixture(t, nil, "A")

	f.act("E")

	require.Error(t, f.model.err)
	assert.ErrorIs(t, f.model.err, domain.ErrNoShareBaseURL)
	assert.Empty(t, f.clipboard.Text)
}

func TestExport_LinkWithBaseURL(t *testing.T) {
	f := newFixture(t, nil, "A")
	f.container.AppConfig.Share.BaseURL = "https://todo.example.com/"

	f.act("E")

	assert.Contains(t, f.clipboard.Text, "https://todo.example.com/?list=")
	assert.Equal(t, "Copied share link to clipboard", f.model.notice)
}

func TestExport_ClipboardFailure(t *testing.T) {
	f := newFixture(t, nil, "A")
	f.clipboard.Err = errors.New("xclip missing")

	f.act("e")

	require.Error(t, f.model.err)
	assert.Contains(t, f.model.View(), "xclip missing")
}

func TestImport_ReplacesList(t *testing.T) {
	src := newFixture(t, nil, "Shared one", "x:Shared two")
	src.act("e")
	code := src.clipboard.Text

	f := newFixture(t, nil, "Old")
	f.press("i")
	assert.Equal(t, ModeImport, f.model.mode)
	f.typeText(code)
	f.model.Update(f.press("enter")())

	assert.Equal(t, []string{"Shared one", "Shared two"}, f.visibleTexts())
	assert.Equal(t, []string{"Shared one", "Shared two"}, f.savedTexts())
	assert.Equal(t, "Imported 2 tasks", f.model.notice)
}

func TestImport_InvalidCodeKeepsList(t *testing.T) {
	f := newFixture(t, nil, "Old")

	f.press("i")
	f.typeText("%%%not-a-code")
	f.model.Update(f.press("enter")())

	require.Error(t, f.model.err)
	assert.Contains(t, f.model.err.Error(), "import failed (")
	assert.Equal(t, []string{"Old"}, f.visibleTexts())
	assert.Equal(t, 0, f.store.SaveCount)
}

func TestSaveFailure_RollsBackAndShowsError(t *testing.T) {
	f := newFixture(t, nil, "A")
	f.store.SaveErr = errors.New("disk full")

	f.act("space")

	require.Error(t, f.model.err)
	assert.Contains(t, f.model.View(), "disk full")
	assert.False(t, f.model.rows[0].Completed)
}

func TestNotice_ClearedOnlyByLatestSeq(t *testing.T) {
	f := newFixture(t, nil)

	f.model.Update(MsgNotice{Text: "one"})
	f.model.Update(MsgNotice{Text: "two"})
	f.model.Update(MsgClearNotice{Seq: 1})
	assert.Equal(t, "two", f.model.notice)

	f.model.Update(MsgClearNotice{Seq: 2})
	assert.Empty(t, f.model.notice)
}

func TestHelp_ToggleAndQuit(t *testing.T) {
	f := newFixture(t, nil)

	f.press("?")
	assert.Equal(t, ModeHelp, f.model.mode)
	assert.Contains(t, f.model.View(), "Keybindings")
	f.press("?")
	assert.Equal(t, ModeNormal, f.model.mode)

	assert.NotNil(t, f.press("q"))
	assert.NotNil(t, f.press("ctrl+c"))
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "normal", ModeNormal.String())
	assert.Equal(t, "import", ModeImport.String())
	assert.True(t, ModeAdd.IsInputMode())
	assert.False(t, ModeConfirm.IsInputMode())
}
