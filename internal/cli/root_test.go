package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/tasklist/internal/app"
	"github.com/runoshun/tasklist/internal/domain"
	"github.com/runoshun/tasklist/internal/testutil"
)

func TestRootCommand_LaunchesTUI(t *testing.T) {
	store := testutil.NewMockTaskListStore(seedList(t, "A"))
	c := newTestContainer(t, store)

	var gotBoard *domain.Board
	orig := launchTUIFunc
	launchTUIFunc = func(_ *app.Container, board *domain.Board, _ error) error {
		gotBoard = board
		return nil
	}
	defer func() { launchTUIFunc = orig }()

	_, _, err := execute(t, c)

	require.NoError(t, err)
	require.NotNil(t, gotBoard)
	assert.Equal(t, 1, gotBoard.List.Len())
	assert.Equal(t, domain.FilterAll, gotBoard.Filter)
}

func TestRootCommand_PassesStartupImportError(t *testing.T) {
	c := newTestContainer(t, testutil.NewMockTaskListStore(nil))

	var gotErr error
	orig := launchTUIFunc
	launchTUIFunc = func(_ *app.Container, _ *domain.Board, startupErr error) error {
		gotErr = startupErr
		return nil
	}
	defer func() { launchTUIFunc = orig }()

	_, _, err := execute(t, c, "tui", "--list", "!!!")

	require.NoError(t, err)
	assert.ErrorIs(t, gotErr, domain.ErrDecode)
}

func TestRootCommand_PrintsConfigWarnings(t *testing.T) {
	c := newTestContainer(t, testutil.NewMockTaskListStore(nil))
	c.AppConfig.Warnings = []string{".tasklist.toml: unknown key: theme"}

	_, stderr, err := execute(t, c, "list")

	require.NoError(t, err)
	assert.Contains(t, stderr, "Warning: .tasklist.toml: unknown key: theme")
}

func TestRootCommand_NilContainer(t *testing.T) {
	_, _, err := execute(t, nil, "list")

	assert.ErrorContains(t, err, "not initialized")
}

func TestRootCommand_Version(t *testing.T) {
	stdout, _, err := execute(t, nil, "--version")

	require.NoError(t, err)
	assert.Contains(t, stdout, "test")
}
