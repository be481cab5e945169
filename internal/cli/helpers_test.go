package cli

import (
	"bytes"
	"encoding/base64"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/tasklist/internal/app"
	"github.com/runoshun/tasklist/internal/domain"
	"github.com/runoshun/tasklist/internal/testutil"
)

var testNow = time.Date(2024, 1, 20, 9, 0, 0, 0, time.Local)

// newTestContainer creates an app.Container over an in-memory store.
func newTestContainer(t *testing.T, store *testutil.MockTaskListStore) *app.Container {
	t.Helper()
	return app.NewWithDeps(
		app.Config{ProjectDir: t.TempDir(), GlobalConfigDir: t.TempDir()},
		nil,
		store,
		&testutil.MockClock{NowTime: testNow},
		nil,
	)
}

// seedList builds a list; texts prefixed with "x:" are completed.
func seedList(t *testing.T, entries ...string) *domain.TaskList {
	t.Helper()
	l := domain.NewTaskList()
	for _, e := range entries {
		completed := len(e) > 2 && e[:2] == "x:"
		if completed {
			e = e[2:]
		}
		task, err := l.Add(e, "2024-01-18")
		require.NoError(t, err)
		if completed {
			_, err = l.Toggle(task.ID)
			require.NoError(t, err)
		}
	}
	return l
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, c *app.Container, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCommand(c, "test")
	return run(root, args...)
}

func run(cmd *cobra.Command, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func savedTexts(store *testutil.MockTaskListStore) []string {
	var out []string
	for _, task := range store.Load().Tasks() {
		out = append(out, task.Text)
	}
	return out
}

func shareCode(json string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(json))
}
