package usecase_test

import (
	"testing"
	"time"

	"github.com/runoshun/tasklist/internal/domain"
	"github.com/runoshun/tasklist/internal/testutil"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 1, 20, 10, 0, 0, 0, time.Local)

func newClock() *testutil.MockClock {
	return &testutil.MockClock{NowTime: testNow}
}

type seed struct {
	text      string
	date      string
	completed bool
}

// newBoard builds a board and a store already holding the same tasks.
func newBoard(t *testing.T, seeds ...seed) (*domain.Board, *testutil.MockTaskListStore) {
	t.Helper()
	list := domain.NewTaskList()
	for _, s := range seeds {
		date := s.date
		if date == "" {
			date = "2024-01-20"
		}
		task, err := list.Add(s.text, date)
		require.NoError(t, err)
		if s.completed {
			_, err = list.Toggle(task.ID)
			require.NoError(t, err)
		}
	}
	store := testutil.NewMockTaskListStore(list.Clone())
	return domain.NewBoard(list), store
}

func textsOf(tasks []domain.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, task.Text)
	}
	return out
}
