package usecase_test

import (
	"context"
	"testing"

	"github.com/runoshun/tasklist/internal/domain"
	"github.com/runoshun/tasklist/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListVisible_Execute_AgeCategories(t *testing.T) {
	board, _ := newBoard(t,
		seed{text: "today", date: "2024-01-20"},
		seed{text: "five", date: "2024-01-15"},
		seed{text: "eleven", date: "2024-01-09", completed: true},
	)
	uc := usecase.NewListVisible(newClock())

	out, err := uc.Execute(context.Background(), usecase.ListVisibleInput{Board: board})

	require.NoError(t, err)
	require.Len(t, out.Tasks, 3)
	assert.Equal(t, domain.AgeRecent, out.Tasks[0].Age)
	assert.Equal(t, domain.AgeAging, out.Tasks[1].Age)
	assert.Equal(t, domain.AgeStale, out.Tasks[2].Age)
	assert.Equal(t, 2, out.Active)
	assert.Equal(t, 1, out.Completed)
	assert.Equal(t, domain.FilterAll, out.Filter)
}

func TestListVisible_Execute_Filtered(t *testing.T) {
	board, _ := newBoard(t, seed{text: "a"}, seed{text: "b", completed: true}, seed{text: "c"})
	board.Filter = domain.FilterActive
	uc := usecase.NewListVisible(newClock())

	out, err := uc.Execute(context.Background(), usecase.ListVisibleInput{Board: board})

	require.NoError(t, err)
	require.Len(t, out.Tasks, 2)
	assert.Equal(t, "c", out.Tasks[1].Text)
	assert.Equal(t, 2, out.Tasks[1].DisplayIndex)
	assert.Equal(t, domain.TaskID(3), out.Tasks[1].ID)
}
