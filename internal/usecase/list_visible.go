package usecase

import (
	"context"

	"github.com/runoshun/tasklist/internal/domain"
)

// ListVisibleInput contains the parameters for listing the filtered view.
type ListVisibleInput struct {
	Board *domain.Board
}

// ListVisibleOutput contains the rows to render.
// Fields are ordered to minimize memory padding.
type ListVisibleOutput struct {
	Filter    domain.Filter
	Tasks     []domain.VisibleTask
	Active    int // Active tasks in the whole list
	Completed int // Completed tasks in the whole list
}

// ListVisible is the use case for projecting the board through its filter.
type ListVisible struct {
	clock domain.Clock
}

// NewListVisible creates a new ListVisible use case.
func NewListVisible(clock domain.Clock) *ListVisible {
	return &ListVisible{clock: clock}
}

// Execute returns the visible rows in store order with their age data.
func (uc *ListVisible) Execute(_ context.Context, in ListVisibleInput) (*ListVisibleOutput, error) {
	active, completed := in.Board.Counts()
	return &ListVisibleOutput{
		Tasks:     in.Board.Visible(uc.clock.Now()),
		Filter:    in.Board.Filter,
		Active:    active,
		Completed: completed,
	}, nil
}
