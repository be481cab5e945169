package usecase

import (
	"context"

	"github.com/runoshun/tasklist/internal/domain"
)

// SetFilterInput contains the parameters for changing the view filter.
type SetFilterInput struct {
	Board *domain.Board
	Mode  string // all, active or completed; empty means all
}

// SetFilterOutput contains the filter now in effect.
type SetFilterOutput struct {
	Filter domain.Filter
}

// SetFilter is the use case for changing the view filter.
// The filter is session state and is never persisted.
type SetFilter struct{}

// NewSetFilter creates a new SetFilter use case.
func NewSetFilter() *SetFilter {
	return &SetFilter{}
}

// Execute sets the board filter. The task list is not touched.
func (uc *SetFilter) Execute(_ context.Context, in SetFilterInput) (*SetFilterOutput, error) {
	f, err := domain.ParseFilter(in.Mode)
	if err != nil {
		return nil, err
	}
	in.Board.Filter = f
	return &SetFilterOutput{Filter: f}, nil
}
