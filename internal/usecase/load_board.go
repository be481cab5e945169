package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/tasklist/internal/domain"
)

// LoadBoardInput contains the parameters for loading the board at startup.
type LoadBoardInput struct {
	ShareInput string // Optional share code or share URL to import (--list)
}

// LoadBoardOutput contains the loaded board.
// ImportErr is set when ShareInput was given but could not be imported;
// the board then holds the stored list.
type LoadBoardOutput struct {
	Board     *domain.Board
	ImportErr error
	Imported  int // Number of tasks imported from ShareInput
}

// LoadBoard is the use case for building the session state at startup.
type LoadBoard struct {
	store  domain.TaskListStore
	codec  domain.ShareCodec
	clock  domain.Clock
	logger domain.Logger
}

// NewLoadBoard creates a new LoadBoard use case.
func NewLoadBoard(store domain.TaskListStore, codec domain.ShareCodec, clock domain.Clock, logger domain.Logger) *LoadBoard {
	return &LoadBoard{
		store:  store,
		codec:  codec,
		clock:  clock,
		logger: loggerOrNop(logger),
	}
}

// Execute loads the stored list and applies the startup share code, if any.
// An import failure never fails startup.
func (uc *LoadBoard) Execute(ctx context.Context, in LoadBoardInput) (*LoadBoardOutput, error) {
	board := domain.NewBoard(uc.store.Load())
	out := &LoadBoardOutput{Board: board}

	if strings.TrimSpace(in.ShareInput) == "" {
		return out, nil
	}

	imp := NewImportList(uc.store, uc.codec, uc.clock, uc.logger)
	res, err := imp.Execute(ctx, ImportListInput{Board: board, Input: in.ShareInput})
	if err != nil {
		uc.logger.Warn("startup", fmt.Sprintf("startup import failed: %v", err))
		out.ImportErr = err
		return out, nil
	}
	out.Imported = res.Count
	return out, nil
}
