package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/tasklist/internal/domain"
)

// ImportListInput contains the parameters for importing a share code.
type ImportListInput struct {
	Board *domain.Board
	Input string // Bare share code or a share URL carrying ?list=
}

// ImportListOutput contains the result of an import.
type ImportListOutput struct {
	Count int // Number of tasks now in the list
}

// ImportList is the use case for replacing the list from a share code.
type ImportList struct {
	store  domain.TaskListStore
	codec  domain.ShareCodec
	clock  domain.Clock
	logger domain.Logger
}

// NewImportList creates a new ImportList use case.
func NewImportList(store domain.TaskListStore, codec domain.ShareCodec, clock domain.Clock, logger domain.Logger) *ImportList {
	return &ImportList{
		store:  store,
		codec:  codec,
		clock:  clock,
		logger: loggerOrNop(logger),
	}
}

// Execute decodes the share code and replaces the whole list with it.
// On any decode error the list and the stored value are unchanged and the
// error wraps domain.ErrDecode, domain.ErrParse or domain.ErrValidation.
func (uc *ImportList) Execute(_ context.Context, in ImportListInput) (*ImportListOutput, error) {
	token := uc.codec.TokenFromInput(in.Input)

	tasks, err := uc.codec.Decode(token, domain.Today(uc.clock))
	if err != nil {
		uc.logger.Warn("share", fmt.Sprintf("import rejected (%s): %v", domain.FailureClass(err), err))
		return nil, err
	}

	snapshot := in.Board.List.Clone()
	in.Board.List.ReplaceAll(tasks)
	if err := commit(in.Board, snapshot, uc.store); err != nil {
		return nil, err
	}

	uc.logger.Info("share", fmt.Sprintf("imported %d tasks", len(tasks)))
	return &ImportListOutput{Count: len(tasks)}, nil
}
