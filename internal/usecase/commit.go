// Package usecase contains application use cases.
package usecase

import (
	"fmt"

	"github.com/runoshun/tasklist/internal/domain"
)

// commit persists the board's list. If the save fails the board is rolled
// back to snapshot so memory never diverges from what was durably stored.
func commit(board *domain.Board, snapshot *domain.TaskList, store domain.TaskListStore) error {
	if err := store.Save(board.List); err != nil {
		board.List = snapshot
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}

func loggerOrNop(logger domain.Logger) domain.Logger {
	if logger == nil {
		return domain.NopLogger{}
	}
	return logger
}
