package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/runoshun/tasklist/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	Board *domain.Board
	ID    domain.TaskID // Stable identity, never a display position
}

// DeleteTaskOutput contains the removed task.
// Found is false when the ID no longer names a task; nothing changed then.
type DeleteTaskOutput struct {
	Task  domain.Task
	Found bool
}

// DeleteTask is the use case for removing a task.
type DeleteTask struct {
	store  domain.TaskListStore
	logger domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(store domain.TaskListStore, logger domain.Logger) *DeleteTask {
	return &DeleteTask{
		store:  store,
		logger: loggerOrNop(logger),
	}
}

// Execute removes exactly the task with the given ID.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	snapshot := in.Board.List.Clone()

	task, err := in.Board.List.Delete(in.ID)
	if errors.Is(err, domain.ErrStaleIdentity) {
		uc.logger.Warn("task", fmt.Sprintf("delete ignored: no task #%d", in.ID))
		return &DeleteTaskOutput{}, nil
	}
	if err != nil {
		return nil, err
	}

	if err := commit(in.Board, snapshot, uc.store); err != nil {
		return nil, err
	}

	uc.logger.Info("task", fmt.Sprintf("deleted #%d", task.ID))
	return &DeleteTaskOutput{Task: task, Found: true}, nil
}
