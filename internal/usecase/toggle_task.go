package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/runoshun/tasklist/internal/domain"
)

// ToggleTaskInput contains the parameters for toggling a task.
type ToggleTaskInput struct {
	Board *domain.Board
	ID    domain.TaskID // Stable identity, never a display position
}

// ToggleTaskOutput contains the result of toggling a task.
// Found is false when the ID no longer names a task; nothing changed then.
type ToggleTaskOutput struct {
	Task  domain.Task
	Found bool
}

// ToggleTask is the use case for flipping a task's completion flag.
type ToggleTask struct {
	store  domain.TaskListStore
	logger domain.Logger
}

// NewToggleTask creates a new ToggleTask use case.
func NewToggleTask(store domain.TaskListStore, logger domain.Logger) *ToggleTask {
	return &ToggleTask{
		store:  store,
		logger: loggerOrNop(logger),
	}
}

// Execute flips the completion flag of the task with the given ID.
func (uc *ToggleTask) Execute(_ context.Context, in ToggleTaskInput) (*ToggleTaskOutput, error) {
	snapshot := in.Board.List.Clone()

	task, err := in.Board.List.Toggle(in.ID)
	if errors.Is(err, domain.ErrStaleIdentity) {
		uc.logger.Warn("task", fmt.Sprintf("toggle ignored: no task #%d", in.ID))
		return &ToggleTaskOutput{}, nil
	}
	if err != nil {
		return nil, err
	}

	if err := commit(in.Board, snapshot, uc.store); err != nil {
		return nil, err
	}

	uc.logger.Info("task", fmt.Sprintf("toggled #%d completed=%t", task.ID, task.Completed))
	return &ToggleTaskOutput{Task: task, Found: true}, nil
}
