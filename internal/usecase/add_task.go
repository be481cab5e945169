package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/tasklist/internal/domain"
)

// AddTaskInput contains the parameters for adding a task.
type AddTaskInput struct {
	Board *domain.Board
	Text  string // Raw user input; trimmed before use
}

// AddTaskOutput contains the created task.
type AddTaskOutput struct {
	Task domain.Task
}

// AddTask is the use case for appending a task.
type AddTask struct {
	store  domain.TaskListStore
	clock  domain.Clock
	logger domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(store domain.TaskListStore, clock domain.Clock, logger domain.Logger) *AddTask {
	return &AddTask{
		store:  store,
		clock:  clock,
		logger: loggerOrNop(logger),
	}
}

// Execute appends a pending task dated today.
// Blank input returns domain.ErrEmptyInput and changes nothing.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	snapshot := in.Board.List.Clone()

	task, err := in.Board.List.Add(in.Text, domain.Today(uc.clock))
	if err != nil {
		return nil, err
	}

	if err := commit(in.Board, snapshot, uc.store); err != nil {
		return nil, err
	}

	uc.logger.Info("task", fmt.Sprintf("added #%d", task.ID))
	return &AddTaskOutput{Task: task}, nil
}
