package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/tasklist/internal/domain"
)

// AddTasksFromFileInput contains the parameters for bulk adding tasks.
type AddTasksFromFileInput struct {
	Board   *domain.Board
	Content string // Task file content
	DryRun  bool   // If true, parse and validate without adding
}

// AddTasksFromFileOutput contains the added (or would-be added) tasks.
type AddTasksFromFileOutput struct {
	Tasks []domain.Task
}

// AddTasksFromFile is the use case for adding several tasks from a file.
type AddTasksFromFile struct {
	store  domain.TaskListStore
	parser domain.DraftParser
	clock  domain.Clock
	logger domain.Logger
}

// NewAddTasksFromFile creates a new AddTasksFromFile use case.
func NewAddTasksFromFile(
	store domain.TaskListStore,
	parser domain.DraftParser,
	clock domain.Clock,
	logger domain.Logger,
) *AddTasksFromFile {
	return &AddTasksFromFile{
		store:  store,
		parser: parser,
		clock:  clock,
		logger: loggerOrNop(logger),
	}
}

// Execute validates every draft first, then adds them all in one save.
// Nothing is added if any draft is invalid or the save fails.
func (uc *AddTasksFromFile) Execute(_ context.Context, in AddTasksFromFileInput) (*AddTasksFromFileOutput, error) {
	drafts, err := uc.parser.Parse(in.Content)
	if err != nil {
		return nil, err
	}
	for i, d := range drafts {
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
	}

	today := domain.Today(uc.clock)
	if in.DryRun {
		preview := make([]domain.Task, 0, len(drafts))
		for _, d := range drafts {
			preview = append(preview, domain.Task{Text: d.Text, CreatedDate: today, Completed: d.Completed})
		}
		return &AddTasksFromFileOutput{Tasks: preview}, nil
	}

	snapshot := in.Board.List.Clone()
	added := make([]domain.Task, 0, len(drafts))
	for i, d := range drafts {
		task, err := in.Board.List.Add(d.Text, today)
		if err != nil {
			in.Board.List = snapshot
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		if d.Completed {
			task, _ = in.Board.List.Toggle(task.ID)
		}
		added = append(added, task)
	}

	if err := commit(in.Board, snapshot, uc.store); err != nil {
		return nil, err
	}

	uc.logger.Info("task", fmt.Sprintf("added %d tasks from file", len(added)))
	return &AddTasksFromFileOutput{Tasks: added}, nil
}
