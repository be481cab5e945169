package domain

import "strings"

// TaskDraft is a task to be created from file input.
type TaskDraft struct {
	Text      string
	Completed bool
}

// DraftParser parses a bulk task file into drafts.
type DraftParser interface {
	// Parse returns the drafts in file order.
	// Returns ErrEmptyFile or ErrNoTasksInFile when there is nothing to add.
	Parse(content string) ([]TaskDraft, error)
}

// Validate checks that the draft would be accepted by TaskList.Add.
func (d TaskDraft) Validate() error {
	if strings.TrimSpace(d.Text) == "" {
		return ErrEmptyInput
	}
	return nil
}
