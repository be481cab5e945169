// Package domain contains core business entities and interfaces.
package domain

import (
	"slices"
	"strings"
)

// TaskID is the stable identity of a task within a list.
// It is assigned at creation and never derived from a display position.
type TaskID int

// Task represents a single entry in the list.
// Fields are ordered to minimize memory padding.
type Task struct {
	Text        string `json:"text"`        // Task text (required, immutable)
	CreatedDate string `json:"createdDate"` // Local calendar date, YYYY-MM-DD
	ID          TaskID `json:"id"`          // Stable identity
	Completed   bool   `json:"completed"`   // Completion flag
}

// TaskList is the ordered in-memory collection of tasks.
// Order is insertion order; it only changes by Add (append) or Delete (removal).
type TaskList struct {
	tasks  []*Task
	nextID TaskID
}

// NewTaskList creates an empty list.
func NewTaskList() *TaskList {
	return &TaskList{nextID: 1}
}

// Len returns the number of tasks in the list.
func (l *TaskList) Len() int {
	return len(l.tasks)
}

// Tasks returns a copy of all tasks in store order.
func (l *TaskList) Tasks() []Task {
	out := make([]Task, 0, len(l.tasks))
	for _, t := range l.tasks {
		out = append(out, *t)
	}
	return out
}

// Get returns the task with the given ID.
func (l *TaskList) Get(id TaskID) (Task, bool) {
	i := l.indexOf(id)
	if i < 0 {
		return Task{}, false
	}
	return *l.tasks[i], true
}

// Add appends a new pending task.
// Returns ErrEmptyInput if text is blank after trimming.
func (l *TaskList) Add(text, createdDate string) (Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Task{}, ErrEmptyInput
	}
	t := &Task{
		ID:          l.nextID,
		Text:        text,
		CreatedDate: createdDate,
	}
	l.nextID++
	l.tasks = append(l.tasks, t)
	return *t, nil
}

// Toggle flips the completion flag of the task with the given ID.
// The position is resolved from the ID at the moment of mutation.
func (l *TaskList) Toggle(id TaskID) (Task, error) {
	i := l.indexOf(id)
	if i < 0 {
		return Task{}, ErrStaleIdentity
	}
	l.tasks[i].Completed = !l.tasks[i].Completed
	return *l.tasks[i], nil
}

// Delete removes exactly the task with the given ID.
func (l *TaskList) Delete(id TaskID) (Task, error) {
	i := l.indexOf(id)
	if i < 0 {
		return Task{}, ErrStaleIdentity
	}
	removed := *l.tasks[i]
	l.tasks = slices.Delete(l.tasks, i, i+1)
	return removed, nil
}

// ReplaceAll swaps the entire contents of the list.
// Incoming IDs are discarded; fresh IDs are assigned in order.
func (l *TaskList) ReplaceAll(records []Task) {
	tasks := make([]*Task, 0, len(records))
	next := TaskID(1)
	for _, r := range records {
		r.ID = next
		next++
		tasks = append(tasks, &r)
	}
	l.tasks = tasks
	l.nextID = next
}

// Restore loads previously persisted records, keeping their IDs when valid.
// Records with a non-positive or duplicate ID get a fresh one.
func (l *TaskList) Restore(records []Task) {
	seen := make(map[TaskID]bool, len(records))
	maxID := TaskID(0)
	for _, r := range records {
		if r.ID > 0 && !seen[r.ID] {
			seen[r.ID] = true
			maxID = max(maxID, r.ID)
		}
	}

	used := make(map[TaskID]bool, len(records))
	next := maxID + 1
	tasks := make([]*Task, 0, len(records))
	for _, r := range records {
		if r.ID <= 0 || used[r.ID] {
			r.ID = next
			next++
		}
		used[r.ID] = true
		tasks = append(tasks, &r)
	}
	l.tasks = tasks
	l.nextID = next
}

// Clone returns a deep copy of the list, including the ID counter.
func (l *TaskList) Clone() *TaskList {
	c := &TaskList{nextID: l.nextID, tasks: make([]*Task, 0, len(l.tasks))}
	for _, t := range l.tasks {
		cp := *t
		c.tasks = append(c.tasks, &cp)
	}
	return c
}

func (l *TaskList) indexOf(id TaskID) int {
	return slices.IndexFunc(l.tasks, func(t *Task) bool {
		return t.ID == id
	})
}
