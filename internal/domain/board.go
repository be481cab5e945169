package domain

import "time"

// Board is the session state container: the task list plus the current filter.
// The filter is view state only and is never persisted.
type Board struct {
	List   *TaskList
	Filter Filter
}

// NewBoard creates a board over the given list with the filter reset to all.
func NewBoard(list *TaskList) *Board {
	if list == nil {
		list = NewTaskList()
	}
	return &Board{List: list, Filter: FilterAll}
}

// VisibleTask is a read-only row of the filtered view.
// DisplayIndex is for user-facing numbering only; mutations use ID.
// Fields are ordered to minimize memory padding.
type VisibleTask struct {
	Text         string
	CreatedDate  string
	Age          AgeCategory
	AgeLabel     string
	DisplayIndex int // 1-based position within the filtered view
	DaysPassed   int
	ID           TaskID
	Completed    bool
	HasAge       bool
}

// Visible projects the list through the filter, in store order.
func (b *Board) Visible(now time.Time) []VisibleTask {
	var rows []VisibleTask
	for _, t := range b.List.Tasks() {
		if !b.Filter.Matches(t) {
			continue
		}
		days, ok := DaysPassed(t.CreatedDate, now)
		age := AgeUnknown
		if ok {
			age = CategorizeAge(days)
		}
		rows = append(rows, VisibleTask{
			DisplayIndex: len(rows) + 1,
			ID:           t.ID,
			Text:         t.Text,
			Completed:    t.Completed,
			CreatedDate:  t.CreatedDate,
			DaysPassed:   days,
			HasAge:       ok,
			Age:          age,
			AgeLabel:     AgeLabel(days, ok),
		})
	}
	return rows
}

// ResolveDisplayIndex returns the stable ID of the n-th (1-based) visible task.
func (b *Board) ResolveDisplayIndex(n int, now time.Time) (TaskID, bool) {
	rows := b.Visible(now)
	if n < 1 || n > len(rows) {
		return 0, false
	}
	return rows[n-1].ID, true
}

// Counts returns the number of active and completed tasks.
func (b *Board) Counts() (active, completed int) {
	for _, t := range b.List.Tasks() {
		if t.Completed {
			completed++
		} else {
			active++
		}
	}
	return active, completed
}
