package domain

import "fmt"

// Filter is the view projection applied over the task list.
type Filter string

const (
	FilterAll       Filter = "all"       // Every task, in store order
	FilterActive    Filter = "active"    // Tasks not yet completed
	FilterCompleted Filter = "completed" // Completed tasks
)

// AllFilters returns all valid filter modes in cycle order.
func AllFilters() []Filter {
	return []Filter{FilterAll, FilterActive, FilterCompleted}
}

// ParseFilter converts a mode name into a Filter.
// An empty string selects FilterAll.
func ParseFilter(s string) (Filter, error) {
	switch Filter(s) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterActive:
		return FilterActive, nil
	case FilterCompleted:
		return FilterCompleted, nil
	}
	return "", fmt.Errorf("%w: %q (want all, active or completed)", ErrInvalidFilter, s)
}

// Matches reports whether the task is visible under the filter.
// The zero Filter behaves as FilterAll; unknown modes match nothing.
func (f Filter) Matches(t Task) bool {
	switch f {
	case "", FilterAll:
		return true
	case FilterActive:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	}
	return false
}

// Next returns the following filter in cycle order.
func (f Filter) Next() Filter {
	switch f {
	case FilterAll:
		return FilterActive
	case FilterActive:
		return FilterCompleted
	case FilterCompleted:
		return FilterAll
	}
	return FilterAll
}

// String returns the mode name.
func (f Filter) String() string {
	if f == "" {
		return string(FilterAll)
	}
	return string(f)
}
