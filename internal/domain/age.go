package domain

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used for CreatedDate.
const DateLayout = "2006-01-02"

// AgeCategory classifies how long a task has been in the list.
type AgeCategory string

const (
	AgeRecent  AgeCategory = "recent"  // 0..3 days
	AgeAging   AgeCategory = "aging"   // 4..10 days
	AgeStale   AgeCategory = "stale"   // more than 10 days
	AgeUnknown AgeCategory = "unknown" // missing or unparseable date
)

// Age thresholds in days.
const (
	recentMaxDays = 3
	agingMaxDays  = 10
)

// FormatDate returns the local calendar date of t.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns the current local calendar date from the clock.
func Today(c Clock) string {
	return FormatDate(c.Now())
}

// DaysPassed returns the number of whole calendar days between createdDate and now.
// Time of day is ignored; future dates clamp to 0.
// ok is false when createdDate cannot be parsed.
func DaysPassed(createdDate string, now time.Time) (days int, ok bool) {
	created, err := time.ParseInLocation(DateLayout, createdDate, now.Location())
	if err != nil {
		return 0, false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	// Round to absorb DST shifts between the two midnights.
	days = int(today.Sub(created).Round(24*time.Hour) / (24 * time.Hour))
	if days < 0 {
		days = 0
	}
	return days, true
}

// CategorizeAge maps a day count to its category.
func CategorizeAge(days int) AgeCategory {
	switch {
	case days <= recentMaxDays:
		return AgeRecent
	case days <= agingMaxDays:
		return AgeAging
	default:
		return AgeStale
	}
}

// AgeLabel returns the human-readable age text.
func AgeLabel(days int, ok bool) string {
	switch {
	case !ok:
		return "No Age Data"
	case days == 0:
		return "Today"
	case days == 1:
		return "1 day past"
	default:
		return fmt.Sprintf("%d days past", days)
	}
}
