package birthday

import (
	"fmt"
	"sort"
	"time"
)

// Birthday is a single contact's birthday. Immutable once stored; edits
// replace the record wholesale.
type Birthday struct {
	Name  string `json:"name"`
	Day   int    `json:"day"`
	Month int    `json:"month"`
}

// daysInMonth allows Feb 29; leap years are not part of validation.
var daysInMonth = [13]int{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// ValidationError reports a (day, month) pair that is not a calendar date.
type ValidationError struct {
	Day   int
	Month int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid date: day=%d month=%d", e.Day, e.Month)
}

// Validate checks that the day is valid for the month.
func (b Birthday) Validate() error {
	if b.Month < 1 || b.Month > 12 {
		return &ValidationError{Day: b.Day, Month: b.Month}
	}
	if b.Day < 1 || b.Day > daysInMonth[b.Month] {
		return &ValidationError{Day: b.Day, Month: b.Month}
	}
	return nil
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// observedIn returns the calendar date this birthday is observed on in the
// given year. Feb 29 birthdays are observed on Feb 28 in non-leap years.
func (b Birthday) observedIn(year int) time.Time {
	day := b.Day
	if b.Month == 2 && b.Day == 29 && !isLeap(year) {
		day = 28
	}
	return time.Date(year, time.Month(b.Month), day, 0, 0, 0, 0, time.UTC)
}

// DaysUntil returns the number of days from today to the next occurrence of
// this birthday, wrapping to next year if the date has already passed.
// Returns 0 when the birthday is today.
func (b Birthday) DaysUntil(today time.Time) int {
	ref := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	next := b.observedIn(ref.Year())
	if next.Before(ref) {
		next = b.observedIn(ref.Year() + 1)
	}
	return int(next.Sub(ref) / (24 * time.Hour))
}

// OccursToday reports whether the birthday is observed today.
func (b Birthday) OccursToday(today time.Time) bool {
	return b.DaysUntil(today) == 0
}

// Reminder pairs a birthday with its distance from a reference date.
type Reminder struct {
	Birthday
	DaysUntil int
}

// Message builds the reminder line sent through a notifier.
func (r Reminder) Message(user string, today time.Time) string {
	if r.DaysUntil == 0 {
		return fmt.Sprintf("Hey %s! Today (%s) is %s's birthday!", user, today.Format("2006-01-02"), r.Name)
	}
	unit := "days"
	if r.DaysUntil == 1 {
		unit = "day"
	}
	return fmt.Sprintf("Hey %s! %s's birthday is in %d %s (%02d.%02d.)", user, r.Name, r.DaysUntil, unit, r.Day, r.Month)
}

// Upcoming returns the entries whose next occurrence is at most within days
// away, ascending by days-until, ties broken by contact name. The input is
// not modified.
func Upcoming(entries []Birthday, today time.Time, within int) []Reminder {
	var out []Reminder
	for _, b := range entries {
		if d := b.DaysUntil(today); d <= within {
			out = append(out, Reminder{Birthday: b, DaysUntil: d})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DaysUntil != out[j].DaysUntil {
			return out[i].DaysUntil < out[j].DaysUntil
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// SortCalendar orders entries by (month, day) for display. Returns a copy.
func SortCalendar(entries []Birthday) []Birthday {
	out := make([]Birthday, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Month != out[j].Month {
			return out[i].Month < out[j].Month
		}
		return out[i].Day < out[j].Day
	})
	return out
}
