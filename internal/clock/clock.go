// Package clock isolates wall-clock reads so date-dependent logic can be
// driven by a fixed time in tests.
package clock

import "time"

// DateLayout is the calendar-date format used for all date keys.
const DateLayout = "2006-01-02"

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

// System reads the real clock in Location (time.Local when nil).
type System struct {
	Location *time.Location
}

func (s System) Now() time.Time {
	if s.Location == nil {
		return time.Now()
	}
	return time.Now().In(s.Location)
}

// Fixed always returns the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time { return time.Time(f) }

// Date formats t as YYYY-MM-DD in loc.
func Date(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format(DateLayout)
}

// Today returns the current calendar date of c in its own location.
func Today(c Clock) string {
	return c.Now().Format(DateLayout)
}

// DaysBetween returns the number of calendar days from a to b (b - a).
// Both must be YYYY-MM-DD; invalid input yields ok=false.
func DaysBetween(a, b string) (int, bool) {
	ta, err := time.Parse(DateLayout, a)
	if err != nil {
		return 0, false
	}
	tb, err := time.Parse(DateLayout, b)
	if err != nil {
		return 0, false
	}
	return int(tb.Sub(ta).Hours() / 24), true
}
