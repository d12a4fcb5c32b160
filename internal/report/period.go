package report

import (
	"fmt"
	"time"

	"github.com/abhisek/dailylearn/internal/clock"
)

// Period is a named report window ending today.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodTerm  Period = "term"
	PeriodAll   Period = "all"
)

var periodDays = map[Period]int{
	PeriodWeek:  7,
	PeriodMonth: 30,
	PeriodTerm:  120,
}

// Bounds returns the inclusive from/to dates of p as of now. PeriodAll is
// unbounded and yields empty strings.
func (p Period) Bounds(now time.Time) (from, to string, err error) {
	if p == PeriodAll {
		return "", "", nil
	}
	days, ok := periodDays[p]
	if !ok {
		return "", "", fmt.Errorf("unknown period %q (want week, month, term or all)", p)
	}
	to = now.Format(clock.DateLayout)
	from = now.AddDate(0, 0, -(days - 1)).Format(clock.DateLayout)
	return from, to, nil
}
