package services

import (
	"time"
)

// MonthRange is a half-open calendar month interval [Start, End) in UTC.
type MonthRange struct {
	MonthKey string // "2006-01"
	Label    string // "Jan"
	Start    time.Time
	End      time.Time
}

// monthRangeAt returns the month containing t.
func monthRangeAt(t time.Time) MonthRange {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return MonthRange{
		MonthKey: start.Format("2006-01"),
		Label:    start.Format("Jan"),
		Start:    start,
		End:      start.AddDate(0, 1, 0),
	}
}

// monthRangeOf builds the range for a 0-based month index and a year, the
// encoding clients send. Returns false when either is out of range.
func monthRangeOf(month0, year int) (MonthRange, bool) {
	if month0 < 0 || month0 > 11 || year < 1970 || year > 9999 {
		return MonthRange{}, false
	}
	start := time.Date(year, time.Month(month0+1), 1, 0, 0, 0, 0, time.UTC)
	return monthRangeAt(start), true
}

// trailingMonths returns the n months ending at the month containing now,
// oldest first.
func trailingMonths(now time.Time, n int) []MonthRange {
	out := make([]MonthRange, 0, n)
	current := monthRangeAt(now)
	for i := n - 1; i >= 0; i-- {
		out = append(out, monthRangeAt(current.Start.AddDate(0, -i, 0)))
	}
	return out
}
