package ledger

import "time"

// Interval is a closed calendar-date interval [Start, End], inclusive on
// both ends. Only the year/month/day components of the bounds are
// significant; times-of-day are normalized away.
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval builds an interval from two dates, truncating both to
// midnight UTC.
func NewInterval(start, end time.Time) Interval {
	return Interval{Start: toDate(start), End: toDate(end)}
}

// IsEmpty reports whether the interval contains no dates at all
// (Start after End). Empty intervals match nothing; they are not an error.
func (iv Interval) IsEmpty() bool {
	return iv.Start.After(iv.End)
}

// Contains reports whether the given date falls inside the interval,
// bounds included.
func (iv Interval) Contains(date time.Time) bool {
	if iv.IsEmpty() {
		return false
	}
	d := toDate(date)
	return !d.Before(iv.Start) && !d.After(iv.End)
}

// CurrentMonth returns the full calendar month containing ref. This is a
// month-and-year match, not a month-to-date window: on the 1st it covers
// the whole (mostly future) month, and back-dated transactions later in
// the month are included.
func CurrentMonth(ref time.Time) Interval {
	start := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return Interval{Start: start, End: end}
}

// PreviousMonth returns the full calendar month before the one containing
// ref. The previous month of January is December of the prior year.
func PreviousMonth(ref time.Time) Interval {
	firstOfCurrent := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := firstOfCurrent.AddDate(0, 0, -1)
	start := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC)
	return Interval{Start: start, End: end}
}

// YearToDate returns [Jan 1 of ref's year, ref].
func YearToDate(ref time.Time) Interval {
	start := time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	return Interval{Start: start, End: toDate(ref)}
}

func toDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
