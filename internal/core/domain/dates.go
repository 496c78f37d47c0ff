package domain

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for civil dates.
const DateLayout = "2006-01-02"

// DateOnly truncates t to midnight of its civil date, keeping the location.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same civil date, each read in
// its own location.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DaysInMonth returns the number of days in t's month.
func DaysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

// ParseDate parses a YYYY-MM-DD value in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad date %q", ErrInvalidRequest, s)
	}
	return t, nil
}

// DaysBetween returns the number of calendar days from a to b, comparing
// civil dates. It is negative when b precedes a.
func DaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	from := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	to := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// inLocation returns midnight of t's civil date in loc.
func inLocation(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// DateWindow is an inclusive range of civil dates.
type DateWindow struct {
	Start time.Time
	End   time.Time
}

// MonthToDate returns the window from the first day of day's month to day.
func MonthToDate(day time.Time) DateWindow {
	return DateWindow{
		Start: time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location()),
		End:   DateOnly(day),
	}
}

// LastDays returns the window of the n days before day, excluding day.
func LastDays(day time.Time, n int) DateWindow {
	d := DateOnly(day)
	return DateWindow{Start: d.AddDate(0, 0, -n), End: d.AddDate(0, 0, -1)}
}

// Contains reports whether day falls inside the window. Dates are compared
// by their civil value, so a window loaded from the database (UTC) and a day
// produced by the clock (local) compare correctly.
func (w DateWindow) Contains(day time.Time) bool {
	d := civil(day)
	return d >= civil(w.Start) && d <= civil(w.End)
}

// Days returns every date of the window in order, in the location of Start.
func (w DateWindow) Days() []time.Time {
	var out []time.Time
	end := civil(w.End)
	for d := DateOnly(w.Start); civil(d) <= end; d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}

// civil encodes the civil date of t as YYYYMMDD.
func civil(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}
