package srs

import (
	"fmt"
	"strings"
	"time"
)

// Calendar answers "what time is it" and "which day is it" for the scheduler.
// Both come from injected values so scheduling decisions are reproducible.
type Calendar struct {
	loc *time.Location
	now func() time.Time
}

// NewCalendar returns a Calendar that measures days in loc and reads the
// current instant from now. Nil arguments fall back to time.Local and time.Now.
func NewCalendar(loc *time.Location, now func() time.Time) Calendar {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return Calendar{loc: loc, now: now}
}

// Location is the zone calendar days are measured in.
func (c Calendar) Location() *time.Location {
	return c.loc
}

// Now returns the current instant in the calendar's location.
func (c Calendar) Now() time.Time {
	return c.now().In(c.loc)
}

// EndOfDay returns 23:59:59.999999 on t's local calendar day.
func (c Calendar) EndOfDay(t time.Time) time.Time {
	y, m, d := t.In(c.loc).Date()
	return time.Date(y, m, d, 23, 59, 59, 999999000, c.loc)
}

// EndOfToday is the due cutoff: a card due at any time today counts as due now.
func (c Calendar) EndOfToday() time.Time {
	return c.EndOfDay(c.Now())
}

// DaysBetween counts calendar days from from's local date to to's local date.
// Times of day are ignored, so 23:59 to 00:01 the next morning is one day.
func (c Calendar) DaysBetween(from, to time.Time) int {
	fy, fm, fd := from.In(c.loc).Date()
	ty, tm, td := to.In(c.loc).Date()
	a := time.Date(fy, fm, fd, 0, 0, 0, 0, time.UTC)
	b := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	// Unix seconds rather than Sub, which saturates past ~292 years.
	return int((b.Unix() - a.Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60

var timestampLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z0700",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04Z07:00",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTimestamp parses an ISO-8601 timestamp. "Z" means UTC and a timestamp
// without an offset is taken to be UTC.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", s)
}

// FormatTimestamp renders t in UTC as ISO-8601 with a numeric offset.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.999999-07:00")
}
