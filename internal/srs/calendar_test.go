package srs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/nerdeck/internal/srs"
)

func mustLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func fixedCalendar(loc *time.Location, now time.Time) srs.Calendar {
	return srs.NewCalendar(loc, func() time.Time { return now })
}

func TestCalendar_EndOfToday(t *testing.T) {
	loc := mustLocation(t, "America/New_York")
	// 02:30 UTC on the 10th is still the evening of the 9th in New York.
	cal := fixedCalendar(loc, time.Date(2024, 1, 10, 2, 30, 0, 0, time.UTC))

	cutoff := cal.EndOfToday()

	assert.Equal(t, time.Date(2024, 1, 9, 23, 59, 59, 999999000, loc), cutoff)
	assert.Equal(t, loc, cutoff.Location())
}

func TestCalendar_DefaultsToLocal(t *testing.T) {
	cal := srs.NewCalendar(nil, nil)

	assert.Equal(t, time.Local, cal.Location())
	assert.WithinDuration(t, time.Now(), cal.Now(), time.Minute)
}

func TestCalendar_DaysBetweenIgnoresTimeOfDay(t *testing.T) {
	cal := fixedCalendar(time.UTC, time.Time{})

	tests := []struct {
		name     string
		from, to time.Time
		expected int
	}{
		{
			name:     "late evening to early next morning",
			from:     time.Date(2024, 3, 1, 23, 59, 0, 0, time.UTC),
			to:       time.Date(2024, 3, 2, 0, 1, 0, 0, time.UTC),
			expected: 1,
		},
		{
			name:     "same day",
			from:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			to:       time.Date(2024, 3, 1, 23, 0, 0, 0, time.UTC),
			expected: 0,
		},
		{
			name:     "past date is negative",
			from:     time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC),
			to:       time.Date(2024, 3, 7, 18, 0, 0, 0, time.UTC),
			expected: -3,
		},
		{
			name:     "across leap day",
			from:     time.Date(2024, 2, 28, 8, 0, 0, 0, time.UTC),
			to:       time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC),
			expected: 2,
		},
		{
			name:     "one year",
			from:     time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC),
			to:       time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
			expected: 365,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cal.DaysBetween(tt.from, tt.to))
		})
	}
}

func TestCalendar_DaysBetweenAcrossDST(t *testing.T) {
	loc := mustLocation(t, "Europe/Berlin")
	cal := fixedCalendar(loc, time.Time{})

	// The night of 2024-03-31 is 23 hours long in Berlin.
	from := time.Date(2024, 3, 30, 12, 0, 0, 0, loc)
	to := time.Date(2024, 4, 1, 0, 30, 0, 0, loc)

	assert.Equal(t, 2, cal.DaysBetween(from, to))
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in       string
		expected time.Time
	}{
		{"2024-05-02T12:00:00.000Z", time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)},
		{"2024-05-02T12:00:00Z", time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)},
		{"2024-05-02T12:00:00+00:00", time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)},
		{"2024-05-02T14:00:00+02:00", time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)},
		{"2024-05-02T12:00:00+0000", time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)},
		{"2024-05-02T09:00:00.5-0300", time.Date(2024, 5, 2, 12, 0, 0, 500000000, time.UTC)},
		{"2024-05-02 14:00:00+0200", time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)},
		{"2024-05-02T12:00:00.123456", time.Date(2024, 5, 2, 12, 0, 0, 123456000, time.UTC)},
		{"2024-05-02T12:00", time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)},
		{"2024-05-02 12:00:00", time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC)},
		{" 2024-05-02 ", time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		got, err := srs.ParseTimestamp(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.True(t, tt.expected.Equal(got), "input %q: got %v, want %v", tt.in, got, tt.expected)
	}
}

func TestCalendar_DaysBetweenFarApart(t *testing.T) {
	cal := srs.NewCalendar(time.UTC, nil)
	first := time.Date(1, 1, 1, 12, 0, 0, 0, time.UTC)
	last := time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 3652058, cal.DaysBetween(first, last))
	assert.Equal(t, -3652058, cal.DaysBetween(last, first))
	assert.Equal(t, 2913012, cal.DaysBetween(time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC), last))
}

func TestParseTimestamp_NaiveIsUTC(t *testing.T) {
	got, err := srs.ParseTimestamp("2024-05-02T12:00:00")
	require.NoError(t, err)

	_, offset := got.Zone()
	assert.Equal(t, 0, offset)
}

func TestParseTimestamp_Rejects(t *testing.T) {
	for _, in := range []string{"", "   ", "tomorrow", "2024-13-45", "12:00:00", "2024/05/02"} {
		_, err := srs.ParseTimestamp(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestFormatTimestamp(t *testing.T) {
	loc := mustLocation(t, "Asia/Tokyo")

	assert.Equal(t, "2024-05-02T03:00:00+00:00", srs.FormatTimestamp(time.Date(2024, 5, 2, 12, 0, 0, 0, loc)))
	assert.Equal(t, "2024-05-02T12:00:00.5+00:00", srs.FormatTimestamp(time.Date(2024, 5, 2, 12, 0, 0, 500000000, time.UTC)))
}
