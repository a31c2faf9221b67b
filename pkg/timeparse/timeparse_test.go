package timeparse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var msk = time.FixedZone("MSK", 3*60*60)

// Reference instant: 2024-01-01T12:00:00+03:00.
func ref() time.Time {
	return time.Date(2024, 1, 1, 12, 0, 0, 0, msk)
}

func TestParse(t *testing.T) {
	now := ref()

	tests := []struct {
		name   string
		phrase string
		want   time.Time
	}{
		{"relative minutes", "in 10 minutes", now.Add(10 * time.Minute)},
		{"relative single minute", "in 1 minute", now.Add(time.Minute)},
		{"minutes short form", "in 45 min", now.Add(45 * time.Minute)},
		{"bare minute", "in a minute", now.Add(time.Minute)},
		{"relative hours", "in 2 hours", now.Add(2 * time.Hour)},
		{"relative single hour", "in 1 hour", now.Add(time.Hour)},
		{"bare hour", "in an hour", now.Add(time.Hour)},
		{"tomorrow with time", "tomorrow at 13:00", time.Date(2024, 1, 2, 13, 0, 0, 0, msk)},
		{"tomorrow with hour", "tomorrow at 7", time.Date(2024, 1, 2, 7, 0, 0, 0, msk)},
		{"bare tomorrow", "tomorrow", time.Date(2024, 1, 2, 9, 0, 0, 0, msk)},
		{"day after tomorrow with time", "day after tomorrow at 08:15", time.Date(2024, 1, 3, 8, 15, 0, 0, msk)},
		{"bare day after tomorrow", "day after tomorrow", time.Date(2024, 1, 3, 9, 0, 0, 0, msk)},
		{"today future", "today at 18:30", time.Date(2024, 1, 1, 18, 30, 0, 0, msk)},
		{"today past is returned as-is", "today at 08:00", time.Date(2024, 1, 1, 8, 0, 0, 0, msk)},
		{"date with time", "18.02 at 13:00", time.Date(2024, 2, 18, 13, 0, 0, 0, msk)},
		{"bare date", "18.02", time.Date(2024, 2, 18, 9, 0, 0, 0, msk)},
		{"date same day no rollover", "1.01 at 20:00", time.Date(2024, 1, 1, 20, 0, 0, 0, msk)},
		{"clock still ahead today", "14:30", time.Date(2024, 1, 1, 14, 30, 0, 0, msk)},
		{"clock already passed rolls to tomorrow", "09:00", time.Date(2024, 1, 2, 9, 0, 0, 0, msk)},
		{"mixed case with padding", "  In 10 Minutes  ", now.Add(10 * time.Minute)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.phrase, now)
			require.True(t, ok, "phrase %q should parse", tt.phrase)
			assert.True(t, tt.want.Equal(got), "phrase %q: want %s, got %s", tt.phrase, tt.want, got)
		})
	}
}

func TestParseClampsRelativeBounds(t *testing.T) {
	now := ref()

	got, ok := Parse("in 99999 minutes", now)
	require.True(t, ok)
	assert.True(t, now.Add(MaxRelativeMinutes*time.Minute).Equal(got), "minutes above the cap clamp to one week")

	got, ok = Parse("in 0 minutes", now)
	require.True(t, ok)
	assert.True(t, now.Add(time.Minute).Equal(got), "zero minutes clamp to one minute")

	got, ok = Parse("in 500 hours", now)
	require.True(t, ok)
	assert.True(t, now.Add(MaxRelativeHours*time.Hour).Equal(got), "hours above the cap clamp to one week")
}

func TestParseDateRollsToNextYear(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, msk)

	got, ok := Parse("18.02", now)
	require.True(t, ok)
	assert.True(t, time.Date(2025, 2, 18, 9, 0, 0, 0, msk).Equal(got))

	got, ok = Parse("18.02 at 13:00", now)
	require.True(t, ok)
	assert.True(t, time.Date(2025, 2, 18, 13, 0, 0, 0, msk).Equal(got))
}

func TestParseRejectsDatesOverAYearOut(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 30, 0, 0, msk)

	_, ok := Parse("31.12 at 23:59", now)
	assert.False(t, ok)
}

func TestParseRejectsImpossibleDates(t *testing.T) {
	// 29.02 rolls to 2025, which is not a leap year.
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, msk)

	_, ok := Parse("29.02", now)
	assert.False(t, ok)

	_, ok = Parse("32.01", ref())
	assert.False(t, ok)

	_, ok = Parse("15.13", ref())
	assert.False(t, ok)
}

func TestParseRejectsImpossibleTimes(t *testing.T) {
	for _, phrase := range []string{
		"today at 25:00",
		"tomorrow at 12:75",
		"25:00",
	} {
		_, ok := Parse(phrase, ref())
		assert.False(t, ok, "phrase %q must not parse", phrase)
	}
}

func TestParseUnrecognized(t *testing.T) {
	for _, phrase := range []string{
		"",
		"banana",
		"sometime soon",
		"at 13:00 tuesday-ish",
	} {
		_, ok := Parse(phrase, ref())
		assert.False(t, ok, "phrase %q must not parse", phrase)
	}
}

func TestParseKeepsReferenceZone(t *testing.T) {
	got, ok := Parse("tomorrow at 13:00", ref())
	require.True(t, ok)

	_, offset := got.Zone()
	assert.Equal(t, 3*60*60, offset)
}
