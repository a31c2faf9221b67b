// Package timeparse resolves free-text time phrases into absolute instants.
//
// All arithmetic happens in the location carried by the reference instant,
// so callers pass "now" already converted to the bot's time zone.
package timeparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Grammar bounds.
const (
	// MaxRelativeMinutes caps "in N minutes" at one week.
	MaxRelativeMinutes = 10080
	// MaxRelativeHours caps "in N hours" at one week.
	MaxRelativeHours = 168
)

// maxAhead rejects absolute dates resolving more than a year out.
const maxAhead = 365 * 24 * time.Hour

// defaultHour is used when a date phrase carries no time of day.
const defaultHour = 9

var (
	reMinutes    = regexp.MustCompile(`in\s+(\d+)\s*min(?:ute)?s?`)
	reHours      = regexp.MustCompile(`in\s+(\d+)\s*hours?`)
	reAfterNext  = regexp.MustCompile(`day after tomorrow at (\d{1,2}):(\d{2})`)
	reTomorrowHM = regexp.MustCompile(`tomorrow at (\d{1,2}):(\d{2})`)
	reTomorrowH  = regexp.MustCompile(`tomorrow at (\d{1,2})`)
	reTodayHM    = regexp.MustCompile(`today at (\d{1,2}):(\d{2})`)
	reDateHM     = regexp.MustCompile(`(\d{1,2})\.(\d{1,2}) at (\d{1,2}):(\d{2})`)
	reDate       = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})$`)
	reClock      = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
)

// Parse resolves phrase against now. The rules are tried in a fixed order and
// the first match wins; "day after tomorrow" has to precede "tomorrow" because
// the former contains the latter. A false result means the phrase matched no
// rule, or matched one with an impossible date or time of day.
func Parse(phrase string, now time.Time) (time.Time, bool) {
	phrase = strings.ToLower(strings.TrimSpace(phrase))

	if m := reMinutes.FindStringSubmatch(phrase); m != nil {
		n := atoi(m[1])
		if n < 1 {
			n = 1
		}
		if n > MaxRelativeMinutes {
			n = MaxRelativeMinutes
		}
		return now.Add(time.Duration(n) * time.Minute), true
	}

	if strings.Contains(phrase, "in a minute") {
		return now.Add(time.Minute), true
	}

	if m := reHours.FindStringSubmatch(phrase); m != nil {
		n := atoi(m[1])
		if n > MaxRelativeHours {
			n = MaxRelativeHours
		}
		return now.Add(time.Duration(n) * time.Hour), true
	}

	if strings.Contains(phrase, "in an hour") {
		return now.Add(time.Hour), true
	}

	if m := reAfterNext.FindStringSubmatch(phrase); m != nil {
		return at(now.AddDate(0, 0, 2), atoi(m[1]), atoi(m[2]))
	}

	if strings.Contains(phrase, "day after tomorrow") {
		return at(now.AddDate(0, 0, 2), defaultHour, 0)
	}

	if m := reTomorrowHM.FindStringSubmatch(phrase); m != nil {
		return at(now.AddDate(0, 0, 1), atoi(m[1]), atoi(m[2]))
	}

	if m := reTomorrowH.FindStringSubmatch(phrase); m != nil {
		return at(now.AddDate(0, 0, 1), atoi(m[1]), 0)
	}

	if strings.Contains(phrase, "tomorrow") {
		return at(now.AddDate(0, 0, 1), defaultHour, 0)
	}

	if m := reTodayHM.FindStringSubmatch(phrase); m != nil {
		// May resolve to the past; the caller validates.
		return at(now, atoi(m[1]), atoi(m[2]))
	}

	if m := reDateHM.FindStringSubmatch(phrase); m != nil {
		return dateAt(now, atoi(m[1]), atoi(m[2]), atoi(m[3]), atoi(m[4]))
	}

	if m := reDate.FindStringSubmatch(phrase); m != nil {
		return dateAt(now, atoi(m[1]), atoi(m[2]), defaultHour, 0)
	}

	if m := reClock.FindStringSubmatch(phrase); m != nil {
		t, ok := at(now, atoi(m[1]), atoi(m[2]))
		if !ok {
			return time.Time{}, false
		}
		// Today if still ahead, otherwise tomorrow.
		if !t.After(now) {
			t = t.AddDate(0, 0, 1)
		}
		return t, true
	}

	return time.Time{}, false
}

// at places a wall-clock time on the day of base.
func at(base time.Time, hour, minute int) (time.Time, bool) {
	if hour > 23 || minute > 59 {
		return time.Time{}, false
	}
	return time.Date(base.Year(), base.Month(), base.Day(), hour, minute, 0, 0, base.Location()), true
}

// dateAt resolves a day.month phrase to this year, rolling over to the next
// year when the date has already passed. Dates that normalize (31.02) or land
// more than a year ahead are rejected.
func dateAt(now time.Time, day, month, hour, minute int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || hour > 23 || minute > 59 {
		return time.Time{}, false
	}

	year := now.Year()
	if month < int(now.Month()) || (month == int(now.Month()) && day < now.Day()) {
		year++
	}

	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, now.Location())
	if t.Day() != day || t.Month() != time.Month(month) {
		return time.Time{}, false
	}
	if t.Sub(now) > maxAhead {
		return time.Time{}, false
	}
	return t, true
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
