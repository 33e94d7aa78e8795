package util

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	DateTimeFormat = "2006-01-02 15:04:05"
	DateFormat     = "2006-01-02"

	// DateNotAvailable is rendered for empty or unparsable dates.
	DateNotAvailable = "N/A"
)

const (
	minISOYear     = 1
	maxISOOffset   = 24 * time.Hour
	fractionDigits = 6
)

// ParseISODateTime parses an ISO 8601 date with an optional time and UTC offset.
//
// The date is YYYY-MM-DD, YYYYMMDD, YYYY-Www[-D] or YYYYWww[D]. The time follows
// any single separator character as HH[:MM[:SS[.f]]] or HH[MM[SS[.f]]], where
// the fraction may use '.' or ',' and is truncated to microseconds. The offset
// is +HH, +HHMM or +HH:MM with optional seconds. Every "Z" reads as "+00:00".
// Naive values are UTC. Surrounding whitespace is rejected.
func ParseISODateTime(str string) (time.Time, bool) {
	str = strings.ReplaceAll(str, "Z", "+00:00")
	if len(str) < 7 {
		return time.Time{}, false
	}

	sep, ok := isoDateSeparator(str)
	if !ok || sep > len(str) {
		return time.Time{}, false
	}
	year, month, day, ok := parseISODate(str[:sep])
	if !ok {
		return time.Time{}, false
	}
	if sep == len(str) {
		return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), true
	}

	_, size := utf8.DecodeRuneInString(str[sep:])
	clock, loc, ok := parseISOTime(str[sep+size:])
	if !ok {
		return time.Time{}, false
	}
	return time.Date(year, month, day, clock[0], clock[1], clock[2], clock[3]*int(time.Microsecond), loc), true
}

// FormatISODate returns the calendar date of an ISO timestamp in its own offset,
// or DateNotAvailable.
func FormatISODate(str string) string {
	t, ok := ParseISODateTime(str)
	if !ok {
		return DateNotAvailable
	}
	return DateToStr(t)
}

func DateToStr(dt time.Time) string {
	return dt.Format(DateFormat)
}

func DateTimeToStr(dt time.Time) string {
	return dt.Format(DateTimeFormat)
}

// isoDateSeparator returns where the date part ends.
func isoDateSeparator(s string) (int, bool) {
	n := len(s)
	if n == 7 {
		return 7, true
	}
	if s[4] == '-' {
		if s[5] != 'W' {
			return 10, true
		}
		if n > 8 && s[8] == '-' {
			if n == 9 {
				return 0, false
			}
			if n > 10 && isDigit(s[10]) {
				return 8, true
			}
			return 10, true
		}
		return 8, true
	}
	if s[4] == 'W' {
		idx := 7
		for idx < n && isDigit(s[idx]) {
			idx++
		}
		if idx < 9 {
			return idx, true
		}
		if idx%2 == 0 {
			return 7, true
		}
		return 8, true
	}
	return 8, true
}

func parseISODate(s string) (int, time.Month, int, bool) {
	if len(s) != 7 && len(s) != 8 && len(s) != 10 {
		return 0, 0, 0, false
	}
	year, ok := parseDigits(s[:4])
	if !ok || year < minISOYear {
		return 0, 0, 0, false
	}
	hasSep := s[4] == '-'
	pos := 4
	if hasSep {
		pos++
	}

	if pos < len(s) && s[pos] == 'W' {
		pos++
		if pos+2 > len(s) {
			return 0, 0, 0, false
		}
		week, ok := parseDigits(s[pos : pos+2])
		if !ok {
			return 0, 0, 0, false
		}
		pos += 2
		weekday := 1
		if pos < len(s) {
			if (s[pos] == '-') != hasSep {
				return 0, 0, 0, false
			}
			if hasSep {
				pos++
			}
			if weekday, ok = parseDigits(s[pos:]); !ok || len(s[pos:]) != 1 {
				return 0, 0, 0, false
			}
		}
		return isoWeekToDate(year, week, weekday)
	}

	if pos+2 > len(s) {
		return 0, 0, 0, false
	}
	month, ok := parseDigits(s[pos : pos+2])
	if !ok {
		return 0, 0, 0, false
	}
	pos += 2
	if pos >= len(s) || (s[pos] == '-') != hasSep {
		return 0, 0, 0, false
	}
	if hasSep {
		pos++
	}
	day, ok := parseDigits(s[pos:])
	if !ok || len(s[pos:]) != 2 {
		return 0, 0, 0, false
	}
	if month < 1 || month > 12 || day < 1 || day > daysIn(year, time.Month(month)) {
		return 0, 0, 0, false
	}
	return year, time.Month(month), day, true
}

func isoWeekToDate(year, week, weekday int) (int, time.Month, int, bool) {
	if weekday < 1 || weekday > 7 || week < 1 || week > 53 {
		return 0, 0, 0, false
	}
	if week == 53 {
		jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).Weekday()
		leap := daysIn(year, time.February) == 29
		if jan1 != time.Thursday && !(jan1 == time.Wednesday && leap) {
			return 0, 0, 0, false
		}
	}
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	monday := jan4.AddDate(0, 0, -((int(jan4.Weekday()) + 6) % 7))
	t := monday.AddDate(0, 0, (week-1)*7+weekday-1)
	if t.Year() < minISOYear || t.Year() > 9999 {
		return 0, 0, 0, false
	}
	return t.Year(), t.Month(), t.Day(), true
}

// parseISOTime reads the clock as hour, minute, second, microsecond and the offset.
func parseISOTime(s string) ([4]int, *time.Location, bool) {
	var clock [4]int
	if len(s) < 2 {
		return clock, nil, false
	}

	tzPos := strings.IndexAny(s, "+-")
	timePart := s
	if tzPos >= 0 {
		timePart = s[:tzPos]
	}
	clock, ok := parseClock(timePart)
	if !ok || clock[0] > 23 || clock[1] > 59 || clock[2] > 59 {
		return clock, nil, false
	}
	if tzPos < 0 {
		return clock, time.UTC, true
	}

	tzPart := s[tzPos+1:]
	if n := len(tzPart); n == 0 || n == 1 || n == 3 {
		return clock, nil, false
	}
	tz, ok := parseClock(tzPart)
	if !ok {
		return clock, nil, false
	}
	offset := time.Duration(tz[0])*time.Hour +
		time.Duration(tz[1])*time.Minute +
		time.Duration(tz[2])*time.Second +
		time.Duration(tz[3])*time.Microsecond
	if offset >= maxISOOffset {
		return clock, nil, false
	}
	if offset == 0 {
		return clock, time.UTC, true
	}
	if s[tzPos] == '-' {
		offset = -offset
	}
	return clock, time.FixedZone("", int(offset/time.Second)), true
}

// parseClock reads HH[:MM[:SS[.f]]] or HH[MM[SS[.f]]].
func parseClock(s string) ([4]int, bool) {
	var comps [4]int
	pos := 0
	hasSep := false
	for i := 0; i < 3; i++ {
		if len(s)-pos < 2 {
			return comps, false
		}
		v, ok := parseDigits(s[pos : pos+2])
		if !ok {
			return comps, false
		}
		comps[i] = v
		pos += 2
		if pos == len(s) || i == 2 {
			break
		}
		if i == 0 {
			hasSep = s[pos] == ':'
		}
		if hasSep {
			if s[pos] != ':' {
				return comps, false
			}
			pos++
		}
	}
	if pos == len(s) {
		return comps, true
	}

	if s[pos] != '.' && s[pos] != ',' {
		return comps, false
	}
	pos++
	frac := s[pos:]
	if len(frac) == 0 {
		return comps, false
	}
	for i := 0; i < len(frac); i++ {
		if !isDigit(frac[i]) {
			return comps, false
		}
	}
	if len(frac) > fractionDigits {
		frac = frac[:fractionDigits]
	}
	us, _ := parseDigits(frac)
	for i := len(frac); i < fractionDigits; i++ {
		us *= 10
	}
	comps[3] = us
	return comps, true
}

func parseDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	v := 0
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return 0, false
		}
		v = v*10 + int(s[i]-'0')
	}
	return v, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
