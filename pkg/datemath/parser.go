// Package datemath parses TeamCity timestamps and renders elapsed times.
package datemath

import (
	"regexp"
	"strconv"
	"time"
)

// teamCityPattern matches the REST API timestamp format, e.g. 20250812T000012-0300.
var teamCityPattern = regexp.MustCompile(`^(\d{4})(\d{2})(\d{2})T(\d{2})(\d{2})(\d{2})([+-])(\d{2})(\d{2})$`)

// IsTeamCityTimestamp reports whether s has the TeamCity timestamp shape. It
// does not check the calendar values.
func IsTeamCityTimestamp(s string) bool {
	return teamCityPattern.MatchString(s)
}

// ParseTeamCity converts a yyyyMMdd'T'HHmmssZ timestamp into an absolute time
// in the timestamp's own offset. ok is false for anything that is not a real
// calendar date and time.
func ParseTeamCity(s string) (t time.Time, ok bool) {
	m := teamCityPattern.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}

	n := make([]int, 0, 8)
	for _, part := range []string{m[1], m[2], m[3], m[4], m[5], m[6], m[8], m[9]} {
		v, err := strconv.Atoi(part)
		if err != nil {
			return time.Time{}, false
		}
		n = append(n, v)
	}
	year, month, day, hour, minute, second, offH, offM := n[0], n[1], n[2], n[3], n[4], n[5], n[6], n[7]

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	if hour > 23 || minute > 59 || second > 59 {
		return time.Time{}, false
	}

	offset := offH*3600 + offM*60
	if m[7] == "-" {
		offset = -offset
	}

	t = time.Date(year, time.Month(month), day, hour, minute, second, 0, time.FixedZone("", offset))

	// time.Date normalizes overflow (Feb 30 -> Mar 2); reject those.
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// FormatHuman renders t as "Aug 12, 2025, 00:00:12 -0300".
func FormatHuman(t time.Time) string {
	return t.Format(HumanLayout)
}

// FormatTimestamp parses a TeamCity timestamp and renders it for humans, or
// returns InvalidDate.
func FormatTimestamp(s string) string {
	t, ok := ParseTeamCity(s)
	if !ok {
		return InvalidDate
	}
	return FormatHuman(t)
}
