package datemath

import (
	"math"
	"strconv"
	"strings"
)

// FormatElapsed renders seconds as "1h 2m 3s". Zero parts are omitted, except
// that a zero total renders "0s". Negative input renders "0s".
func FormatElapsed(seconds int64) string {
	if seconds < 0 {
		return "0s"
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	parts := make([]string, 0, 3)
	if hours > 0 {
		parts = append(parts, strconv.FormatInt(hours, 10)+"h")
	}
	if minutes > 0 {
		parts = append(parts, strconv.FormatInt(minutes, 10)+"m")
	}
	if secs > 0 || len(parts) == 0 {
		parts = append(parts, strconv.FormatInt(secs, 10)+"s")
	}
	return strings.Join(parts, " ")
}

// FormatEstimatedRemaining renders the time left until estimatedTotal.
func FormatEstimatedRemaining(elapsed, estimatedTotal int64) string {
	if estimatedTotal <= 0 || elapsed < 0 {
		return Unknown
	}
	if elapsed >= estimatedTotal {
		return Completing
	}
	return FormatElapsed(estimatedTotal - elapsed)
}

// Duration renders the time between two TeamCity timestamps. ok is false when
// either one does not parse. An end before start renders "0s".
func Duration(start, end string) (string, bool) {
	s, ok := ParseTeamCity(start)
	if !ok {
		return "", false
	}
	e, ok := ParseTeamCity(end)
	if !ok {
		return "", false
	}
	return FormatElapsed(int64(math.Floor(e.Sub(s).Seconds()))), true
}
