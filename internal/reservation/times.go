package reservation

import (
	"fmt"
	"regexp"
	"strconv"
)

// timePattern accepts "14:00", "1400", "14時" style fragments anywhere in the
// message. Minutes default to 00 when absent.
var timePattern = regexp.MustCompile(`(\d{1,2}):?(\d{2})?`)

// ParseTime extracts the first time expression from a message, normalized to
// HH:MM. The hour is not range-checked here; validity against the schedule is
// the dialogue's job, so "25:00" parses and then fails slot validation.
func ParseTime(message string) (string, bool) {
	m := timePattern.FindStringSubmatch(message)
	if m == nil {
		return "", false
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return "", false
	}
	minute := 0
	if m[2] != "" {
		minute, err = strconv.Atoi(m[2])
		if err != nil {
			return "", false
		}
	}

	return fmt.Sprintf("%02d:%02d", hour, minute), true
}
