package reservation

import (
	"strings"
	"time"
)

// ResolveDateWord maps the supported relative date vocabulary in a message to
// a concrete calendar date. Only a fixed word list is understood; anything
// else is a parse failure and the caller re-prompts.
func ResolveDateWord(message string, now time.Time) (string, bool) {
	switch {
	case strings.Contains(message, "明後日"):
		return now.AddDate(0, 0, 2).Format(DateLayout), true
	case strings.Contains(message, "明日"):
		return now.AddDate(0, 0, 1).Format(DateLayout), true
	case strings.Contains(message, "土曜"):
		return nextSaturday(now).Format(DateLayout), true
	}
	return "", false
}

// nextSaturday returns the upcoming Saturday strictly after today, so asking
// for 土曜日 on a Saturday books the following week.
func nextSaturday(now time.Time) time.Time {
	daysAhead := int(time.Saturday - now.Weekday())
	if daysAhead <= 0 {
		daysAhead += 7
	}
	return now.AddDate(0, 0, daysAhead)
}
