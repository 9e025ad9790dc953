package reservation

import (
	"time"

	"github.com/hikarisalon/concierge/internal/domain"
)

// DateLayout is the wire format for dialogue dates.
const DateLayout = "2006-01-02"

// Schedule holds the static sample slots for the forward booking window.
// It is regenerated per process start and never persisted or shared across
// processes; read-only after construction.
type Schedule struct {
	slots []domain.TimeSlot
}

// NewSchedule generates slots for the next seven days starting at the day of
// now: hourly from 10:00 to 18:00, minus the 12:00 lunch hour, with Tuesdays
// (the salon holiday) skipped entirely.
func NewSchedule(now time.Time) *Schedule {
	base := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var slots []domain.TimeSlot
	for day := 0; day < 7; day++ {
		date := base.AddDate(0, 0, day)
		if date.Weekday() == time.Tuesday {
			continue
		}
		for hour := 10; hour < 19; hour++ {
			if hour == 12 {
				continue
			}
			slots = append(slots, domain.TimeSlot{
				Date:      date.Format(DateLayout),
				Time:      formatHour(hour),
				Available: true,
			})
		}
	}

	return &Schedule{slots: slots}
}

// AvailableTimes lists the open times for a date, in schedule order.
func (s *Schedule) AvailableTimes(date string) []string {
	var times []string
	for _, slot := range s.slots {
		if slot.Date == date && slot.Available {
			times = append(times, slot.Time)
		}
	}
	return times
}

func formatHour(hour int) string {
	return time.Date(0, 1, 1, hour, 0, 0, 0, time.UTC).Format("15:04")
}
