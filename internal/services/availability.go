package services

import (
	"dormdash-route-service/internal/domain"
	"time"
)

// WithinAvailability reports whether the window
// [startMinute, startMinute+durationMinutes] fits inside a single slot.
//
// Windows are never split across slots and never wrap past midnight.
// Slots that fail to parse are skipped, so an empty or malformed slot list
// matches nothing.
func WithinAvailability(slots []domain.TimeSlot, startMinute float64, durationMinutes float64) bool {
	end := startMinute + durationMinutes
	for _, s := range slots {
		slotStart, slotEnd, err := s.Bounds()
		if err != nil {
			continue
		}
		if startMinute >= float64(slotStart) && end <= float64(slotEnd) {
			return true
		}
	}
	return false
}

// jobWindow returns the weekday and minute of day of t in the planner's zone.
func (c PlannerConfig) jobWindow(t time.Time) (domain.Weekday, float64) {
	local := t.In(c.location())
	minute := float64(local.Hour()*60+local.Minute()) + float64(local.Second())/60
	return domain.WeekdayOf(local.Weekday()), minute
}

// fitsAvailability is the exact check: the job's full working window
// must lie inside a slot of its weekday.
func (c PlannerConfig) fitsAvailability(availability domain.Availability, scheduled time.Time, durationMinutes float64) bool {
	day, start := c.jobWindow(scheduled)
	return WithinAvailability(availability.Slots(day), start, durationMinutes)
}

// startsWithinAvailability is the coarse check used before planning: only
// the scheduled start is matched, ignoring duration and travel.
func (c PlannerConfig) startsWithinAvailability(availability domain.Availability, scheduled time.Time) bool {
	return c.fitsAvailability(availability, scheduled, 0)
}
