package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Weekday is one of the seven fixed day symbols used in mover schedules.
type Weekday string

const (
	Sunday    Weekday = "SUN"
	Monday    Weekday = "MON"
	Tuesday   Weekday = "TUE"
	Wednesday Weekday = "WED"
	Thursday  Weekday = "THU"
	Friday    Weekday = "FRI"
	Saturday  Weekday = "SAT"
)

var weekdays = [7]Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// WeekdayOf maps a time.Weekday onto its schedule symbol.
func WeekdayOf(d time.Weekday) Weekday {
	return weekdays[d]
}

// Valid reports whether w is one of the seven known symbols.
func (w Weekday) Valid() bool {
	for _, d := range weekdays {
		if d == w {
			return true
		}
	}
	return false
}

// TimeSlot is a same-day time-of-day range, both ends formatted "HH:MM".
type TimeSlot struct {
	Start string
	End   string
}

// Bounds returns the slot as minutes of day.
func (s TimeSlot) Bounds() (start int, end int, err error) {
	start, err = ParseTimeOfDay(s.Start)
	if err != nil {
		return 0, 0, fmt.Errorf("slot start: %w", err)
	}
	end, err = ParseTimeOfDay(s.End)
	if err != nil {
		return 0, 0, fmt.Errorf("slot end: %w", err)
	}
	if end < start {
		return 0, 0, fmt.Errorf("slot %s-%s ends before it starts", s.Start, s.End)
	}
	return start, end, nil
}

// MarshalJSON encodes the slot as a ["HH:MM", "HH:MM"] pair, the shape
// stored in the movers table.
func (s TimeSlot) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{s.Start, s.End})
}

func (s *TimeSlot) UnmarshalJSON(b []byte) error {
	var pair []string
	if err := json.Unmarshal(b, &pair); err != nil {
		return fmt.Errorf("decode time slot: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("decode time slot: want 2 elements, got %d", len(pair))
	}
	s.Start, s.End = pair[0], pair[1]
	return nil
}

// Availability maps each weekday to the mover's ordered, disjoint slots.
// A missing weekday means the mover does not work that day.
type Availability map[Weekday][]TimeSlot

// Slots returns the slots declared for day, or nil.
func (a Availability) Slots(day Weekday) []TimeSlot {
	if a == nil {
		return nil
	}
	return a[day]
}

// Empty reports whether no weekday has any slot.
func (a Availability) Empty() bool {
	for _, slots := range a {
		if len(slots) > 0 {
			return false
		}
	}
	return true
}

var ErrInvalidTimeOfDay = errors.New("invalid time of day")

// ParseTimeOfDay converts "HH:MM" into minutes since midnight.
// "24:00" is accepted as the end of day.
func ParseTimeOfDay(s string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}

	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}

	if h < 0 || m < 0 || m > 59 || h > 24 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}

	return h*60 + m, nil
}
