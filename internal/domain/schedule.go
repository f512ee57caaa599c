package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RepairBooking/pkg/types"
)

// Schedule describes which slots can be booked
// A slot is a (date, time) pair: the date must be today or later and not
// on the closed weekday, the time must be one of TimeSlots.
type Schedule struct {
	ClosedWeekday time.Weekday
	TimeSlots     []types.TimeString
	ServiceTypes  []string
}

// NewSchedule builds a schedule from raw "HH:MM" slot strings
func NewSchedule(closed time.Weekday, slots []string, serviceTypes []string) (Schedule, error) {
	if len(slots) == 0 {
		return Schedule{}, fmt.Errorf("schedule: at least one time slot is required")
	}

	parsed := make([]types.TimeString, 0, len(slots))
	for _, s := range slots {
		ts, err := types.NewTimeStringFromString(s)
		if err != nil {
			return Schedule{}, fmt.Errorf("schedule: time slot %q: %w", s, err)
		}
		parsed = append(parsed, ts)
	}

	return Schedule{
		ClosedWeekday: closed,
		TimeSlots:     parsed,
		ServiceTypes:  append([]string(nil), serviceTypes...),
	}, nil
}

// DefaultSchedule returns the shop's default schedule
func DefaultSchedule() Schedule {
	s, err := NewSchedule(DefaultClosedWeekday, DefaultTimeSlots, DefaultServiceTypes)
	if err != nil {
		panic(err)
	}
	return s
}

// IsDateSelectable reports whether the date may be chosen for a new booking
// Only the calendar date is compared; time of day is ignored.
func (s Schedule) IsDateSelectable(date, now time.Time) bool {
	if IsDateInPast(date, now) {
		return false
	}
	return date.Weekday() != s.ClosedWeekday
}

// FindTimeSlot returns the slot matching the "HH:MM" string
func (s Schedule) FindTimeSlot(value string) (types.TimeString, bool) {
	ts, err := types.NewTimeStringFromString(value)
	if err != nil {
		return types.TimeString{}, false
	}
	if !s.HasTimeSlot(ts) {
		return types.TimeString{}, false
	}
	return ts, true
}

// HasTimeSlot returns true if the time is one of the configured slots
func (s Schedule) HasTimeSlot(ts types.TimeString) bool {
	for _, slot := range s.TimeSlots {
		if slot.Equal(ts) {
			return true
		}
	}
	return false
}

// HasServiceType returns true for an empty service type or a known one
func (s Schedule) HasServiceType(serviceType string) bool {
	if serviceType == "" {
		return true
	}
	for _, known := range s.ServiceTypes {
		if known == serviceType {
			return true
		}
	}
	return false
}

// SelectableDates returns up to days selectable dates starting from "from"
func (s Schedule) SelectableDates(from, now time.Time, days int) []time.Time {
	result := make([]time.Time, 0, days)
	day := DateOnly(from)
	for i := 0; i < days; i++ {
		if s.IsDateSelectable(day, now) {
			result = append(result, day)
		}
		day = day.AddDate(0, 0, 1)
	}
	return result
}

// DateOnly truncates the time of day, keeping the location
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsDateInPast reports whether date is strictly before the day of now
func IsDateInPast(date, now time.Time) bool {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.Date()
	dateOnly := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}
