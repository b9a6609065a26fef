package reservation

import (
	"errors"
	"time"
)

var (
	ErrInvalidDay  = errors.New("invalid day format")
	ErrInvalidTime = errors.New("invalid time format")
)

// Slot is a (day, time-of-day) pair treated as an indivisible bookable unit.
// Slots are discrete: there is no duration or overlap logic. All slot math is
// done in UTC.
type Slot struct {
	day time.Time
	tod time.Duration
}

func NewSlot(day, timeOfDay string) (Slot, error) {
	d, err := time.ParseInLocation(time.DateOnly, day, time.UTC)
	if err != nil {
		return Slot{}, ErrInvalidDay
	}

	t, err := time.Parse(time.TimeOnly, timeOfDay)
	if err != nil {
		// Accept "10:00" as shorthand for "10:00:00".
		t, err = time.Parse("15:04", timeOfDay)
		if err != nil {
			return Slot{}, ErrInvalidTime
		}
	}
	tod := time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second

	return Slot{day: d, tod: tod}, nil
}

func (s Slot) Day() time.Time {
	return s.day
}

func (s Slot) TimeOfDay() time.Duration {
	return s.tod
}

func (s Slot) DayString() string {
	return s.day.Format(time.DateOnly)
}

func (s Slot) TimeString() string {
	return time.Unix(0, 0).UTC().Add(s.tod).Format(time.TimeOnly)
}

// StartsAt returns the slot's absolute start instant.
func (s Slot) StartsAt() time.Time {
	return s.day.Add(s.tod)
}

func (s Slot) IsPast(now time.Time) bool {
	return !s.StartsAt().After(now.UTC())
}
