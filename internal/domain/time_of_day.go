package domain

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

const secondsPerDay = 24 * 60 * 60

// TimeOfDay is a wall-clock time with second precision.
type TimeOfDay struct {
	value civil.Time
}

func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	t := civil.Time{Hour: hour, Minute: minute, Second: second}
	if !t.IsValid() {
		return TimeOfDay{}, fmt.Errorf("%w: %02d:%02d:%02d", ErrInvalidTimeOfDay, hour, minute, second)
	}

	return TimeOfDay{value: t}, nil
}

// ParseTimeOfDay accepts "HH:MM" or "HH:MM:SS".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	if strings.Count(s, ":") == 1 {
		s += ":00"
	}

	if strings.Contains(s, ".") {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}

	t, err := civil.ParseTime(s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}

	return TimeOfDay{value: t}, nil
}

func TimeOfDayFromSeconds(seconds int) (TimeOfDay, error) {
	if seconds < 0 || seconds >= secondsPerDay {
		return TimeOfDay{}, fmt.Errorf("%w: %d seconds", ErrInvalidTimeOfDay, seconds)
	}

	return TimeOfDay{value: civil.Time{
		Hour:   seconds / 3600,
		Minute: seconds % 3600 / 60,
		Second: seconds % 60,
	}}, nil
}

func MustTimeOfDay(hour, minute, second int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute, second)
	if err != nil {
		panic(err)
	}

	return t
}

// TimeOfDayOf returns the wall-clock time of t in its own location, truncated to the second.
func TimeOfDayOf(t time.Time) TimeOfDay {
	c := civil.TimeOf(t)
	c.Nanosecond = 0

	return TimeOfDay{value: c}
}

func (t TimeOfDay) Hour() int {
	return t.value.Hour
}

func (t TimeOfDay) Minute() int {
	return t.value.Minute
}

func (t TimeOfDay) Second() int {
	return t.value.Second
}

func (t TimeOfDay) Seconds() int {
	return t.value.Hour*3600 + t.value.Minute*60 + t.value.Second
}

// On returns the instant at this time of day on date d in loc.
func (t TimeOfDay) On(d civil.Date, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, t.value.Hour, t.value.Minute, t.value.Second, 0, loc)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.value.Hour, t.value.Minute, t.value.Second)
}
