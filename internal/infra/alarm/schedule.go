package alarm

import (
	"time"

	"github.com/KasumiMercury/primind-remind-again/internal/domain"
)

// OccurrenceSchedule adapts a reminder's recurrence to cron.Schedule.
// A schedule that never fires again yields the zero time, which cron treats
// as "do not run".
type OccurrenceSchedule struct {
	Schedule  domain.Schedule
	TimeOfDay domain.TimeOfDay
}

func (s OccurrenceSchedule) Next(t time.Time) time.Time {
	return domain.NextOccurrenceAfter(s.Schedule, s.TimeOfDay, t).OrElse(time.Time{})
}

// OneShotSchedule fires once at At.
type OneShotSchedule struct {
	At time.Time
}

func (s OneShotSchedule) Next(t time.Time) time.Time {
	if t.Before(s.At) {
		return s.At
	}

	return time.Time{}
}
