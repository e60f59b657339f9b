package domain

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/samber/mo"
)

type ScheduleKind string

const (
	KindDaily       ScheduleKind = "daily"
	KindWeekly      ScheduleKind = "weekly"
	KindFortnightly ScheduleKind = "fortnightly"
	KindMonthly     ScheduleKind = "monthly"
)

// Schedule is the recurrence rule of a reminder.
// The set of implementations is closed: Daily, Weekly, Fortnightly and Monthly.
type Schedule interface {
	Kind() ScheduleKind
	isSchedule()
}

type Daily struct{}

func (Daily) Kind() ScheduleKind { return KindDaily }
func (Daily) isSchedule()        {}

// Weekly is active on every listed weekday. An empty set is never active.
type Weekly struct {
	days uint8
}

func NewWeekly(days ...time.Weekday) Weekly {
	var w Weekly
	for _, d := range days {
		if d < time.Sunday || d > time.Saturday {
			continue
		}
		w.days |= 1 << uint(d)
	}

	return w
}

func (Weekly) Kind() ScheduleKind { return KindWeekly }
func (Weekly) isSchedule()        {}

func (w Weekly) Contains(d time.Weekday) bool {
	return w.days&(1<<uint(d)) != 0
}

func (w Weekly) IsEmpty() bool {
	return w.days == 0
}

// Days returns the listed weekdays, Monday first.
func (w Weekly) Days() []time.Weekday {
	days := make([]time.Weekday, 0, 7)
	for _, d := range mondayFirst {
		if w.Contains(d) {
			days = append(days, d)
		}
	}

	return days
}

var mondayFirst = [7]time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday,
}

// Fortnightly is active every other week on the weekday of its anchor date,
// in the same week parity as the anchor.
type Fortnightly struct {
	anchor civil.Date
}

func NewFortnightly(anchor civil.Date) (Fortnightly, error) {
	if !anchor.IsValid() {
		return Fortnightly{}, fmt.Errorf("%w: invalid anchor date %s", ErrMalformedSchedule, anchor)
	}

	return Fortnightly{anchor: anchor}, nil
}

func (Fortnightly) Kind() ScheduleKind { return KindFortnightly }
func (Fortnightly) isSchedule()        {}

func (f Fortnightly) Anchor() civil.Date {
	return f.anchor
}

const (
	MinDayOfMonth = 1
	MaxDayOfMonth = 31
	MinNthOfMonth = 1
	MaxNthOfMonth = 5
)

// Monthly is active either on a fixed day of the month or on the nth
// occurrence of a weekday. The zero value has neither and is invalid.
type Monthly struct {
	dayOfMonth mo.Option[int]
	weekday    mo.Option[time.Weekday]
	nth        mo.Option[int]
}

func NewMonthlyByDay(dayOfMonth int) (Monthly, error) {
	if dayOfMonth < MinDayOfMonth || dayOfMonth > MaxDayOfMonth {
		return Monthly{}, fmt.Errorf("%w: day of month %d out of range", ErrMalformedSchedule, dayOfMonth)
	}

	return Monthly{dayOfMonth: mo.Some(dayOfMonth)}, nil
}

func NewMonthlyByNthWeekday(weekday time.Weekday, nth int) (Monthly, error) {
	if weekday < time.Sunday || weekday > time.Saturday {
		return Monthly{}, fmt.Errorf("%w: invalid weekday %d", ErrMalformedSchedule, weekday)
	}

	if nth < MinNthOfMonth || nth > MaxNthOfMonth {
		return Monthly{}, fmt.Errorf("%w: nth of month %d out of range", ErrMalformedSchedule, nth)
	}

	return Monthly{weekday: mo.Some(weekday), nth: mo.Some(nth)}, nil
}

func (Monthly) Kind() ScheduleKind { return KindMonthly }
func (Monthly) isSchedule()        {}

func (m Monthly) DayOfMonth() mo.Option[int] {
	return m.dayOfMonth
}

func (m Monthly) Weekday() mo.Option[time.Weekday] {
	return m.weekday
}

func (m Monthly) NthOfMonth() mo.Option[int] {
	return m.nth
}

func (m Monthly) IsByDay() bool {
	return m.dayOfMonth.IsPresent() && m.weekday.IsAbsent() && m.nth.IsAbsent()
}

func (m Monthly) IsByNthWeekday() bool {
	return m.dayOfMonth.IsAbsent() && m.weekday.IsPresent() && m.nth.IsPresent()
}

// IsValid reports whether exactly one of the two parameter sets is populated.
func (m Monthly) IsValid() bool {
	return m.IsByDay() || m.IsByNthWeekday()
}
