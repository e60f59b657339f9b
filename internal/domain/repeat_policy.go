package domain

import (
	"time"

	"github.com/samber/mo"
)

type RepeatInput struct {
	IsRepeat bool
	// CurrentArmed is the interval configured for the repeat alarm. Zero means the default.
	CurrentArmed SnoozeInterval
	// StoredLastArmed is the interval that produced the notification being shown.
	StoredLastArmed mo.Option[SnoozeInterval]
	Schedule        Schedule
	TimeOfDay       TimeOfDay
	Now             time.Time
}

type RepeatDecision struct {
	ShouldSchedule bool
	Interval       SnoozeInterval
	// NextButtonInterval is what the next "Later" press arms.
	NextButtonInterval SnoozeInterval
	ShowLater          bool
	NextMain           mo.Option[time.Time]
	Reason             string
}

// DecideRepeat chooses whether to arm another repeat after a notification.
//
// An initial trigger always schedules the first repeat with the configured
// interval. A repeat trigger asks NextSnooze about the stored interval and, if
// repeating continues, re-arms with the configured interval rather than the
// doubled one; the doubled one is only advertised for the next "Later".
func DecideRepeat(in RepeatInput) RepeatDecision {
	current := in.CurrentArmed
	if current.IsZero() {
		current = DefaultSnoozeInterval
	}

	nextMain := NextOccurrenceAfter(in.Schedule, in.TimeOfDay, in.Now)

	if !in.IsRepeat {
		return RepeatDecision{
			ShouldSchedule:     true,
			Interval:           current,
			NextButtonInterval: current,
			ShowLater:          FiresBefore(in.Now.Add(current.Duration()), nextMain),
			NextMain:           nextMain,
			Reason:             "initial notification, scheduling first repeat",
		}
	}

	lastArmed := in.StoredLastArmed.OrElse(DefaultSnoozeInterval)
	if lastArmed.IsZero() {
		lastArmed = DefaultSnoozeInterval
	}

	snooze := NextSnooze(lastArmed, nextMain, in.Now)

	if snooze.ContinueRepeating {
		return RepeatDecision{
			ShouldSchedule:     true,
			Interval:           current,
			NextButtonInterval: snooze.Interval,
			ShowLater:          true,
			NextMain:           nextMain,
			Reason:             "continue repeating with current interval",
		}
	}

	return RepeatDecision{
		ShouldSchedule:     false,
		NextButtonInterval: snooze.Interval,
		ShowLater:          false,
		NextMain:           nextMain,
		Reason:             "next main occurrence due, stopping repeats",
	}
}

// FiresBefore reports whether at lands strictly before the next main occurrence.
// With no next occurrence every instant qualifies.
func FiresBefore(at time.Time, nextMain mo.Option[time.Time]) bool {
	cutoff, ok := nextMain.Get()

	return !ok || at.Before(cutoff)
}
