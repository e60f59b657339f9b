package domain

import (
	"time"

	"github.com/samber/mo"
)

const (
	DailyDueWindow       = 60 * time.Minute
	WeeklyDueWindow      = 24 * time.Hour
	FortnightlyDueWindow = 48 * time.Hour
	MonthlyDueWindow     = 72 * time.Hour

	// DismissalSuppressionWindow is how long before an occurrence a dismissal
	// still counts as acknowledging it.
	DismissalSuppressionWindow = 60 * time.Minute
)

// DueWindow returns the lookahead within which a reminder of kind s counts as due.
func DueWindow(s Schedule) time.Duration {
	switch s.(type) {
	case Daily:
		return DailyDueWindow
	case Weekly:
		return WeeklyDueWindow
	case Fortnightly:
		return FortnightlyDueWindow
	case Monthly:
		return MonthlyDueWindow
	default:
		return 0
	}
}

type DueStatus struct {
	Occurrence mo.Option[time.Time]
	InWindow   bool
	Suppressed bool
}

func (s DueStatus) Due() bool {
	return s.InWindow && !s.Suppressed
}

// EvaluateDue checks whether the upcoming occurrence falls within the due
// window of moment and whether lastDismissal already acknowledged it.
func EvaluateDue(s Schedule, tod TimeOfDay, moment time.Time, lastDismissal mo.Option[time.Time]) DueStatus {
	occurrence := UpcomingOccurrence(s, tod, moment)

	occ, ok := occurrence.Get()
	if !ok {
		return DueStatus{Occurrence: occurrence}
	}

	until := occ.Sub(moment)

	return DueStatus{
		Occurrence: occurrence,
		InWindow:   until >= 0 && until <= DueWindow(s),
		Suppressed: isSuppressed(occ, lastDismissal),
	}
}

func IsDue(s Schedule, tod TimeOfDay, moment time.Time, lastDismissal mo.Option[time.Time]) bool {
	return EvaluateDue(s, tod, moment, lastDismissal).Due()
}

func isSuppressed(occurrence time.Time, lastDismissal mo.Option[time.Time]) bool {
	dismissed, ok := lastDismissal.Get()
	if !ok {
		return false
	}

	return !dismissed.Before(occurrence.Add(-DismissalSuppressionWindow)) && dismissed.Before(occurrence)
}
