package domain

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/samber/mo"
)

const (
	// MaxMonthScan bounds the month-by-month search of monthly schedules.
	MaxMonthScan = 48
	// MaxDayScan bounds the day-by-day search of daily, weekly and fortnightly schedules.
	MaxDayScan = 15
)

// IsActiveAt reports whether the schedule fires exactly at moment: the local
// second-of-day equals tod and the local calendar date satisfies s.
func IsActiveAt(s Schedule, tod TimeOfDay, moment time.Time) bool {
	if TimeOfDayOf(moment).Seconds() != tod.Seconds() {
		return false
	}

	return OccursOn(s, civil.DateOf(moment))
}

// OccursOn reports whether date d is a scheduled day of s.
func OccursOn(s Schedule, d civil.Date) bool {
	switch v := s.(type) {
	case Daily:
		return true
	case Weekly:
		return v.Contains(d.Weekday())
	case Fortnightly:
		return d.Weekday() == v.anchor.Weekday() && isEvenWeek(v.anchor, d)
	case Monthly:
		switch {
		case v.IsByDay():
			return d.Day == v.dayOfMonth.MustGet()
		case v.IsByNthWeekday():
			return d.Weekday() == v.weekday.MustGet() && nthOfMonth(d) == v.nth.MustGet()
		default:
			return false
		}
	default:
		return false
	}
}

// NextOccurrenceAfter returns the first occurrence strictly after moment,
// computed in moment's location. None means the schedule never fires.
func NextOccurrenceAfter(s Schedule, tod TimeOfDay, moment time.Time) mo.Option[time.Time] {
	return occurrenceSearch{tod: tod, moment: moment}.next(s)
}

// UpcomingOccurrence is like NextOccurrenceAfter but an occurrence exactly at
// moment counts.
func UpcomingOccurrence(s Schedule, tod TimeOfDay, moment time.Time) mo.Option[time.Time] {
	return occurrenceSearch{tod: tod, moment: moment, inclusive: true}.next(s)
}

// OccurrencesBetween lists occurrences in [from, to), at most limit of them.
func OccurrencesBetween(s Schedule, tod TimeOfDay, from, to time.Time, limit int) []time.Time {
	var occurrences []time.Time

	next := UpcomingOccurrence(s, tod, from)
	for len(occurrences) < limit {
		occ, ok := next.Get()
		if !ok || !occ.Before(to) {
			break
		}

		occurrences = append(occurrences, occ)
		next = NextOccurrenceAfter(s, tod, occ)
	}

	return occurrences
}

type occurrenceSearch struct {
	tod       TimeOfDay
	moment    time.Time
	inclusive bool
}

func (q occurrenceSearch) next(s Schedule) mo.Option[time.Time] {
	switch v := s.(type) {
	case Daily:
		return q.nextDaily()
	case Weekly:
		return q.nextWeekly(v)
	case Fortnightly:
		return q.nextFortnightly(v)
	case Monthly:
		switch {
		case v.IsByDay():
			return q.nextMonthlyByDay(v.dayOfMonth.MustGet())
		case v.IsByNthWeekday():
			return q.nextMonthlyByNthWeekday(v.weekday.MustGet(), v.nth.MustGet())
		default:
			return mo.None[time.Time]()
		}
	default:
		return mo.None[time.Time]()
	}
}

func (q occurrenceSearch) at(d civil.Date) time.Time {
	return q.tod.On(d, q.moment.Location())
}

func (q occurrenceSearch) upcoming(t time.Time) bool {
	if q.inclusive {
		return !t.Before(q.moment)
	}

	return t.After(q.moment)
}

func (q occurrenceSearch) today() civil.Date {
	return civil.DateOf(q.moment)
}

func (q occurrenceSearch) nextDaily() mo.Option[time.Time] {
	today := q.today()

	for i := 0; i < MaxDayScan; i++ {
		if c := q.at(today.AddDays(i)); q.upcoming(c) {
			return mo.Some(c)
		}
	}

	return mo.None[time.Time]()
}

func (q occurrenceSearch) nextWeekly(w Weekly) mo.Option[time.Time] {
	if w.IsEmpty() {
		return mo.None[time.Time]()
	}

	today := q.today()

	for i := 0; i < MaxDayScan; i++ {
		d := today.AddDays(i)
		if !w.Contains(d.Weekday()) {
			continue
		}

		if c := q.at(d); q.upcoming(c) {
			return mo.Some(c)
		}
	}

	return mo.None[time.Time]()
}

func (q occurrenceSearch) nextFortnightly(f Fortnightly) mo.Option[time.Time] {
	today := q.today()
	delta := (int(f.anchor.Weekday()) - int(today.Weekday()) + 7) % 7

	d := today.AddDays(delta)
	if !q.upcoming(q.at(d)) {
		d = d.AddDays(7)
	}

	if !isEvenWeek(f.anchor, d) {
		d = d.AddDays(7)
	}

	for _, candidate := range []civil.Date{d, d.AddDays(14)} {
		if c := q.at(candidate); q.upcoming(c) {
			return mo.Some(c)
		}
	}

	return mo.None[time.Time]()
}

func (q occurrenceSearch) nextMonthlyByDay(dayOfMonth int) mo.Option[time.Time] {
	first := firstOfMonth(q.today())

	for i := 0; i < MaxMonthScan; i++ {
		month := first.AddMonths(i)
		if dayOfMonth > daysIn(month) {
			continue
		}

		month.Day = dayOfMonth
		if c := q.at(month); q.upcoming(c) {
			return mo.Some(c)
		}
	}

	return mo.None[time.Time]()
}

func (q occurrenceSearch) nextMonthlyByNthWeekday(weekday time.Weekday, nth int) mo.Option[time.Time] {
	first := firstOfMonth(q.today())

	for i := 0; i < MaxMonthScan; i++ {
		month := first.AddMonths(i)
		offset := (int(weekday) - int(month.Weekday()) + 7) % 7

		day := 1 + offset + (nth-1)*7
		if day > daysIn(month) {
			continue
		}

		month.Day = day
		if c := q.at(month); q.upcoming(c) {
			return mo.Some(c)
		}
	}

	return mo.None[time.Time]()
}

// isEvenWeek floor-divides the day difference by 7 so dates before the
// anchor have a well-defined parity.
func isEvenWeek(anchor, d civil.Date) bool {
	return floorDiv(d.DaysSince(anchor), 7)%2 == 0
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}

	return q
}

func nthOfMonth(d civil.Date) int {
	return (d.Day-1)/7 + 1
}

func firstOfMonth(d civil.Date) civil.Date {
	return civil.Date{Year: d.Year, Month: d.Month, Day: 1}
}

func daysIn(d civil.Date) int {
	return time.Date(d.Year, d.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
