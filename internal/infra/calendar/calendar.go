package calendar

import (
	"bytes"
	"fmt"
	"time"

	"github.com/emersion/go-ical"
	"github.com/teambition/rrule-go"

	"github.com/KasumiMercury/primind-remind-again/internal/domain"
)

const ProductID = "-//primind//remind-again//EN"

var weekdays = [...]rrule.Weekday{
	time.Sunday:    rrule.SU,
	time.Monday:    rrule.MO,
	time.Tuesday:   rrule.TU,
	time.Wednesday: rrule.WE,
	time.Thursday:  rrule.TH,
	time.Friday:    rrule.FR,
	time.Saturday:  rrule.SA,
}

// RecurrenceRule translates a schedule into an RRULE. Fortnightly rules rely on
// DTSTART sitting in an even week of the anchor, which FirstOccurrence ensures.
func RecurrenceRule(s domain.Schedule) (rrule.ROption, error) {
	switch v := s.(type) {
	case domain.Daily:
		return rrule.ROption{Freq: rrule.DAILY}, nil
	case domain.Weekly:
		if v.IsEmpty() {
			return rrule.ROption{}, fmt.Errorf("%w: weekly schedule without days", domain.ErrMalformedSchedule)
		}

		days := make([]rrule.Weekday, 0, 7)
		for _, d := range v.Days() {
			days = append(days, weekdays[d])
		}

		return rrule.ROption{Freq: rrule.WEEKLY, Byweekday: days}, nil
	case domain.Fortnightly:
		return rrule.ROption{
			Freq:      rrule.WEEKLY,
			Interval:  2,
			Byweekday: []rrule.Weekday{weekdays[v.Anchor().Weekday()]},
		}, nil
	case domain.Monthly:
		if day, ok := v.DayOfMonth().Get(); ok {
			return rrule.ROption{Freq: rrule.MONTHLY, Bymonthday: []int{day}}, nil
		}

		weekday, hasWeekday := v.Weekday().Get()
		nth, hasNth := v.NthOfMonth().Get()

		if !hasWeekday || !hasNth {
			return rrule.ROption{}, domain.ErrInvalidMonthlySchedule
		}

		return rrule.ROption{Freq: rrule.MONTHLY, Byweekday: []rrule.Weekday{weekdays[weekday].Nth(nth)}}, nil
	default:
		return rrule.ROption{}, domain.ErrMalformedSchedule
	}
}

// FirstOccurrence is the DTSTART of the exported event.
func FirstOccurrence(reminder *domain.Reminder, now time.Time) (time.Time, bool) {
	return domain.UpcomingOccurrence(reminder.Schedule(), reminder.TimeOfDay(), now).Get()
}

// Build returns a VCALENDAR with one recurring VEVENT per reminder. Reminders
// whose schedule has no RRULE form or no future occurrence are left out and
// counted in omitted.
func Build(reminders []*domain.Reminder, now time.Time) (cal *ical.Calendar, omitted int) {
	cal = ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, ProductID)

	for _, reminder := range reminders {
		event, ok := buildEvent(reminder, now)
		if !ok {
			omitted++

			continue
		}

		cal.Children = append(cal.Children, event.Component)
	}

	return cal, omitted
}

func Encode(cal *ical.Calendar) ([]byte, error) {
	var buf bytes.Buffer

	// The encoder rejects a VCALENDAR without components.
	if len(cal.Children) == 0 {
		fmt.Fprintf(&buf, "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:%s\r\nEND:VCALENDAR\r\n", ProductID)

		return buf.Bytes(), nil
	}

	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("encode calendar: %w", err)
	}

	return buf.Bytes(), nil
}

func buildEvent(reminder *domain.Reminder, now time.Time) (*ical.Event, bool) {
	option, err := RecurrenceRule(reminder.Schedule())
	if err != nil {
		return nil, false
	}

	start, ok := FirstOccurrence(reminder, now)
	if !ok {
		return nil, false
	}

	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, reminder.ID().String())
	event.Props.SetText(ical.PropSummary, reminder.Name())
	event.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
	event.Props.SetDateTime(ical.PropDateTimeStart, eventStart(start))

	// SetText would escape the commas inside BYDAY.
	rule := ical.NewProp(ical.PropRecurrenceRule)
	rule.SetValueType(ical.ValueRecurrence)
	rule.Value = option.RRuleString()
	event.Props.Set(rule)

	return event, true
}

// eventStart keeps a named zone so the rule follows local wall time across DST.
// Zones without an IANA name are written as UTC.
func eventStart(t time.Time) time.Time {
	if name := t.Location().String(); name == "Local" || name == "" {
		return t.UTC()
	}

	return t
}
