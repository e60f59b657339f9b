package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

const (
	prefixDaily       = "DAILY"
	prefixWeekly      = "WEEKLY"
	prefixFortnightly = "FORTNIGHTLY"
	prefixMonthly     = "MONTHLY"
)

var weekdayByName = map[string]time.Weekday{
	"MONDAY":    time.Monday,
	"TUESDAY":   time.Tuesday,
	"WEDNESDAY": time.Wednesday,
	"THURSDAY":  time.Thursday,
	"FRIDAY":    time.Friday,
	"SATURDAY":  time.Saturday,
	"SUNDAY":    time.Sunday,
}

func WeekdayName(d time.Weekday) string {
	return strings.ToUpper(d.String())
}

func ParseWeekday(name string) (time.Weekday, error) {
	d, ok := weekdayByName[name]
	if !ok {
		return time.Sunday, fmt.Errorf("%w: unknown weekday %q", ErrMalformedSchedule, name)
	}

	return d, nil
}

// ParseSchedule decodes the canonical text form:
//
//	DAILY
//	WEEKLY:<DAY>,<DAY>,...
//	FORTNIGHTLY:<YYYY-MM-DD>
//	MONTHLY:<dayOfMonth>
//	MONTHLY:<DAY>,<nthOfMonth>
func ParseSchedule(text string) (Schedule, error) {
	if text == prefixDaily {
		return Daily{}, nil
	}

	prefix, payload, ok := strings.Cut(text, ":")
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMalformedSchedule, text)
	}

	switch prefix {
	case prefixWeekly:
		return parseWeekly(payload)
	case prefixFortnightly:
		return parseFortnightly(payload)
	case prefixMonthly:
		return parseMonthly(payload)
	default:
		return nil, fmt.Errorf("%w: unknown prefix %q", ErrMalformedSchedule, prefix)
	}
}

func parseWeekly(payload string) (Schedule, error) {
	if payload == "" {
		return nil, fmt.Errorf("%w: weekly schedule without days", ErrMalformedSchedule)
	}

	names := strings.Split(payload, ",")
	days := make([]time.Weekday, 0, len(names))

	for _, name := range names {
		d, err := ParseWeekday(name)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}

	return NewWeekly(days...), nil
}

func parseFortnightly(payload string) (Schedule, error) {
	anchor, err := civil.ParseDate(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: anchor date %q: %v", ErrMalformedSchedule, payload, err)
	}

	return NewFortnightly(anchor)
}

func parseMonthly(payload string) (Schedule, error) {
	parts := strings.Split(payload, ",")

	switch len(parts) {
	case 1:
		day, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("%w: day of month %q", ErrMalformedSchedule, parts[0])
		}

		return NewMonthlyByDay(day)
	case 2:
		weekday, err := ParseWeekday(parts[0])
		if err != nil {
			return nil, err
		}

		nth, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("%w: nth of month %q", ErrMalformedSchedule, parts[1])
		}

		return NewMonthlyByNthWeekday(weekday, nth)
	default:
		return nil, fmt.Errorf("%w: monthly payload %q", ErrMalformedSchedule, payload)
	}
}

// FormatSchedule encodes s in its canonical text form. An invalid Monthly is
// rejected with ErrInvalidMonthlySchedule and an empty Weekly with ErrMalformedSchedule.
func FormatSchedule(s Schedule) (string, error) {
	switch v := s.(type) {
	case Daily:
		return prefixDaily, nil
	case Weekly:
		if v.IsEmpty() {
			return "", fmt.Errorf("%w: weekly schedule without days", ErrMalformedSchedule)
		}

		days := v.Days()
		names := make([]string, len(days))
		for i, d := range days {
			names[i] = WeekdayName(d)
		}

		return prefixWeekly + ":" + strings.Join(names, ","), nil
	case Fortnightly:
		return prefixFortnightly + ":" + v.anchor.String(), nil
	case Monthly:
		switch {
		case v.IsByDay():
			return prefixMonthly + ":" + strconv.Itoa(v.dayOfMonth.MustGet()), nil
		case v.IsByNthWeekday():
			return fmt.Sprintf("%s:%s,%d", prefixMonthly, WeekdayName(v.weekday.MustGet()), v.nth.MustGet()), nil
		default:
			return "", ErrInvalidMonthlySchedule
		}
	default:
		return "", fmt.Errorf("%w: unsupported schedule %T", ErrMalformedSchedule, s)
	}
}

func MustFormatSchedule(s Schedule) string {
	text, err := FormatSchedule(s)
	if err != nil {
		panic(err)
	}

	return text
}
