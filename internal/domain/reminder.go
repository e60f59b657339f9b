package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/samber/mo"
)

const MaxReminderNameLength = 50

type Reminder struct {
	id        ReminderID
	name      string
	timeOfDay TimeOfDay
	schedule  Schedule
	createdAt time.Time
	updatedAt time.Time
}

func NewReminder(name string, timeOfDay TimeOfDay, schedule Schedule) (*Reminder, error) {
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}

	if err := validateSchedule(schedule); err != nil {
		return nil, err
	}

	now := time.Now()

	return &Reminder{
		id:        NewReminderID(),
		name:      name,
		timeOfDay: timeOfDay,
		schedule:  schedule,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Reconstitute rebuilds a stored reminder without validation.
func Reconstitute(
	id ReminderID,
	name string,
	timeOfDay TimeOfDay,
	schedule Schedule,
	createdAt time.Time,
	updatedAt time.Time,
) *Reminder {
	return &Reminder{
		id:        id,
		name:      name,
		timeOfDay: timeOfDay,
		schedule:  schedule,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Reminder) Update(name string, timeOfDay TimeOfDay, schedule Schedule) error {
	name, err := validateName(name)
	if err != nil {
		return err
	}

	if err := validateSchedule(schedule); err != nil {
		return err
	}

	r.name = name
	r.timeOfDay = timeOfDay
	r.schedule = schedule
	r.updatedAt = time.Now()

	return nil
}

func (r *Reminder) IsActiveAt(moment time.Time) bool {
	return IsActiveAt(r.schedule, r.timeOfDay, moment)
}

func (r *Reminder) NextOccurrenceAfter(moment time.Time) mo.Option[time.Time] {
	return NextOccurrenceAfter(r.schedule, r.timeOfDay, moment)
}

func (r *Reminder) EvaluateDue(moment time.Time, lastDismissal mo.Option[time.Time]) DueStatus {
	return EvaluateDue(r.schedule, r.timeOfDay, moment, lastDismissal)
}

func (r *Reminder) ID() ReminderID {
	return r.id
}

func (r *Reminder) Name() string {
	return r.name
}

func (r *Reminder) TimeOfDay() TimeOfDay {
	return r.timeOfDay
}

func (r *Reminder) Schedule() Schedule {
	return r.schedule
}

func (r *Reminder) CreatedAt() time.Time {
	return r.createdAt
}

func (r *Reminder) UpdatedAt() time.Time {
	return r.updatedAt
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name must not be blank", ErrInvalidReminderName)
	}

	if utf8.RuneCountInString(name) > MaxReminderNameLength {
		return "", fmt.Errorf("%w: name must be at most %d characters", ErrInvalidReminderName, MaxReminderNameLength)
	}

	return name, nil
}

// validateSchedule only rejects values that cannot be stored in canonical form.
func validateSchedule(s Schedule) error {
	if s == nil {
		return fmt.Errorf("%w: schedule is required", ErrMalformedSchedule)
	}

	_, err := FormatSchedule(s)

	return err
}
