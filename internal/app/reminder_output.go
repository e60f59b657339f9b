package app

import (
	"time"

	"github.com/KasumiMercury/primind-remind-again/internal/domain"
)

type ReminderOutput struct {
	ID        string
	Name      string
	TimeOfDay string
	Schedule  string
	Kind      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type RemindersOutput struct {
	Reminders []ReminderOutput
	Count     int32
	// Skipped counts stored reminders that could not be decoded.
	Skipped int32
}

type OccurrencesOutput struct {
	ReminderID  string
	Occurrences []time.Time
}

type ReminderStatusOutput struct {
	Reminder             ReminderOutput
	Due                  bool
	Suppressed           bool
	ActiveNow            bool
	UpcomingOccurrence   *time.Time
	NextOccurrence       *time.Time
	LastDismissedAt      *time.Time
	LastPostponedAt      *time.Time
	LaterAvailable       bool
	LaterIntervalSeconds int
}

type TriggerOutput struct {
	ReminderID            string
	IsRepeat              bool
	RepeatScheduled       bool
	RepeatIntervalSeconds int
	ShowLater             bool
	LaterIntervalSeconds  int
	NextOccurrence        *time.Time
	Reason                string
}

type SnoozeOutput struct {
	ReminderID      string
	IntervalSeconds int
	FireAt          time.Time
}

type DueReminderOutput struct {
	Reminder   ReminderOutput
	Occurrence time.Time
	ActiveNow  bool
}

type DueRemindersOutput struct {
	Due     []DueReminderOutput
	Checked int32
	Skipped int32
}

type SyncAlarmsOutput struct {
	Scheduled int32
	Removed   int32
	Skipped   int32
}

type CalendarOutput struct {
	Data    []byte
	Events  int32
	Omitted int32
}

func FromEntity(reminder *domain.Reminder) ReminderOutput {
	// Entities only hold schedules that format cleanly.
	schedule, _ := domain.FormatSchedule(reminder.Schedule())

	return ReminderOutput{
		ID:        reminder.ID().String(),
		Name:      reminder.Name(),
		TimeOfDay: reminder.TimeOfDay().String(),
		Schedule:  schedule,
		Kind:      string(reminder.Schedule().Kind()),
		CreatedAt: reminder.CreatedAt(),
		UpdatedAt: reminder.UpdatedAt(),
	}
}

func FromEntities(reminders []*domain.Reminder) RemindersOutput {
	outputs := make([]ReminderOutput, 0, len(reminders))
	for _, r := range reminders {
		outputs = append(outputs, FromEntity(r))
	}

	return RemindersOutput{
		Reminders: outputs,
		Count:     int32(len(outputs)), //nolint:gosec
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
