package app

import (
	"context"
)

type ReminderUseCase interface {
	CreateReminder(ctx context.Context, input CreateReminderInput) (ReminderOutput, error)
	GetReminder(ctx context.Context, input GetReminderInput) (ReminderOutput, error)
	ListReminders(ctx context.Context) (RemindersOutput, error)
	UpdateReminder(ctx context.Context, input UpdateReminderInput) (ReminderOutput, error)
	DeleteReminder(ctx context.Context, input DeleteReminderInput) error
	ListOccurrences(ctx context.Context, input ListOccurrencesInput) (OccurrencesOutput, error)

	GetReminderStatus(ctx context.Context, input GetReminderStatusInput) (ReminderStatusOutput, error)
	HandleTrigger(ctx context.Context, input HandleTriggerInput) (TriggerOutput, error)
	Snooze(ctx context.Context, input SnoozeInput) (SnoozeOutput, error)
	Dismiss(ctx context.Context, input DismissInput) error
	Done(ctx context.Context, input DoneInput) error

	CheckDueReminders(ctx context.Context, input CheckDueRemindersInput) (DueRemindersOutput, error)
	SyncAlarms(ctx context.Context) (SyncAlarmsOutput, error)
	ExportCalendar(ctx context.Context, input ExportCalendarInput) (CalendarOutput, error)
}
