package app

import "github.com/KasumiMercury/primind-remind-again/internal/domain"

//go:generate mockgen -source=alarm_scheduler.go -destination=alarm_scheduler_mock.go -package=app

// AlarmScheduler arms the callbacks that end up in ReminderUseCase.HandleTrigger.
type AlarmScheduler interface {
	// ScheduleReminder registers or replaces the main alarm of a reminder.
	ScheduleReminder(reminder *domain.Reminder) error
	CancelReminder(id domain.ReminderID)
	// ScheduleRepeat replaces any pending repeat with a one-shot alarm after interval.
	ScheduleRepeat(id domain.ReminderID, interval domain.SnoozeInterval) error
	CancelRepeat(id domain.ReminderID)
	ScheduledReminders() []domain.ReminderID
}
