package domain

import "errors"

var (
	ErrReminderNotFound = errors.New("reminder not found")

	ErrInvalidReminderID   = errors.New("invalid reminder ID")
	ErrInvalidReminderName = errors.New("invalid reminder name")
	ErrInvalidTimeOfDay    = errors.New("invalid time of day")

	ErrMalformedSchedule      = errors.New("malformed schedule")
	ErrInvalidMonthlySchedule = errors.New("monthly schedule needs either a day of month or a weekday with its nth occurrence")

	ErrInvalidSnoozeInterval = errors.New("snooze interval must be positive")
)
