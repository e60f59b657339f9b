package app

import "time"

// Now fields are optional; the zero value means the current time.

type CreateReminderInput struct {
	Name      string
	TimeOfDay string
	Schedule  string
}

type GetReminderInput struct {
	ID string
}

type UpdateReminderInput struct {
	ID        string
	Name      string
	TimeOfDay string
	Schedule  string
}

type DeleteReminderInput struct {
	ID string
}

type ListOccurrencesInput struct {
	ID    string
	From  time.Time
	To    time.Time
	Limit int
}

type GetReminderStatusInput struct {
	ID  string
	Now time.Time
}

type HandleTriggerInput struct {
	ID       string
	IsRepeat bool
	// IntervalSeconds is the interval the firing alarm was armed with. Zero means the default.
	IntervalSeconds int
	Now             time.Time
}

type SnoozeInput struct {
	ID string
	// IntervalSeconds overrides the advertised "Later" interval when positive.
	IntervalSeconds int
	Now             time.Time
}

type DismissInput struct {
	ID  string
	Now time.Time
}

type DoneInput struct {
	ID string
}

type CheckDueRemindersInput struct {
	Now time.Time
}

type ExportCalendarInput struct {
	Now time.Time
}
