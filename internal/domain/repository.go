package domain

import (
	"context"
	"time"

	"github.com/samber/mo"
)

// CorruptReminder is a stored row that could not be turned into a Reminder.
type CorruptReminder struct {
	ID  string
	Err error
}

type ReminderRepository interface {
	Save(ctx context.Context, reminder *Reminder) error
	FindByID(ctx context.Context, id ReminderID) (*Reminder, error)
	// FindAll returns every readable reminder plus the rows that failed to decode.
	FindAll(ctx context.Context) ([]*Reminder, []CorruptReminder, error)
	Update(ctx context.Context, reminder *Reminder) error
	Delete(ctx context.Context, id ReminderID) error
	WithTx(ctx context.Context, fn func(repo ReminderRepository) error) error
}

type ActionRepository interface {
	Save(ctx context.Context, action Action) error
	FindLatest(ctx context.Context, id ReminderID, actionType ActionType) (mo.Option[Action], error)
	FindByReminderID(ctx context.Context, id ReminderID) ([]Action, error)
	DeleteByReminderID(ctx context.Context, id ReminderID) (int64, error)
}

// SnoozeStateRepository stores the last armed interval per reminder.
// Read-modify-write sequences must run inside WithTx.
type SnoozeStateRepository interface {
	Get(ctx context.Context, id ReminderID) (mo.Option[SnoozeInterval], error)
	Set(ctx context.Context, id ReminderID, interval SnoozeInterval, at time.Time) error
	Clear(ctx context.Context, id ReminderID) error
	WithTx(ctx context.Context, fn func(repo SnoozeStateRepository) error) error
}
