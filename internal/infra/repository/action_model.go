package repository

import (
	"time"

	"github.com/KasumiMercury/primind-remind-again/internal/domain"
)

type DismissActionModel struct {
	ID          uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	ReminderID  string    `gorm:"column:reminder_id;type:uuid;not null;index:idx_dismiss_actions_reminder_id"`
	DismissedAt time.Time `gorm:"column:dismissed_at;not null"`
}

func (DismissActionModel) TableName() string {
	return "dismiss_actions"
}

type PostponeActionModel struct {
	ID              uint64    `gorm:"column:id;primaryKey;autoIncrement"`
	ReminderID      string    `gorm:"column:reminder_id;type:uuid;not null;index:idx_postpone_actions_reminder_id"`
	PostponedAt     time.Time `gorm:"column:postponed_at;not null"`
	IntervalSeconds int       `gorm:"column:interval_seconds;type:integer;not null"`
}

func (PostponeActionModel) TableName() string {
	return "postpone_actions"
}

type SnoozeStateModel struct {
	ReminderID      string    `gorm:"column:reminder_id;type:uuid;primaryKey"`
	IntervalSeconds int       `gorm:"column:interval_seconds;type:integer;not null"`
	UpdatedAt       time.Time `gorm:"column:updated_at;not null"`
}

func (SnoozeStateModel) TableName() string {
	return "snooze_states"
}

func (m *DismissActionModel) ToEntity() (domain.Action, error) {
	reminderID, err := domain.ReminderIDFromString(m.ReminderID)
	if err != nil {
		return domain.Action{}, err
	}

	return domain.ReconstituteAction(reminderID, domain.ActionDismiss, m.DismissedAt, domain.SnoozeInterval{}), nil
}

func (m *PostponeActionModel) ToEntity() (domain.Action, error) {
	reminderID, err := domain.ReminderIDFromString(m.ReminderID)
	if err != nil {
		return domain.Action{}, err
	}

	interval, err := domain.NewSnoozeInterval(m.IntervalSeconds)
	if err != nil {
		return domain.Action{}, err
	}

	return domain.ReconstituteAction(reminderID, domain.ActionPostpone, m.PostponedAt, interval), nil
}

func (m *SnoozeStateModel) ToInterval() (domain.SnoozeInterval, error) {
	return domain.NewSnoozeInterval(m.IntervalSeconds)
}

// Models lists every table owned by this package, in migration order.
func Models() []any {
	return []any{
		&ReminderModel{},
		&DismissActionModel{},
		&PostponeActionModel{},
		&SnoozeStateModel{},
	}
}
