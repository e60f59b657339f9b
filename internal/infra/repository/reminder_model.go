package repository

import (
	"time"

	"github.com/KasumiMercury/primind-remind-again/internal/domain"
)

type ReminderModel struct {
	ID        string    `gorm:"column:id;type:uuid;primaryKey"`
	Name      string    `gorm:"column:name;type:varchar(255);not null"`
	TimeOfDay int       `gorm:"column:time_of_day;type:integer;not null"` // stored as seconds since midnight
	Schedule  string    `gorm:"column:schedule;type:varchar(64);not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null;index:idx_reminders_created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

func (ReminderModel) TableName() string {
	return "reminders"
}

func (m *ReminderModel) ToEntity() (*domain.Reminder, error) {
	reminderID, err := domain.ReminderIDFromString(m.ID)
	if err != nil {
		return nil, err
	}

	timeOfDay, err := domain.TimeOfDayFromSeconds(m.TimeOfDay)
	if err != nil {
		return nil, err
	}

	schedule, err := domain.ParseSchedule(m.Schedule)
	if err != nil {
		return nil, err
	}

	return domain.Reconstitute(
		reminderID,
		m.Name,
		timeOfDay,
		schedule,
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}

func FromEntity(e *domain.Reminder) (*ReminderModel, error) {
	schedule, err := domain.FormatSchedule(e.Schedule())
	if err != nil {
		return nil, err
	}

	return &ReminderModel{
		ID:        e.ID().String(),
		Name:      e.Name(),
		TimeOfDay: e.TimeOfDay().Seconds(),
		Schedule:  schedule,
		CreatedAt: e.CreatedAt().UTC(),
		UpdatedAt: e.UpdatedAt().UTC(),
	}, nil
}
