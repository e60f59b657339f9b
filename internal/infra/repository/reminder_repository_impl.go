package repository

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-remind-again/internal/domain"
)

type reminderRepositoryImpl struct {
	db *gorm.DB
}

func NewReminderRepository(db *gorm.DB) domain.ReminderRepository {
	return &reminderRepositoryImpl{
		db: db,
	}
}

func (r *reminderRepositoryImpl) Save(ctx context.Context, reminder *domain.Reminder) error {
	slog.Debug("saving reminder to database",
		"reminder_id", reminder.ID().String(),
	)

	m, err := FromEntity(reminder)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Create(m)
	if result.Error != nil {
		slog.Error("failed to save reminder to database",
			"reminder_id", reminder.ID().String(),
			"error", result.Error,
		)

		return result.Error
	}

	return nil
}

func (r *reminderRepositoryImpl) FindByID(ctx context.Context, id domain.ReminderID) (*domain.Reminder, error) {
	slog.Debug("finding reminder by ID",
		"reminder_id", id.String(),
	)

	var m ReminderModel

	result := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			slog.Debug("reminder not found",
				"reminder_id", id.String(),
			)

			return nil, domain.ErrReminderNotFound
		}

		slog.Error("failed to find reminder by ID",
			"reminder_id", id.String(),
			"error", result.Error,
		)

		return nil, result.Error
	}

	return m.ToEntity()
}

func (r *reminderRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Reminder, []domain.CorruptReminder, error) {
	var models []ReminderModel

	result := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&models)
	if result.Error != nil {
		slog.Error("failed to list reminders",
			"error", result.Error,
		)

		return nil, nil, result.Error
	}

	reminders := make([]*domain.Reminder, 0, len(models))

	var corrupt []domain.CorruptReminder

	for _, m := range models {
		reminder, err := m.ToEntity()
		if err != nil {
			slog.Warn("failed to convert model to entity",
				"reminder_id", m.ID,
				"error", err,
			)

			corrupt = append(corrupt, domain.CorruptReminder{ID: m.ID, Err: err})

			continue
		}

		reminders = append(reminders, reminder)
	}

	slog.Debug("reminders listed",
		"count", len(reminders),
		"corrupt", len(corrupt),
	)

	return reminders, corrupt, nil
}

func (r *reminderRepositoryImpl) Update(ctx context.Context, reminder *domain.Reminder) error {
	slog.Debug("updating reminder in database",
		"reminder_id", reminder.ID().String(),
	)

	m, err := FromEntity(reminder)
	if err != nil {
		return err
	}

	// Select forces zero values such as a midnight time of day to be written.
	result := r.db.WithContext(ctx).
		Model(&ReminderModel{}).
		Where("id = ?", m.ID).
		Select("name", "time_of_day", "schedule", "updated_at").
		Updates(m)
	if result.Error != nil {
		slog.Error("failed to update reminder in database",
			"reminder_id", reminder.ID().String(),
			"error", result.Error,
		)

		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrReminderNotFound
	}

	return nil
}

func (r *reminderRepositoryImpl) Delete(ctx context.Context, id domain.ReminderID) error {
	slog.Debug("deleting reminder from database",
		"reminder_id", id.String(),
	)

	result := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&ReminderModel{})
	if result.Error != nil {
		slog.Error("failed to delete reminder from database",
			"reminder_id", id.String(),
			"error", result.Error,
		)

		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrReminderNotFound
	}

	return nil
}

func (r *reminderRepositoryImpl) WithTx(ctx context.Context, fn func(repo domain.ReminderRepository) error) error {
	return withTx(ctx, r.db, func(tx *gorm.DB) error {
		return fn(&reminderRepositoryImpl{db: tx})
	})
}
