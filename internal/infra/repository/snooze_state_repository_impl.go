package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/samber/mo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/KasumiMercury/primind-remind-again/internal/domain"
)

type snoozeStateRepositoryImpl struct {
	db   *gorm.DB
	inTx bool
}

func NewSnoozeStateRepository(db *gorm.DB) domain.SnoozeStateRepository {
	return &snoozeStateRepositoryImpl{
		db: db,
	}
}

func (r *snoozeStateRepositoryImpl) Get(ctx context.Context, id domain.ReminderID) (mo.Option[domain.SnoozeInterval], error) {
	query := r.db.WithContext(ctx)
	if r.inTx {
		// Row lock so concurrent "Later" presses serialize. SQLite ignores it
		// and serializes whole transactions instead.
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var m SnoozeStateModel

	err := query.Where("reminder_id = ?", id.String()).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return mo.None[domain.SnoozeInterval](), nil
	}

	if err != nil {
		slog.Error("failed to read snooze state",
			"reminder_id", id.String(),
			"error", err,
		)

		return mo.None[domain.SnoozeInterval](), err
	}

	interval, err := m.ToInterval()
	if err != nil {
		slog.Warn("ignoring unreadable snooze state",
			"reminder_id", id.String(),
			"interval_seconds", m.IntervalSeconds,
		)

		return mo.None[domain.SnoozeInterval](), nil
	}

	return mo.Some(interval), nil
}

func (r *snoozeStateRepositoryImpl) Set(ctx context.Context, id domain.ReminderID, interval domain.SnoozeInterval, at time.Time) error {
	slog.Debug("storing snooze state",
		"reminder_id", id.String(),
		"interval_seconds", interval.Seconds(),
	)

	m := &SnoozeStateModel{
		ReminderID:      id.String(),
		IntervalSeconds: interval.Seconds(),
		UpdatedAt:       at.UTC(),
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "reminder_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"interval_seconds", "updated_at"}),
		}).
		Create(m).Error
	if err != nil {
		slog.Error("failed to store snooze state",
			"reminder_id", id.String(),
			"error", err,
		)

		return err
	}

	return nil
}

func (r *snoozeStateRepositoryImpl) Clear(ctx context.Context, id domain.ReminderID) error {
	err := r.db.WithContext(ctx).Where("reminder_id = ?", id.String()).Delete(&SnoozeStateModel{}).Error
	if err != nil {
		slog.Error("failed to clear snooze state",
			"reminder_id", id.String(),
			"error", err,
		)

		return err
	}

	return nil
}

func (r *snoozeStateRepositoryImpl) WithTx(ctx context.Context, fn func(repo domain.SnoozeStateRepository) error) error {
	return withTx(ctx, r.db, func(tx *gorm.DB) error {
		return fn(&snoozeStateRepositoryImpl{db: tx, inTx: true})
	})
}
