package repository

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/samber/mo"
	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-remind-again/internal/domain"
)

type actionRepositoryImpl struct {
	db *gorm.DB
}

func NewActionRepository(db *gorm.DB) domain.ActionRepository {
	return &actionRepositoryImpl{
		db: db,
	}
}

func (r *actionRepositoryImpl) Save(ctx context.Context, action domain.Action) error {
	slog.Debug("saving action to database",
		"reminder_id", action.ReminderID().String(),
		"action", action.Type(),
	)

	var model any

	switch action.Type() {
	case domain.ActionDismiss:
		model = &DismissActionModel{
			ReminderID:  action.ReminderID().String(),
			DismissedAt: action.Timestamp().UTC(),
		}
	case domain.ActionPostpone:
		model = &PostponeActionModel{
			ReminderID:      action.ReminderID().String(),
			PostponedAt:     action.Timestamp().UTC(),
			IntervalSeconds: action.Interval().Seconds(),
		}
	default:
		return fmt.Errorf("unknown action type %q", action.Type())
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		slog.Error("failed to save action to database",
			"reminder_id", action.ReminderID().String(),
			"action", action.Type(),
			"error", err,
		)

		return err
	}

	return nil
}

func (r *actionRepositoryImpl) FindLatest(
	ctx context.Context,
	id domain.ReminderID,
	actionType domain.ActionType,
) (mo.Option[domain.Action], error) {
	var (
		action domain.Action
		err    error
	)

	switch actionType {
	case domain.ActionDismiss:
		var m DismissActionModel

		err = r.db.WithContext(ctx).
			Where("reminder_id = ?", id.String()).
			Order("dismissed_at DESC, id DESC").
			First(&m).Error
		if err == nil {
			action, err = m.ToEntity()
		}
	case domain.ActionPostpone:
		var m PostponeActionModel

		err = r.db.WithContext(ctx).
			Where("reminder_id = ?", id.String()).
			Order("postponed_at DESC, id DESC").
			First(&m).Error
		if err == nil {
			action, err = m.ToEntity()
		}
	default:
		return mo.None[domain.Action](), fmt.Errorf("unknown action type %q", actionType)
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return mo.None[domain.Action](), nil
	}

	if err != nil {
		slog.Error("failed to find latest action",
			"reminder_id", id.String(),
			"action", actionType,
			"error", err,
		)

		return mo.None[domain.Action](), err
	}

	return mo.Some(action), nil
}

// FindByReminderID returns the full history, oldest first.
func (r *actionRepositoryImpl) FindByReminderID(ctx context.Context, id domain.ReminderID) ([]domain.Action, error) {
	var (
		dismissals   []DismissActionModel
		postponements []PostponeActionModel
	)

	if err := r.db.WithContext(ctx).Where("reminder_id = ?", id.String()).Find(&dismissals).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Where("reminder_id = ?", id.String()).Find(&postponements).Error; err != nil {
		return nil, err
	}

	actions := make([]domain.Action, 0, len(dismissals)+len(postponements))

	for _, m := range dismissals {
		action, err := m.ToEntity()
		if err != nil {
			return nil, err
		}

		actions = append(actions, action)
	}

	for _, m := range postponements {
		action, err := m.ToEntity()
		if err != nil {
			return nil, err
		}

		actions = append(actions, action)
	}

	slices.SortStableFunc(actions, func(a, b domain.Action) int {
		return cmp.Compare(a.Timestamp().UnixNano(), b.Timestamp().UnixNano())
	})

	return actions, nil
}

func (r *actionRepositoryImpl) DeleteByReminderID(ctx context.Context, id domain.ReminderID) (int64, error) {
	var deleted int64

	err := withTx(ctx, r.db, func(tx *gorm.DB) error {
		result := tx.Where("reminder_id = ?", id.String()).Delete(&DismissActionModel{})
		if result.Error != nil {
			return result.Error
		}

		deleted += result.RowsAffected

		result = tx.Where("reminder_id = ?", id.String()).Delete(&PostponeActionModel{})
		if result.Error != nil {
			return result.Error
		}

		deleted += result.RowsAffected

		return nil
	})
	if err != nil {
		slog.Error("failed to delete actions",
			"reminder_id", id.String(),
			"error", err,
		)

		return 0, err
	}

	slog.Debug("actions deleted",
		"reminder_id", id.String(),
		"count", deleted,
	)

	return deleted, nil
}
