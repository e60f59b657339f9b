package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/mo"

	"github.com/KasumiMercury/primind-remind-again/internal/domain"
	"github.com/KasumiMercury/primind-remind-again/internal/infra/calendar"
	"github.com/KasumiMercury/primind-remind-again/internal/infra/pubsub"
)

const (
	DefaultOccurrenceLimit = 10
	MaxOccurrenceLimit     = 100
)

type reminderUseCaseImpl struct {
	reminders domain.ReminderRepository
	actions   domain.ActionRepository
	snoozes   domain.SnoozeStateRepository
	scheduler AlarmScheduler
	publisher pubsub.Publisher
	location  *time.Location
}

func NewReminderUseCase(
	reminders domain.ReminderRepository,
	actions domain.ActionRepository,
	snoozes domain.SnoozeStateRepository,
	scheduler AlarmScheduler,
	publisher pubsub.Publisher,
	location *time.Location,
) ReminderUseCase {
	if location == nil {
		location = time.Local
	}

	return &reminderUseCaseImpl{
		reminders: reminders,
		actions:   actions,
		snoozes:   snoozes,
		scheduler: scheduler,
		publisher: publisher,
		location:  location,
	}
}

func (uc *reminderUseCaseImpl) CreateReminder(ctx context.Context, input CreateReminderInput) (ReminderOutput, error) {
	slog.Debug("creating reminder",
		"name", input.Name,
		"time_of_day", input.TimeOfDay,
		"schedule", input.Schedule,
	)

	tod, schedule, err := parseReminderFields(input.TimeOfDay, input.Schedule)
	if err != nil {
		return ReminderOutput{}, err
	}

	reminder, err := domain.NewReminder(input.Name, tod, schedule)
	if err != nil {
		return ReminderOutput{}, entityValidationError(err)
	}

	if err := uc.reminders.Save(ctx, reminder); err != nil {
		slog.Error("failed to save reminder",
			"error", err,
			"reminder_id", reminder.ID().String(),
		)

		return ReminderOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	uc.armReminder(reminder)

	slog.Info("reminder created",
		"reminder_id", reminder.ID().String(),
		"kind", reminder.Schedule().Kind(),
	)

	return FromEntity(reminder), nil
}

func (uc *reminderUseCaseImpl) GetReminder(ctx context.Context, input GetReminderInput) (ReminderOutput, error) {
	reminder, err := uc.findReminder(ctx, input.ID)
	if err != nil {
		return ReminderOutput{}, err
	}

	return FromEntity(reminder), nil
}

func (uc *reminderUseCaseImpl) ListReminders(ctx context.Context) (RemindersOutput, error) {
	reminders, corrupt, err := uc.reminders.FindAll(ctx)
	if err != nil {
		slog.Error("failed to list reminders",
			"error", err,
		)

		return RemindersOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	logCorrupt(corrupt)

	output := FromEntities(reminders)
	output.Skipped = int32(len(corrupt)) //nolint:gosec

	return output, nil
}

func (uc *reminderUseCaseImpl) UpdateReminder(ctx context.Context, input UpdateReminderInput) (ReminderOutput, error) {
	slog.Debug("updating reminder",
		"reminder_id", input.ID,
	)

	id, err := domain.ReminderIDFromString(input.ID)
	if err != nil {
		return ReminderOutput{}, NewValidationError("id", err.Error())
	}

	tod, schedule, err := parseReminderFields(input.TimeOfDay, input.Schedule)
	if err != nil {
		return ReminderOutput{}, err
	}

	var updated *domain.Reminder

	if err := uc.reminders.WithTx(ctx, func(txRepo domain.ReminderRepository) error {
		reminder, err := txRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}

		if err := reminder.Update(input.Name, tod, schedule); err != nil {
			return entityValidationError(err)
		}

		if err := txRepo.Update(ctx, reminder); err != nil {
			return err
		}

		updated = reminder

		return nil
	}); err != nil {
		return ReminderOutput{}, uc.mapRepositoryError(err, input.ID)
	}

	uc.armReminder(updated)

	slog.Info("reminder updated",
		"reminder_id", input.ID,
	)

	return FromEntity(updated), nil
}

func (uc *reminderUseCaseImpl) DeleteReminder(ctx context.Context, input DeleteReminderInput) error {
	slog.Debug("deleting reminder",
		"reminder_id", input.ID,
	)

	id, err := domain.ReminderIDFromString(input.ID)
	if err != nil {
		return NewValidationError("id", err.Error())
	}

	if err := uc.reminders.Delete(ctx, id); err != nil {
		if !errors.Is(err, domain.ErrReminderNotFound) {
			slog.Error("failed to delete reminder",
				"error", err,
				"reminder_id", input.ID,
			)

			return fmt.Errorf("%w: %v", ErrInternalError, err)
		}

		slog.Info("reminder not found for deletion (idempotency)",
			"reminder_id", input.ID,
		)
	}

	uc.disarmReminder(id)

	if err := uc.snoozes.Clear(ctx, id); err != nil {
		slog.Warn("failed to clear snooze state of deleted reminder",
			"error", err,
			"reminder_id", input.ID,
		)
	}

	if _, err := uc.actions.DeleteByReminderID(ctx, id); err != nil {
		slog.Warn("failed to delete action history of deleted reminder",
			"error", err,
			"reminder_id", input.ID,
		)
	}

	slog.Debug("reminder deleted",
		"reminder_id", input.ID,
	)

	return nil
}

func (uc *reminderUseCaseImpl) ListOccurrences(ctx context.Context, input ListOccurrencesInput) (OccurrencesOutput, error) {
	reminder, err := uc.findReminder(ctx, input.ID)
	if err != nil {
		return OccurrencesOutput{}, err
	}

	from := uc.now(input.From)

	to := input.To
	if to.IsZero() {
		to = from.AddDate(0, 1, 0)
	}

	if !from.Before(to) {
		return OccurrencesOutput{}, NewValidationError("time_range", "from must be before to")
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultOccurrenceLimit
	}

	if limit < 0 || limit > MaxOccurrenceLimit {
		return OccurrencesOutput{}, NewValidationError("limit", fmt.Sprintf("must be between 1 and %d", MaxOccurrenceLimit))
	}

	occurrences := domain.OccurrencesBetween(reminder.Schedule(), reminder.TimeOfDay(), from, to.In(uc.location), limit)

	return OccurrencesOutput{
		ReminderID:  reminder.ID().String(),
		Occurrences: occurrences,
	}, nil
}

func (uc *reminderUseCaseImpl) GetReminderStatus(ctx context.Context, input GetReminderStatusInput) (ReminderStatusOutput, error) {
	reminder, err := uc.findReminder(ctx, input.ID)
	if err != nil {
		return ReminderStatusOutput{}, err
	}

	now := uc.now(input.Now)

	lastDismiss, err := uc.actions.FindLatest(ctx, reminder.ID(), domain.ActionDismiss)
	if err != nil {
		return ReminderStatusOutput{}, uc.internal("failed to load last dismissal", err, input.ID)
	}

	lastPostpone, err := uc.actions.FindLatest(ctx, reminder.ID(), domain.ActionPostpone)
	if err != nil {
		return ReminderStatusOutput{}, uc.internal("failed to load last postponement", err, input.ID)
	}

	stored, err := uc.snoozes.Get(ctx, reminder.ID())
	if err != nil {
		return ReminderStatusOutput{}, uc.internal("failed to load snooze state", err, input.ID)
	}

	status := reminder.EvaluateDue(now, actionTime(lastDismiss))
	nextMain := reminder.NextOccurrenceAfter(now)
	later := laterInterval(stored, 0)

	output := ReminderStatusOutput{
		Reminder:             FromEntity(reminder),
		Due:                  status.Due(),
		Suppressed:           status.Suppressed,
		ActiveNow:            reminder.IsActiveAt(now),
		LaterAvailable:       domain.FiresBefore(now.Add(later.Duration()), nextMain),
		LaterIntervalSeconds: later.Seconds(),
	}

	if occ, ok := status.Occurrence.Get(); ok {
		output.UpcomingOccurrence = timePtr(occ)
	}

	if next, ok := nextMain.Get(); ok {
		output.NextOccurrence = timePtr(next)
	}

	if action, ok := lastDismiss.Get(); ok {
		output.LastDismissedAt = timePtr(action.Timestamp())
	}

	if action, ok := lastPostpone.Get(); ok {
		output.LastPostponedAt = timePtr(action.Timestamp())
	}

	return output, nil
}

// HandleTrigger runs when a main or repeat alarm fires: it publishes the
// notification and re-arms or stops the repeat alarm.
func (uc *reminderUseCaseImpl) HandleTrigger(ctx context.Context, input HandleTriggerInput) (TriggerOutput, error) {
	slog.Debug("handling alarm trigger",
		"reminder_id", input.ID,
		"is_repeat", input.IsRepeat,
		"interval_seconds", input.IntervalSeconds,
	)

	id, err := domain.ReminderIDFromString(input.ID)
	if err != nil {
		return TriggerOutput{}, NewValidationError("id", err.Error())
	}

	current := domain.DefaultSnoozeInterval
	if input.IntervalSeconds != 0 {
		current, err = domain.NewSnoozeInterval(input.IntervalSeconds)
		if err != nil {
			return TriggerOutput{}, NewValidationError("interval_seconds", err.Error())
		}
	}

	now := uc.now(input.Now)

	reminder, err := uc.reminders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrReminderNotFound) {
			slog.Warn("alarm fired for missing reminder",
				"reminder_id", input.ID,
			)

			if clearErr := uc.snoozes.Clear(ctx, id); clearErr != nil {
				slog.Warn("failed to clear snooze state",
					"error", clearErr,
					"reminder_id", input.ID,
				)
			}

			uc.disarmReminder(id)
		}

		return TriggerOutput{}, uc.mapRepositoryError(err, input.ID)
	}

	if !input.IsRepeat {
		if err := uc.snoozes.Clear(ctx, id); err != nil {
			return TriggerOutput{}, uc.internal("failed to clear snooze state", err, input.ID)
		}
	}

	stored, err := uc.snoozes.Get(ctx, id)
	if err != nil {
		return TriggerOutput{}, uc.internal("failed to load snooze state", err, input.ID)
	}

	decision := domain.DecideRepeat(domain.RepeatInput{
		IsRepeat:        input.IsRepeat,
		CurrentArmed:    current,
		StoredLastArmed: stored,
		Schedule:        reminder.Schedule(),
		TimeOfDay:       reminder.TimeOfDay(),
		Now:             now,
	})

	uc.publishNotify(ctx, pubsub.NotifyEvent{
		ReminderID:           input.ID,
		Name:                 reminder.Name(),
		OccurrenceAt:         now,
		IsRepeat:             input.IsRepeat,
		ShowLater:            decision.ShowLater,
		LaterIntervalSeconds: decision.NextButtonInterval.Seconds(),
		PublishedAt:          time.Now(),
	})

	if decision.ShouldSchedule {
		if err := uc.scheduler.ScheduleRepeat(id, decision.Interval); err != nil {
			return TriggerOutput{}, uc.internal("failed to schedule repeat", err, input.ID)
		}

		slog.Debug("scheduled repeat",
			"reminder_id", input.ID,
			"interval_seconds", decision.Interval.Seconds(),
			"reason", decision.Reason,
		)
	} else {
		uc.scheduler.CancelRepeat(id)

		slog.Debug("no repeat scheduled",
			"reminder_id", input.ID,
			"reason", decision.Reason,
		)
	}

	output := TriggerOutput{
		ReminderID:            input.ID,
		IsRepeat:              input.IsRepeat,
		RepeatScheduled:       decision.ShouldSchedule,
		RepeatIntervalSeconds: decision.Interval.Seconds(),
		ShowLater:             decision.ShowLater,
		LaterIntervalSeconds:  decision.NextButtonInterval.Seconds(),
		Reason:                decision.Reason,
	}

	if next, ok := decision.NextMain.Get(); ok {
		output.NextOccurrence = timePtr(next)
	}

	return output, nil
}

// Snooze is the "Later" action: it arms a one-shot repeat and remembers its
// interval so the next repeat can double it.
func (uc *reminderUseCaseImpl) Snooze(ctx context.Context, input SnoozeInput) (SnoozeOutput, error) {
	slog.Debug("snoozing reminder",
		"reminder_id", input.ID,
		"interval_seconds", input.IntervalSeconds,
	)

	if input.IntervalSeconds < 0 {
		return SnoozeOutput{}, NewValidationError("interval_seconds", domain.ErrInvalidSnoozeInterval.Error())
	}

	reminder, err := uc.findReminder(ctx, input.ID)
	if err != nil {
		return SnoozeOutput{}, err
	}

	id := reminder.ID()
	now := uc.now(input.Now)
	nextMain := reminder.NextOccurrenceAfter(now)

	var armed domain.SnoozeInterval

	if err := uc.snoozes.WithTx(ctx, func(txRepo domain.SnoozeStateRepository) error {
		stored, err := txRepo.Get(ctx, id)
		if err != nil {
			return err
		}

		armed = laterInterval(stored, input.IntervalSeconds)

		if !domain.FiresBefore(now.Add(armed.Duration()), nextMain) {
			return NewValidationError("interval_seconds", "snooze would end after the next occurrence")
		}

		return txRepo.Set(ctx, id, armed, now)
	}); err != nil {
		if IsValidationError(err) {
			return SnoozeOutput{}, err
		}

		return SnoozeOutput{}, uc.internal("failed to store snooze state", err, input.ID)
	}

	if err := uc.actions.Save(ctx, domain.NewPostponeAction(id, now, armed)); err != nil {
		return SnoozeOutput{}, uc.internal("failed to record postpone action", err, input.ID)
	}

	if err := uc.scheduler.ScheduleRepeat(id, armed); err != nil {
		return SnoozeOutput{}, uc.internal("failed to schedule snoozed notification", err, input.ID)
	}

	slog.Info("reminder snoozed",
		"reminder_id", input.ID,
		"interval_seconds", armed.Seconds(),
	)

	return SnoozeOutput{
		ReminderID:      input.ID,
		IntervalSeconds: armed.Seconds(),
		FireAt:          now.Add(armed.Duration()),
	}, nil
}

func (uc *reminderUseCaseImpl) Dismiss(ctx context.Context, input DismissInput) error {
	reminder, err := uc.findReminder(ctx, input.ID)
	if err != nil {
		return err
	}

	if err := uc.actions.Save(ctx, domain.NewDismissAction(reminder.ID(), uc.now(input.Now))); err != nil {
		return uc.internal("failed to record dismiss action", err, input.ID)
	}

	if err := uc.stopRepeating(ctx, reminder.ID()); err != nil {
		return uc.internal("failed to clear snooze state", err, input.ID)
	}

	slog.Info("reminder dismissed",
		"reminder_id", input.ID,
	)

	return nil
}

func (uc *reminderUseCaseImpl) Done(ctx context.Context, input DoneInput) error {
	id, err := domain.ReminderIDFromString(input.ID)
	if err != nil {
		return NewValidationError("id", err.Error())
	}

	if err := uc.stopRepeating(ctx, id); err != nil {
		return uc.internal("failed to clear snooze state", err, input.ID)
	}

	slog.Info("reminder marked as done",
		"reminder_id", input.ID,
	)

	return nil
}

// CheckDueReminders evaluates every stored reminder at one instant. Rows whose
// schedule cannot be decoded are logged and skipped.
func (uc *reminderUseCaseImpl) CheckDueReminders(ctx context.Context, input CheckDueRemindersInput) (DueRemindersOutput, error) {
	now := uc.now(input.Now)

	reminders, corrupt, err := uc.reminders.FindAll(ctx)
	if err != nil {
		slog.Error("failed to load reminders for due check",
			"error", err,
		)

		return DueRemindersOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	logCorrupt(corrupt)

	output := DueRemindersOutput{
		Due:     make([]DueReminderOutput, 0),
		Checked: int32(len(reminders)), //nolint:gosec
		Skipped: int32(len(corrupt)),   //nolint:gosec
	}

	for _, reminder := range reminders {
		lastDismiss, err := uc.actions.FindLatest(ctx, reminder.ID(), domain.ActionDismiss)
		if err != nil {
			slog.Warn("skipping reminder without readable history",
				"error", err,
				"reminder_id", reminder.ID().String(),
			)

			output.Skipped++

			continue
		}

		status := reminder.EvaluateDue(now, actionTime(lastDismiss))
		if !status.Due() {
			continue
		}

		output.Due = append(output.Due, DueReminderOutput{
			Reminder:   FromEntity(reminder),
			Occurrence: status.Occurrence.MustGet(),
			ActiveNow:  reminder.IsActiveAt(now),
		})
	}

	slog.Debug("due check finished",
		"checked", output.Checked,
		"due", len(output.Due),
		"skipped", output.Skipped,
	)

	return output, nil
}

// SyncAlarms registers a main alarm for every stored reminder and drops alarms
// whose reminder no longer exists.
func (uc *reminderUseCaseImpl) SyncAlarms(ctx context.Context) (SyncAlarmsOutput, error) {
	reminders, corrupt, err := uc.reminders.FindAll(ctx)
	if err != nil {
		slog.Error("failed to load reminders for alarm sync",
			"error", err,
		)

		return SyncAlarmsOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	logCorrupt(corrupt)

	output := SyncAlarmsOutput{Skipped: int32(len(corrupt))} //nolint:gosec
	known := make(map[domain.ReminderID]struct{}, len(reminders))

	for _, reminder := range reminders {
		known[reminder.ID()] = struct{}{}

		if err := uc.scheduler.ScheduleReminder(reminder); err != nil {
			slog.Warn("failed to schedule reminder",
				"error", err,
				"reminder_id", reminder.ID().String(),
			)

			output.Skipped++

			continue
		}

		output.Scheduled++
	}

	for _, id := range uc.scheduler.ScheduledReminders() {
		if _, ok := known[id]; ok {
			continue
		}

		uc.disarmReminder(id)
		output.Removed++
	}

	slog.Info("alarms synchronized",
		"scheduled", output.Scheduled,
		"removed", output.Removed,
		"skipped", output.Skipped,
	)

	return output, nil
}

func (uc *reminderUseCaseImpl) ExportCalendar(ctx context.Context, input ExportCalendarInput) (CalendarOutput, error) {
	reminders, corrupt, err := uc.reminders.FindAll(ctx)
	if err != nil {
		slog.Error("failed to load reminders for calendar export",
			"error", err,
		)

		return CalendarOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	logCorrupt(corrupt)

	cal, omitted := calendar.Build(reminders, uc.now(input.Now))

	data, err := calendar.Encode(cal)
	if err != nil {
		slog.Error("failed to encode calendar",
			"error", err,
		)

		return CalendarOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return CalendarOutput{
		Data:    data,
		Events:  int32(len(reminders) - omitted), //nolint:gosec
		Omitted: int32(omitted + len(corrupt)),   //nolint:gosec
	}, nil
}

func (uc *reminderUseCaseImpl) findReminder(ctx context.Context, rawID string) (*domain.Reminder, error) {
	id, err := domain.ReminderIDFromString(rawID)
	if err != nil {
		return nil, NewValidationError("id", err.Error())
	}

	reminder, err := uc.reminders.FindByID(ctx, id)
	if err != nil {
		return nil, uc.mapRepositoryError(err, rawID)
	}

	return reminder, nil
}

func (uc *reminderUseCaseImpl) mapRepositoryError(err error, rawID string) error {
	switch {
	case IsValidationError(err):
		return err
	case errors.Is(err, domain.ErrReminderNotFound):
		slog.Warn("reminder not found",
			"reminder_id", rawID,
		)

		return fmt.Errorf("%w: %v", ErrNotFound, err)
	default:
		slog.Error("failed to load reminder",
			"error", err,
			"reminder_id", rawID,
		)

		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}
}

func (uc *reminderUseCaseImpl) internal(msg string, err error, rawID string) error {
	slog.Error(msg,
		"error", err,
		"reminder_id", rawID,
	)

	return fmt.Errorf("%w: %v", ErrInternalError, err)
}

func (uc *reminderUseCaseImpl) now(t time.Time) time.Time {
	if t.IsZero() {
		t = time.Now()
	}

	return t.In(uc.location)
}

func (uc *reminderUseCaseImpl) armReminder(reminder *domain.Reminder) {
	if err := uc.scheduler.ScheduleReminder(reminder); err != nil {
		slog.Error("failed to schedule reminder alarm",
			"error", err,
			"reminder_id", reminder.ID().String(),
		)
	}
}

func (uc *reminderUseCaseImpl) disarmReminder(id domain.ReminderID) {
	uc.scheduler.CancelReminder(id)
	uc.scheduler.CancelRepeat(id)
}

func (uc *reminderUseCaseImpl) stopRepeating(ctx context.Context, id domain.ReminderID) error {
	uc.scheduler.CancelRepeat(id)

	return uc.snoozes.Clear(ctx, id)
}

func (uc *reminderUseCaseImpl) publishNotify(ctx context.Context, event pubsub.NotifyEvent) {
	if uc.publisher == nil {
		return
	}

	if err := uc.publisher.PublishReminderNotify(ctx, event); err != nil {
		slog.Error("failed to publish reminder notify event",
			"reminder_id", event.ReminderID,
			"error", err.Error(),
		)
	}
}

func parseReminderFields(rawTime, rawSchedule string) (domain.TimeOfDay, domain.Schedule, error) {
	tod, err := domain.ParseTimeOfDay(rawTime)
	if err != nil {
		return domain.TimeOfDay{}, nil, NewValidationError("time_of_day", err.Error())
	}

	schedule, err := domain.ParseSchedule(rawSchedule)
	if err != nil {
		return domain.TimeOfDay{}, nil, NewValidationError("schedule", err.Error())
	}

	return tod, schedule, nil
}

func entityValidationError(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidReminderName):
		return NewValidationError("name", err.Error())
	case errors.Is(err, domain.ErrMalformedSchedule), errors.Is(err, domain.ErrInvalidMonthlySchedule):
		return NewValidationError("schedule", err.Error())
	default:
		return NewValidationError("reminder", err.Error())
	}
}

// laterInterval is what the next "Later" press arms: an explicit request, or
// twice the interval that produced the current notification.
func laterInterval(stored mo.Option[domain.SnoozeInterval], requestedSeconds int) domain.SnoozeInterval {
	if requestedSeconds > 0 {
		return domain.MustSnoozeInterval(requestedSeconds)
	}

	if last, ok := stored.Get(); ok {
		return last.Double()
	}

	return domain.DefaultSnoozeInterval
}

func actionTime(action mo.Option[domain.Action]) mo.Option[time.Time] {
	if a, ok := action.Get(); ok {
		return mo.Some(a.Timestamp())
	}

	return mo.None[time.Time]()
}

func logCorrupt(corrupt []domain.CorruptReminder) {
	for _, c := range corrupt {
		slog.Warn("skipping reminder with unreadable data",
			"reminder_id", c.ID,
			"error", c.Err,
		)
	}
}
