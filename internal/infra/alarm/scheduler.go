package alarm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/KasumiMercury/primind-remind-again/internal/domain"
)

const defaultJobTimeout = 30 * time.Second

// TriggerFunc is called when a main or repeat alarm fires. interval is the
// interval the alarm was armed with; it is zero for main alarms.
type TriggerFunc func(ctx context.Context, id domain.ReminderID, isRepeat bool, interval domain.SnoozeInterval)

type Option func(*Scheduler)

func WithJobTimeout(d time.Duration) Option {
	return func(s *Scheduler) {
		s.jobTimeout = d
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) {
		s.logger = logger
	}
}

// Scheduler keeps one main cron entry per reminder plus at most one pending
// one-shot repeat entry.
type Scheduler struct {
	cron       *cron.Cron
	location   *time.Location
	logger     *slog.Logger
	jobTimeout time.Duration

	mu      sync.Mutex
	main    map[domain.ReminderID]cron.EntryID
	repeats map[domain.ReminderID]cron.EntryID
	trigger TriggerFunc
}

func NewScheduler(location *time.Location, opts ...Option) *Scheduler {
	if location == nil {
		location = time.Local
	}

	s := &Scheduler{
		location:   location,
		logger:     slog.Default(),
		jobTimeout: defaultJobTimeout,
		main:       make(map[domain.ReminderID]cron.EntryID),
		repeats:    make(map[domain.ReminderID]cron.EntryID),
	}

	for _, opt := range opts {
		opt(s)
	}

	cronLogger := NewSlogLogger(s.logger)
	s.cron = cron.New(
		cron.WithLocation(location),
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger)),
	)

	return s
}

// SetTriggerFunc must be called before Start.
func (s *Scheduler) SetTriggerFunc(fn TriggerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.trigger = fn
}

func (s *Scheduler) ScheduleReminder(reminder *domain.Reminder) error {
	if reminder == nil {
		return errors.New("schedule reminder: nil reminder")
	}

	if _, err := domain.FormatSchedule(reminder.Schedule()); err != nil {
		return fmt.Errorf("schedule reminder %s: %w", reminder.ID(), err)
	}

	id := reminder.ID()
	sched := OccurrenceSchedule{Schedule: reminder.Schedule(), TimeOfDay: reminder.TimeOfDay()}

	s.mu.Lock()
	defer s.mu.Unlock()

	if entryID, ok := s.main[id]; ok {
		s.cron.Remove(entryID)
	}

	s.main[id] = s.cron.Schedule(sched, cron.FuncJob(func() {
		s.fire(id, false, domain.SnoozeInterval{})
	}))

	s.logger.Debug("main alarm scheduled",
		"reminder_id", id.String(),
		"next", sched.Next(time.Now().In(s.location)),
	)

	return nil
}

func (s *Scheduler) CancelReminder(id domain.ReminderID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entryID, ok := s.main[id]; ok {
		s.cron.Remove(entryID)
		delete(s.main, id)

		s.logger.Debug("main alarm cancelled",
			"reminder_id", id.String(),
		)
	}
}

// ScheduleRepeat replaces any pending repeat of the reminder with a one-shot
// alarm interval from now.
func (s *Scheduler) ScheduleRepeat(id domain.ReminderID, interval domain.SnoozeInterval) error {
	if interval.IsZero() {
		return fmt.Errorf("schedule repeat %s: %w", id, domain.ErrInvalidSnoozeInterval)
	}

	fireAt := time.Now().In(s.location).Add(interval.Duration())

	s.mu.Lock()
	defer s.mu.Unlock()

	if entryID, ok := s.repeats[id]; ok {
		s.cron.Remove(entryID)
	}

	var entryID cron.EntryID

	entryID = s.cron.Schedule(OneShotSchedule{At: fireAt}, cron.FuncJob(func() {
		s.mu.Lock()
		if current, ok := s.repeats[id]; ok && current == entryID {
			delete(s.repeats, id)
		}
		s.mu.Unlock()

		s.cron.Remove(entryID)
		s.fire(id, true, interval)
	}))
	s.repeats[id] = entryID

	s.logger.Debug("repeat alarm scheduled",
		"reminder_id", id.String(),
		"fire_at", fireAt,
		"interval_seconds", interval.Seconds(),
	)

	return nil
}

func (s *Scheduler) CancelRepeat(id domain.ReminderID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entryID, ok := s.repeats[id]; ok {
		s.cron.Remove(entryID)
		delete(s.repeats, id)

		s.logger.Debug("repeat alarm cancelled",
			"reminder_id", id.String(),
		)
	}
}

func (s *Scheduler) ScheduledReminders() []domain.ReminderID {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]domain.ReminderID, 0, len(s.main))
	for id := range s.main {
		ids = append(ids, id)
	}

	return ids
}

// HasRepeat reports whether a repeat alarm is pending for the reminder.
func (s *Scheduler) HasRepeat(id domain.ReminderID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.repeats[id]

	return ok
}

// AddPeriodicJob registers fn on a standard cron spec such as "@hourly".
func (s *Scheduler) AddPeriodicJob(spec string, fn func(ctx context.Context)) error {
	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.jobTimeout)
		defer cancel()

		fn(ctx)
	})
	if err != nil {
		return fmt.Errorf("add periodic job %q: %w", spec, err)
	}

	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()

	s.logger.Info("alarm scheduler started",
		"location", s.location.String(),
	)
}

// Stop halts the scheduler and waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()

	select {
	case <-done.Done():
		s.logger.Info("alarm scheduler stopped")

		return nil
	case <-ctx.Done():
		return fmt.Errorf("alarm scheduler stop: %w", ctx.Err())
	}
}

func (s *Scheduler) fire(id domain.ReminderID, isRepeat bool, interval domain.SnoozeInterval) {
	s.mu.Lock()
	trigger := s.trigger
	s.mu.Unlock()

	if trigger == nil {
		s.logger.Warn("alarm fired without trigger handler",
			"reminder_id", id.String(),
			"is_repeat", isRepeat,
		)

		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.jobTimeout)
	defer cancel()

	trigger(ctx, id, isRepeat, interval)
}
