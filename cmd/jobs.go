package main

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/KasumiMercury/primind-remind-again/internal/app"
	"github.com/KasumiMercury/primind-remind-again/internal/domain"
	"github.com/KasumiMercury/primind-remind-again/internal/infra/alarm"
	"github.com/KasumiMercury/primind-remind-again/internal/observability/logging"
	"github.com/KasumiMercury/primind-remind-again/internal/observability/metrics"
)

const jobTracerName = "remind-again/alarm"

// newTriggerFunc routes fired alarms into the use case. Main alarms pass a
// zero interval, which the use case reads as the default.
func newTriggerFunc(useCase app.ReminderUseCase, m *metrics.AlarmMetrics) alarm.TriggerFunc {
	return func(ctx context.Context, id domain.ReminderID, isRepeat bool, interval domain.SnoozeInterval) {
		ctx = logging.WithModule(ctx, logging.ModuleAlarm)

		ctx, span := otel.Tracer(jobTracerName).Start(ctx, "alarm.trigger")
		defer span.End()

		span.SetAttributes(
			attribute.String("reminder.id", id.String()),
			attribute.Bool("alarm.repeat", isRepeat),
		)

		output, err := useCase.HandleTrigger(ctx, app.HandleTriggerInput{
			ID:              id.String(),
			IsRepeat:        isRepeat,
			IntervalSeconds: interval.Seconds(),
		})
		if err != nil {
			m.RecordTrigger(ctx, isRepeat, metrics.TriggerOutcomeFailed)
			slog.ErrorContext(ctx, "alarm trigger failed",
				slog.String("event", "alarm.trigger.fail"),
				slog.String("reminder_id", id.String()),
				slog.Bool("is_repeat", isRepeat),
				slog.String("error", err.Error()),
			)

			return
		}

		m.RecordTrigger(ctx, isRepeat, metrics.TriggerOutcomeNotified)
		slog.InfoContext(ctx, "alarm triggered",
			slog.String("event", "alarm.trigger"),
			slog.String("reminder_id", output.ReminderID),
			slog.Bool("is_repeat", output.IsRepeat),
			slog.Bool("repeat_scheduled", output.RepeatScheduled),
			slog.String("reason", output.Reason),
		)
	}
}

func newResyncJob(useCase app.ReminderUseCase, m *metrics.AlarmMetrics) func(ctx context.Context) {
	return func(ctx context.Context) {
		ctx = logging.WithModule(ctx, logging.ModuleAlarm)

		output, err := useCase.SyncAlarms(ctx)
		m.RecordSync(ctx, err == nil)

		if err != nil {
			slog.ErrorContext(ctx, "alarm resync failed",
				slog.String("event", "alarm.sync.fail"),
				slog.String("error", err.Error()),
			)

			return
		}

		slog.InfoContext(ctx, "alarms resynchronized",
			slog.String("event", "alarm.sync"),
			slog.Int("scheduled", int(output.Scheduled)),
			slog.Int("removed", int(output.Removed)),
			slog.Int("skipped", int(output.Skipped)),
		)
	}
}
