package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	TriggerOutcomeNotified = "notified"
	TriggerOutcomeFailed   = "failed"
)

// AlarmMetrics counts alarm firings by kind and outcome.
type AlarmMetrics struct {
	triggers metric.Int64Counter
	syncs    metric.Int64Counter
}

func NewAlarmMetrics(meter metric.Meter) (*AlarmMetrics, error) {
	triggers, err := meter.Int64Counter("reminder.alarm.trigger.count",
		metric.WithDescription("Number of reminder alarms fired"),
	)
	if err != nil {
		return nil, err
	}

	syncs, err := meter.Int64Counter("reminder.alarm.sync.count",
		metric.WithDescription("Number of alarm resynchronisations"),
	)
	if err != nil {
		return nil, err
	}

	return &AlarmMetrics{triggers: triggers, syncs: syncs}, nil
}

func (m *AlarmMetrics) RecordTrigger(ctx context.Context, isRepeat bool, outcome string) {
	kind := "main"
	if isRepeat {
		kind = "repeat"
	}

	m.triggers.Add(ctx, 1, metric.WithAttributes(
		attribute.String("alarm.kind", kind),
		attribute.String("outcome", outcome),
	))
}

func (m *AlarmMetrics) RecordSync(ctx context.Context, success bool) {
	m.syncs.Add(ctx, 1, metric.WithAttributes(
		attribute.Bool("success", success),
	))
}
