package metrics_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/KasumiMercury/primind-remind-again/internal/observability/metrics"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	found := make(map[string]metricdata.Metrics)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			found[m.Name] = m
		}
	}

	return found
}

func sumOf(t *testing.T, m metricdata.Metrics) int64 {
	t.Helper()

	sum, ok := m.Data.(metricdata.Sum[int64])
	require.True(t, ok)

	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}

	return total
}

func TestHTTPMetricsRecord(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	m, err := metrics.NewHTTPMetrics(mp.Meter("test"))
	require.NoError(t, err)

	ctx := context.Background()
	m.Record(ctx, "GET", "/api/v1/reminders/:id", 200, 15*time.Millisecond)
	m.Record(ctx, "GET", "/api/v1/reminders/:id", 404, 5*time.Millisecond)

	found := collect(t, reader)

	require.Contains(t, found, "http.server.request.count")
	assert.Equal(t, int64(2), sumOf(t, found["http.server.request.count"]))

	hist, ok := found["http.server.request.duration"].Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	assert.Len(t, hist.DataPoints, 2)
}

func TestAlarmMetricsRecord(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	m, err := metrics.NewAlarmMetrics(mp.Meter("test"))
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordTrigger(ctx, false, metrics.TriggerOutcomeNotified)
	m.RecordTrigger(ctx, true, metrics.TriggerOutcomeNotified)
	m.RecordTrigger(ctx, true, metrics.TriggerOutcomeFailed)
	m.RecordSync(ctx, true)

	found := collect(t, reader)

	triggers, ok := found["reminder.alarm.trigger.count"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	assert.Len(t, triggers.DataPoints, 3)
	assert.Equal(t, int64(1), sumOf(t, found["reminder.alarm.sync.count"]))
}
