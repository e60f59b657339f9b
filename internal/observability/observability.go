// Package observability wires logging, tracing and metrics for the service.
package observability

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel"

	"github.com/KasumiMercury/primind-remind-again/internal/observability/logging"
	"github.com/KasumiMercury/primind-remind-again/internal/observability/metrics"
	"github.com/KasumiMercury/primind-remind-again/internal/observability/tracing"
)

type Config struct {
	ServiceInfo   logging.ServiceInfo
	Environment   logging.Environment
	LogLevel      slog.Level
	GCPProjectID  string
	SamplingRate  float64
	DefaultModule logging.Module
	// LogOutput defaults to stdout.
	LogOutput io.Writer
}

type Resources struct {
	Logger       *slog.Logger
	HTTPMetrics  *metrics.HTTPMetrics
	AlarmMetrics *metrics.AlarmMetrics

	tracer *tracing.Provider
	meter  *metrics.Provider
}

// Init installs the logger, tracer provider, meter provider and propagator as
// process-wide defaults.
func Init(ctx context.Context, cfg Config) (*Resources, error) {
	out := cfg.LogOutput
	if out == nil {
		out = os.Stdout
	}

	logger := logging.NewLogger(out, logging.Config{
		Service:       cfg.ServiceInfo,
		Environment:   cfg.Environment,
		Level:         cfg.LogLevel,
		GCPProjectID:  cfg.GCPProjectID,
		DefaultModule: cfg.DefaultModule,
	})
	slog.SetDefault(logger)

	tp, err := tracing.NewProvider(ctx, tracing.Config{
		ServiceName:    cfg.ServiceInfo.Name,
		ServiceVersion: cfg.ServiceInfo.Version,
		Environment:    string(cfg.Environment),
		SamplingRate:   cfg.SamplingRate,
	})
	if err != nil {
		return nil, err
	}

	otel.SetTracerProvider(tp.TracerProvider())
	otel.SetTextMapPropagator(tracing.NewPropagator())

	mp, err := metrics.NewProvider(ctx, metrics.Config{
		ServiceName:    cfg.ServiceInfo.Name,
		ServiceVersion: cfg.ServiceInfo.Version,
		Environment:    string(cfg.Environment),
	})
	if err != nil {
		return nil, errors.Join(err, tp.Shutdown(ctx))
	}

	otel.SetMeterProvider(mp.MeterProvider())

	httpMetrics, err := metrics.NewHTTPMetrics(mp.Meter())
	if err != nil {
		return nil, errors.Join(err, mp.Shutdown(ctx), tp.Shutdown(ctx))
	}

	alarmMetrics, err := metrics.NewAlarmMetrics(mp.Meter())
	if err != nil {
		return nil, errors.Join(err, mp.Shutdown(ctx), tp.Shutdown(ctx))
	}

	return &Resources{
		Logger:       logger,
		HTTPMetrics:  httpMetrics,
		AlarmMetrics: alarmMetrics,
		tracer:       tp,
		meter:        mp,
	}, nil
}

// Shutdown flushes pending spans and metrics.
func (r *Resources) Shutdown(ctx context.Context) error {
	return errors.Join(r.meter.Shutdown(ctx), r.tracer.Shutdown(ctx))
}
