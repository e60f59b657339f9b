package logging

import (
	"context"
	"io"
	"log/slog"
)

type Environment string

const (
	EnvDev  Environment = "dev"
	EnvProd Environment = "prod"
)

type ServiceInfo struct {
	Name     string
	Version  string
	Revision string
}

type Config struct {
	Service       ServiceInfo
	Environment   Environment
	Level         slog.Level
	GCPProjectID  string
	DefaultModule Module
}

// NewLogger returns a JSON logger that adds service, request and trace
// attributes to every record.
func NewLogger(w io.Writer, cfg Config) *slog.Logger {
	base := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       cfg.Level,
		ReplaceAttr: replaceAttr,
	})

	attrs := []slog.Attr{
		slog.String("service.name", cfg.Service.Name),
		slog.String("env", string(cfg.Environment)),
	}
	if cfg.Service.Version != "" {
		attrs = append(attrs, slog.String("service.version", cfg.Service.Version))
	}

	if cfg.Service.Revision != "" {
		attrs = append(attrs, slog.String("service.revision", cfg.Service.Revision))
	}

	return slog.New(&ContextHandler{
		Handler:       base.WithAttrs(attrs),
		projectID:     cfg.GCPProjectID,
		defaultModule: cfg.DefaultModule,
	})
}

// ContextHandler copies request id, module and trace ids from the context
// into each record.
type ContextHandler struct {
	slog.Handler
	projectID     string
	defaultModule Module
}

func (h *ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if ctx != nil {
		if id := RequestIDFromContext(ctx); id != "" {
			r.AddAttrs(slog.String("request_id", id))
		}

		module := ModuleFromContext(ctx)
		if module == "" {
			module = h.defaultModule
		}

		if module != "" {
			r.AddAttrs(slog.String("module", string(module)))
		}

		r.AddAttrs(traceAttrs(ctx, h.projectID)...)
	}

	return h.Handler.Handle(ctx, r)
}

func (h *ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ContextHandler{
		Handler:       h.Handler.WithAttrs(attrs),
		projectID:     h.projectID,
		defaultModule: h.defaultModule,
	}
}

func (h *ContextHandler) WithGroup(name string) slog.Handler {
	return &ContextHandler{
		Handler:       h.Handler.WithGroup(name),
		projectID:     h.projectID,
		defaultModule: h.defaultModule,
	}
}

// ParseLevel maps the LOG_LEVEL values to slog levels; unknown values mean info.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
