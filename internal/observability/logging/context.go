package logging

import (
	"context"

	"github.com/google/uuid"
)

// Module names the part of the service a log line comes from.
type Module string

const (
	ModuleReminder Module = "reminder"
	ModuleAlarm    Module = "alarm"
)

type contextKey int

const (
	requestIDKey contextKey = iota
	moduleKey
)

// ValidateAndExtractRequestID keeps a well-formed incoming id and replaces
// anything else with a fresh one.
func ValidateAndExtractRequestID(raw string) string {
	if id, err := uuid.Parse(raw); err == nil {
		return id.String()
	}

	return uuid.NewString()
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

func WithModule(ctx context.Context, module Module) context.Context {
	return context.WithValue(ctx, moduleKey, module)
}

func ModuleFromContext(ctx context.Context) Module {
	module, _ := ctx.Value(moduleKey).(Module)

	return module
}
