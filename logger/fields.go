package logger

import (
	"context"

	"go.uber.org/zap"
)

// Standard field names for consistent structured logging across sculpt.
// Use these constants instead of raw strings to ensure consistency.
const (
	FieldComponent = "component"
	FieldOperation = "operation"

	// Inputs and outputs
	FieldInput   = "input"
	FieldOutput  = "output"
	FieldPackage = "package"
	FieldRoot    = "root"

	// Schema shape
	FieldTypes    = "types"
	FieldSites    = "sites"
	FieldBuilders = "builders"
	FieldSite     = "site"
	FieldPath     = "path"

	FieldDurationMS = "duration_ms"
	FieldCount      = "count"
	FieldSize       = "size"
	FieldError      = "error"
	FieldStatus     = "status"
)

type contextKey string

const (
	inputKey     contextKey = "logger_input"
	componentKey contextKey = "logger_component"
)

// WithInput adds the declaration file being processed to the context
func WithInput(ctx context.Context, input string) context.Context {
	return context.WithValue(ctx, inputKey, input)
}

// WithComponent adds a component name to the context for logging
func WithComponent(ctx context.Context, component string) context.Context {
	return context.WithValue(ctx, componentKey, component)
}

// FieldsFromContext extracts logging fields from context.
// Returns key-value pairs suitable for use with Infow/Errorw/etc.
func FieldsFromContext(ctx context.Context) []interface{} {
	var fields []interface{}

	if input, ok := ctx.Value(inputKey).(string); ok && input != "" {
		fields = append(fields, FieldInput, input)
	}
	if component, ok := ctx.Value(componentKey).(string); ok && component != "" {
		fields = append(fields, FieldComponent, component)
	}

	return fields
}

// LoggerFromContext returns a logger with fields extracted from context.
func LoggerFromContext(ctx context.Context) *zap.SugaredLogger {
	fields := FieldsFromContext(ctx)
	if len(fields) == 0 {
		return Logger
	}
	return Logger.With(fields...)
}

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	type Runner struct {
//	    logger *zap.SugaredLogger
//	}
//
//	func NewRunner() *Runner {
//	    return &Runner{logger: logger.ComponentLogger("pipeline")}
//	}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}
