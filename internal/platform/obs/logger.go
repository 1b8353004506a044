package obs

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ctxKey string

const RunIDKey ctxKey = "run_id"

// NewLogger builds the process logger. level is one of debug, info, warn, error.
func NewLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("new logger: parse level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	cfg.Encoding = "console"
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.DisableStacktrace = true

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("new logger: build: %w", err)
	}
	return logger, nil
}

// WithRunID tags ctx with a fresh run id.
func WithRunID(ctx context.Context) (context.Context, string) {
	id := uuid.NewString()
	return context.WithValue(ctx, RunIDKey, id), id
}

// RunID returns the run id carried by ctx, if any.
func RunID(ctx context.Context) string {
	id, _ := ctx.Value(RunIDKey).(string)
	return id
}

// Logger returns the global logger annotated with the run id from ctx.
func Logger(ctx context.Context) *zap.Logger {
	l := zap.L()
	if id := RunID(ctx); id != "" {
		l = l.With(zap.String("run_id", id))
	}
	return l
}
