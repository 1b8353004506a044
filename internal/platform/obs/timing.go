package obs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Time logs the duration of an operation. Use as:
//
//	defer obs.Time(ctx, "op.name")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()
	log := Logger(ctx)

	return func(errp *error) {
		fields := []zap.Field{
			zap.String("op", name),
			zap.Int64("dur_ms", time.Since(start).Milliseconds()),
		}

		if errp != nil && *errp != nil {
			log.Warn("operation failed", append(fields, zap.Error(*errp))...)
			return
		}
		log.Debug("operation finished", fields...)
	}
}
