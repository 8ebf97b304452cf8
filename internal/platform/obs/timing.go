package obs

import (
	"context"
	"time"

	"shipment-insights-service/internal/logger"
)

type ctxKey string

// RequestIDKey carries the per-request id set by the HTTP middleware.
const RequestIDKey ctxKey = "req_id"

// Time measures one named operation and logs its duration when the returned
// func runs. Pass the address of a named error return to record failures:
//
//	defer obs.Time(ctx, log, "pipeline.process")(&err)
func Time(ctx context.Context, log *logger.Logger, name string) func(errp *error) {
	start := time.Now()

	reqID, _ := ctx.Value(RequestIDKey).(string)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Error("operation failed", "req_id", reqID, "op", name, "dur_ms", dur.Milliseconds(), "err", *errp)
			return
		}
		log.Debug("operation complete", "req_id", reqID, "op", name, "dur_ms", dur.Milliseconds())
	}
}
