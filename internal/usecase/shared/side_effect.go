package shared

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"marketplace-orders/internal/pkg/errs"
)

const SideEffectTimeout = 5 * time.Second

// SideEffectResult reports the outcome of a best-effort side effect. Callers may
// inspect it but must not turn it into a request failure.
type SideEffectResult struct {
	Name string
	Err  error
}

func (r SideEffectResult) OK() bool { return r.Err == nil }

// BestEffort runs fn after the primary mutation has committed. fn gets a context
// that survives request cancellation but is bounded by SideEffectTimeout. Errors
// and panics are logged at WARN and returned, never propagated.
func BestEffort(ctx context.Context, logger *slog.Logger, name string, attrs []slog.Attr, fn func(ctx context.Context) error) (res SideEffectResult) {
	res.Name = name

	sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), SideEffectTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			res.Err = errs.Newf("side effect panicked: %v", r)
		}
		if res.Err != nil {
			args := make([]any, 0, len(attrs)+2)
			args = append(args, slog.String("side_effect", name), slog.String("error", res.Err.Error()))
			for _, a := range attrs {
				args = append(args, a)
			}
			logger.WarnContext(ctx, fmt.Sprintf("Side effect %s failed", name), args...)
		}
	}()

	res.Err = fn(sctx)
	return res
}
