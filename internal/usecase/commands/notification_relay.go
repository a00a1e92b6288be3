package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"marketplace-orders/internal/pkg/clock"
	"marketplace-orders/internal/pkg/ptr"
	"marketplace-orders/internal/usecase/shared"
)

// RelayResult counts the outcome of one relay pass.
type RelayResult struct {
	Sent    int
	Retried int
	Failed  int
}

// NotificationRelay republishes events that were parked after a failed publish.
type NotificationRelay interface {
	RunOnce(ctx context.Context) (RelayResult, error)
}

type RelayOptions struct {
	BatchSize   int32
	MaxAttempts int32
	RetryDelay  time.Duration
}

type notificationRelayImpl struct {
	uow      shared.UnitOfWork
	notifier shared.Notifier
	clock    clock.Clock
	logger   *slog.Logger
	opts     RelayOptions
}

func NewNotificationRelay(uow shared.UnitOfWork, notifier shared.Notifier, clk clock.Clock, logger *slog.Logger, opts RelayOptions) NotificationRelay {
	if opts.BatchSize <= 0 {
		opts.BatchSize = 50
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 5
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = time.Minute
	}
	return &notificationRelayImpl{
		uow:      uow,
		notifier: notifier,
		clock:    clk,
		logger:   logger,
		opts:     opts,
	}
}

// RunOnce locks a batch of due jobs and publishes each. Jobs are marked sent,
// rescheduled with a linear delay, or failed after MaxAttempts.
func (r *notificationRelayImpl) RunOnce(ctx context.Context) (RelayResult, error) {
	var res RelayResult
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res = RelayResult{}
		now := r.clock.Now()
		jobs, err := tx.Notifications().PendingJobs(ctx, tx.DB(), now, r.opts.BatchSize)
		if err != nil {
			return err
		}

		for _, job := range jobs {
			status, lastErr, next := r.deliver(ctx, job, now)
			if err := tx.Notifications().MarkJob(ctx, tx.DB(), job.ID, status, lastErr, next); err != nil {
				return err
			}
			switch status {
			case shared.JobSent:
				res.Sent++
			case shared.JobFailed:
				res.Failed++
			default:
				res.Retried++
			}
		}
		return nil
	})
	if err != nil {
		return RelayResult{}, translate(err, "notification job")
	}
	return res, nil
}

func (r *notificationRelayImpl) deliver(ctx context.Context, job shared.NotificationJob, now time.Time) (shared.JobStatus, *string, time.Time) {
	var ev shared.NotificationEvent
	if err := json.Unmarshal(job.Payload, &ev); err != nil {
		r.logger.Warn("dropping undecodable notification job",
			slog.String("job_id", job.ID.String()),
			slog.String("error", err.Error()))
		return shared.JobFailed, ptr.Of(err.Error()), now
	}

	if err := r.notifier.Publish(ctx, ev); err != nil {
		attempts := job.Attempts + 1
		if attempts >= r.opts.MaxAttempts {
			r.logger.Error("notification job exhausted retries",
				slog.String("job_id", job.ID.String()),
				slog.String("routing_key", job.Topic),
				slog.Int("attempts", int(attempts)),
				slog.String("error", err.Error()))
			return shared.JobFailed, ptr.Of(err.Error()), now
		}
		return shared.JobPending, ptr.Of(err.Error()), now.Add(time.Duration(attempts) * r.opts.RetryDelay)
	}
	return shared.JobSent, nil, now
}
