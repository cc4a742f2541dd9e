package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/architeacher/svc-booking-messaging/internal/infrastructure"
)

// DetachedTasks runs side effects the caller does not wait for. The policy is log-and-drop:
// a failed or timed-out task is logged and counted, never retried and never reported to the
// request that started it.
type DetachedTasks struct {
	// mu orders wg.Add against the closed flag so Shutdown's Wait never races a late Add.
	mu      sync.Mutex
	wg      sync.WaitGroup
	closed  bool
	timeout time.Duration
	logger  infrastructure.Logger
	metrics infrastructure.Metrics
}

func NewDetachedTasks(timeout time.Duration, logger infrastructure.Logger, metrics infrastructure.Metrics) *DetachedTasks {
	return &DetachedTasks{
		timeout: timeout,
		logger:  logger.Component("detached_tasks"),
		metrics: metrics,
	}
}

// Go starts task on a context detached from ctx cancellation but bounded by the task timeout.
// Tasks submitted after Shutdown are dropped.
func (d *DetachedTasks) Go(ctx context.Context, name string, task func(ctx context.Context) error) {
	d.mu.Lock()

	if d.closed {
		d.mu.Unlock()

		d.logger.Warn().Str("task", name).Msg("dropping detached task submitted after shutdown")
		d.metrics.RecordDetachedTask(ctx, name, false)

		return
	}

	d.wg.Add(1)
	d.mu.Unlock()

	go func() {
		defer d.wg.Done()

		taskCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
		defer cancel()

		err := run(taskCtx, task)
		d.metrics.RecordDetachedTask(taskCtx, name, err == nil)

		if err != nil {
			d.logger.Error().Err(err).Str("task", name).Msg("detached task failed")
		}
	}()
}

// Shutdown stops accepting tasks and waits for running ones until ctx expires.
func (d *DetachedTasks) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	done := make(chan struct{})

	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("failed to drain detached tasks: %w", ctx.Err())
	}
}

func run(ctx context.Context, task func(ctx context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("detached task panicked: %v", r)
		}
	}()

	return task(ctx)
}
