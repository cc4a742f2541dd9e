package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/architeacher/svc-booking-messaging/internal/infrastructure"
	"github.com/architeacher/svc-booking-messaging/internal/mocks"
)

func TestDetachedTasks_RunsAndRecordsOutcome(t *testing.T) {
	t.Parallel()

	metrics := &mocks.FakeMetrics{}
	tasks := NewDetachedTasks(time.Second, infrastructure.NewTestLogger(), metrics)

	var ran atomic.Int32

	tasks.Go(context.Background(), "ok", func(context.Context) error {
		ran.Add(1)

		return nil
	})
	tasks.Go(context.Background(), "failing", func(context.Context) error {
		ran.Add(1)

		return errors.New("mailer down")
	})
	tasks.Go(context.Background(), "panicking", func(context.Context) error {
		ran.Add(1)

		panic("boom")
	})

	require.NoError(t, tasks.Shutdown(context.Background()))

	assert.Equal(t, int32(3), ran.Load())
	require.Equal(t, 3, metrics.RecordDetachedTaskCallCount())

	outcomes := map[string]bool{}
	for i := range metrics.RecordDetachedTaskCallCount() {
		_, name, success := metrics.RecordDetachedTaskArgsForCall(i)
		outcomes[name] = success
	}

	assert.Equal(t, map[string]bool{"ok": true, "failing": false, "panicking": false}, outcomes)
}

func TestDetachedTasks_SurvivesCallerCancellation(t *testing.T) {
	t.Parallel()

	tasks := NewDetachedTasks(time.Second, infrastructure.NewTestLogger(), &mocks.FakeMetrics{})

	ctx, cancel := context.WithCancel(context.Background())

	started := make(chan struct{})
	result := make(chan error, 1)

	tasks.Go(ctx, "notify", func(taskCtx context.Context) error {
		close(started)
		time.Sleep(20 * time.Millisecond)
		result <- taskCtx.Err()

		return nil
	})

	<-started
	cancel()

	require.NoError(t, tasks.Shutdown(context.Background()))
	assert.NoError(t, <-result)
}

func TestDetachedTasks_TimeoutBoundsTask(t *testing.T) {
	t.Parallel()

	metrics := &mocks.FakeMetrics{}
	tasks := NewDetachedTasks(10*time.Millisecond, infrastructure.NewTestLogger(), metrics)

	tasks.Go(context.Background(), "slow", func(ctx context.Context) error {
		<-ctx.Done()

		return ctx.Err()
	})

	require.NoError(t, tasks.Shutdown(context.Background()))

	_, _, success := metrics.RecordDetachedTaskArgsForCall(0)
	assert.False(t, success)
}

func TestDetachedTasks_DropsAfterShutdown(t *testing.T) {
	t.Parallel()

	metrics := &mocks.FakeMetrics{}
	tasks := NewDetachedTasks(time.Second, infrastructure.NewTestLogger(), metrics)

	require.NoError(t, tasks.Shutdown(context.Background()))

	var ran atomic.Bool
	tasks.Go(context.Background(), "late", func(context.Context) error {
		ran.Store(true)

		return nil
	})

	assert.False(t, ran.Load())
	require.Equal(t, 1, metrics.RecordDetachedTaskCallCount())

	_, name, success := metrics.RecordDetachedTaskArgsForCall(0)
	assert.Equal(t, "late", name)
	assert.False(t, success)
}

func TestDetachedTasks_ShutdownHonoursDeadline(t *testing.T) {
	t.Parallel()

	tasks := NewDetachedTasks(time.Second, infrastructure.NewTestLogger(), &mocks.FakeMetrics{})

	release := make(chan struct{})
	defer close(release)

	tasks.Go(context.Background(), "stuck", func(context.Context) error {
		<-release

		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := tasks.Shutdown(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDetachedTasks_ConcurrentSubmitAndShutdown(t *testing.T) {
	t.Parallel()

	metrics := &mocks.FakeMetrics{}
	tasks := NewDetachedTasks(time.Second, infrastructure.NewTestLogger(), metrics)

	const submissions = 200

	var (
		ran         atomic.Int32
		submitters  sync.WaitGroup
		ranAtDrain  int32
		shutdownErr error
	)

	start := make(chan struct{})

	for range submissions {
		submitters.Add(1)

		go func() {
			defer submitters.Done()

			<-start

			tasks.Go(context.Background(), "notify", func(context.Context) error {
				ran.Add(1)

				return nil
			})
		}()
	}

	drained := make(chan struct{})

	go func() {
		defer close(drained)

		<-start

		shutdownErr = tasks.Shutdown(context.Background())
		ranAtDrain = ran.Load()
	}()

	close(start)
	submitters.Wait()
	<-drained

	require.NoError(t, shutdownErr)
	assert.Equal(t, ranAtDrain, ran.Load(), "an accepted task outlived Shutdown")

	dropped := 0
	for i := range metrics.RecordDetachedTaskCallCount() {
		if _, _, success := metrics.RecordDetachedTaskArgsForCall(i); !success {
			dropped++
		}
	}

	assert.Equal(t, submissions, int(ran.Load())+dropped)
}
