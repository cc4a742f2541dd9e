package runtime

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/architeacher/svc-booking-messaging/internal/ports"
)

type SubscriberCtx struct {
	deps *Dependencies

	shutdownChannel chan os.Signal

	backgroundActorCtx      context.Context
	backgroundActorStopFunc context.CancelFunc

	consumers *errgroup.Group
}

func NewSubscriber(opt ...SubscriberOption) *SubscriberCtx {
	if len(opt) != 0 {
		sCtx := SubscriberCtx{}

		for i := range opt {
			opt[i](&sCtx)
		}

		return &sCtx
	}

	return &SubscriberCtx{
		shutdownChannel: make(chan os.Signal, 1),
	}
}

func (c *SubscriberCtx) Run() {
	c.build()
	c.start()
	c.monitorConfigChanges()
	c.shutdownHook()
	c.shutdown()
}

func (c *SubscriberCtx) build() {
	c.backgroundActorCtx, c.backgroundActorStopFunc = context.WithCancel(context.Background())

	deps, err := initializeDependencies(c.backgroundActorCtx, WithSubscriber())
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	c.deps = deps
}

// start runs one consumer per worker. A consumer failing for any reason other than shutdown
// stops the whole subscriber.
func (c *SubscriberCtx) start() {
	group, groupCtx := errgroup.WithContext(c.backgroundActorCtx)
	c.consumers = group

	for _, worker := range []ports.MessageHandler{c.deps.Workers.ImageWorker, c.deps.Workers.SnapshotWorker} {
		group.Go(func() error {
			c.deps.logger.Info().Str("queue", worker.Queue()).Msg("starting consumer")

			err := c.deps.Messaging.Consumer.Consume(groupCtx, worker.Queue(), worker.Handle)
			if err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("consumer of %s stopped: %w", worker.Queue(), err)
			}

			return nil
		})
	}

	go func() {
		if err := group.Wait(); err != nil {
			c.deps.logger.Error().Err(err).Msg("subscriber failed")
		}

		c.backgroundActorStopFunc()
	}()
}

func (c *SubscriberCtx) shutdownHook() {
	signal.Notify(c.shutdownChannel, syscall.SIGINT, syscall.SIGTERM)
}

func (c *SubscriberCtx) monitorConfigChanges() {
	reloadErrors := c.deps.configLoader.WatchConfigSignals(c.backgroundActorCtx)

	go func() {
		for err := range reloadErrors {
			if err != nil {
				c.deps.logger.Error().Err(err).Msg("failed to reload config")
				continue
			}

			c.deps.logger.Info().Msg("config reloaded successfully")
		}

		c.deps.logger.Info().Msg("stopping config monitor")
	}()
}

func (c *SubscriberCtx) shutdown() {
	// Waits for one of the following shutdown conditions to happen.
	select {
	case <-c.backgroundActorCtx.Done():
	case <-c.shutdownChannel:
		defer close(c.shutdownChannel)
	}

	c.deps.logger.Info().Msg("received shutdown signal")

	// Consumers return once their in-flight delivery is settled.
	c.backgroundActorStopFunc()
	_ = c.consumers.Wait()

	c.cleanup()

	c.deps.logger.Info().Msg("subscriber service stopped")
}

func (c *SubscriberCtx) cleanup() {
	c.deps.logger.Info().Msg("cleaning up resources...")

	if err := c.deps.Infra.QueueClient.Close(); err != nil {
		c.deps.logger.Error().Err(err).Msg("failed to close queue connection")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), c.deps.cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if err := c.deps.tracerShutdownFunc(shutdownCtx); err != nil {
		c.deps.logger.Error().Err(err).Msg("failed to flush traces")
	}

	c.deps.logger.Info().Msg("cleanup completed")
}
