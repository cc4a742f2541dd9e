//go:build integration

package queue_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/architeacher/svc-booking-messaging/pkg/queue"
)

const retryDelay = 200 * time.Millisecond

type RabbitMQTestSuite struct {
	suite.Suite

	container testcontainers.Container
	url       string
}

func TestRabbitMQTestSuite(t *testing.T) {
	suite.Run(t, new(RabbitMQTestSuite))
}

func (s *RabbitMQTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "rabbitmq:3.13-alpine",
			ExposedPorts: []string{"5672/tcp"},
			Env: map[string]string{
				"RABBITMQ_DEFAULT_USER": "booking",
				"RABBITMQ_DEFAULT_PASS": "booking",
			},
			WaitingFor: wait.ForLog("Server startup complete").WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	testcontainers.CleanupContainer(s.T(), container)
	s.Require().NoError(err)

	host, err := container.Host(ctx)
	s.Require().NoError(err)

	port, err := container.MappedPort(ctx, "5672/tcp")
	s.Require().NoError(err)

	s.container = container
	s.url = fmt.Sprintf("amqp://booking:booking@%s:%s/", host, port.Port())
}

// setup returns a publisher and consumer sharing one connection, closed when the test ends.
func (s *RabbitMQTestSuite) setup(maxRetries int) (*queue.Publisher, *queue.Consumer) {
	conns := queue.NewConnectionManager(queue.Config{
		URL:            s.url,
		ConnectionName: s.T().Name(),
		Heartbeat:      10 * time.Second,
		ConnectTimeout: 10 * time.Second,
		ReconnectDelay: time.Second,
		PrefetchCount:  1,
	})
	s.T().Cleanup(func() {
		_ = conns.Close()
	})

	registry := queue.DefaultRegistry(retryDelay)

	publisher := queue.NewPublisher(conns, registry)
	s.Require().NoError(publisher.Init(context.Background()))

	consumer := queue.NewConsumer(conns, registry, queue.WithRetryPolicy(queue.RetryPolicy{
		MaxRetries: maxRetries,
	}))

	return publisher, consumer
}

func (s *RabbitMQTestSuite) consume(consumer *queue.Consumer, base string, handler queue.Handler) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		defer close(done)

		_ = consumer.Consume(ctx, base, handler)
	}()

	s.T().Cleanup(func() {
		cancel()
		<-done
	})
}

func (s *RabbitMQTestSuite) TestRetriesThroughTheRetryQueueUntilSuccess() {
	publisher, consumer := s.setup(5)

	attempts := make(chan int, 10)

	s.consume(consumer, queue.ImageProcessingQueue, func(_ context.Context, msg queue.Message) error {
		attempts <- msg.RetryCount

		if msg.RetryCount < 2 {
			return errors.New("image service unavailable")
		}

		return nil
	})

	messageID, err := publisher.Publish(context.Background(), queue.ImageProcessingQueue, map[string]string{
		"imageId":   "img-1",
		"sourceUrl": "https://cdn.example.com/img-1.jpg",
	}, queue.WithMessageID("msg-retry"))
	s.Require().NoError(err)
	s.Equal("msg-retry", messageID)

	for want := range 3 {
		select {
		case got := <-attempts:
			s.Equal(want, got)
		case <-time.After(10 * time.Second):
			s.FailNow("timed out waiting for delivery", "attempt %d", want)
		}
	}

	select {
	case got := <-attempts:
		s.Failf("unexpected redelivery", "retry count %d", got)
	case <-time.After(3 * retryDelay):
	}
}

func (s *RabbitMQTestSuite) TestPermanentFailureIsParkedAndReplayed() {
	publisher, consumer := s.setup(5)

	received := make(chan queue.Message, 10)
	replayed := make(chan struct{})

	s.consume(consumer, queue.HotelSearchSnapshotEventsQueue, func(_ context.Context, msg queue.Message) error {
		received <- msg

		select {
		case <-replayed:
			return nil
		default:
			return queue.Permanent(errors.New("snapshot is missing hotels"))
		}
	})

	_, err := publisher.Publish(context.Background(), queue.HotelSearchSnapshotEventsQueue, map[string]string{
		"snapshotId": "snap-1",
	})
	s.Require().NoError(err)

	select {
	case msg := <-received:
		s.Zero(msg.RetryCount)
	case <-time.After(10 * time.Second):
		s.FailNow("timed out waiting for delivery")
	}

	close(replayed)

	s.Eventually(func() bool {
		count, err := publisher.ReplayDeadLetters(context.Background(), queue.HotelSearchSnapshotEventsQueue, 10)

		return err == nil && count == 1
	}, 10*time.Second, 100*time.Millisecond)

	select {
	case msg := <-received:
		s.Zero(msg.RetryCount)
	case <-time.After(10 * time.Second):
		s.FailNow("timed out waiting for the replayed delivery")
	}
}
