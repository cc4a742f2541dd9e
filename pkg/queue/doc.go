// Package queue provides the RabbitMQ reliability layer used by the booking platform:
// a connection manager with supervised reconnects, a publisher with broker backpressure
// handling, and a retrying consumer that routes failed messages through a delayed retry
// queue before parking them in a dead-letter queue.
//
// # Overview
//
// Every process owns exactly one ConnectionManager. It is constructed once at start-up and
// handed to the Publisher and the Consumer, which acquire named channels from it. The
// manager serialises connection establishment, caches channels by name and invalidates all
// of them whenever the underlying connection drops. A supervisor goroutine reconnects after
// a fixed, configurable delay and closes the channel returned by Ready so dependents can
// resume.
//
// # Topology
//
// Logical queues are described by a base name. The Registry derives the triple
//
//	base        main queue, priorities 0..10
//	base.retry  delay queue, x-message-ttl routes expired messages back to base
//	base.dlq    terminal queue for exhausted or permanent failures
//
// All queues are durable classic queues.
//
// # Basic Usage
//
//	conns := queue.NewConnectionManager(queue.Config{URL: queue.DefaultURL},
//		queue.WithLogger(queue.NewZerologAdapter(logger)),
//	)
//	defer conns.Close()
//
//	registry := queue.DefaultRegistry(queue.DefaultRetryDelay)
//
//	publisher := queue.NewPublisher(conns, registry)
//	if err := publisher.Init(ctx); err != nil {
//		return err
//	}
//
//	id, err := publisher.Publish(ctx, queue.ImageProcessingQueue, payload,
//		queue.WithPriority(8),
//		queue.WithMessageID("m1"),
//	)
//
// Consuming messages:
//
//	consumer := queue.NewConsumer(conns, registry)
//
//	err := consumer.Consume(ctx, queue.ImageProcessingQueue, func(ctx context.Context, msg queue.Message) error {
//		var job ImageJob
//		if err := msg.Unmarshal(&job); err != nil {
//			return queue.Permanent(err)
//		}
//
//		return process(ctx, job)
//	})
//
// Returning nil acknowledges the message. Returning an error sends it to the retry queue
// with an incremented x-retry-count header until the retry policy is exhausted, after which
// it lands in the dead-letter queue with failure metadata.
//
// # Configuration Options
//
//   - WithLogger: Set a custom logger implementation
//   - WithReconnectDelay: Delay between reconnection attempts
//   - WithConnectionTimeout: Dial timeout
//   - WithHeartbeat: Heartbeat interval negotiated with the broker
//   - WithPrefetchCount: Unacknowledged deliveries per channel
//   - WithRetryPolicy: Maximum retries before a message is dead-lettered
//   - WithHandlerTimeout: Treat slow handlers as failures
package queue
