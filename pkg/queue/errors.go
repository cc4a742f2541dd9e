package queue

import (
	"errors"
	"fmt"
)

var (
	ErrClosed           = errors.New("connection manager is closed")
	ErrNotConnected     = errors.New("not connected to broker")
	ErrPublish          = errors.New("failed to publish message")
	ErrUnknownQueue     = errors.New("unknown queue")
	ErrHandlerTimeout   = errors.New("message handler timed out")
	ErrDeliveriesClosed = errors.New("delivery stream closed")
)

// PublishError wraps the cause of a failed publish. It matches ErrPublish with errors.Is.
type PublishError struct {
	Queue     string
	MessageID string
	Err       error
}

func newPublishError(queue, messageID string, err error) *PublishError {
	return &PublishError{
		Queue:     queue,
		MessageID: messageID,
		Err:       err,
	}
}

func (e *PublishError) Error() string {
	if e.MessageID == "" {
		return fmt.Sprintf("failed to publish message to %q: %v", e.Queue, e.Err)
	}

	return fmt.Sprintf("failed to publish message %q to %q: %v", e.MessageID, e.Queue, e.Err)
}

func (e *PublishError) Unwrap() error {
	return e.Err
}

func (e *PublishError) Is(target error) bool {
	return target == ErrPublish
}

type permanentError struct {
	err error
}

func (e *permanentError) Error() string {
	return e.err.Error()
}

func (e *permanentError) Unwrap() error {
	return e.err
}

// Permanent marks a handler error as non-retryable; the message goes straight to the dead-letter queue.
func Permanent(err error) error {
	if err == nil {
		return nil
	}

	return &permanentError{err: err}
}

// IsPermanent reports whether err was marked with Permanent.
func IsPermanent(err error) bool {
	var target *permanentError

	return errors.As(err, &target)
}
