package queue

import (
	"errors"
	"strings"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampPriority(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		priority int
		want     uint8
	}{
		{name: "negative clamps to zero", priority: -5, want: 0},
		{name: "zero", priority: 0, want: 0},
		{name: "default", priority: DefaultPriority, want: 5},
		{name: "maximum", priority: 10, want: 10},
		{name: "above maximum clamps to ten", priority: 99, want: 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, ClampPriority(tc.priority))
		})
	}
}

func TestRetryCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers amqp.Table
		want    int
	}{
		{name: "missing headers", headers: nil, want: 0},
		{name: "missing header", headers: amqp.Table{"other": "x"}, want: 0},
		{name: "int32", headers: amqp.Table{RetryCountHeader: int32(3)}, want: 3},
		{name: "int64", headers: amqp.Table{RetryCountHeader: int64(4)}, want: 4},
		{name: "int", headers: amqp.Table{RetryCountHeader: 2}, want: 2},
		{name: "float64", headers: amqp.Table{RetryCountHeader: float64(1)}, want: 1},
		{name: "numeric string", headers: amqp.Table{RetryCountHeader: "5"}, want: 5},
		{name: "malformed string", headers: amqp.Table{RetryCountHeader: "five"}, want: 0},
		{name: "negative", headers: amqp.Table{RetryCountHeader: int32(-1)}, want: 0},
		{name: "unsupported type", headers: amqp.Table{RetryCountHeader: true}, want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, RetryCount(tc.headers))
		})
	}
}

func TestNewMessage(t *testing.T) {
	t.Parallel()

	publishedAt := time.Date(2026, 3, 14, 9, 26, 53, 589_000_000, time.UTC)

	msg := newMessage(ImageProcessingQueue, amqp.Delivery{
		MessageId:    "m1",
		ContentType:  ContentTypeJSON,
		DeliveryMode: amqp.Persistent,
		Priority:     8,
		Timestamp:    publishedAt.Truncate(time.Second),
		Headers: amqp.Table{
			RetryCountHeader:  int32(2),
			PublishedAtHeader: publishedAt.UnixMilli(),
		},
		Body: []byte(`{"orderId":"o1"}`),
	})

	assert.Equal(t, "m1", msg.ID)
	assert.Equal(t, ImageProcessingQueue, msg.Queue)
	assert.Equal(t, uint8(8), msg.Priority)
	assert.True(t, msg.Persistent)
	assert.Equal(t, 2, msg.RetryCount)
	assert.True(t, publishedAt.Equal(msg.Timestamp), "millisecond timestamp should win over the envelope timestamp")
}

func TestMessage_Unmarshal(t *testing.T) {
	t.Parallel()

	msg := Message{Body: []byte(`{"orderId":"o1"}`)}

	var payload struct {
		OrderID string `json:"orderId"`
	}

	require.NoError(t, msg.Unmarshal(&payload))
	assert.Equal(t, "o1", payload.OrderID)

	assert.Error(t, msg.Unmarshal(payload))
	assert.Error(t, Message{Body: []byte("not json")}.Unmarshal(&payload))
}

func TestRepublishing(t *testing.T) {
	t.Parallel()

	stamp := time.Now().Truncate(time.Millisecond)
	msg := Message{
		ID:        "m1",
		Body:      []byte(`{}`),
		Priority:  8,
		Timestamp: stamp,
	}

	p := republishing(msg, amqp.Table{RetryCountHeader: int32(1)})

	assert.Equal(t, "m1", p.MessageId)
	assert.Equal(t, uint8(8), p.Priority)
	assert.Equal(t, amqp.Persistent, p.DeliveryMode)
	assert.Equal(t, ContentTypeJSON, p.ContentType)
	assert.Equal(t, stamp, p.Timestamp)
	assert.Equal(t, int32(1), p.Headers[RetryCountHeader])
}

func TestTruncateError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "boom", truncateError(errors.New("boom")))

	long := truncateError(errors.New(strings.Repeat("x", 4096)))
	assert.Len(t, long, maxErrorHeaderLength)
}

func TestCopyHeaders(t *testing.T) {
	t.Parallel()

	original := amqp.Table{"a": 1}
	copied := copyHeaders(original)
	copied["b"] = 2

	assert.NotContains(t, original, "b")
	assert.NotNil(t, copyHeaders(nil))
}
