package queue

import (
	"slices"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ImageProcessingQueue           = "image.processing"
	HotelSearchSnapshotEventsQueue = "hotel-search-snapshot-events"

	QueueTypeClassic = "classic"
	MaxPriority      = 10

	retrySuffix = ".retry"
	dlqSuffix   = ".dlq"
)

// Role identifies which member of a Topology a queue name refers to.
type Role int

const (
	RoleMain Role = iota
	RoleRetry
	RoleDeadLetter
)

func (r Role) String() string {
	switch r {
	case RoleRetry:
		return "retry"
	case RoleDeadLetter:
		return "dlq"
	default:
		return "main"
	}
}

// Topology is the main/retry/dead-letter triple derived from a base queue name.
type Topology struct {
	Main  string
	Retry string
	DLQ   string
}

// TopologyFor derives the queue triple for base.
func TopologyFor(base string) Topology {
	return Topology{
		Main:  base,
		Retry: base + retrySuffix,
		DLQ:   base + dlqSuffix,
	}
}

// Registry maps logical queue names to their topology. It holds no broker state.
type Registry struct {
	retryDelay time.Duration
	topologies map[string]Topology
}

// NewRegistry builds a registry for the given base names. retryDelay is the TTL of every retry queue.
func NewRegistry(retryDelay time.Duration, bases ...string) *Registry {
	r := &Registry{
		retryDelay: retryDelay,
		topologies: make(map[string]Topology, len(bases)),
	}

	for _, base := range bases {
		r.topologies[base] = TopologyFor(base)
	}

	return r
}

// DefaultRegistry knows the platform's logical queues.
func DefaultRegistry(retryDelay time.Duration) *Registry {
	return NewRegistry(retryDelay, ImageProcessingQueue, HotelSearchSnapshotEventsQueue)
}

// Lookup returns the topology registered for base.
func (r *Registry) Lookup(base string) (Topology, bool) {
	t, ok := r.topologies[base]

	return t, ok
}

// Resolve finds the topology that any main, retry or dead-letter queue name belongs to.
func (r *Registry) Resolve(queue string) (Topology, Role, bool) {
	if t, ok := r.topologies[queue]; ok {
		return t, RoleMain, true
	}

	if base, ok := strings.CutSuffix(queue, retrySuffix); ok {
		if t, ok := r.topologies[base]; ok {
			return t, RoleRetry, true
		}
	}

	if base, ok := strings.CutSuffix(queue, dlqSuffix); ok {
		if t, ok := r.topologies[base]; ok {
			return t, RoleDeadLetter, true
		}
	}

	return Topology{}, RoleMain, false
}

// Bases returns the registered base names in lexical order.
func (r *Registry) Bases() []string {
	bases := make([]string, 0, len(r.topologies))
	for base := range r.topologies {
		bases = append(bases, base)
	}

	slices.Sort(bases)

	return bases
}

// RetryDelay is the time a message spends in a retry queue before redelivery.
func (r *Registry) RetryDelay() time.Duration {
	return r.retryDelay
}

// QueueArguments returns the declare arguments for any queue name. Unregistered queues
// are plain durable classic queues.
func (r *Registry) QueueArguments(queue string) amqp.Table {
	args := amqp.Table{
		"x-queue-type": QueueTypeClassic,
	}

	t, role, ok := r.Resolve(queue)
	if !ok {
		return args
	}

	switch role {
	case RoleMain:
		args["x-max-priority"] = int32(MaxPriority)
	case RoleRetry:
		args["x-message-ttl"] = r.retryDelay.Milliseconds()
		args["x-dead-letter-exchange"] = ""
		args["x-dead-letter-routing-key"] = t.Main
	case RoleDeadLetter:
	}

	return args
}

// Declare declares all three queues of t on ch.
func (r *Registry) Declare(ch *ChannelWrapper, t Topology) error {
	for _, name := range []string{t.Main, t.Retry, t.DLQ} {
		if err := ch.queueDeclare(name, r.QueueArguments(name)); err != nil {
			return err
		}
	}

	return nil
}
