package infrastructure

import (
	"fmt"

	"go.opentelemetry.io/otel/attribute"
)

const (
	httpMethodKey     = "http.method"
	httpPathKey       = "http.path"
	httpStatusCodeKey = "http.status_code"
	statusKey         = "status"
	errorTypeKey      = "error.type"
	priorityKey       = "messaging.priority"
	queueKey          = "messaging.destination"
	outcomeKey        = "messaging.outcome"
	providerKey       = "webhook.provider"
	eventTypeKey      = "webhook.event_type"
	collaboratorKey   = "collaborator"
	useCaseKindKey    = "use_case.kind"
	useCaseNameKey    = "use_case.name"
)

func HTTPMethodAttr(method string) attribute.KeyValue {
	return attribute.String(httpMethodKey, method)
}

func HTTPPathAttr(path string) attribute.KeyValue {
	return attribute.String(httpPathKey, path)
}

func HTTPStatusCodeAttr(code int) attribute.KeyValue {
	return attribute.String(httpStatusCodeKey, fmt.Sprintf("%d", code))
}

func StatusAttr(status string) attribute.KeyValue {
	return attribute.String(statusKey, status)
}

func ErrorTypeAttr(errorType string) attribute.KeyValue {
	return attribute.String(errorTypeKey, errorType)
}

func PriorityAttr(priority uint8) attribute.KeyValue {
	return attribute.Int(priorityKey, int(priority))
}

func QueueAttr(queue string) attribute.KeyValue {
	return attribute.String(queueKey, queue)
}

func OutcomeAttr(outcome string) attribute.KeyValue {
	return attribute.String(outcomeKey, outcome)
}

func ProviderAttr(provider string) attribute.KeyValue {
	return attribute.String(providerKey, provider)
}

func EventTypeAttr(eventType string) attribute.KeyValue {
	return attribute.String(eventTypeKey, eventType)
}

func CollaboratorAttr(name string) attribute.KeyValue {
	return attribute.String(collaboratorKey, name)
}

func UseCaseKindAttr(kind string) attribute.KeyValue {
	return attribute.String(useCaseKindKey, kind)
}

func UseCaseNameAttr(name string) attribute.KeyValue {
	return attribute.String(useCaseNameKey, name)
}
