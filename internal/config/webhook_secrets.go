package config

import (
	"maps"
	"strings"
	"sync/atomic"
)

// WebhookSecrets holds the provider signing secrets behind an atomic pointer. Readers always see a
// complete map; writers publish a fresh copy instead of mutating the one in use.
type WebhookSecrets struct {
	current atomic.Pointer[map[string]string]
}

// NewWebhookSecrets seeds the source with initial, keyed by lower-cased provider name.
func NewWebhookSecrets(initial map[string]string) *WebhookSecrets {
	s := &WebhookSecrets{}
	s.Replace(initial)

	return s
}

// Lookup returns the signing secret for provider. Empty secrets count as missing.
func (s *WebhookSecrets) Lookup(provider string) (string, bool) {
	if s == nil {
		return "", false
	}

	current := s.current.Load()
	if current == nil {
		return "", false
	}

	secret, ok := (*current)[strings.ToLower(provider)]

	return secret, ok && secret != ""
}

// Replace publishes secrets as the new set, dropping providers it does not name.
func (s *WebhookSecrets) Replace(secrets map[string]string) {
	next := normalizeSecrets(secrets)
	s.current.Store(&next)
}

// Merge publishes the current set overlaid with updates.
func (s *WebhookSecrets) Merge(updates map[string]string) {
	if len(updates) == 0 {
		return
	}

	for {
		prev := s.current.Load()

		next := make(map[string]string)
		if prev != nil {
			maps.Copy(next, *prev)
		}

		maps.Copy(next, normalizeSecrets(updates))

		if s.current.CompareAndSwap(prev, &next) {
			return
		}
	}
}

func normalizeSecrets(secrets map[string]string) map[string]string {
	out := make(map[string]string, len(secrets))
	for provider, secret := range secrets {
		out[strings.ToLower(provider)] = secret
	}

	return out
}
