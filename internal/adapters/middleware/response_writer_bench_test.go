package middleware

import (
	"net/http/httptest"
	"testing"
)

func BenchmarkResponseRecorder_Write(b *testing.B) {
	wrapped := NewResponseRecorder(httptest.NewRecorder())
	data := []byte(`{"message_id":"3f1c2a9e-7d4b-4e2a-9c1f-5b6d7e8f9a0b"}`)

	for b.Loop() {
		_, _ = wrapped.Write(data)
	}
}
