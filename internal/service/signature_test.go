package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignatureVerifier_Verify(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	payload := []byte(`{"id":"evt_1","type":"payment_intent.succeeded"}`)
	secret := "whsec_test"

	tests := []struct {
		name    string
		header  string
		wantErr error
	}{
		{
			name:   "valid signature",
			header: Sign(payload, secret, now),
		},
		{
			name:   "valid signature among several",
			header: Sign(payload, secret, now) + ",v1=deadbeef",
		},
		{
			name:   "within tolerance",
			header: Sign(payload, secret, now.Add(-4*time.Minute)),
		},
		{
			name:    "missing header",
			header:  "",
			wantErr: errMissingSignature,
		},
		{
			name:    "wrong secret",
			header:  Sign(payload, "whsec_other", now),
			wantErr: errSignatureMismatch,
		},
		{
			name:    "expired timestamp",
			header:  Sign(payload, secret, now.Add(-10*time.Minute)),
			wantErr: errTimestampExpired,
		},
		{
			name:    "timestamp from the future",
			header:  Sign(payload, secret, now.Add(10*time.Minute)),
			wantErr: errTimestampExpired,
		},
		{
			name:    "missing timestamp",
			header:  "v1=abcdef",
			wantErr: errMalformedHeader,
		},
		{
			name:    "invalid timestamp",
			header:  "t=yesterday,v1=abcdef",
			wantErr: errMalformedHeader,
		},
		{
			name:    "missing v1",
			header:  fmt.Sprintf("t=%d,v0=abcdef", now.Unix()),
			wantErr: errMalformedHeader,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			verifier := NewSignatureVerifier(5 * time.Minute)
			verifier.now = func() time.Time { return now }

			err := verifier.Verify(payload, tt.header, secret)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSignatureVerifier_TamperedPayload(t *testing.T) {
	t.Parallel()

	now := time.Now()
	header := Sign([]byte(`{"amount":100}`), "secret", now)

	verifier := NewSignatureVerifier(time.Minute)

	require.NoError(t, verifier.Verify([]byte(`{"amount":100}`), header, "secret"))
	assert.ErrorIs(t, verifier.Verify([]byte(`{"amount":1}`), header, "secret"), errSignatureMismatch)
}

func TestSignatureVerifier_ZeroToleranceSkipsAgeCheck(t *testing.T) {
	t.Parallel()

	payload := []byte(`{}`)
	header := Sign(payload, "secret", time.Unix(0, 0))

	assert.NoError(t, NewSignatureVerifier(0).Verify(payload, header, "secret"))
}
