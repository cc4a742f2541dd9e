package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	signatureTimestampKey = "t"
	signatureSchemeV1     = "v1"
)

var (
	errMissingSignature  = errors.New("missing signature header")
	errMalformedHeader   = errors.New("malformed signature header")
	errTimestampExpired  = errors.New("signature timestamp outside tolerance")
	errSignatureMismatch = errors.New("no matching v1 signature")
)

// SignatureVerifier checks "t=<unix>,v1=<hex>" headers where v1 is HMAC-SHA256(secret, "<t>.<payload>").
type SignatureVerifier struct {
	tolerance time.Duration
	now       func() time.Time
}

func NewSignatureVerifier(tolerance time.Duration) *SignatureVerifier {
	return &SignatureVerifier{
		tolerance: tolerance,
		now:       time.Now,
	}
}

func (v *SignatureVerifier) Verify(payload []byte, header, secret string) error {
	if header == "" {
		return errMissingSignature
	}

	timestamp, signatures, err := parseSignatureHeader(header)
	if err != nil {
		return err
	}

	if v.tolerance > 0 {
		age := v.now().Sub(time.Unix(timestamp, 0))
		if age < 0 {
			age = -age
		}

		if age > v.tolerance {
			return fmt.Errorf("%w: age %s", errTimestampExpired, age.Truncate(time.Second))
		}
	}

	expected := computeSignature(timestamp, payload, secret)

	for _, candidate := range signatures {
		if hmac.Equal(expected, candidate) {
			return nil
		}
	}

	return errSignatureMismatch
}

// Sign produces a header accepted by Verify.
func Sign(payload []byte, secret string, at time.Time) string {
	timestamp := at.Unix()

	return fmt.Sprintf("%s=%d,%s=%s",
		signatureTimestampKey, timestamp,
		signatureSchemeV1, hex.EncodeToString(computeSignature(timestamp, payload, secret)),
	)
}

func parseSignatureHeader(header string) (int64, [][]byte, error) {
	var (
		timestamp  int64
		seenTime   bool
		signatures [][]byte
	)

	for _, part := range strings.Split(header, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}

		switch key {
		case signatureTimestampKey:
			ts, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return 0, nil, fmt.Errorf("%w: invalid timestamp", errMalformedHeader)
			}

			timestamp, seenTime = ts, true
		case signatureSchemeV1:
			sig, err := hex.DecodeString(value)
			if err != nil {
				continue
			}

			signatures = append(signatures, sig)
		}
	}

	if !seenTime {
		return 0, nil, fmt.Errorf("%w: missing timestamp", errMalformedHeader)
	}

	if len(signatures) == 0 {
		return 0, nil, fmt.Errorf("%w: missing v1 signature", errMalformedHeader)
	}

	return timestamp, signatures, nil
}

func computeSignature(timestamp int64, payload []byte, secret string) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte("."))
	mac.Write(payload)

	return mac.Sum(nil)
}
