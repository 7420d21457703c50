package payments

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

// signatureTolerance bounds how old a signed webhook may be before it is
// treated as a replay.
const signatureTolerance = 5 * time.Minute

// VerifyWebhookSignature checks a Stripe-Signature header ("t=<unix>,v1=<hex>")
// against the raw request body. The expected value is the HMAC-SHA256 of
// "<t>.<body>" keyed with the webhook signing secret. Any v1 entry in the
// header may match; the timestamp must fall within the replay tolerance.
func VerifyWebhookSignature(body []byte, header, secret string, now time.Time) error {
	if secret == "" {
		return errors.New("STRIPE_WEBHOOK_SECRET is not set in .env")
	}
	if header == "" {
		return errors.New("missing Stripe-Signature header")
	}

	var timestamp int64
	var signatures [][]byte
	for _, part := range strings.Split(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		switch key {
		case "t":
			ts, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return errors.New("malformed signature timestamp")
			}
			timestamp = ts
		case "v1":
			sig, err := hex.DecodeString(value)
			if err == nil {
				signatures = append(signatures, sig)
			}
		}
	}
	if timestamp == 0 || len(signatures) == 0 {
		return errors.New("malformed Stripe-Signature header")
	}

	if age := now.Sub(time.Unix(timestamp, 0)); age > signatureTolerance || age < -signatureTolerance {
		return errors.New("signature timestamp outside tolerance")
	}

	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.", timestamp)
	mac.Write(body)
	expected := mac.Sum(nil)

	for _, sig := range signatures {
		if hmac.Equal(expected, sig) {
			return nil
		}
	}
	return errors.New("signature does not match payload")
}
