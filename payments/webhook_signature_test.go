package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signBody(body []byte, secret string, at time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.", at.Unix())
	mac.Write(body)
	return fmt.Sprintf("t=%d,v1=%s", at.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func TestVerifyWebhookSignature(t *testing.T) {
	now := time.Now()
	body := []byte(`{"type":"payment_intent.succeeded","data":{"object":{"id":"pi_123"}}}`)
	secret := "whsec_test"

	t.Run("valid signature passes", func(t *testing.T) {
		header := signBody(body, secret, now)
		require.NoError(t, VerifyWebhookSignature(body, header, secret, now))
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		header := signBody(body, "whsec_other", now)
		assert.Error(t, VerifyWebhookSignature(body, header, secret, now))
	})

	t.Run("tampered body rejected", func(t *testing.T) {
		header := signBody(body, secret, now)
		forged := []byte(`{"type":"payment_intent.succeeded","data":{"object":{"id":"pi_999"}}}`)
		assert.Error(t, VerifyWebhookSignature(forged, header, secret, now))
	})

	t.Run("stale timestamp rejected", func(t *testing.T) {
		signedAt := now.Add(-10 * time.Minute)
		header := signBody(body, secret, signedAt)
		assert.Error(t, VerifyWebhookSignature(body, header, secret, now))
	})

	t.Run("future timestamp rejected", func(t *testing.T) {
		signedAt := now.Add(10 * time.Minute)
		header := signBody(body, secret, signedAt)
		assert.Error(t, VerifyWebhookSignature(body, header, secret, now))
	})

	t.Run("missing header rejected", func(t *testing.T) {
		assert.Error(t, VerifyWebhookSignature(body, "", secret, now))
	})

	t.Run("unconfigured secret rejected", func(t *testing.T) {
		header := signBody(body, secret, now)
		assert.Error(t, VerifyWebhookSignature(body, header, "", now))
	})

	t.Run("garbage header rejected", func(t *testing.T) {
		assert.Error(t, VerifyWebhookSignature(body, "not-a-signature", secret, now))
	})

	t.Run("extra v1 entries tolerated", func(t *testing.T) {
		header := signBody(body, secret, now) + ",v1=deadbeef"
		require.NoError(t, VerifyWebhookSignature(body, header, secret, now))
	})
}
