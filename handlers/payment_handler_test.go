package handlers

import (
	"testing"

	"github.com/eduai/eduai_backend/models"
	"github.com/stretchr/testify/assert"
)

func TestEnrollsWithoutCharge(t *testing.T) {
	assert.True(t, enrollsWithoutCharge(0))
	assert.False(t, enrollsWithoutCharge(0.01))
	assert.False(t, enrollsWithoutCharge(49.99))
}

func TestWebhookOutcome(t *testing.T) {
	tests := []struct {
		name          string
		paymentStatus string
		eventType     string
		want          string
	}{
		{"pending success completes", models.PaymentPending, "payment_intent.succeeded", webhookComplete},
		{"pending failure marks failed", models.PaymentPending, "payment_intent.payment_failed", webhookFail},
		{"redelivered success is acked", models.PaymentCompleted, "payment_intent.succeeded", webhookAck},
		{"failure after completion is acked", models.PaymentCompleted, "payment_intent.payment_failed", webhookAck},
		{"unknown event ignored", models.PaymentPending, "payment_intent.created", webhookIgnore},
		{"success after failure retries completion", models.PaymentFailed, "payment_intent.succeeded", webhookComplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, webhookOutcome(tt.paymentStatus, tt.eventType))
		})
	}
}
