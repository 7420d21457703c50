package handlers

import (
	"testing"

	"github.com/eduai/eduai_backend/models"
	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from string
		to   string
		want bool
	}{
		{models.SessionUpcoming, models.SessionLive, true},
		{models.SessionUpcoming, models.SessionCompleted, true},
		{models.SessionUpcoming, models.SessionCancelled, true},
		{models.SessionLive, models.SessionCompleted, true},
		{models.SessionLive, models.SessionCancelled, true},
		{models.SessionLive, models.SessionUpcoming, false},
		{models.SessionCompleted, models.SessionLive, false},
		{models.SessionCompleted, models.SessionCancelled, false},
		{models.SessionCancelled, models.SessionUpcoming, false},
		{models.SessionCancelled, models.SessionCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"_to_"+tt.to, func(t *testing.T) {
			assert.Equal(t, tt.want, canTransition(tt.from, tt.to))
		})
	}
}

func TestCreateSessionRequestValidation(t *testing.T) {
	base := CreateSessionRequest{
		TutorID:     "0c2e51a5-4f1e-4d7a-9d28-05f4f1b7a001",
		ScheduledAt: "2026-09-15T10:00:00Z",
	}

	t.Run("valid with defaults", func(t *testing.T) {
		assert.NoError(t, validate.Struct(base))
	})

	t.Run("missing tutor", func(t *testing.T) {
		req := base
		req.TutorID = ""
		assert.Error(t, validate.Struct(req))
	})

	t.Run("missing scheduled time", func(t *testing.T) {
		req := base
		req.ScheduledAt = ""
		assert.Error(t, validate.Struct(req))
	})

	t.Run("duration below the 15 minute floor", func(t *testing.T) {
		req := base
		req.Duration = 10
		assert.Error(t, validate.Struct(req))
	})

	t.Run("duration above the 180 minute ceiling", func(t *testing.T) {
		req := base
		req.Duration = 200
		assert.Error(t, validate.Struct(req))
	})

	t.Run("duration bounds inclusive", func(t *testing.T) {
		req := base
		req.Duration = 15
		assert.NoError(t, validate.Struct(req))
		req.Duration = 180
		assert.NoError(t, validate.Struct(req))
	})
}

func TestUpdateSessionRequestValidation(t *testing.T) {
	base := UpdateSessionRequest{SessionID: "0c2e51a5-4f1e-4d7a-9d28-05f4f1b7a001"}

	t.Run("status optional", func(t *testing.T) {
		assert.NoError(t, validate.Struct(base))
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		req := base
		req.Status = "paused"
		assert.Error(t, validate.Struct(req))
	})

	t.Run("missing session id rejected", func(t *testing.T) {
		req := base
		req.SessionID = ""
		assert.Error(t, validate.Struct(req))
	})
}
