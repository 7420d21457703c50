package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateReviewRequestValidation(t *testing.T) {
	base := CreateReviewRequest{
		TutorID:  "0c2e51a5-4f1e-4d7a-9d28-05f4f1b7a001",
		CourseID: "0c2e51a5-4f1e-4d7a-9d28-05f4f1b7a002",
		Rating:   4,
		Comment:  "Clear explanations, would book again.",
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validate.Struct(base))
	})

	t.Run("rating zero rejected", func(t *testing.T) {
		req := base
		req.Rating = 0
		assert.Error(t, validate.Struct(req))
	})

	t.Run("rating six rejected", func(t *testing.T) {
		req := base
		req.Rating = 6
		assert.Error(t, validate.Struct(req))
	})

	t.Run("empty comment rejected", func(t *testing.T) {
		req := base
		req.Comment = ""
		assert.Error(t, validate.Struct(req))
	})

	t.Run("missing course rejected", func(t *testing.T) {
		req := base
		req.CourseID = ""
		assert.Error(t, validate.Struct(req))
	})

	t.Run("non-uuid tutor rejected", func(t *testing.T) {
		req := base
		req.TutorID = "not-a-uuid"
		assert.Error(t, validate.Struct(req))
	})
}
