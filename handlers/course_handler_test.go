package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCourseSortOrder(t *testing.T) {
	tests := []struct {
		sort string
		want string
	}{
		{"newest", "created_at desc"},
		{"popular", "total_students desc"},
		{"rating", "rating desc"},
		{"price-low", "price asc"},
		{"price-high", "price desc"},
		{"", "created_at desc"},
		{"garbage", "created_at desc"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, courseSortOrder(tt.sort), "sort=%q", tt.sort)
	}
}

func TestCreateCourseRequestValidation(t *testing.T) {
	base := CreateCourseRequest{
		Title:       "Calculus Fundamentals",
		Description: "Limits, derivatives and integrals from scratch.",
		Subject:     "Math",
		Level:       "College",
		Price:       1499,
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, validate.Struct(base))
	})

	t.Run("free course allowed", func(t *testing.T) {
		req := base
		req.Price = 0
		assert.NoError(t, validate.Struct(req))
	})

	t.Run("unknown subject rejected", func(t *testing.T) {
		req := base
		req.Subject = "Astrology"
		assert.Error(t, validate.Struct(req))
	})

	t.Run("unknown level rejected", func(t *testing.T) {
		req := base
		req.Level = "Kindergarten"
		assert.Error(t, validate.Struct(req))
	})

	t.Run("negative price rejected", func(t *testing.T) {
		req := base
		req.Price = -5
		assert.Error(t, validate.Struct(req))
	})

	t.Run("lesson titles required", func(t *testing.T) {
		req := base
		req.Lessons = []LessonInput{{Title: "", Order: 1}}
		assert.Error(t, validate.Struct(req))
	})
}
