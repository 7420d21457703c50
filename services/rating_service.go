package services

import (
	"math"

	"github.com/eduai/eduai_backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Round1 rounds an aggregate rating to one decimal place, the precision
// stored on users and courses.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

type ratingAggregate struct {
	Avg   float64
	Count int64
}

// RecomputeTutorRating rescans every review for the tutor and rewrites the
// cached rating and review count on the user row. A full rescan keeps the
// mean exact regardless of past failures or deletions.
func RecomputeTutorRating(tx *gorm.DB, tutorID uuid.UUID) error {
	var agg ratingAggregate
	err := tx.Model(&models.Review{}).
		Where("tutor_id = ?", tutorID).
		Select("COALESCE(AVG(rating), 0) as avg, COUNT(*) as count").
		Scan(&agg).Error
	if err != nil {
		return err
	}

	return tx.Model(&models.User{}).Where("id = ?", tutorID).Updates(map[string]interface{}{
		"rating":        Round1(agg.Avg),
		"total_reviews": agg.Count,
	}).Error
}

// RecomputeCourseRating does the same rescan for a course.
func RecomputeCourseRating(tx *gorm.DB, courseID uuid.UUID) error {
	var agg ratingAggregate
	err := tx.Model(&models.Review{}).
		Where("course_id = ?", courseID).
		Select("COALESCE(AVG(rating), 0) as avg, COUNT(*) as count").
		Scan(&agg).Error
	if err != nil {
		return err
	}

	return tx.Model(&models.Course{}).Where("id = ?", courseID).
		Update("rating", Round1(agg.Avg)).Error
}
