package jobs

import (
	"log"

	"github.com/eduai/eduai_backend/database"
	"github.com/eduai/eduai_backend/models"
	"github.com/eduai/eduai_backend/services"
	"github.com/google/uuid"
)

// ReconcileRatings rescans every reviewed tutor and course and rewrites the
// cached aggregates. This is the retry path for aggregate updates that
// failed after a review insert: the review is the durable fact, this job
// makes the derived fields catch up.
func ReconcileRatings() {
	log.Println("Running job: ReconcileRatings...")

	var tutorIDs []uuid.UUID
	if err := database.DB.Model(&models.Review{}).Distinct("tutor_id").Pluck("tutor_id", &tutorIDs).Error; err != nil {
		log.Printf("Error listing reviewed tutors: %v", err)
		return
	}
	for _, id := range tutorIDs {
		if err := services.RecomputeTutorRating(database.DB, id); err != nil {
			log.Printf("Error reconciling tutor %s rating: %v", id, err)
		}
	}

	var courseIDs []uuid.UUID
	if err := database.DB.Model(&models.Review{}).Distinct("course_id").Pluck("course_id", &courseIDs).Error; err != nil {
		log.Printf("Error listing reviewed courses: %v", err)
		return
	}
	for _, id := range courseIDs {
		if err := services.RecomputeCourseRating(database.DB, id); err != nil {
			log.Printf("Error reconciling course %s rating: %v", id, err)
		}
	}
}
