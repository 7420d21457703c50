package services

import (
	"github.com/eduai/eduai_backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EnrollStudent adds the student to the course's enrollment set and refreshes
// the cached student count. ON CONFLICT DO NOTHING makes the add idempotent,
// so redelivered payment callbacks are safe.
func EnrollStudent(tx *gorm.DB, studentID, courseID uuid.UUID) error {
	enrollment := models.Enrollment{
		StudentID: studentID,
		CourseID:  courseID,
	}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&enrollment).Error; err != nil {
		return err
	}

	var count int64
	if err := tx.Model(&models.Enrollment{}).Where("course_id = ?", courseID).Count(&count).Error; err != nil {
		return err
	}

	return tx.Model(&models.Course{}).Where("id = ?", courseID).
		Update("total_students", count).Error
}

// IsEnrolled is the membership check gating paid lesson content.
func IsEnrolled(db *gorm.DB, studentID, courseID uuid.UUID) bool {
	var count int64
	db.Model(&models.Enrollment{}).
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		Count(&count)
	return count > 0
}
