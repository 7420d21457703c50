package models

import (
	"time"

	"github.com/google/uuid"
)

// Enrollment grants a student access to a course's paid content. The unique
// pair index makes the add idempotent under repeated payment callbacks.
type Enrollment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID uuid.UUID `gorm:"not null;uniqueIndex:idx_enrollments_student_course" json:"student_id"`
	CourseID  uuid.UUID `gorm:"not null;uniqueIndex:idx_enrollments_student_course" json:"course_id"`

	Student User   `gorm:"foreignkey:StudentID" json:"-"`
	Course  Course `gorm:"foreignkey:CourseID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
