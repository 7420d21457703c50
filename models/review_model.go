package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is keyed (student, course): the composite unique index is the
// authority for the one-review-per-course rule, concurrent submissions
// included.
type Review struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	StudentID uuid.UUID `gorm:"not null;uniqueIndex:idx_reviews_student_course" json:"student_id"`
	CourseID  uuid.UUID `gorm:"not null;uniqueIndex:idx_reviews_student_course" json:"course_id"`
	TutorID   uuid.UUID `gorm:"not null;index" json:"tutor_id"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `gorm:"size:1000;not null" json:"comment"`

	Student User   `gorm:"foreignkey:StudentID" json:"student"`
	Tutor   User   `gorm:"foreignkey:TutorID" json:"-"`
	Course  Course `gorm:"foreignkey:CourseID" json:"course"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
