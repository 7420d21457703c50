package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	LevelSchool     = "School"
	LevelCollege    = "College"
	LevelUniversity = "University"
)

type Course struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TutorID     uuid.UUID `gorm:"not null;index" json:"tutor_id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Subject     string    `gorm:"size:50;not null;index" json:"subject"`
	Level       string    `gorm:"size:20;not null;index" json:"level"`
	Price       float64   `gorm:"type:numeric(10,2);not null" json:"price"`
	Thumbnail   string    `gorm:"size:255" json:"thumbnail"`
	Syllabus    []string  `gorm:"serializer:json" json:"syllabus"`

	// Rating is derived from reviews (one-decimal mean); TotalStudents is
	// the enrollment count. Both are rewritten by their respective services.
	Rating        float64 `gorm:"type:numeric(2,1);default:0;index" json:"rating"`
	TotalStudents int64   `gorm:"default:0" json:"total_students"`
	IsPublished   bool    `gorm:"default:false" json:"is_published"`

	Tutor   User     `gorm:"foreignkey:TutorID" json:"tutor"`
	Lessons []Lesson `gorm:"foreignkey:CourseID" json:"lessons,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Lesson struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CourseID uuid.UUID `gorm:"not null;index" json:"course_id"`
	Title    string    `gorm:"size:200;not null" json:"title"`
	VideoURL string    `gorm:"size:255" json:"video_url"`
	Duration int       `gorm:"default:0" json:"duration"`
	Order    int       `gorm:"column:lesson_order;not null" json:"order"`
}
