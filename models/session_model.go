package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	SessionUpcoming  = "upcoming"
	SessionLive      = "live"
	SessionCompleted = "completed"
	SessionCancelled = "cancelled"
)

// Session is a booked tutor/student meeting. RoomID routes both participants
// to the same video room and is immutable after creation.
type Session struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	TutorID   uuid.UUID  `gorm:"not null;index" json:"tutor_id"`
	StudentID uuid.UUID  `gorm:"not null;index" json:"student_id"`
	CourseID  *uuid.UUID `json:"course_id"`

	RoomID      string    `gorm:"size:64;not null;unique" json:"room_id"`
	ScheduledAt time.Time `gorm:"not null;index" json:"scheduled_at"`
	Duration    int       `gorm:"not null;default:60" json:"duration"`
	Status      string    `gorm:"size:20;not null;default:'upcoming';index" json:"status"`
	Price       float64   `gorm:"type:numeric(10,2);not null;default:0" json:"price"`
	Notes       string    `gorm:"type:text" json:"notes"`

	Tutor   User    `gorm:"foreignkey:TutorID" json:"tutor"`
	Student User    `gorm:"foreignkey:StudentID" json:"student"`
	Course  *Course `gorm:"foreignkey:CourseID" json:"course,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
