package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name     string    `gorm:"size:100;not null" json:"name"`
	Email    string    `gorm:"size:255;not null;unique" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"size:20;not null;default:'student'" json:"role"`

	Avatar string `gorm:"size:255" json:"avatar"`
	Phone  string `gorm:"size:30" json:"phone"`
	Bio    string `gorm:"type:text" json:"bio"`

	// Tutor profile. Rating and TotalReviews are derived from reviews and
	// rewritten by the aggregation step, never edited directly.
	Subjects     []string `gorm:"serializer:json" json:"subjects"`
	HourlyRate   float64  `gorm:"type:numeric(10,2);default:0" json:"hourly_rate"`
	Rating       float64  `gorm:"type:numeric(2,1);default:0" json:"rating"`
	TotalReviews int64    `gorm:"default:0" json:"total_reviews"`
	Earnings     float64  `gorm:"type:numeric(10,2);default:0" json:"earnings"`
	IsVerified   bool     `gorm:"default:false" json:"is_verified"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
