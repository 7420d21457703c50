package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
	PaymentRefunded  = "refunded"
)

type Payment struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID   uuid.UUID `gorm:"not null;index" json:"user_id"`
	CourseID uuid.UUID `gorm:"not null;index" json:"course_id"`

	Amount   float64 `gorm:"type:numeric(10,2);not null" json:"amount"`
	Currency string  `gorm:"size:3;not null;default:'usd'" json:"currency"`

	// Charge-intent id from the payment processor.
	ProviderPaymentID string `gorm:"size:255;not null;unique" json:"provider_payment_id"`
	Status            string `gorm:"size:20;not null;default:'pending';index" json:"status"`

	User   User   `gorm:"foreignkey:UserID" json:"-"`
	Course Course `gorm:"foreignkey:CourseID" json:"course"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
