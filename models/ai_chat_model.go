package models

import (
	"time"

	"github.com/google/uuid"
)

type AIMessage struct {
	Role    string    `json:"role"`
	Content string    `json:"content"`
	SentAt  time.Time `json:"sent_at"`
}

// AIChat keeps one running transcript per user and tool type
// (chat, quiz, essay, planner).
type AIChat struct {
	ID       uuid.UUID   `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID   uuid.UUID   `gorm:"not null;uniqueIndex:idx_ai_chats_user_type" json:"user_id"`
	Type     string      `gorm:"size:20;not null;uniqueIndex:idx_ai_chats_user_type" json:"type"`
	Messages []AIMessage `gorm:"serializer:json" json:"messages"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
