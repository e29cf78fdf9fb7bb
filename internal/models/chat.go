package models

import (
	"time"

	"gorm.io/gorm"
)

// ChatMessage is a direct message between two users. Messages are
// append-only and never mutated; IsRead is stored for future client use but
// no query filters on it.
type ChatMessage struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	SenderID   uint           `gorm:"not null;index" json:"sender_id"`
	Sender     *User          `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	ReceiverID uint           `gorm:"not null;index" json:"receiver_id"`
	Content    string         `gorm:"type:text;not null" json:"content"`
	IsRead     bool           `gorm:"default:false" json:"is_read"`
	CreatedAt  time.Time      `json:"created_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// ConversationMessage is a chat message annotated for a particular viewer.
type ConversationMessage struct {
	ID             uint      `json:"id"`
	Content        string    `json:"content"`
	SenderID       uint      `json:"sender_id"`
	SenderUsername string    `json:"sender_username"`
	IsOwn          bool      `json:"is_own"`
	CreatedAt      time.Time `json:"created_at"`
}
