package models

import (
	"time"

	"gorm.io/gorm"
)

// Message is a chat entry between an admin and a student. "Delete for
// everyone" hides the body for both sides but keeps the row.
type Message struct {
	gorm.Model
	SenderID       uint `gorm:"index;not null"`
	RecipientID    uint `gorm:"index;not null"`
	Body           string
	AttachmentURL  string
	AttachmentName string
	AttachmentType string
	IsRead         bool `gorm:"default:false"`
	ReadAt         *time.Time
	IsDeleted      bool `gorm:"default:false"`
}
