package models

import (
	"time"

	"gorm.io/gorm"
)

// MaxMessageLength bounds the text of a single message.
const MaxMessageLength = 140

// Message is a short text post authored by a user.
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"size:140;not null" json:"text"`
	Timestamp time.Time `gorm:"not null" json:"timestamp"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"-" json:"likes_count"`
}

// BeforeCreate defaults the timestamp to the time of creation.
func (m *Message) BeforeCreate(_ *gorm.DB) error {
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now().UTC()
	}
	return nil
}
