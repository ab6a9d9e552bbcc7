package models

import "time"

// DefaultConversationTitle is used when a conversation is created
// without an explicit title.
const DefaultConversationTitle = "New Conversation"

// Conversation is an append-only assistant chat thread. UpdatedAt is
// bumped whenever a message is appended.
type Conversation struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"userId"`
	Title     string    `gorm:"size:255;not null;default:'New Conversation'" json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
}
