package models

import "time"

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message belongs to exactly one conversation. Messages are created in
// pairs: the user's message followed by one assistant reply.
type Message struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	ConversationID uint         `gorm:"not null;index" json:"conversationId"`
	Role           string       `gorm:"size:20;not null" json:"role"`
	Content        string       `gorm:"type:text;not null" json:"content"`
	Timestamp      time.Time    `gorm:"not null;index" json:"timestamp"`
	Conversation   Conversation `gorm:"foreignKey:ConversationID" json:"-"`
}
