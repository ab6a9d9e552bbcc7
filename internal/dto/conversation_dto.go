package dto

import "github.com/callshield/callshield-backend/internal/models"

type CreateConversationRequest struct {
	Title string `json:"title"`
}

type ConversationResponse struct {
	Success      bool                `json:"success"`
	Conversation models.Conversation `json:"conversation"`
}

type SendMessageRequest struct {
	Content string `json:"content"`
}

// MessageResponse returns the assistant reply; the user's own message
// is already known to the client.
type MessageResponse struct {
	Success bool           `json:"success"`
	Message models.Message `json:"message"`
}
