package services

import (
	"errors"
	"time"

	"github.com/callshield/callshield-backend/internal/models"
	"gorm.io/gorm"
)

var ErrConversationNotFound = errors.New("conversation not found")

// assistantReply is the canned assistant answer; a stand-in for a
// real dialogue system.
const assistantReply = "I'm your AI assistant for CallShield. " +
	"How can I help you protect yourself from unwanted calls today?"

// ConversationService manages assistant chat threads and their
// append-only message logs.
type ConversationService struct {
	db *gorm.DB
}

func NewConversationService(db *gorm.DB) *ConversationService {
	return &ConversationService{db: db}
}

// List returns the caller's conversations, most recently active first.
func (s *ConversationService) List(userID uint) ([]models.Conversation, error) {
	conversations := make([]models.Conversation, 0)
	err := s.db.Where("user_id = ?", userID).
		Order("updated_at DESC, id DESC").
		Find(&conversations).Error
	if err != nil {
		return nil, err
	}
	return conversations, nil
}

func (s *ConversationService) Create(userID uint, title string) (*models.Conversation, error) {
	if title == "" {
		title = models.DefaultConversationTitle
	}
	conversation := models.Conversation{
		UserID: userID,
		Title:  title,
	}
	if err := s.db.Create(&conversation).Error; err != nil {
		return nil, err
	}
	return &conversation, nil
}

// ListMessages returns a conversation's messages in timestamp order.
// The conversation must exist and belong to the caller.
func (s *ConversationService) ListMessages(userID uint, conversationID uint) ([]models.Message, error) {
	if _, err := s.find(userID, conversationID); err != nil {
		return nil, err
	}

	messages := make([]models.Message, 0)
	err := s.db.Where("conversation_id = ?", conversationID).
		Order("timestamp ASC, id ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// SendMessage appends the user's message, then the fixed assistant
// reply, and bumps the conversation's updated_at. The assistant row is
// returned.
func (s *ConversationService) SendMessage(userID uint, conversationID uint, content string) (*models.Message, error) {
	if _, err := s.find(userID, conversationID); err != nil {
		return nil, err
	}

	now := time.Now()
	userMessage := models.Message{
		ConversationID: conversationID,
		Role:           models.RoleUser,
		Content:        content,
		Timestamp:      now,
	}
	if err := s.db.Create(&userMessage).Error; err != nil {
		return nil, err
	}

	reply := models.Message{
		ConversationID: conversationID,
		Role:           models.RoleAssistant,
		Content:        assistantReply,
		Timestamp:      now.Add(time.Millisecond),
	}
	if err := s.db.Create(&reply).Error; err != nil {
		return nil, err
	}

	err := s.db.Model(&models.Conversation{}).
		Where("id = ?", conversationID).
		Update("updated_at", time.Now()).Error
	if err != nil {
		return nil, err
	}

	return &reply, nil
}

func (s *ConversationService) find(userID uint, conversationID uint) (*models.Conversation, error) {
	var conversation models.Conversation
	err := s.db.Where("id = ? AND user_id = ?", conversationID, userID).First(&conversation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrConversationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &conversation, nil
}
