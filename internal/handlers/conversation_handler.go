package handlers

import (
	"errors"
	"log/slog"

	"github.com/callshield/callshield-backend/internal/dto"
	"github.com/callshield/callshield-backend/internal/middleware"
	"github.com/callshield/callshield-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ConversationHandler struct {
	conversationService *services.ConversationService
}

func NewConversationHandler(conversationService *services.ConversationService) *ConversationHandler {
	return &ConversationHandler{conversationService: conversationService}
}

// List handles GET /api/conversations, most recently active first.
func (h *ConversationHandler) List(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}

	conversations, err := h.conversationService.List(user.ID)
	if err != nil {
		slog.Error("failed to fetch conversations", "action", "conversations.list", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch conversations",
		})
	}
	return c.JSON(conversations)
}

// Create handles POST /api/conversations.
func (h *ConversationHandler) Create(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}

	var req dto.CreateConversationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	conversation, err := h.conversationService.Create(user.ID, req.Title)
	if err != nil {
		slog.Error("failed to create conversation", "action", "conversations.create", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create conversation",
		})
	}

	return c.JSON(dto.ConversationResponse{Success: true, Conversation: *conversation})
}

// ListMessages handles GET /api/conversations/:id/messages in
// timestamp order; 404 unless the caller owns the conversation.
func (h *ConversationHandler) ListMessages(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}

	conversationID, err := c.ParamsInt("id")
	if err != nil || conversationID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid conversation id",
		})
	}

	messages, err := h.conversationService.ListMessages(user.ID, uint(conversationID))
	if err != nil {
		if errors.Is(err, services.ErrConversationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Conversation not found",
			})
		}
		slog.Error("failed to fetch messages", "action", "conversations.messages", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch messages",
		})
	}
	return c.JSON(messages)
}

// SendMessage handles POST /api/conversations/:id/messages: appends
// the user's message plus one assistant reply and returns the reply.
func (h *ConversationHandler) SendMessage(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}

	conversationID, err := c.ParamsInt("id")
	if err != nil || conversationID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid conversation id",
		})
	}

	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if req.Content == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "content is required",
		})
	}

	reply, err := h.conversationService.SendMessage(user.ID, uint(conversationID), req.Content)
	if err != nil {
		if errors.Is(err, services.ErrConversationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Conversation not found",
			})
		}
		slog.Error("failed to send message", "action", "conversations.send", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to send message",
		})
	}

	return c.JSON(dto.MessageResponse{Success: true, Message: *reply})
}
