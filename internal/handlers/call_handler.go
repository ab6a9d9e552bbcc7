package handlers

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/callshield/callshield-backend/internal/dto"
	"github.com/callshield/callshield-backend/internal/middleware"
	"github.com/callshield/callshield-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type CallHandler struct {
	callService *services.CallService
}

func NewCallHandler(callService *services.CallService) *CallHandler {
	return &CallHandler{callService: callService}
}

// List handles GET /api/calls - call summaries, newest first.
func (h *CallHandler) List(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}

	calls, err := h.callService.List(user.ID)
	if err != nil {
		slog.Error("failed to fetch calls", "action", "calls.list", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch calls",
		})
	}
	return c.JSON(calls)
}

// Get handles GET /api/calls/:id - the full record or 404.
func (h *CallHandler) Get(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}

	callID, err := c.ParamsInt("id")
	if err != nil || callID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid call id",
		})
	}

	call, err := h.callService.Get(user.ID, uint(callID))
	if err != nil {
		if errors.Is(err, services.ErrCallNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Call not found",
			})
		}
		slog.Error("failed to fetch call", "action", "calls.get", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch call",
		})
	}
	return c.JSON(call)
}

// Simulate handles POST /api/calls/simulate - runs the screening
// workflow for a simulated inbound call.
func (h *CallHandler) Simulate(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}

	var req dto.SimulateCallRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if strings.TrimSpace(req.PhoneNumber) == "" || req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "phoneNumber and message are required",
		})
	}

	call, err := h.callService.Simulate(user.ID, &req)
	if err != nil {
		slog.Error("failed to simulate call", "action", "calls.simulate", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to simulate call",
		})
	}

	return c.JSON(dto.SimulateCallResponse{
		Success:    true,
		CallID:     call.ID,
		RiskScore:  call.RiskScore,
		Category:   call.Category,
		AIResponse: *call.AIResponse,
		Blocked:    call.Blocked,
	})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Authentication required",
	})
}
