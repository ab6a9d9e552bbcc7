package handlers

import (
	"log/slog"
	"strings"

	"github.com/callshield/callshield-backend/internal/dto"
	"github.com/callshield/callshield-backend/internal/middleware"
	"github.com/callshield/callshield-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type RuleHandler struct {
	ruleService *services.RuleService
}

func NewRuleHandler(ruleService *services.RuleService) *RuleHandler {
	return &RuleHandler{ruleService: ruleService}
}

// List handles GET /api/blocked-rules.
func (h *RuleHandler) List(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}

	rules, err := h.ruleService.List(user.ID)
	if err != nil {
		slog.Error("failed to fetch blocked rules", "action", "rules.list", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch blocked rules",
		})
	}
	return c.JSON(rules)
}

// Create handles POST /api/blocked-rules.
func (h *RuleHandler) Create(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}

	var req dto.CreateRuleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if strings.TrimSpace(req.PhoneNumber) == "" || strings.TrimSpace(req.RuleName) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "phoneNumber and ruleName are required",
		})
	}

	rule, err := h.ruleService.Create(user.ID, &req)
	if err != nil {
		slog.Error("failed to add blocked rule", "action", "rules.create", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to add blocked rule",
		})
	}

	return c.JSON(dto.RuleResponse{Success: true, Rule: *rule})
}

// Delete handles DELETE /api/blocked-rules/:id. The delete is
// ownership-filtered; a non-owned or missing id is a silent no-op
// that still reports success.
func (h *RuleHandler) Delete(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}

	ruleID, err := c.ParamsInt("id")
	if err != nil || ruleID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid rule id",
		})
	}

	if err := h.ruleService.Delete(user.ID, uint(ruleID)); err != nil {
		slog.Error("failed to delete blocked rule", "action", "rules.delete", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete blocked rule",
		})
	}

	return c.JSON(dto.SuccessResponse{Success: true})
}
