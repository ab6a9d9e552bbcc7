package handlers

import (
	"log/slog"

	"github.com/callshield/callshield-backend/internal/dto"
	"github.com/callshield/callshield-backend/internal/middleware"
	"github.com/callshield/callshield-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type SettingsHandler struct {
	settingsService *services.SettingsService
}

func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get handles GET /api/settings. A brand-new user gets the default row
// materialized on first read.
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}

	settings, err := h.settingsService.Get(user.ID)
	if err != nil {
		slog.Error("failed to fetch settings", "action", "settings.get", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch settings",
		})
	}

	return c.JSON(dto.SettingsResponse{
		ScreeningEnabled:   settings.ScreeningEnabled,
		ProtectionLevel:    settings.ProtectionLevel,
		QuietHoursStart:    settings.QuietHoursStart,
		QuietHoursEnd:      settings.QuietHoursEnd,
		AutoBlockThreshold: settings.AutoBlockThreshold,
	})
}

// Update handles PUT /api/settings: partial update, only supplied
// fields change.
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return unauthorized(c)
	}

	var req dto.UpdateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.settingsService.Update(user.ID, &req); err != nil {
		slog.Error("failed to update settings", "action", "settings.update", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update settings",
		})
	}

	return c.JSON(dto.SuccessResponse{Success: true})
}
