package handlers

import (
	"errors"
	"log/slog"

	"github.com/callshield/callshield-backend/internal/config"
	"github.com/callshield/callshield-backend/internal/dto"
	"github.com/callshield/callshield-backend/internal/middleware"
	"github.com/callshield/callshield-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

// Login handles POST /api/auth/login. Demo mode: the username is the
// whole credential, and unseen usernames are provisioned on the spot.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	user, sess, err := h.authService.Login(req.Username)
	if err != nil {
		if errors.Is(err, services.ErrUsernameRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		slog.Error("login failed", "action", "auth.login", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to log in",
		})
	}

	cookie, err := middleware.NewSessionCookie(h.cfg, sess)
	if err != nil {
		slog.Error("session cookie signing failed", "action", "auth.login", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to log in",
		})
	}
	c.Cookie(cookie)

	return c.JSON(dto.LoginResponse{Success: true, User: *user})
}

// Logout handles POST /api/auth/logout: destroys the server-side
// session and clears the cookie.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Authentication required",
		})
	}

	if err := h.authService.Logout(sess.ID); err != nil {
		slog.Error("logout failed", "action", "auth.logout", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to log out",
		})
	}

	c.Cookie(middleware.ClearedSessionCookie(h.cfg))
	return c.JSON(dto.SuccessResponse{Success: true})
}

// CurrentUser handles GET /api/user: the user object when a session is
// attached, JSON null otherwise. Never a 401.
func (h *AuthHandler) CurrentUser(c *fiber.Ctx) error {
	if user, ok := middleware.CurrentUser(c); ok {
		return c.JSON(user)
	}
	return c.JSON(nil)
}
