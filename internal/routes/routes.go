package routes

import (
	"time"

	"github.com/callshield/callshield-backend/internal/config"
	"github.com/callshield/callshield-backend/internal/handlers"
	"github.com/callshield/callshield-backend/internal/middleware"
	"github.com/callshield/callshield-backend/internal/session"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	store session.Store,
	authHandler *handlers.AuthHandler,
	callHandler *handlers.CallHandler,
	ruleHandler *handlers.RuleHandler,
	settingsHandler *handlers.SettingsHandler,
	conversationHandler *handlers.ConversationHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health (no auth required)
	api.Get("/health", healthHandler.Check)

	// Auth: login is public, with a stricter limit of 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/login", authHandler.Login)

	// Current user: answers for both states, so the session is optional
	api.Get("/user", middleware.OptionalSession(cfg, store, db), authHandler.CurrentUser)

	// Protected routes: valid session cookie plus a live server-side
	// session, resolved into a typed identity.
	requireSession := middleware.SessionProtected(cfg)
	identity := middleware.ResolveIdentity(cfg, store, db)

	api.Post("/auth/logout", requireSession, identity, authHandler.Logout)

	api.Get("/calls", requireSession, identity, callHandler.List)
	api.Post("/calls/simulate", requireSession, identity, callHandler.Simulate)
	api.Get("/calls/:id", requireSession, identity, callHandler.Get)

	api.Get("/blocked-rules", requireSession, identity, ruleHandler.List)
	api.Post("/blocked-rules", requireSession, identity, ruleHandler.Create)
	api.Delete("/blocked-rules/:id", requireSession, identity, ruleHandler.Delete)

	api.Get("/settings", requireSession, identity, settingsHandler.Get)
	api.Put("/settings", requireSession, identity, settingsHandler.Update)

	api.Get("/conversations", requireSession, identity, conversationHandler.List)
	api.Post("/conversations", requireSession, identity, conversationHandler.Create)
	api.Get("/conversations/:id/messages", requireSession, identity, conversationHandler.ListMessages)
	api.Post("/conversations/:id/messages", requireSession, identity, conversationHandler.SendMessage)
}
