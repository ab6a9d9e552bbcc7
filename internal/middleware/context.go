package middleware

import (
	"github.com/callshield/callshield-backend/internal/models"
	"github.com/gofiber/fiber/v2"
)

const (
	localsUserKey    = "currentUser"
	localsSessionKey = "currentSession"
)

// SetIdentity stores the resolved user and session in context locals.
func SetIdentity(c *fiber.Ctx, user *models.User, sess *models.Session) {
	c.Locals(localsUserKey, user)
	c.Locals(localsSessionKey, sess)
}

// CurrentUser extracts the resolved user from Fiber context locals.
func CurrentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(localsUserKey).(*models.User)
	return user, ok && user != nil
}

// CurrentSession extracts the resolved session from context locals.
func CurrentSession(c *fiber.Ctx) (*models.Session, bool) {
	sess, ok := c.Locals(localsSessionKey).(*models.Session)
	return sess, ok && sess != nil
}
