package middleware

import (
	"github.com/callshield/callshield-backend/internal/config"
	"github.com/callshield/callshield-backend/internal/dto"
	"github.com/callshield/callshield-backend/internal/models"
	"github.com/callshield/callshield-backend/internal/session"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SessionProtected rejects requests without a valid signed session
// cookie. ResolveIdentity must run after it to attach the identity.
func SessionProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:  jwtware.SigningKey{Key: []byte(cfg.SessionSecret)},
		TokenLookup: "cookie:" + SessionCookieName,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Authentication required",
			})
		},
	})
}

// ResolveIdentity turns the validated cookie token into a typed
// identity: the referenced session must still exist server-side and
// the user row must still be present. Logout therefore invalidates a
// cookie that is otherwise cryptographically valid.
func ResolveIdentity(cfg *config.Config, store session.Store, db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok {
			return authRequired(c, cfg)
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return authRequired(c, cfg)
		}
		sid, ok := claims["sid"].(string)
		if !ok {
			return authRequired(c, cfg)
		}

		user, sess, err := lookupIdentity(store, db, sid)
		if err != nil {
			return authRequired(c, cfg)
		}

		SetIdentity(c, user, sess)
		return c.Next()
	}
}

// OptionalSession resolves the identity when a valid session cookie is
// present and passes through anonymously otherwise. Used by routes
// that answer both states, like GET /api/user.
func OptionalSession(cfg *config.Config, store session.Store, db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Cookies(SessionCookieName)
		if raw == "" {
			return c.Next()
		}

		claims, err := parseSessionToken(cfg, raw)
		if err != nil {
			return c.Next()
		}

		user, sess, err := lookupIdentity(store, db, claims.SessionID)
		if err != nil {
			return c.Next()
		}

		SetIdentity(c, user, sess)
		return c.Next()
	}
}

func lookupIdentity(store session.Store, db *gorm.DB, sid string) (*models.User, *models.Session, error) {
	id, err := uuid.Parse(sid)
	if err != nil {
		return nil, nil, err
	}

	sess, err := store.Get(id)
	if err != nil {
		return nil, nil, err
	}

	var user models.User
	if err := db.First(&user, "id = ?", sess.UserID).Error; err != nil {
		return nil, nil, err
	}

	return &user, sess, nil
}

func authRequired(c *fiber.Ctx, cfg *config.Config) error {
	c.Cookie(ClearedSessionCookie(cfg))
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "Authentication required",
	})
}
