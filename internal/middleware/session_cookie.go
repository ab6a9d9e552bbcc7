package middleware

import (
	"strconv"
	"time"

	"github.com/callshield/callshield-backend/internal/config"
	"github.com/callshield/callshield-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName is the HttpOnly cookie holding the signed session
// token.
const SessionCookieName = "callshield_session"

type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// NewSessionCookie signs the session id into a cookie token. The
// session itself lives server-side; the token only references it.
func NewSessionCookie(cfg *config.Config, sess *models.Session) (*fiber.Cookie, error) {
	now := time.Now()
	claims := sessionClaims{
		SessionID: sess.ID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(sess.UserID), 10),
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(cfg.SessionSecret))
	if err != nil {
		return nil, err
	}

	return &fiber.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HTTPOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: "Lax",
	}, nil
}

// ClearedSessionCookie returns an expired cookie that removes the
// session token from the browser.
func ClearedSessionCookie(cfg *config.Config) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-1 * time.Hour),
		HTTPOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: "Lax",
	}
}

func parseSessionToken(cfg *config.Config, raw string) (*sessionClaims, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(cfg.SessionSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
