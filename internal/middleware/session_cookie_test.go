package middleware

import (
	"testing"
	"time"

	"github.com/callshield/callshield-backend/internal/config"
	"github.com/callshield/callshield-backend/internal/models"
	"github.com/google/uuid"
)

func testConfig(secret string) *config.Config {
	return &config.Config{
		SessionSecret: secret,
		SessionTTL:    time.Hour,
		CookieSecure:  false,
	}
}

func testSession() *models.Session {
	return &models.Session{
		ID:        uuid.New(),
		UserID:    42,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestSessionCookieRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := testConfig("test-secret")
	sess := testSession()

	cookie, err := NewSessionCookie(cfg, sess)
	if err != nil {
		t.Fatalf("build cookie failed: %v", err)
	}
	if cookie.Name != SessionCookieName {
		t.Fatalf("cookie name = %q, want %q", cookie.Name, SessionCookieName)
	}
	if !cookie.HTTPOnly {
		t.Fatalf("session cookie must be HttpOnly")
	}
	if cookie.SameSite != "Lax" {
		t.Fatalf("cookie SameSite = %q, want Lax", cookie.SameSite)
	}

	claims, err := parseSessionToken(cfg, cookie.Value)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.SessionID != sess.ID.String() {
		t.Fatalf("sid = %q, want %q", claims.SessionID, sess.ID)
	}
	if claims.Subject != "42" {
		t.Fatalf("subject = %q, want 42", claims.Subject)
	}
}

func TestParseSessionTokenRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	cookie, err := NewSessionCookie(testConfig("secret-one"), testSession())
	if err != nil {
		t.Fatalf("build cookie failed: %v", err)
	}

	if _, err := parseSessionToken(testConfig("secret-two"), cookie.Value); err == nil {
		t.Fatalf("expected token signed with another secret to be rejected")
	}
}

func TestParseSessionTokenRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	cfg := testConfig("test-secret")
	sess := testSession()
	sess.ExpiresAt = time.Now().Add(-time.Minute)

	cookie, err := NewSessionCookie(cfg, sess)
	if err != nil {
		t.Fatalf("build cookie failed: %v", err)
	}
	if _, err := parseSessionToken(cfg, cookie.Value); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}

func TestParseSessionTokenRejectsGarbage(t *testing.T) {
	t.Parallel()

	cfg := testConfig("test-secret")
	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := parseSessionToken(cfg, raw); err == nil {
			t.Fatalf("parseSessionToken(%q) accepted garbage", raw)
		}
	}
}

func TestClearedSessionCookieExpiresInThePast(t *testing.T) {
	t.Parallel()

	cookie := ClearedSessionCookie(testConfig("test-secret"))
	if cookie.Value != "" {
		t.Fatalf("cleared cookie carries value %q", cookie.Value)
	}
	if !cookie.Expires.Before(time.Now()) {
		t.Fatalf("cleared cookie expires in the future: %v", cookie.Expires)
	}
}
