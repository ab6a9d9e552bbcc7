package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/callshield/callshield-backend/internal/config"
	"github.com/callshield/callshield-backend/internal/database"
	"github.com/callshield/callshield-backend/internal/handlers"
	"github.com/callshield/callshield-backend/internal/middleware"
	"github.com/callshield/callshield-backend/internal/services"
	"github.com/callshield/callshield-backend/internal/session"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "callshield-test.db")
	db, err := gorm.Open(sqlite.Open(databasePath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	cfg := &config.Config{
		SessionSecret: "test-secret",
		SessionTTL:    time.Hour,
		CORSOrigins:   "*",
	}
	store := session.NewMemoryStore()

	authService := services.NewAuthService(db, store, cfg.SessionTTL)
	callService := services.NewCallService(db)
	ruleService := services.NewRuleService(db)
	settingsService := services.NewSettingsService(db)
	conversationService := services.NewConversationService(db)

	app := fiber.New()
	Setup(app, cfg, db, store,
		handlers.NewAuthHandler(authService, cfg),
		handlers.NewCallHandler(callService),
		handlers.NewRuleHandler(ruleService),
		handlers.NewSettingsHandler(settingsService),
		handlers.NewConversationHandler(conversationService),
		handlers.NewHealthHandler(),
	)
	return app, db
}

func jsonRequest(t *testing.T, method string, target string, body interface{}, sessionCookie string) *http.Request {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, target, reader)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if sessionCookie != "" {
		request.Header.Set("Cookie", middleware.SessionCookieName+"="+sessionCookie)
	}
	return request
}

func doRequest(t *testing.T, app *fiber.App, request *http.Request) *http.Response {
	t.Helper()

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", request.Method, request.URL.Path, err)
	}
	return response
}

func decodeBody(t *testing.T, response *http.Response, v interface{}) {
	t.Helper()

	defer response.Body.Close()
	if err := json.NewDecoder(response.Body).Decode(v); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

// login authenticates as username and returns the session cookie value.
func login(t *testing.T, app *fiber.App, username string) string {
	t.Helper()

	request := jsonRequest(t, http.MethodPost, "/api/auth/login", map[string]string{"username": username}, "")
	response := doRequest(t, app, request)
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("login as %q returned status %d", username, response.StatusCode)
	}
	for _, cookie := range response.Cookies() {
		if cookie.Name == middleware.SessionCookieName && cookie.Value != "" {
			return cookie.Value
		}
	}
	t.Fatalf("login response carried no session cookie")
	return ""
}
