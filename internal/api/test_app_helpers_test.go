package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/wicaksana/hadir/internal/db"
	"github.com/wicaksana/hadir/internal/i18n"
	"github.com/wicaksana/hadir/internal/models"
	"github.com/wicaksana/hadir/internal/services"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testServiceKey = "test-service-key"

func newTestApp(t *testing.T) (*fiber.App, *Handler, *gorm.DB) {
	t.Helper()
	return newTestAppWithSMTP(t, services.SMTPConfig{})
}

func newTestAppWithSMTP(t *testing.T, smtp services.SMTPConfig) (*fiber.App, *Handler, *gorm.DB) {
	t.Helper()

	_, testFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("resolve current test file path")
	}

	apiDir := filepath.Dir(testFile)
	localesDir := filepath.Join(filepath.Dir(apiDir), "i18n", "locales")
	databasePath := filepath.Join(t.TempDir(), "hadir-test.db")

	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	i18nManager, err := i18n.NewManager("en", localesDir)
	if err != nil {
		t.Fatalf("init i18n: %v", err)
	}

	handler, err := NewHandler(database, i18nManager, Config{
		SecretKey:  "test-secret-key",
		ServiceKey: testServiceKey,
		Location:   time.UTC,
		SMTP:       smtp,
	})
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	handler.RegisterRoutes(app, "en")
	return app, handler, database
}

func createTestUser(t *testing.T, database *gorm.DB, email string, password string) models.User {
	t.Helper()

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	user := models.User{
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(passwordHash),
		FullName:     "Test User",
		CreatedAt:    time.Now().UTC(),
	}
	if err := database.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func loginTestUser(t *testing.T, app *fiber.App, identifier string, password string) string {
	t.Helper()

	response := postJSON(t, app, "", "/api/auth/login", map[string]any{
		"identifier": identifier,
		"password":   password,
	})
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("login as %q expected 200, got %d", identifier, response.StatusCode)
	}
	cookie := responseCookieValue(response.Cookies(), authCookieName)
	if cookie == "" {
		t.Fatal("expected auth cookie after login")
	}
	return authCookieName + "=" + cookie
}

func postJSON(t *testing.T, app *fiber.App, authCookie string, path string, payload any) *http.Response {
	t.Helper()
	return sendJSON(t, app, http.MethodPost, authCookie, path, payload)
}

func putJSON(t *testing.T, app *fiber.App, authCookie string, path string, payload any) *http.Response {
	t.Helper()
	return sendJSON(t, app, http.MethodPut, authCookie, path, payload)
}

func sendJSON(t *testing.T, app *fiber.App, method string, authCookie string, path string, payload any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	request := httptest.NewRequest(method, path, bytes.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	if authCookie != "" {
		request.Header.Set("Cookie", authCookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func sendServiceJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	request := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("X-Service-Key", testServiceKey)

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	return response
}

func getJSON(t *testing.T, app *fiber.App, authCookie string, path string) *http.Response {
	t.Helper()

	request := httptest.NewRequest(http.MethodGet, path, nil)
	if authCookie != "" {
		request.Header.Set("Cookie", authCookie)
	}
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	return response
}

func decodeJSONBody(t *testing.T, body io.Reader) map[string]any {
	t.Helper()

	payload := map[string]any{}
	raw, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("decode response body %q: %v", raw, err)
	}
	return payload
}

func readAPIError(t *testing.T, body io.Reader) string {
	t.Helper()

	payload := decodeJSONBody(t, body)
	message, _ := payload["error"].(string)
	return message
}

func responseCookieValue(cookies []*http.Cookie, name string) string {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie.Value
		}
	}
	return ""
}
