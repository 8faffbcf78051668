package routes

import (
	"encoding/json"
	"log"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"shikhi_backend/config"
	"shikhi_backend/utils"
)

func testApp(t *testing.T) (*fiber.App, *config.Config) {
	t.Helper()

	cfg := &config.Config{
		JWTSecret: "test-secret",
		UploadDir: t.TempDir(),
	}

	logger := log.New(os.Stderr, "[test] ", log.LstdFlags)
	app := fiber.New()
	SetupRoutes(app, nil, cfg, utils.NewTTLCache(0), utils.NewMailer(cfg, logger), logger)
	return app, cfg
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	app, _ := testApp(t)

	paths := []struct {
		method string
		path   string
	}{
		{"GET", "/api/users/me"},
		{"GET", "/api/users/me/courses"},
		{"POST", "/api/courses/1/enroll"},
		{"POST", "/api/quiz-results"},
		{"GET", "/api/messages/"},
		{"GET", "/api/call/token"},
		{"POST", "/api/admin/courses/"},
		{"GET", "/api/admin/analytics"},
	}

	for _, p := range paths {
		resp, err := app.Test(httptest.NewRequest(p.method, p.path, nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "%s %s", p.method, p.path)
	}
}

func TestProtectedRoutesRejectGarbageToken(t *testing.T) {
	app, _ := testApp(t)

	req := httptest.NewRequest("GET", "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestCallTokenUnconfiguredServiceReturns503(t *testing.T) {
	app, cfg := testApp(t)

	token, err := utils.GenerateJWTToken(42, "student", cfg)
	assert.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/call/token?channel=class-1", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)

	var body utils.ErrorResponse
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "Call service not configured", body.Message)
}
