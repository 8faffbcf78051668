package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"shikhi_backend/config"
)

func extractApp(cfg *config.Config, got *uint, gotErr *error) *fiber.App {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		id, err := ExtractUserIDFromToken(c, cfg)
		*got = id
		*gotErr = err
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestJWTRoundTrip(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}

	token, err := GenerateJWTToken(17, "student", cfg)
	assert.NoError(t, err)

	var gotID uint
	var gotErr error
	app := extractApp(cfg, &gotID, &gotErr)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	_, err = app.Test(req)
	assert.NoError(t, err)

	assert.NoError(t, gotErr)
	assert.Equal(t, uint(17), gotID)
}

func TestJWTBareTokenAccepted(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}

	token, err := GenerateJWTToken(5, "admin", cfg)
	assert.NoError(t, err)

	var gotID uint
	var gotErr error
	app := extractApp(cfg, &gotID, &gotErr)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", token)
	_, err = app.Test(req)
	assert.NoError(t, err)

	assert.NoError(t, gotErr)
	assert.Equal(t, uint(5), gotID)
}

func TestJWTWrongSecretRejected(t *testing.T) {
	token, err := GenerateJWTToken(17, "student", &config.Config{JWTSecret: "one"})
	assert.NoError(t, err)

	var gotID uint
	var gotErr error
	app := extractApp(&config.Config{JWTSecret: "two"}, &gotID, &gotErr)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	_, err = app.Test(req)
	assert.NoError(t, err)

	assert.Error(t, gotErr)
	assert.Zero(t, gotID)
}

func TestJWTMissingHeaderRejected(t *testing.T) {
	var gotID uint
	var gotErr error
	app := extractApp(&config.Config{JWTSecret: "test-secret"}, &gotID, &gotErr)

	_, err := app.Test(httptest.NewRequest("GET", "/", nil))
	assert.NoError(t, err)
	assert.Error(t, gotErr)
}
