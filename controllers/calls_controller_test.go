package controllers

import (
	"io"
	"log"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"shikhi_backend/config"
)

func callTokenApp(cfg *config.Config) *fiber.App {
	ctrl := NewCallsController(cfg, log.New(io.Discard, "", 0))

	app := fiber.New()
	app.Get("/api/call/token", func(c *fiber.Ctx) error {
		c.Locals("userID", uint(1))
		return ctrl.GetToken(c)
	})
	return app
}

func TestGetTokenUnconfiguredProvider(t *testing.T) {
	app := callTokenApp(&config.Config{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/call/token?channel=class-1", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestGetTokenRequiresChannel(t *testing.T) {
	app := callTokenApp(&config.Config{
		CallServiceURL: "http://calls.internal",
		CallServiceKey: "key",
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/call/token", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetTokenMalformedProviderURLReturns500(t *testing.T) {
	// The request fails before a response exists; the handler must return a
	// clean 500 instead of dereferencing the missing response.
	app := callTokenApp(&config.Config{
		CallServiceURL: "http://bad url",
		CallServiceKey: "key",
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/call/token?channel=class-1", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
