package controllers

import (
	"encoding/json"
	"log"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"

	"shikhi_backend/config"
	"shikhi_backend/utils"
)

type CallsController struct {
	Cfg    *config.Config
	Client *resty.Client
	Logger *log.Logger
}

func NewCallsController(cfg *config.Config, logger *log.Logger) *CallsController {
	return &CallsController{Cfg: cfg, Client: resty.New(), Logger: logger}
}

// GetToken requests a realtime-call join token from the configured provider.
// An unconfigured provider is surfaced verbatim as a 503.
func (cc *CallsController) GetToken(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	if cc.Cfg.CallServiceURL == "" || cc.Cfg.CallServiceKey == "" {
		return utils.Error(c, fiber.StatusServiceUnavailable,
			fiber.NewError(fiber.StatusServiceUnavailable, "Call service not configured"))
	}

	channel := c.Query("channel")
	if channel == "" {
		return utils.BadRequest(c, "Query parameter 'channel' is required")
	}

	resp, err := cc.Client.R().
		SetHeader("Authorization", "Bearer "+cc.Cfg.CallServiceKey).
		SetBody(map[string]interface{}{
			"channel": channel,
			"uid":     userID,
		}).
		Post(cc.Cfg.CallServiceURL + "/token")
	if err != nil {
		// Transport failures carry no response to inspect.
		cc.Logger.Printf("call token request failed: %v", err)
		return utils.InternalServerError(c, "Could not issue call token")
	}
	if resp.StatusCode() != fiber.StatusOK {
		cc.Logger.Printf("call token request rejected: %d %s", resp.StatusCode(), resp.String())
		return utils.InternalServerError(c, "Could not issue call token")
	}

	var tokenResp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(resp.Body(), &tokenResp); err != nil || tokenResp.Token == "" {
		return utils.InternalServerError(c, "Invalid token response")
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"token":   tokenResp.Token,
		"channel": channel,
	})
}
