package validators

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"shikhi_backend/utils"
)

type MessageInput struct {
	RecipientID    uint   `json:"recipient_id" validate:"required"`
	Body           string `json:"body"`
	AttachmentURL  string `json:"attachment_url"`
	AttachmentName string `json:"attachment_name"`
	AttachmentType string `json:"attachment_type"`
}

func SendMessage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := new(MessageInput)
		if !parseBody(c, input) {
			return nil
		}

		if strings.TrimSpace(input.Body) == "" && input.AttachmentURL == "" {
			return utils.ValidationError(c, map[string]string{
				"body": "Message needs a body or an attachment",
			})
		}

		c.Locals("validatedMessage", input)
		return c.Next()
	}
}
