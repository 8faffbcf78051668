package validators

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"shikhi_backend/utils"
)

var validate = validator.New()

// fieldErrors converts validator tags into per-field messages.
func fieldErrors(err error) map[string]string {
	errors := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			errors[fe.Field()] = "failed " + fe.Tag() + " validation"
		}
	}
	return errors
}

// parseBody parses and validates the request body. On failure the rejection
// response has already been written; callers must stop the chain.
func parseBody(c *fiber.Ctx, out interface{}) bool {
	if err := c.BodyParser(out); err != nil {
		_ = utils.BadRequest(c, "Cannot parse JSON")
		return false
	}
	if err := validate.Struct(out); err != nil {
		_ = utils.ValidationError(c, fieldErrors(err))
		return false
	}
	return true
}
