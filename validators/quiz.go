package validators

import (
	"github.com/gofiber/fiber/v2"
)

type QuizResultInput struct {
	CourseID uint        `json:"course_id" validate:"required"`
	QuizID   uint        `json:"quiz_id" validate:"required"`
	Answers  map[int]int `json:"answers" validate:"required"`
}

// SubmitQuizResult validates the attempt payload. The score itself is
// recomputed server-side from the stored quiz definition.
func SubmitQuizResult() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := new(QuizResultInput)
		if !parseBody(c, input) {
			return nil
		}
		c.Locals("validatedQuizResult", input)
		return c.Next()
	}
}
