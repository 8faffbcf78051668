package validators

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"shikhi_backend/utils"
)

type AssignmentInput struct {
	Title            string                `json:"title" validate:"required,min=3"`
	Instructions     string                `json:"instructions"`
	Week             int                   `json:"week" validate:"gte=1"`
	Points           int                   `json:"points" validate:"gte=0"`
	DueDate          *time.Time            `json:"due_date"`
	AcceptTextAnswer bool                  `json:"accept_text_answer"`
	AcceptFileUpload bool                  `json:"accept_file_upload"`
	IsPublished      bool                  `json:"is_published"`
	Attachments      []AttachmentInput     `json:"attachments" validate:"dive"`
}

type AttachmentInput struct {
	Type  string `json:"type" validate:"required,oneof=drive youtube file link"`
	URL   string `json:"url" validate:"required,url"`
	Label string `json:"label"`
}

func CreateAssignment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := new(AssignmentInput)
		if !parseBody(c, input) {
			return nil
		}
		if !input.AcceptTextAnswer && !input.AcceptFileUpload {
			return utils.ValidationError(c, map[string]string{
				"accept_text_answer": "An assignment must accept a text answer, a file upload, or both",
			})
		}
		c.Locals("validatedAssignment", input)
		return c.Next()
	}
}

type SubmissionInput struct {
	CourseID     uint   `json:"course_id" validate:"required"`
	AssignmentID uint   `json:"assignment_id" validate:"required"`
	TextAnswer   string `json:"text_answer"`
	FileURL      string `json:"file_url"`
	FileName     string `json:"file_name"`
}

// SubmitAssignment rejects empty submissions before anything is persisted:
// at least one of text answer and file URL is required.
func SubmitAssignment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := new(SubmissionInput)
		if !parseBody(c, input) {
			return nil
		}

		if strings.TrimSpace(input.TextAnswer) == "" && strings.TrimSpace(input.FileURL) == "" {
			return utils.ValidationError(c, map[string]string{
				"submission": "Provide a text answer, a file, or both",
			})
		}

		c.Locals("validatedSubmission", input)
		return c.Next()
	}
}
