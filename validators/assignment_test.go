package validators

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestCreateAssignmentNeedsAtLeastOneAnswerMode(t *testing.T) {
	app := validatorApp(CreateAssignment(), "validatedAssignment")

	status := postJSON(t, app, `{
		"title": "Week 2 writing practice",
		"week": 2,
		"points": 10
	}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestCreateAssignmentValidPasses(t *testing.T) {
	app := validatorApp(CreateAssignment(), "validatedAssignment")

	status := postJSON(t, app, `{
		"title": "Week 2 writing practice",
		"week": 2,
		"points": 10,
		"accept_text_answer": true,
		"attachments": [{"type": "drive", "url": "https://drive/doc", "label": "Template"}]
	}`)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestCreateAssignmentRejectsBadAttachmentType(t *testing.T) {
	app := validatorApp(CreateAssignment(), "validatedAssignment")

	status := postJSON(t, app, `{
		"title": "Week 2 writing practice",
		"week": 2,
		"accept_file_upload": true,
		"attachments": [{"type": "carrier-pigeon", "url": "https://drive/doc"}]
	}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestSubmitAssignmentRejectsEmptySubmission(t *testing.T) {
	app := validatorApp(SubmitAssignment(), "validatedSubmission")

	// Whitespace-only text with no file is still empty.
	status := postJSON(t, app, `{
		"course_id": 1,
		"assignment_id": 3,
		"text_answer": "   "
	}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestSubmitAssignmentFileOnlyPasses(t *testing.T) {
	app := validatorApp(SubmitAssignment(), "validatedSubmission")

	status := postJSON(t, app, `{
		"course_id": 1,
		"assignment_id": 3,
		"file_url": "/uploads/essay.pdf",
		"file_name": "essay.pdf"
	}`)
	assert.Equal(t, fiber.StatusOK, status)
}
