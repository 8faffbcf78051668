package validators

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func validatorApp(mw fiber.Handler, localsKey string) *fiber.App {
	app := fiber.New()
	app.Post("/", mw, func(c *fiber.Ctx) error {
		if c.Locals(localsKey) == nil {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, body string) int {
	t.Helper()
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	return resp.StatusCode
}

func TestCreateCourseAcceptsValidPayload(t *testing.T) {
	app := validatorApp(CreateCourse(), "validatedCourse")

	status := postJSON(t, app, `{
		"title": "Japanese for Beginners",
		"description": "Hiragana, katakana and basic grammar",
		"level": "beginner",
		"category": "language",
		"price": 49.99
	}`)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestCreateCourseRejectsUnknownLevel(t *testing.T) {
	app := validatorApp(CreateCourse(), "validatedCourse")

	status := postJSON(t, app, `{
		"title": "Japanese for Beginners",
		"description": "Hiragana, katakana and basic grammar",
		"level": "wizard",
		"category": "language"
	}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestCreateCourseRejectsMalformedJSON(t *testing.T) {
	app := validatorApp(CreateCourse(), "validatedCourse")

	status := postJSON(t, app, `{"title": `)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestCurriculumItemLiveClassRequiresLinkAndDate(t *testing.T) {
	app := validatorApp(CurriculumItem(), "validatedItem")

	status := postJSON(t, app, `{
		"type": "live-class",
		"title": "Week 1 Kickoff"
	}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestCurriculumItemRejectsCrossVariantFields(t *testing.T) {
	app := validatorApp(CurriculumItem(), "validatedItem")

	// A resource carrying a meeting link mixes variants.
	status := postJSON(t, app, `{
		"type": "resource",
		"title": "Hiragana chart",
		"resource_url": "https://cdn/chart.pdf",
		"meeting_link": "https://meet/abc"
	}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestCurriculumItemQuizNeedsExactlyOneCorrectOption(t *testing.T) {
	app := validatorApp(CurriculumItem(), "validatedItem")

	status := postJSON(t, app, `{
		"type": "quiz",
		"title": "Hiragana quiz",
		"questions": [{
			"question": "Which is 'a'?",
			"options": [
				{"option_text": "あ", "is_correct": true},
				{"option_text": "い", "is_correct": true}
			]
		}]
	}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestCurriculumItemValidQuizPasses(t *testing.T) {
	app := validatorApp(CurriculumItem(), "validatedItem")

	status := postJSON(t, app, `{
		"type": "quiz",
		"title": "Hiragana quiz",
		"questions": [{
			"question": "Which is 'a'?",
			"options": [
				{"option_text": "あ", "is_correct": true},
				{"option_text": "い", "is_correct": false}
			]
		}]
	}`)
	assert.Equal(t, fiber.StatusOK, status)
}

func TestCurriculumItemValidAnnouncementPasses(t *testing.T) {
	app := validatorApp(CurriculumItem(), "validatedItem")

	status := postJSON(t, app, `{
		"type": "announcement",
		"title": "Holiday notice",
		"announcement_type": "info",
		"is_pinned": true
	}`)
	assert.Equal(t, fiber.StatusOK, status)
}
