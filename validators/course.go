package validators

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"shikhi_backend/models"
	"shikhi_backend/utils"
)

type CourseInput struct {
	Title           string  `json:"title" validate:"required,min=3"`
	ShortDesc       string  `json:"short_desc"`
	Description     string  `json:"description" validate:"required,min=5"`
	Level           string  `json:"level" validate:"required,oneof=beginner intermediate advanced"`
	Category        string  `json:"category" validate:"required"`
	Price           float64 `json:"price" validate:"gte=0"`
	DiscountedPrice float64 `json:"discounted_price" validate:"gte=0"`
	ThumbnailURL    string  `json:"thumbnail_url"`
}

// CreateCourse validates the course payload and stores it in c.Locals.
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := new(CourseInput)
		if !parseBody(c, input) {
			return nil
		}
		c.Locals("validatedCourse", input)
		return c.Next()
	}
}

type CurriculumItemInput struct {
	Type          string     `json:"type" validate:"required,oneof=live-class announcement resource assignment quiz"`
	Title         string     `json:"title" validate:"required,min=2"`
	Description   string     `json:"description"`
	ScheduledDate *time.Time `json:"scheduled_date"`
	IsPublished   bool       `json:"is_published"`

	MeetingLink     string `json:"meeting_link"`
	MeetingPlatform string `json:"meeting_platform"`
	Duration        int    `json:"duration"`

	ResourceType string `json:"resource_type"`
	ResourceURL  string `json:"resource_url"`

	AnnouncementType string     `json:"announcement_type"`
	IsPinned         bool       `json:"is_pinned"`
	ValidUntil       *time.Time `json:"valid_until"`

	Questions []QuizQuestionInput `json:"questions" validate:"dive"`
}

type QuizQuestionInput struct {
	Question string            `json:"question" validate:"required"`
	Options  []QuizOptionInput `json:"options" validate:"min=2,dive"`
}

type QuizOptionInput struct {
	OptionText string `json:"option_text" validate:"required"`
	IsCorrect  bool   `json:"is_correct"`
}

// CurriculumItem validates an item payload, including field exclusivity per
// item type: columns belonging to another variant must be empty.
func CurriculumItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		input := new(CurriculumItemInput)
		if !parseBody(c, input) {
			return nil
		}

		errors := make(map[string]string)

		hasLiveFields := input.MeetingLink != "" || input.MeetingPlatform != "" || input.Duration != 0
		hasResourceFields := input.ResourceType != "" || input.ResourceURL != ""
		hasAnnouncementFields := input.AnnouncementType != "" || input.IsPinned || input.ValidUntil != nil
		hasQuestions := len(input.Questions) > 0

		switch input.Type {
		case models.ItemTypeLiveClass:
			if strings.TrimSpace(input.MeetingLink) == "" {
				errors["meeting_link"] = "Meeting link is required for a live class"
			}
			if input.ScheduledDate == nil {
				errors["scheduled_date"] = "Scheduled date is required for a live class"
			}
			if hasResourceFields || hasAnnouncementFields || hasQuestions {
				errors["type"] = "Live class cannot carry resource, announcement or quiz fields"
			}
		case models.ItemTypeResource:
			if strings.TrimSpace(input.ResourceURL) == "" {
				errors["resource_url"] = "Resource URL is required"
			}
			if hasLiveFields || hasAnnouncementFields || hasQuestions {
				errors["type"] = "Resource cannot carry live class, announcement or quiz fields"
			}
		case models.ItemTypeAnnouncement:
			if hasLiveFields || hasResourceFields || hasQuestions {
				errors["type"] = "Announcement cannot carry live class, resource or quiz fields"
			}
		case models.ItemTypeQuiz:
			if !hasQuestions {
				errors["questions"] = "A quiz needs at least one question"
			}
			if hasLiveFields || hasResourceFields || hasAnnouncementFields {
				errors["type"] = "Quiz cannot carry live class, resource or announcement fields"
			}
			// Exactly one correct option per question, enforced at write time.
			for _, q := range input.Questions {
				correct := 0
				for _, opt := range q.Options {
					if opt.IsCorrect {
						correct++
					}
				}
				if correct != 1 {
					errors["questions"] = "Each question must have exactly one correct option"
					break
				}
			}
		case models.ItemTypeAssignment:
			if hasLiveFields || hasResourceFields || hasAnnouncementFields {
				errors["type"] = "Assignment cannot carry live class, resource or announcement fields"
			}
		}

		if len(errors) > 0 {
			return utils.ValidationError(c, errors)
		}

		c.Locals("validatedItem", input)
		return c.Next()
	}
}
