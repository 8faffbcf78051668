package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shikhi_backend/config"
	"shikhi_backend/curriculum"
	"shikhi_backend/models"
	"shikhi_backend/utils"
)

type UsersController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewUsersController(db *gorm.DB, cfg *config.Config) *UsersController {
	return &UsersController{DB: db, Cfg: cfg}
}

func (uc *UsersController) GetProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var user models.User
	if err := uc.DB.First(&user, userID).Error; err != nil {
		return utils.MapError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"id":            user.ID,
		"username":      user.Username,
		"email":         user.Email,
		"role":          user.Role,
		"profile_image": user.ProfileImage,
		"native_lang":   user.NativeLang,
		"target_level":  user.TargetLevel,
		"streak_days":   user.StreakDays,
	})
}

func (uc *UsersController) UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var input struct {
		Username     string `json:"username"`
		ProfileImage string `json:"profile_image"`
		NativeLang   string `json:"native_lang"`
		TargetLevel  string `json:"target_level"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var user models.User
	if err := uc.DB.First(&user, userID).Error; err != nil {
		return utils.MapError(c, err)
	}

	if input.Username != "" {
		user.Username = input.Username
	}
	if input.ProfileImage != "" {
		user.ProfileImage = input.ProfileImage
	}
	if input.NativeLang != "" {
		user.NativeLang = input.NativeLang
	}
	if input.TargetLevel != "" {
		user.TargetLevel = input.TargetLevel
	}

	if err := uc.DB.Save(&user).Error; err != nil {
		return utils.MapError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"message": "Profile updated"})
}

// GetMyCourses returns the caller's enrolled courses merged with progress and
// the derived next upcoming live class. Enrollments whose course is missing
// are dropped rather than surfaced as an error.
func (uc *UsersController) GetMyCourses(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var enrollments []models.Enrollment
	if err := uc.DB.Where("user_id = ?", userID).Find(&enrollments).Error; err != nil {
		return utils.MapError(c, err)
	}

	if len(enrollments) == 0 {
		return utils.Success(c, fiber.StatusOK, []fiber.Map{})
	}

	courseIDs := make([]uint, 0, len(enrollments))
	for _, e := range enrollments {
		courseIDs = append(courseIDs, e.CourseID)
	}

	// Batch-load course summaries and their full curricula.
	var courses []models.Course
	if err := uc.DB.Preload("Modules.Items").Where("id IN ?", courseIDs).Find(&courses).Error; err != nil {
		return utils.MapError(c, err)
	}

	courseByID := make(map[uint]*models.Course, len(courses))
	for i := range courses {
		courseByID[courses[i].ID] = &courses[i]
	}

	now := time.Now()
	result := make([]fiber.Map, 0, len(enrollments))
	for _, e := range enrollments {
		course, ok := courseByID[e.CourseID]
		if !ok {
			continue
		}

		var allItems []models.CurriculumItem
		for _, m := range course.Modules {
			if !m.IsPublished {
				continue
			}
			allItems = append(allItems, m.Items...)
		}

		var nextClass fiber.Map
		if next := curriculum.NextLiveClass(allItems, now); next != nil {
			nextClass = fiber.Map{
				"date":             next.ScheduledDate,
				"title":            next.Title,
				"meeting_link":     next.MeetingLink,
				"meeting_platform": next.MeetingPlatform,
			}
		}

		result = append(result, fiber.Map{
			"course_id":           course.ID,
			"title":               course.Title,
			"level":               course.Level,
			"category":            course.Category,
			"thumbnail_url":       course.ThumbnailURL,
			"enrolled_at":         e.EnrolledAt,
			"completed_lessons":   e.CompletedLessons,
			"progress_percentage": e.ProgressPercentage,
			"last_accessed_at":    e.LastAccessedAt,
			"completed_at":        e.CompletedAt,
			"certificate_id":      e.CertificateID,
			"next_class":          nextClass,
		})
	}

	return utils.Success(c, fiber.StatusOK, result)
}
