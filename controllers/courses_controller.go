package controllers

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"shikhi_backend/config"
	"shikhi_backend/models"
	"shikhi_backend/utils"
	"shikhi_backend/validators"
)

type CoursesController struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Cache  *utils.TTLCache
	Mailer *utils.Mailer
	Logger *log.Logger
}

func NewCoursesController(db *gorm.DB, cfg *config.Config, cache *utils.TTLCache, mailer *utils.Mailer, logger *log.Logger) *CoursesController {
	return &CoursesController{DB: db, Cfg: cfg, Cache: cache, Mailer: mailer, Logger: logger}
}

// GetCourses lists published courses, optionally filtered by level/category.
// Unfiltered listings are served from the process-local catalog cache.
func (cc *CoursesController) GetCourses(c *fiber.Ctx) error {
	level := c.Query("level")
	category := c.Query("category")

	cacheKey := fmt.Sprintf("catalog:%s:%s", level, category)
	if cached, ok := cc.Cache.Get(cacheKey); ok {
		return utils.Success(c, fiber.StatusOK, cached)
	}

	query := cc.DB.Model(&models.Course{}).Where("is_published = ?", true)
	if level != "" {
		query = query.Where("level = ?", level)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var courses []models.Course
	if err := query.Order("created_at DESC").Find(&courses).Error; err != nil {
		return utils.MapError(c, err)
	}

	result := make([]fiber.Map, 0, len(courses))
	for _, course := range courses {
		result = append(result, fiber.Map{
			"id":               course.ID,
			"title":            course.Title,
			"short_desc":       course.ShortDesc,
			"level":            course.Level,
			"category":         course.Category,
			"price":            course.Price,
			"discounted_price": course.DiscountedPrice,
			"thumbnail_url":    course.ThumbnailURL,
		})
	}

	cc.Cache.Set(cacheKey, result)
	return utils.Success(c, fiber.StatusOK, result)
}

func (cc *CoursesController) GetCourseDetails(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var course models.Course
	if err := cc.DB.Preload("Modules", "is_published = ?", true).
		Preload("Modules.Items", "is_published = ?", true).
		First(&course, courseID).Error; err != nil {
		return utils.MapError(c, err)
	}

	if !course.IsPublished {
		return utils.NotFound(c, "Course not found")
	}

	return utils.Success(c, fiber.StatusOK, course)
}

func (cc *CoursesController) CreateCourse(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	input := c.Locals("validatedCourse").(*validators.CourseInput)

	course := models.Course{
		Title:           input.Title,
		ShortDesc:       input.ShortDesc,
		Description:     input.Description,
		Level:           input.Level,
		Category:        input.Category,
		Price:           input.Price,
		DiscountedPrice: input.DiscountedPrice,
		ThumbnailURL:    input.ThumbnailURL,
		AuthorID:        userID,
	}

	if err := cc.DB.Create(&course).Error; err != nil {
		return utils.MapError(c, err)
	}

	return utils.Created(c, fiber.Map{"message": "Course created", "course": course})
}

func (cc *CoursesController) UpdateCourse(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var input struct {
		Title           string   `json:"title"`
		ShortDesc       string   `json:"short_desc"`
		Description     string   `json:"description"`
		Level           string   `json:"level"`
		Category        string   `json:"category"`
		Price           *float64 `json:"price"`
		DiscountedPrice *float64 `json:"discounted_price"`
		ThumbnailURL    string   `json:"thumbnail_url"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var course models.Course
	if err := cc.DB.First(&course, courseID).Error; err != nil {
		return utils.MapError(c, err)
	}

	if input.Title != "" {
		course.Title = input.Title
	}
	if input.ShortDesc != "" {
		course.ShortDesc = input.ShortDesc
	}
	if input.Description != "" {
		course.Description = input.Description
	}
	if input.Level != "" {
		course.Level = input.Level
	}
	if input.Category != "" {
		course.Category = input.Category
	}
	if input.Price != nil {
		course.Price = *input.Price
	}
	if input.DiscountedPrice != nil {
		course.DiscountedPrice = *input.DiscountedPrice
	}
	if input.ThumbnailURL != "" {
		course.ThumbnailURL = input.ThumbnailURL
	}

	if err := cc.DB.Save(&course).Error; err != nil {
		return utils.MapError(c, err)
	}

	cc.invalidateCatalog()
	return utils.Success(c, fiber.StatusOK, fiber.Map{"message": "Course updated", "course": course})
}

// PublishCourse toggles the soft lifecycle flag. Courses are never hard-deleted.
func (cc *CoursesController) PublishCourse(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var input struct {
		IsPublished bool `json:"is_published"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var course models.Course
	if err := cc.DB.First(&course, courseID).Error; err != nil {
		return utils.MapError(c, err)
	}

	course.IsPublished = input.IsPublished
	if err := cc.DB.Save(&course).Error; err != nil {
		return utils.MapError(c, err)
	}

	cc.invalidateCatalog()
	return utils.Success(c, fiber.StatusOK, fiber.Map{"message": "Course publish state updated"})
}

func (cc *CoursesController) Enroll(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var course models.Course
	if err := cc.DB.First(&course, courseID).Error; err != nil {
		return utils.MapError(c, err)
	}
	if !course.IsPublished {
		return utils.NotFound(c, "Course not found")
	}

	var existing models.Enrollment
	if err := cc.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error; err == nil {
		return utils.Error(c, fiber.StatusConflict, fiber.NewError(fiber.StatusConflict, "Already enrolled"))
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.MapError(c, err)
	}

	enrollment := models.Enrollment{
		UserID:     userID,
		CourseID:   uint(courseID),
		EnrolledAt: time.Now(),
	}
	if err := cc.DB.Create(&enrollment).Error; err != nil {
		return utils.MapError(c, err)
	}

	// Confirmation mail is best-effort.
	var user models.User
	if err := cc.DB.First(&user, userID).Error; err == nil {
		cc.Mailer.SendEnrollmentConfirmation(user.Username, user.Email, course.Title)
	}

	return utils.Created(c, fiber.Map{"message": "Enrolled", "enrollment": enrollment})
}

// UpdateProgress marks lessons complete and recomputes the percentage against
// the count of published items in published modules. A full course issues a
// certificate once.
func (cc *CoursesController) UpdateProgress(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var input struct {
		MarkCompleted bool `json:"mark_completed"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var enrollment models.Enrollment
	if err := cc.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Forbidden(c, "Not enrolled in this course")
		}
		return utils.MapError(c, err)
	}

	var totalItems int64
	cc.DB.Model(&models.CurriculumItem{}).
		Joins("JOIN course_modules ON course_modules.id = curriculum_items.module_id").
		Where("curriculum_items.course_id = ? AND curriculum_items.is_published = ? AND course_modules.is_published = ?", courseID, true, true).
		Count(&totalItems)

	if input.MarkCompleted {
		enrollment.CompletedLessons++
	}
	if totalItems > 0 {
		enrollment.ProgressPercentage = float64(enrollment.CompletedLessons) / float64(totalItems) * 100
	}
	now := time.Now()
	enrollment.LastAccessedAt = &now

	if enrollment.ProgressPercentage >= 100 && enrollment.CompletedAt == nil {
		enrollment.CompletedAt = &now
		enrollment.CertificateID = uuid.NewString()
	}

	if err := cc.DB.Save(&enrollment).Error; err != nil {
		return utils.MapError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"message": "Progress updated", "progress": enrollment})
}

// GetCourseAnalytics lists per-learner progress for a course.
func (cc *CoursesController) GetCourseAnalytics(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var enrollments []models.Enrollment
	if err := cc.DB.Where("course_id = ?", courseID).Find(&enrollments).Error; err != nil {
		return utils.MapError(c, err)
	}

	var rows []fiber.Map
	for _, e := range enrollments {
		var user models.User
		if err := cc.DB.First(&user, e.UserID).Error; err != nil {
			continue
		}

		rows = append(rows, fiber.Map{
			"user_id":             user.ID,
			"username":            user.Username,
			"completed_lessons":   e.CompletedLessons,
			"progress_percentage": e.ProgressPercentage,
			"last_accessed_at":    e.LastAccessedAt,
			"completed_at":        e.CompletedAt,
		})
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"analytics": rows})
}

func (cc *CoursesController) invalidateCatalog() {
	// Catalog keys are filter-dependent; dropping the unfiltered key covers the
	// common path and the rest age out with the TTL.
	cc.Cache.Delete("catalog::")
}
