package controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shikhi_backend/config"
	"shikhi_backend/curriculum"
	"shikhi_backend/models"
	"shikhi_backend/utils"
	"shikhi_backend/validators"
)

type CurriculumController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewCurriculumController(db *gorm.DB, cfg *config.Config) *CurriculumController {
	return &CurriculumController{DB: db, Cfg: cfg}
}

// GetCurriculum returns the full curriculum projection for the admin editor,
// unpublished modules and items included.
func (cu *CurriculumController) GetCurriculum(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var course models.Course
	if err := cu.DB.Preload("Modules", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_index asc")
	}).Preload("Modules.Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_index asc")
	}).Preload("Modules.Items.Questions.Options").
		First(&course, courseID).Error; err != nil {
		return utils.MapError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"course_id": course.ID,
		"title":     course.Title,
		"modules":   course.Modules,
	})
}

func (cu *CurriculumController) AddModule(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	var input struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		IsPublished bool   `json:"is_published"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Title == "" {
		return utils.ValidationError(c, map[string]string{"title": "Title is required"})
	}

	var course models.Course
	if err := cu.DB.First(&course, courseID).Error; err != nil {
		return utils.MapError(c, err)
	}

	// Append at the end of the current order.
	var moduleCount int64
	cu.DB.Model(&models.CourseModule{}).Where("course_id = ?", courseID).Count(&moduleCount)

	module := models.CourseModule{
		CourseID:    uint(courseID),
		Title:       input.Title,
		Description: input.Description,
		OrderIndex:  int(moduleCount) + 1,
		IsPublished: input.IsPublished,
	}
	if err := cu.DB.Create(&module).Error; err != nil {
		return utils.MapError(c, err)
	}

	return utils.Created(c, fiber.Map{"message": "Module added", "module": module})
}

func (cu *CurriculumController) UpdateModule(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}
	moduleID, err := strconv.Atoi(c.Params("moduleId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid module ID")
	}

	var input struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		OrderIndex  *int   `json:"order_index"`
		IsPublished *bool  `json:"is_published"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var module models.CourseModule
	if err := cu.DB.Where("id = ? AND course_id = ?", moduleID, courseID).First(&module).Error; err != nil {
		return utils.MapError(c, err)
	}

	if input.Title != "" {
		module.Title = input.Title
	}
	if input.Description != "" {
		module.Description = input.Description
	}
	if input.OrderIndex != nil {
		module.OrderIndex = *input.OrderIndex
	}
	if input.IsPublished != nil {
		module.IsPublished = *input.IsPublished
	}

	if err := cu.DB.Save(&module).Error; err != nil {
		return utils.MapError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"message": "Module updated", "module": module})
}

func (cu *CurriculumController) DeleteModule(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}
	moduleID, err := strconv.Atoi(c.Params("moduleId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid module ID")
	}

	var module models.CourseModule
	if err := cu.DB.Where("id = ? AND course_id = ?", moduleID, courseID).First(&module).Error; err != nil {
		return utils.MapError(c, err)
	}

	if err := cu.DB.Delete(&module).Error; err != nil {
		return utils.MapError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"message": "Module removed"})
}

func (cu *CurriculumController) AddItem(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}
	moduleID, err := strconv.Atoi(c.Params("moduleId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid module ID")
	}

	input := c.Locals("validatedItem").(*validators.CurriculumItemInput)

	var module models.CourseModule
	if err := cu.DB.Where("id = ? AND course_id = ?", moduleID, courseID).First(&module).Error; err != nil {
		return utils.MapError(c, err)
	}

	var itemCount int64
	cu.DB.Model(&models.CurriculumItem{}).Where("module_id = ?", moduleID).Count(&itemCount)

	item := models.CurriculumItem{
		ModuleID:         uint(moduleID),
		CourseID:         uint(courseID),
		Type:             input.Type,
		Title:            input.Title,
		Description:      input.Description,
		OrderIndex:       int(itemCount) + 1,
		IsPublished:      input.IsPublished,
		ScheduledDate:    input.ScheduledDate,
		MeetingLink:      input.MeetingLink,
		MeetingPlatform:  input.MeetingPlatform,
		Duration:         input.Duration,
		ResourceType:     input.ResourceType,
		ResourceURL:      input.ResourceURL,
		AnnouncementType: input.AnnouncementType,
		IsPinned:         input.IsPinned,
		ValidUntil:       input.ValidUntil,
	}

	for qi, q := range input.Questions {
		question := models.QuizQuestion{Question: q.Question, OrderIndex: qi + 1}
		for oi, opt := range q.Options {
			question.Options = append(question.Options, models.QuizOption{
				OptionText: opt.OptionText,
				IsCorrect:  opt.IsCorrect,
				OrderIndex: oi + 1,
			})
		}
		item.Questions = append(item.Questions, question)
	}

	if err := cu.DB.Create(&item).Error; err != nil {
		return utils.MapError(c, err)
	}

	return utils.Created(c, fiber.Map{"message": "Item added", "item": item})
}

func (cu *CurriculumController) UpdateItem(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}
	itemID, err := strconv.Atoi(c.Params("itemId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid item ID")
	}

	input := c.Locals("validatedItem").(*validators.CurriculumItemInput)

	var item models.CurriculumItem
	if err := cu.DB.Where("id = ? AND course_id = ?", itemID, courseID).First(&item).Error; err != nil {
		return utils.MapError(c, err)
	}

	// The item keeps its type; only same-variant fields are replaced.
	if input.Type != item.Type {
		return utils.BadRequest(c, "Item type cannot be changed")
	}

	item.Title = input.Title
	item.Description = input.Description
	item.IsPublished = input.IsPublished
	item.ScheduledDate = input.ScheduledDate
	item.MeetingLink = input.MeetingLink
	item.MeetingPlatform = input.MeetingPlatform
	item.Duration = input.Duration
	item.ResourceType = input.ResourceType
	item.ResourceURL = input.ResourceURL
	item.AnnouncementType = input.AnnouncementType
	item.IsPinned = input.IsPinned
	item.ValidUntil = input.ValidUntil

	if err := cu.DB.Save(&item).Error; err != nil {
		return utils.MapError(c, err)
	}

	// Replace the question set when a quiz payload is present.
	if len(input.Questions) > 0 {
		var oldQuestions []models.QuizQuestion
		cu.DB.Where("item_id = ?", item.ID).Find(&oldQuestions)
		for _, q := range oldQuestions {
			cu.DB.Where("question_id = ?", q.ID).Delete(&models.QuizOption{})
		}
		cu.DB.Where("item_id = ?", item.ID).Delete(&models.QuizQuestion{})

		for qi, q := range input.Questions {
			question := models.QuizQuestion{ItemID: item.ID, Question: q.Question, OrderIndex: qi + 1}
			for oi, opt := range q.Options {
				question.Options = append(question.Options, models.QuizOption{
					OptionText: opt.OptionText,
					IsCorrect:  opt.IsCorrect,
					OrderIndex: oi + 1,
				})
			}
			if err := cu.DB.Create(&question).Error; err != nil {
				return utils.MapError(c, err)
			}
		}
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"message": "Item updated", "item": item})
}

func (cu *CurriculumController) DeleteItem(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}
	itemID, err := strconv.Atoi(c.Params("itemId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid item ID")
	}

	var item models.CurriculumItem
	if err := cu.DB.Where("id = ? AND course_id = ?", itemID, courseID).First(&item).Error; err != nil {
		return utils.MapError(c, err)
	}

	if err := cu.DB.Delete(&item).Error; err != nil {
		return utils.MapError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"message": "Item removed"})
}

// GetModuleSchedule returns the active module's published items grouped by
// UTC calendar date, plus pinned unexpired announcements shown above the
// groups. A module with no published items yields an explicit empty state.
func (cu *CurriculumController) GetModuleSchedule(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}
	moduleID, err := strconv.Atoi(c.Params("moduleId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid module ID")
	}

	var module models.CourseModule
	if err := cu.DB.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_index asc")
	}).Where("id = ? AND course_id = ? AND is_published = ?", moduleID, courseID, true).
		First(&module).Error; err != nil {
		return utils.MapError(c, err)
	}

	groups := curriculum.GroupItemsByDate(module.Items)
	pinned := curriculum.PinnedAnnouncements(module.Items, time.Now())

	return utils.Success(c, fiber.StatusOK, fiber.Map{
		"module_id":            module.ID,
		"title":                module.Title,
		"empty":                len(groups) == 0,
		"pinned_announcements": pinned,
		"groups":               groups,
	})
}
