package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shikhi_backend/config"
	"shikhi_backend/models"
	"shikhi_backend/utils"
)

// ManagementController covers the admin-curated per-course materials:
// weekly content, class links and blog posts. Enrollment remains the single
// source of student membership.
type ManagementController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewManagementController(db *gorm.DB, cfg *config.Config) *ManagementController {
	return &ManagementController{DB: db, Cfg: cfg}
}

func (mg *ManagementController) courseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid course ID")
	}
	var course models.Course
	if err := mg.DB.First(&course, id).Error; err != nil {
		return 0, err
	}
	return uint(id), nil
}

func (mg *ManagementController) AddWeeklyContent(c *fiber.Ctx) error {
	courseID, err := mg.courseID(c)
	if err != nil {
		return utils.MapError(c, err)
	}

	var input struct {
		Week        int    `json:"week"`
		Type        string `json:"type"`
		Title       string `json:"title"`
		URL         string `json:"url"`
		IsPublished bool   `json:"is_published"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	errors := make(map[string]string)
	if input.Week < 1 {
		errors["week"] = "Week must be at least 1"
	}
	if input.Type != "video" && input.Type != "document" {
		errors["type"] = "Type must be video or document"
	}
	if input.Title == "" {
		errors["title"] = "Title is required"
	}
	if input.URL == "" {
		errors["url"] = "URL is required"
	}
	if len(errors) > 0 {
		return utils.ValidationError(c, errors)
	}

	content := models.WeeklyContent{
		CourseID:    courseID,
		Week:        input.Week,
		Type:        input.Type,
		Title:       input.Title,
		URL:         input.URL,
		IsPublished: input.IsPublished,
	}
	if err := mg.DB.Create(&content).Error; err != nil {
		return utils.MapError(c, err)
	}

	return utils.Created(c, content)
}

func (mg *ManagementController) DeleteWeeklyContent(c *fiber.Ctx) error {
	contentID, err := strconv.Atoi(c.Params("contentId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid content ID")
	}

	var content models.WeeklyContent
	if err := mg.DB.First(&content, contentID).Error; err != nil {
		return utils.MapError(c, err)
	}

	if err := mg.DB.Delete(&content).Error; err != nil {
		return utils.MapError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"message": "Weekly content removed"})
}

// GetWeeklyContent returns a course's published weekly materials grouped by
// week for the learner view.
func (mg *ManagementController) GetWeeklyContent(c *fiber.Ctx) error {
	courseID, err := mg.courseID(c)
	if err != nil {
		return utils.MapError(c, err)
	}

	var contents []models.WeeklyContent
	if err := mg.DB.Where("course_id = ? AND is_published = ?", courseID, true).
		Order("week asc, created_at asc").Find(&contents).Error; err != nil {
		return utils.MapError(c, err)
	}

	byWeek := make(map[int][]models.WeeklyContent)
	weeks := []int{}
	for _, content := range contents {
		if _, seen := byWeek[content.Week]; !seen {
			weeks = append(weeks, content.Week)
		}
		byWeek[content.Week] = append(byWeek[content.Week], content)
	}

	result := make([]fiber.Map, 0, len(weeks))
	for _, week := range weeks {
		result = append(result, fiber.Map{"week": week, "contents": byWeek[week]})
	}

	return utils.Success(c, fiber.StatusOK, result)
}

func (mg *ManagementController) AddClassLink(c *fiber.Ctx) error {
	courseID, err := mg.courseID(c)
	if err != nil {
		return utils.MapError(c, err)
	}

	var input struct {
		Title    string `json:"title"`
		URL      string `json:"url"`
		Platform string `json:"platform"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Title == "" || input.URL == "" {
		return utils.ValidationError(c, map[string]string{"link": "Title and URL are required"})
	}

	link := models.ClassLink{
		CourseID: courseID,
		Title:    input.Title,
		URL:      input.URL,
		Platform: input.Platform,
	}
	if err := mg.DB.Create(&link).Error; err != nil {
		return utils.MapError(c, err)
	}

	return utils.Created(c, link)
}

func (mg *ManagementController) GetClassLinks(c *fiber.Ctx) error {
	courseID, err := mg.courseID(c)
	if err != nil {
		return utils.MapError(c, err)
	}

	var links []models.ClassLink
	if err := mg.DB.Where("course_id = ?", courseID).Order("created_at desc").Find(&links).Error; err != nil {
		return utils.MapError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, links)
}

func (mg *ManagementController) DeleteClassLink(c *fiber.Ctx) error {
	linkID, err := strconv.Atoi(c.Params("linkId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid link ID")
	}

	var link models.ClassLink
	if err := mg.DB.First(&link, linkID).Error; err != nil {
		return utils.MapError(c, err)
	}

	if err := mg.DB.Delete(&link).Error; err != nil {
		return utils.MapError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"message": "Class link removed"})
}

func (mg *ManagementController) AddBlogPost(c *fiber.Ctx) error {
	courseID, err := mg.courseID(c)
	if err != nil {
		return utils.MapError(c, err)
	}
	userID := c.Locals("userID").(uint)

	var input struct {
		Title       string `json:"title"`
		Content     string `json:"content"`
		IsPublished bool   `json:"is_published"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Title == "" || input.Content == "" {
		return utils.ValidationError(c, map[string]string{"post": "Title and content are required"})
	}

	post := models.BlogPost{
		CourseID:    courseID,
		Title:       input.Title,
		Content:     input.Content,
		AuthorID:    userID,
		IsPublished: input.IsPublished,
	}
	if err := mg.DB.Create(&post).Error; err != nil {
		return utils.MapError(c, err)
	}

	return utils.Created(c, post)
}

func (mg *ManagementController) GetBlogPosts(c *fiber.Ctx) error {
	courseID, err := mg.courseID(c)
	if err != nil {
		return utils.MapError(c, err)
	}

	var posts []models.BlogPost
	if err := mg.DB.Where("course_id = ? AND is_published = ?", courseID, true).
		Order("created_at desc").Find(&posts).Error; err != nil {
		return utils.MapError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, posts)
}

// GetEnrolledStudents lists enrolled learners for the admin workspace,
// sourced from Enrollment rows.
func (mg *ManagementController) GetEnrolledStudents(c *fiber.Ctx) error {
	courseID, err := mg.courseID(c)
	if err != nil {
		return utils.MapError(c, err)
	}

	var enrollments []models.Enrollment
	if err := mg.DB.Where("course_id = ?", courseID).Find(&enrollments).Error; err != nil {
		return utils.MapError(c, err)
	}

	var students []fiber.Map
	for _, e := range enrollments {
		var user models.User
		if err := mg.DB.First(&user, e.UserID).Error; err != nil {
			continue
		}
		students = append(students, fiber.Map{
			"user_id":             user.ID,
			"username":            user.Username,
			"email":               user.Email,
			"enrolled_at":         e.EnrolledAt,
			"progress_percentage": e.ProgressPercentage,
		})
	}

	return utils.Success(c, fiber.StatusOK, students)
}
