package controllers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shikhi_backend/config"
	"shikhi_backend/models"
	"shikhi_backend/utils"
	"shikhi_backend/validators"
)

type AssignmentsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAssignmentsController(db *gorm.DB, cfg *config.Config) *AssignmentsController {
	return &AssignmentsController{DB: db, Cfg: cfg}
}

func (ac *AssignmentsController) CreateAssignment(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	input := c.Locals("validatedAssignment").(*validators.AssignmentInput)

	var course models.Course
	if err := ac.DB.First(&course, courseID).Error; err != nil {
		return utils.MapError(c, err)
	}

	assignment := models.Assignment{
		CourseID:         uint(courseID),
		Title:            input.Title,
		Instructions:     input.Instructions,
		Week:             input.Week,
		Points:           input.Points,
		DueDate:          input.DueDate,
		AcceptTextAnswer: input.AcceptTextAnswer,
		AcceptFileUpload: input.AcceptFileUpload,
		IsPublished:      input.IsPublished,
	}
	for _, a := range input.Attachments {
		assignment.Attachments = append(assignment.Attachments, models.AssignmentAttachment{
			Type:  a.Type,
			URL:   a.URL,
			Label: a.Label,
		})
	}

	if err := ac.DB.Create(&assignment).Error; err != nil {
		return utils.MapError(c, err)
	}

	return utils.Created(c, fiber.Map{"message": "Assignment created", "assignment": assignment})
}

func (ac *AssignmentsController) UpdateAssignment(c *fiber.Ctx) error {
	assignmentID, err := strconv.Atoi(c.Params("assignmentId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid assignment ID")
	}

	var input struct {
		Title        string     `json:"title"`
		Instructions string     `json:"instructions"`
		Week         *int       `json:"week"`
		Points       *int       `json:"points"`
		DueDate      *time.Time `json:"due_date"`
		IsPublished  *bool      `json:"is_published"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	var assignment models.Assignment
	if err := ac.DB.First(&assignment, assignmentID).Error; err != nil {
		return utils.MapError(c, err)
	}

	if input.Title != "" {
		assignment.Title = input.Title
	}
	if input.Instructions != "" {
		assignment.Instructions = input.Instructions
	}
	if input.Week != nil {
		assignment.Week = *input.Week
	}
	if input.Points != nil {
		assignment.Points = *input.Points
	}
	if input.DueDate != nil {
		assignment.DueDate = input.DueDate
	}
	if input.IsPublished != nil {
		assignment.IsPublished = *input.IsPublished
	}

	if err := ac.DB.Save(&assignment).Error; err != nil {
		return utils.MapError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"message": "Assignment updated", "assignment": assignment})
}

func (ac *AssignmentsController) DeleteAssignment(c *fiber.Ctx) error {
	assignmentID, err := strconv.Atoi(c.Params("assignmentId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid assignment ID")
	}

	var assignment models.Assignment
	if err := ac.DB.First(&assignment, assignmentID).Error; err != nil {
		return utils.MapError(c, err)
	}

	if err := ac.DB.Delete(&assignment).Error; err != nil {
		return utils.MapError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"message": "Assignment removed"})
}

// ListAssignments returns a course's published assignments, optionally for
// one week.
func (ac *AssignmentsController) ListAssignments(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	query := ac.DB.Preload("Attachments").
		Where("course_id = ? AND is_published = ?", courseID, true)
	if week := c.QueryInt("week"); week > 0 {
		query = query.Where("week = ?", week)
	}

	var assignments []models.Assignment
	if err := query.Order("week asc, created_at asc").Find(&assignments).Error; err != nil {
		return utils.MapError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, assignments)
}

// Submit records an assignment submission. The payload references an already
// uploaded file URL; when neither text nor file is present the validator has
// rejected the request before this point. Resubmission replaces the previous
// submission.
func (ac *AssignmentsController) Submit(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	input := c.Locals("validatedSubmission").(*validators.SubmissionInput)

	var enrollment models.Enrollment
	if err := ac.DB.Where("user_id = ? AND course_id = ?", userID, input.CourseID).First(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Forbidden(c, "Not enrolled in this course")
		}
		return utils.MapError(c, err)
	}

	var assignment models.Assignment
	if err := ac.DB.Where("id = ? AND course_id = ? AND is_published = ?", input.AssignmentID, input.CourseID, true).
		First(&assignment).Error; err != nil {
		return utils.MapError(c, err)
	}

	if input.TextAnswer != "" && !assignment.AcceptTextAnswer {
		return utils.BadRequest(c, "This assignment does not accept text answers")
	}
	if input.FileURL != "" && !assignment.AcceptFileUpload {
		return utils.BadRequest(c, "This assignment does not accept file uploads")
	}

	isLate := assignment.DueDate != nil && time.Now().After(*assignment.DueDate)

	var submission models.AssignmentSubmission
	err := ac.DB.Where("user_id = ? AND assignment_id = ?", userID, input.AssignmentID).First(&submission).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		submission = models.AssignmentSubmission{
			AssignmentID: input.AssignmentID,
			CourseID:     input.CourseID,
			UserID:       userID,
		}
	case err != nil:
		return utils.MapError(c, err)
	}

	submission.TextAnswer = input.TextAnswer
	submission.FileURL = input.FileURL
	submission.FileName = input.FileName
	submission.IsLate = isLate

	if err := ac.DB.Save(&submission).Error; err != nil {
		return utils.MapError(c, err)
	}

	return utils.Created(c, fiber.Map{"message": "Submission received", "submission": submission})
}

// ListSubmissions lists submissions for an assignment (admin view).
func (ac *AssignmentsController) ListSubmissions(c *fiber.Ctx) error {
	assignmentID, err := strconv.Atoi(c.Params("assignmentId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid assignment ID")
	}

	var submissions []models.AssignmentSubmission
	if err := ac.DB.Where("assignment_id = ?", assignmentID).Order("created_at asc").Find(&submissions).Error; err != nil {
		return utils.MapError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, submissions)
}

// GradeSubmission records points and feedback for one submission.
func (ac *AssignmentsController) GradeSubmission(c *fiber.Ctx) error {
	submissionID, err := strconv.Atoi(c.Params("submissionId"))
	if err != nil {
		return utils.BadRequest(c, "Invalid submission ID")
	}

	var input struct {
		Grade    *int   `json:"grade"`
		Feedback string `json:"feedback"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Grade == nil {
		return utils.ValidationError(c, map[string]string{"grade": "Grade is required"})
	}

	var submission models.AssignmentSubmission
	if err := ac.DB.First(&submission, submissionID).Error; err != nil {
		return utils.MapError(c, err)
	}

	submission.Grade = input.Grade
	submission.Feedback = input.Feedback

	if err := ac.DB.Save(&submission).Error; err != nil {
		return utils.MapError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, fiber.Map{"message": "Submission graded", "submission": submission})
}
