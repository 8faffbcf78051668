package controllers

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shikhi_backend/config"
	"shikhi_backend/curriculum"
	"shikhi_backend/models"
	"shikhi_backend/utils"
	"shikhi_backend/validators"
)

type QuizController struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Logger *log.Logger
}

func NewQuizController(db *gorm.DB, cfg *config.Config, logger *log.Logger) *QuizController {
	return &QuizController{DB: db, Cfg: cfg, Logger: logger}
}

// SubmitResult scores an MCQ attempt server-side against the stored quiz
// definition and persists it. The quiz is identified by its item ID; one
// result per learner per quiz.
func (qc *QuizController) SubmitResult(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)
	input := c.Locals("validatedQuizResult").(*validators.QuizResultInput)

	var enrollment models.Enrollment
	if err := qc.DB.Where("user_id = ? AND course_id = ?", userID, input.CourseID).First(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.Forbidden(c, "Not enrolled in this course")
		}
		return utils.MapError(c, err)
	}

	var item models.CurriculumItem
	if err := qc.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_index asc")
	}).Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_index asc")
	}).Where("id = ? AND course_id = ? AND is_published = ?", input.QuizID, input.CourseID, true).
		First(&item).Error; err != nil {
		return utils.MapError(c, err)
	}

	if item.Type != models.ItemTypeQuiz {
		return utils.BadRequest(c, "Item is not a quiz")
	}

	// One attempt per quiz, keyed by the item's generated ID.
	var existing models.QuizResult
	if err := qc.DB.Where("user_id = ? AND item_id = ?", userID, item.ID).First(&existing).Error; err == nil {
		return utils.Error(c, fiber.StatusConflict, fiber.NewError(fiber.StatusConflict, "Quiz already completed"))
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.MapError(c, err)
	}

	score, correct := curriculum.ScoreQuiz(item.Questions, curriculum.AnswerMap(input.Answers))

	answersJSON, _ := json.Marshal(input.Answers)
	result := models.QuizResult{
		UserID:         userID,
		CourseID:       input.CourseID,
		ItemID:         item.ID,
		QuizTitle:      item.Title,
		Answers:        string(answersJSON),
		Score:          score,
		TotalQuestions: len(item.Questions),
		CorrectAnswers: correct,
	}

	if err := qc.DB.Create(&result).Error; err != nil {
		// The learner still gets the computed score; only persistence failed.
		qc.Logger.Printf("quiz result for user %d item %d not persisted: %v", userID, item.ID, err)
		return utils.Success(c, fiber.StatusOK, fiber.Map{
			"score":           score,
			"correct_answers": correct,
			"total_questions": len(item.Questions),
			"persisted":       false,
		})
	}

	return utils.Created(c, fiber.Map{
		"score":           score,
		"correct_answers": correct,
		"total_questions": len(item.Questions),
		"persisted":       true,
	})
}

// GetMyResults lists the caller's quiz results, optionally per course.
func (qc *QuizController) GetMyResults(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	query := qc.DB.Where("user_id = ?", userID)
	if courseID := c.QueryInt("course_id"); courseID > 0 {
		query = query.Where("course_id = ?", courseID)
	}

	var results []models.QuizResult
	if err := query.Order("created_at DESC").Find(&results).Error; err != nil {
		return utils.MapError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, results)
}
