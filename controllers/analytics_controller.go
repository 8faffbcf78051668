package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shikhi_backend/config"
	"shikhi_backend/models"
	"shikhi_backend/utils"
)

type AnalyticsController struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAnalyticsController(db *gorm.DB, cfg *config.Config) *AnalyticsController {
	return &AnalyticsController{DB: db, Cfg: cfg}
}

// GetPlatformOverview returns the most recent daily rollups written by the
// scheduler.
func (an *AnalyticsController) GetPlatformOverview(c *fiber.Ctx) error {
	days := c.QueryInt("days", 30)
	if days < 1 || days > 365 {
		days = 30
	}

	var rollups []models.PlatformAnalytics
	if err := an.DB.Order("date desc").Limit(days).Find(&rollups).Error; err != nil {
		return utils.MapError(c, err)
	}

	return utils.Success(c, fiber.StatusOK, rollups)
}
