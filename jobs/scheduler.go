package jobs

import (
	"log"
	"time"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"shikhi_backend/models"
	"shikhi_backend/utils"
)

// StartScheduler wires the periodic jobs: the catalog cache sweep and the
// daily platform analytics rollup. Returns the running cron instance.
func StartScheduler(db *gorm.DB, cache *utils.TTLCache, logger *log.Logger) *cron.Cron {
	c := cron.New()

	// Sweep expired catalog cache entries.
	c.AddFunc("@every 10m", func() {
		cache.Sweep()
	})

	// Daily rollup shortly after midnight.
	c.AddFunc("5 0 * * *", func() {
		if err := RollupPlatformAnalytics(db); err != nil {
			logger.Printf("platform analytics rollup failed: %v", err)
		}
	})

	c.Start()
	return c
}

// RollupPlatformAnalytics writes (or refreshes) the rollup row for the
// previous day.
func RollupPlatformAnalytics(db *gorm.DB) error {
	yesterday := now.New(time.Now().AddDate(0, 0, -1)).BeginningOfDay()
	date := yesterday.Format("2006-01-02")

	var totalUsers, totalEnrollments, coursesPublished int64
	db.Model(&models.User{}).Count(&totalUsers)
	db.Model(&models.Enrollment{}).Count(&totalEnrollments)
	db.Model(&models.Course{}).Where("is_published = ?", true).Count(&coursesPublished)

	var avgProgress, avgScore float64
	db.Model(&models.Enrollment{}).Select("COALESCE(AVG(progress_percentage), 0)").Scan(&avgProgress)
	db.Model(&models.QuizResult{}).Select("COALESCE(AVG(score), 0)").Scan(&avgScore)

	rollup := models.PlatformAnalytics{
		Date:              date,
		TotalUsers:        totalUsers,
		TotalEnrollments:  totalEnrollments,
		CoursesPublished:  coursesPublished,
		AvgCourseProgress: avgProgress,
		AvgQuizScore:      avgScore,
	}

	var existing models.PlatformAnalytics
	if err := db.Where("date = ?", date).First(&existing).Error; err == nil {
		rollup.ID = existing.ID
	}

	return db.Save(&rollup).Error
}
