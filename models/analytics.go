package models

import "gorm.io/gorm"

// PlatformAnalytics is one daily rollup row written by the scheduler.
type PlatformAnalytics struct {
	gorm.Model
	Date              string `gorm:"uniqueIndex"`
	TotalUsers        int64
	TotalEnrollments  int64
	CoursesPublished  int64
	AvgCourseProgress float64
	AvgQuizScore      float64
}
