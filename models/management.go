package models

import "gorm.io/gorm"

// Admin-curated per-course materials. All three reference the Course row;
// enrollment truth stays in Enrollment.

type WeeklyContent struct {
	gorm.Model
	CourseID    uint `gorm:"index;not null"`
	Week        int  `gorm:"default:1"`
	Type        string // video, document
	Title       string
	URL         string
	IsPublished bool `gorm:"default:false"`
}

type ClassLink struct {
	gorm.Model
	CourseID uint `gorm:"index;not null"`
	Title    string
	URL      string
	Platform string // zoom, meet
}

type BlogPost struct {
	gorm.Model
	CourseID    uint `gorm:"index;not null"`
	Title       string
	Content     string `gorm:"type:text"`
	AuthorID    uint
	IsPublished bool `gorm:"default:false"`
}
