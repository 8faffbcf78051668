package models

import (
	"time"

	"gorm.io/gorm"
)

type Assignment struct {
	gorm.Model
	CourseID         uint `gorm:"index;not null"`
	Title            string
	Instructions     string
	Week             int `gorm:"default:1"`
	Points           int `gorm:"default:0"`
	DueDate          *time.Time
	AcceptTextAnswer bool `gorm:"default:true"`
	AcceptFileUpload bool `gorm:"default:true"`
	IsPublished      bool `gorm:"default:false"`
	Attachments      []AssignmentAttachment
}

type AssignmentAttachment struct {
	gorm.Model
	AssignmentID uint   `gorm:"index;not null"`
	Type         string // drive, youtube, file, link
	URL          string
	Label        string
}

type AssignmentSubmission struct {
	gorm.Model
	AssignmentID uint `gorm:"index;not null"`
	CourseID     uint `gorm:"index;not null"`
	UserID       uint `gorm:"index;not null"`
	TextAnswer   string
	FileURL      string
	FileName     string
	IsLate       bool `gorm:"default:false"`
	Grade        *int
	Feedback     string
}
