package models

import (
	"time"

	"gorm.io/gorm"
)

type Course struct {
	gorm.Model
	Title           string
	ShortDesc       string
	Description     string
	Level           string // beginner, intermediate, advanced
	Category        string // e.g. grammar, kanji, conversation
	Price           float64 `gorm:"default:0"`
	DiscountedPrice float64 `gorm:"default:0"`
	ThumbnailURL    string
	AuthorID        uint
	IsPublished     bool `gorm:"default:false"`
	Modules         []CourseModule
}

type CourseModule struct {
	gorm.Model
	CourseID    uint `gorm:"index;not null"`
	Title       string
	Description string
	OrderIndex  int  `gorm:"default:0"`
	IsPublished bool `gorm:"default:false"`
	Items       []CurriculumItem `gorm:"foreignKey:ModuleID"`
}

// Curriculum item types. Exactly one governs which optional columns are
// meaningful; writes are validated against this.
const (
	ItemTypeLiveClass    = "live-class"
	ItemTypeAnnouncement = "announcement"
	ItemTypeResource     = "resource"
	ItemTypeAssignment   = "assignment"
	ItemTypeQuiz         = "quiz"
)

type CurriculumItem struct {
	gorm.Model
	ModuleID      uint   `gorm:"index;not null"`
	CourseID      uint   `gorm:"index;not null"`
	Type          string `gorm:"index;not null"`
	Title         string
	Description   string
	OrderIndex    int  `gorm:"default:0"`
	IsPublished   bool `gorm:"default:false"`
	ScheduledDate *time.Time

	// live-class
	MeetingLink     string
	MeetingPlatform string // zoom, meet
	Duration        int    // minutes

	// resource
	ResourceType string // pdf, video, link
	ResourceURL  string

	// announcement
	AnnouncementType string // info, warning, urgent
	IsPinned         bool   `gorm:"default:false"`
	ValidUntil       *time.Time

	// quiz / assignment
	Questions []QuizQuestion `gorm:"foreignKey:ItemID"`
}

// Enrollment is the single source of course membership. The composite unique
// index makes concurrent duplicate enrolls surface as a duplicate-key error.
type Enrollment struct {
	gorm.Model
	UserID             uint `gorm:"uniqueIndex:idx_user_course;not null"`
	CourseID           uint `gorm:"uniqueIndex:idx_user_course;not null"`
	EnrolledAt         time.Time
	CompletedLessons   int     `gorm:"default:0"`
	ProgressPercentage float64 `gorm:"default:0"`
	LastAccessedAt     *time.Time
	CompletedAt        *time.Time
	CertificateID      string
}
