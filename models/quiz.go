package models

import "gorm.io/gorm"

type QuizQuestion struct {
	gorm.Model
	ItemID     uint `gorm:"index;not null"`
	Question   string
	OrderIndex int          `gorm:"default:0"`
	Options    []QuizOption `gorm:"foreignKey:QuestionID"`
}

type QuizOption struct {
	gorm.Model
	QuestionID uint `gorm:"index;not null"`
	OptionText string
	IsCorrect  bool `gorm:"default:false"`
	OrderIndex int  `gorm:"default:0"`
}

// QuizResult stores one scored attempt. Retakes are rejected per (user, item),
// keyed by the quiz item's generated ID rather than its title.
type QuizResult struct {
	gorm.Model
	UserID         uint `gorm:"index;not null"`
	CourseID       uint `gorm:"index;not null"`
	ItemID         uint `gorm:"index;not null"`
	QuizTitle      string
	Answers        string // JSON map of questionIndex -> selectedOptionIndex
	Score          int
	TotalQuestions int
	CorrectAnswers int
}
