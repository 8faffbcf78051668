package main

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"shikhi_backend/config"
	"shikhi_backend/database"
	"shikhi_backend/models"
)

// One-shot database setup: migrate, seed a sample course with curriculum,
// and run a smoke query.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	var existing models.Course
	if err := db.Where("title = ?", "Japanese for Beginners (N5)").First(&existing).Error; err == nil {
		log.Println("Sample data already present, skipping seed.")
		return
	}

	hashed, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := models.User{
		Username:     "admin",
		Email:        "admin@japaneseshikhi.com",
		PasswordHash: string(hashed),
		Role:         "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Could not create admin user: %v", err)
	}

	tomorrow := time.Now().Add(24 * time.Hour)
	course := models.Course{
		Title:       "Japanese for Beginners (N5)",
		ShortDesc:   "Hiragana, katakana and everyday phrases",
		Description: "A twelve week introduction to Japanese covering both kana scripts, basic grammar and survival conversation.",
		Level:       "beginner",
		Category:    "grammar",
		Price:       49,
		AuthorID:    admin.ID,
		IsPublished: true,
		Modules: []models.CourseModule{
			{
				Title:       "Week 1: Hiragana",
				OrderIndex:  1,
				IsPublished: true,
				Items: []models.CurriculumItem{
					{
						Type:            models.ItemTypeLiveClass,
						Title:           "Kickoff live class",
						OrderIndex:      1,
						IsPublished:     true,
						ScheduledDate:   &tomorrow,
						MeetingLink:     "https://meet.example.com/shikhi-n5",
						MeetingPlatform: "meet",
						Duration:        60,
					},
					{
						Type:        models.ItemTypeQuiz,
						Title:       "Hiragana reading check",
						OrderIndex:  2,
						IsPublished: true,
						Questions: []models.QuizQuestion{
							{
								Question:   "Which romaji matches the kana あ?",
								OrderIndex: 1,
								Options: []models.QuizOption{
									{OptionText: "a", IsCorrect: true, OrderIndex: 1},
									{OptionText: "o", OrderIndex: 2},
									{OptionText: "nu", OrderIndex: 3},
								},
							},
						},
					},
				},
			},
		},
	}
	if err := db.Create(&course).Error; err != nil {
		log.Fatalf("Could not seed sample course: %v", err)
	}

	// Smoke check: the seeded curriculum must round-trip.
	var check models.Course
	if err := db.Preload("Modules.Items.Questions.Options").First(&check, course.ID).Error; err != nil {
		log.Fatalf("Smoke query failed: %v", err)
	}
	if len(check.Modules) != 1 || len(check.Modules[0].Items) != 2 {
		log.Fatalf("Seeded curriculum incomplete: %+v", check.Modules)
	}

	log.Println("Database setup complete.")
}
