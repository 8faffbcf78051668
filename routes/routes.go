package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"shikhi_backend/config"
	"shikhi_backend/controllers"
	"shikhi_backend/middleware"
	"shikhi_backend/utils"
	"shikhi_backend/validators"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config, cache *utils.TTLCache, mailer *utils.Mailer, logger *log.Logger) {
	// Auth routes
	authController := controllers.NewAuthController(db, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	adminMiddleware := middleware.AdminMiddleware(db, cfg)

	// User routes
	usersController := controllers.NewUsersController(db, cfg)
	app.Get("/api/users/me", authMiddleware, usersController.GetProfile)
	app.Put("/api/users/me", authMiddleware, usersController.UpdateProfile)
	app.Get("/api/users/me/courses", authMiddleware, usersController.GetMyCourses)

	// Course catalog and learner routes
	coursesController := controllers.NewCoursesController(db, cfg, cache, mailer, logger)
	courses := app.Group("/api/courses")
	courses.Get("/", coursesController.GetCourses)
	courses.Get("/:id", coursesController.GetCourseDetails)
	courses.Post("/:id/enroll", authMiddleware, coursesController.Enroll)
	courses.Post("/:id/progress", authMiddleware, coursesController.UpdateProgress)

	// Curriculum learner view
	curriculumController := controllers.NewCurriculumController(db, cfg)
	courses.Get("/:id/modules/:moduleId/schedule", authMiddleware, curriculumController.GetModuleSchedule)

	// Weekly materials, class links, blog posts (learner read)
	managementController := controllers.NewManagementController(db, cfg)
	courses.Get("/:id/weekly-content", authMiddleware, managementController.GetWeeklyContent)
	courses.Get("/:id/blog-posts", authMiddleware, managementController.GetBlogPosts)

	// Assignments
	assignmentsController := controllers.NewAssignmentsController(db, cfg)
	courses.Get("/:id/assignments", authMiddleware, assignmentsController.ListAssignments)
	app.Post("/api/assignments/submit", authMiddleware, validators.SubmitAssignment(), assignmentsController.Submit)

	// Quiz results
	quizController := controllers.NewQuizController(db, cfg, logger)
	app.Post("/api/quiz-results", authMiddleware, validators.SubmitQuizResult(), quizController.SubmitResult)
	app.Get("/api/quiz-results", authMiddleware, quizController.GetMyResults)

	// Messages
	messagesController := controllers.NewMessagesController(db, cfg)
	messages := app.Group("/api/messages", authMiddleware)
	messages.Get("/", messagesController.GetConversation)
	messages.Post("/", validators.SendMessage(), messagesController.Send)
	messages.Patch("/read", messagesController.MarkRead)
	messages.Delete("/:id", messagesController.Delete)

	// Uploads
	uploadsController := controllers.NewUploadsController(cfg)
	app.Post("/api/upload", authMiddleware, uploadsController.Upload)
	app.Static("/uploads", cfg.UploadDir)

	// Call tokens
	callsController := controllers.NewCallsController(cfg, logger)
	app.Get("/api/call/token", authMiddleware, callsController.GetToken)

	// Admin routes for courses
	adminCourses := app.Group("/api/admin/courses", adminMiddleware)
	adminCourses.Post("/", validators.CreateCourse(), coursesController.CreateCourse)
	adminCourses.Put("/:id", coursesController.UpdateCourse)
	adminCourses.Put("/:id/publish", coursesController.PublishCourse)
	adminCourses.Get("/:id/analytics", coursesController.GetCourseAnalytics)
	adminCourses.Get("/:id/students", managementController.GetEnrolledStudents)

	// Admin curriculum editor
	adminCourses.Get("/:id/curriculum", curriculumController.GetCurriculum)
	adminCourses.Post("/:id/modules", curriculumController.AddModule)
	adminCourses.Put("/:id/modules/:moduleId", curriculumController.UpdateModule)
	adminCourses.Delete("/:id/modules/:moduleId", curriculumController.DeleteModule)
	adminCourses.Post("/:id/modules/:moduleId/items", validators.CurriculumItem(), curriculumController.AddItem)
	adminCourses.Put("/:id/items/:itemId", validators.CurriculumItem(), curriculumController.UpdateItem)
	adminCourses.Delete("/:id/items/:itemId", curriculumController.DeleteItem)

	// Admin assignments
	adminCourses.Post("/:id/assignments", validators.CreateAssignment(), assignmentsController.CreateAssignment)
	adminCourses.Put("/:id/assignments/:assignmentId", assignmentsController.UpdateAssignment)
	adminCourses.Delete("/:id/assignments/:assignmentId", assignmentsController.DeleteAssignment)
	adminCourses.Get("/:id/assignments/:assignmentId/submissions", assignmentsController.ListSubmissions)
	adminCourses.Put("/:id/submissions/:submissionId/grade", assignmentsController.GradeSubmission)

	// Admin course workspace
	adminCourses.Post("/:id/weekly-content", managementController.AddWeeklyContent)
	adminCourses.Delete("/:id/weekly-content/:contentId", managementController.DeleteWeeklyContent)
	adminCourses.Post("/:id/class-links", managementController.AddClassLink)
	adminCourses.Get("/:id/class-links", managementController.GetClassLinks)
	adminCourses.Delete("/:id/class-links/:linkId", managementController.DeleteClassLink)
	adminCourses.Post("/:id/blog-posts", managementController.AddBlogPost)

	// Platform analytics
	analyticsController := controllers.NewAnalyticsController(db, cfg)
	app.Get("/api/admin/analytics", adminMiddleware, analyticsController.GetPlatformOverview)
}
