package routes

import (
	"learnhub/backend/auth"
	"learnhub/backend/config"
	"learnhub/backend/controllers"
	"learnhub/backend/exam"
	"learnhub/backend/middleware"
	"learnhub/backend/models"
	"learnhub/backend/store"

	"github.com/gofiber/fiber/v2"
)

// Services bundles the explicitly constructed stores and services the routes
// close over. Everything here is process-wide, built once at startup.
type Services struct {
	Sessions *store.SessionStore
	Catalog  *store.CatalogStore
	Prefs    *store.PrefsStore
	Auth     *auth.Service
	Exams    *exam.Manager
}

func SetupRoutes(app *fiber.App, svc *Services, cfg *config.Config) {
	// Auth routes
	authController := controllers.NewAuthController(svc.Auth, cfg)
	app.Post("/api/auth/login", authController.Login)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg, svc.Sessions)
	learnerOnly := middleware.RoleMiddleware(models.RoleLearner)
	instructorOnly := middleware.RoleMiddleware(models.RoleInstructor)
	adminOnly := middleware.RoleMiddleware(models.RoleAdmin)

	app.Post("/api/auth/logout", authMiddleware, authController.Logout)
	app.Post("/api/auth/role", authMiddleware, authController.SwitchRole)

	// User routes
	userController := controllers.NewUserController(cfg)
	app.Get("/api/user/profile", authMiddleware, userController.GetProfile)

	// Navigation and preferences
	navController := controllers.NewNavController(svc.Prefs, cfg)
	app.Get("/api/navigation", authMiddleware, navController.GetNavigation)
	app.Get("/api/preferences/sidebar", authMiddleware, navController.GetSidebar)
	app.Put("/api/preferences/sidebar", authMiddleware, navController.SetSidebar)

	// Courses routes
	coursesController := controllers.NewCoursesController(svc.Catalog, cfg)
	app.Get("/api/dashboard", authMiddleware, coursesController.GetDashboard)
	app.Get("/api/my-learning", authMiddleware, learnerOnly, coursesController.GetMyLearning)
	app.Get("/api/teaching", authMiddleware, instructorOnly, coursesController.GetTeaching)

	courses := app.Group("/api/courses", authMiddleware)
	courses.Get("/", coursesController.GetCourses)
	courses.Get("/:id", coursesController.GetCourseDetails)
	courses.Post("/:id/enroll", coursesController.Enroll)
	courses.Post("/:id/progress", coursesController.UpdateProgress)

	// Exam routes
	examController := controllers.NewExamController(svc.Exams, cfg)
	examGroup := courses.Group("/:id/exam/:lessonId")
	examGroup.Get("/", examController.GetExam)
	examGroup.Post("/unlock", examController.Unlock)
	examGroup.Post("/start", examController.Start)
	examGroup.Post("/answer", examController.Answer)
	examGroup.Post("/submit", examController.Submit)
	examGroup.Post("/cancel", examController.Cancel)

	// Admin routes for courses
	adminCourses := app.Group("/api/admin/courses", authMiddleware, adminOnly)
	adminCourses.Post("/", coursesController.CreateCourse)
	adminCourses.Put("/:id", coursesController.UpdateCourse)
	adminCourses.Delete("/:id", coursesController.DeleteCourse)
}
