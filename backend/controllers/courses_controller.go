package controllers

import (
	"learnhub/backend/config"
	"learnhub/backend/middleware"
	"learnhub/backend/models"
	"learnhub/backend/store"

	"github.com/gofiber/fiber/v2"
)

type CoursesController struct {
	Catalog *store.CatalogStore
	Cfg     *config.Config
}

func NewCoursesController(catalog *store.CatalogStore, cfg *config.Config) *CoursesController {
	return &CoursesController{Catalog: catalog, Cfg: cfg}
}

func (cc *CoursesController) GetCourses(c *fiber.Ctx) error {
	return c.JSON(cc.Catalog.Courses())
}

func (cc *CoursesController) GetCourseDetails(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	course, ok := cc.Catalog.GetCourseByID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Course not found",
		})
	}

	result := fiber.Map{
		"course": course,
	}
	if enrollment, ok := cc.Catalog.GetEnrollment(user.ID, course.ID); ok {
		result["enrollment"] = enrollment
	}

	return c.JSON(result)
}

// GetDashboard godoc
// @Summary Get dashboard data
// @Description Returns the user's enrolled courses with a progress overview
// @Tags courses
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security ApiKeyAuth
// @Router /dashboard [get]
func (cc *CoursesController) GetDashboard(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	enrollments := cc.Catalog.UserEnrollments(user.ID)
	courses := cc.Catalog.UserCourses(user.ID)

	completed := 0
	inProgress := 0
	for _, e := range enrollments {
		switch e.Status {
		case models.StatusCompleted:
			completed++
		case models.StatusInProgress:
			inProgress++
		}
	}

	return c.JSON(fiber.Map{
		"courses":     courses,
		"enrollments": enrollments,
		"overview": fiber.Map{
			"enrolled":    len(enrollments),
			"completed":   completed,
			"in_progress": inProgress,
		},
	})
}

func (cc *CoursesController) GetMyLearning(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var result []fiber.Map
	for _, course := range cc.Catalog.UserCourses(user.ID) {
		entry := fiber.Map{
			"course": course,
		}
		if enrollment, ok := cc.Catalog.GetEnrollment(user.ID, course.ID); ok {
			entry["enrollment"] = enrollment
		}
		result = append(result, entry)
	}

	return c.JSON(result)
}

func (cc *CoursesController) GetTeaching(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var result []models.Course
	for _, course := range cc.Catalog.Courses() {
		if course.Instructor.ID == user.ID {
			result = append(result, course)
		}
	}

	return c.JSON(result)
}

func (cc *CoursesController) Enroll(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	courseID := c.Params("id")
	if _, ok := cc.Catalog.GetCourseByID(courseID); !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Course not found",
		})
	}

	enrollment := cc.Catalog.Enroll(user.ID, courseID)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Enrolled",
		"enrollment": enrollment,
	})
}

func (cc *CoursesController) UpdateProgress(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	type ProgressInput struct {
		Progress         int `json:"progress"`
		CompletedLessons int `json:"completedLessons"`
	}

	var input ProgressInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	enrollment, ok := cc.Catalog.GetEnrollment(user.ID, c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Enrollment not found",
		})
	}

	updated, ok := cc.Catalog.UpdateProgress(enrollment.ID, input.Progress, input.CompletedLessons)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Enrollment not found",
		})
	}

	return c.JSON(fiber.Map{
		"message":  "Progress updated",
		"progress": updated,
	})
}

func (cc *CoursesController) CreateCourse(c *fiber.Ctx) error {
	var course models.Course
	if err := c.BodyParser(&course); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	created := cc.Catalog.AddCourse(course)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Course created",
		"course":  created,
	})
}

func (cc *CoursesController) UpdateCourse(c *fiber.Ctx) error {
	var input struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Thumbnail   string   `json:"thumbnail"`
		Category    string   `json:"category"`
		Difficulty  string   `json:"difficulty"`
		Duration    int      `json:"duration"`
		Tags        []string `json:"tags"`
	}

	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	course, ok := cc.Catalog.UpdateCourse(c.Params("id"), func(course *models.Course) {
		if input.Title != "" {
			course.Title = input.Title
		}
		if input.Description != "" {
			course.Description = input.Description
		}
		if input.Thumbnail != "" {
			course.Thumbnail = input.Thumbnail
		}
		if input.Category != "" {
			course.Category = input.Category
		}
		if input.Difficulty != "" {
			course.Difficulty = input.Difficulty
		}
		if input.Duration != 0 {
			course.Duration = input.Duration
		}
		if input.Tags != nil {
			course.Tags = input.Tags
		}
	})
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Course not found",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Course updated",
		"course":  course,
	})
}

func (cc *CoursesController) DeleteCourse(c *fiber.Ctx) error {
	if !cc.Catalog.DeleteCourse(c.Params("id")) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Course not found",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Course deleted",
	})
}
