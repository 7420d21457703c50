package routes

import (
	"github.com/eduai/eduai_backend/handlers"
	"github.com/eduai/eduai_backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func CourseRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	courses := api.Group("/courses")
	courses.Get("", handlers.ListCourses)
	courses.Get("/:courseId", handlers.GetCourse)
	courses.Get("/:courseId/lessons", middleware.Protected(), handlers.GetCourseLessons)

	courses.Post("", middleware.Protected(), middleware.TutorRequired(), handlers.CreateCourse)
	courses.Put("/:courseId", middleware.Protected(), handlers.UpdateCourse)
	courses.Delete("/:courseId", middleware.Protected(), handlers.DeleteCourse)
}
