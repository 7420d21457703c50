package routes

import (
	"github.com/eduai/eduai_backend/handlers"
	"github.com/eduai/eduai_backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.AdminRequired())
	admin.Get("/stats", handlers.GetPlatformStats)
	admin.Get("/users", handlers.AdminGetUsers)
}
