package routes

import (
	"github.com/eduai/eduai_backend/handlers"
	"github.com/eduai/eduai_backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func UserRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	users := api.Group("/users")
	users.Get("", handlers.ListUsers)
	users.Get("/:userId", handlers.GetUser)
	users.Put("/:userId", middleware.Protected(), handlers.UpdateUser)
}
