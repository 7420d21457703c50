package routes

import (
	"github.com/eduai/eduai_backend/handlers"
	"github.com/eduai/eduai_backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func AIRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	ai := api.Group("/ai", middleware.Protected())
	ai.Post("/chat", handlers.AIChat)
	ai.Get("/chat", handlers.GetAIChatHistory)
}
