package routes

import (
	"github.com/eduai/eduai_backend/handlers"
	"github.com/eduai/eduai_backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func ReviewRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	reviews := api.Group("/reviews")
	reviews.Get("", handlers.ListReviews)
	reviews.Post("", middleware.Protected(), handlers.CreateReview)
}
