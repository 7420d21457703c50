package routes

import (
	"github.com/eduai/eduai_backend/handlers"
	"github.com/eduai/eduai_backend/middleware"
	"github.com/gofiber/fiber/v2"
)

func PaymentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	payments := api.Group("/payments")
	payments.Get("", middleware.Protected(), handlers.GetMyPayments)
	payments.Post("", middleware.Protected(), handlers.CreatePayment)

	// called by the payment processor, not by users
	payments.Post("/webhook", handlers.HandlePaymentWebhook)
}
