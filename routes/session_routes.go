package routes

import (
	"github.com/eduai/eduai_backend/handlers"
	"github.com/eduai/eduai_backend/middleware"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func SessionRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	sessions := api.Group("/sessions", middleware.Protected())
	sessions.Get("", handlers.GetMySessions)
	sessions.Post("", handlers.CreateSession)
	sessions.Put("", handlers.UpdateSession)

	// Browser websocket clients cannot set an Authorization header on the
	// upgrade, so the room authenticates in-band on the first frame. Must
	// not live under the /sessions prefix or the JWT gate swallows it.
	api.Use("/session-rooms", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	api.Get("/session-rooms/:roomId", websocket.New(handlers.ServeSessionRoom))
}
