package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/eduai/eduai_backend/database"
	"github.com/eduai/eduai_backend/middleware"
	"github.com/eduai/eduai_backend/models"
	"github.com/eduai/eduai_backend/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AIChatRequest struct {
	Type    string `json:"type" validate:"required,oneof=chat quiz essay planner"`
	Message string `json:"message" validate:"required,max=4000"`
}

// AIChat forwards the prompt to the text-generation collaborator and appends
// both sides of the exchange to the caller's transcript for that tool.
func AIChat(c *fiber.Ctx) error {
	actor := middleware.ActorFromCtx(c)

	var req AIChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	reply, err := services.GenerateAIReply(req.Type, req.Message)
	if err != nil {
		log.Printf("🔥 AI service call failed: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "AI service is unavailable, please try again."})
	}

	var chat models.AIChat
	err = database.DB.Where("user_id = ? AND type = ?", actor.ID, req.Type).First(&chat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		chat = models.AIChat{UserID: actor.ID, Type: req.Type}
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load chat history"})
	}

	now := time.Now()
	chat.Messages = append(chat.Messages,
		models.AIMessage{Role: "user", Content: req.Message, SentAt: now},
		models.AIMessage{Role: "model", Content: reply, SentAt: now},
	)
	if err := database.DB.Save(&chat).Error; err != nil {
		// the reply is still useful even if history persistence failed
		log.Printf("Failed to save AI chat history for user %s: %v", actor.ID, err)
	}

	return c.JSON(fiber.Map{"reply": reply})
}

func GetAIChatHistory(c *fiber.Ctx) error {
	actor := middleware.ActorFromCtx(c)
	chatType := c.Query("type", "chat")

	var chat models.AIChat
	err := database.DB.Where("user_id = ? AND type = ?", actor.ID, chatType).First(&chat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(fiber.Map{"messages": []models.AIMessage{}})
	} else if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load chat history"})
	}

	return c.JSON(fiber.Map{"messages": chat.Messages})
}
