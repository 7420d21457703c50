package handlers

import (
	"errors"
	"time"

	"github.com/eduai/eduai_backend/database"
	"github.com/eduai/eduai_backend/middleware"
	"github.com/eduai/eduai_backend/models"
	"github.com/eduai/eduai_backend/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// sessionTransitions is the booking state machine. completed and cancelled
// are terminal; completing a completed session is treated as a no-op success
// by the handler, not listed here.
var sessionTransitions = map[string][]string{
	models.SessionUpcoming: {models.SessionLive, models.SessionCompleted, models.SessionCancelled},
	models.SessionLive:     {models.SessionCompleted, models.SessionCancelled},
}

func canTransition(from, to string) bool {
	for _, allowed := range sessionTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

type CreateSessionRequest struct {
	TutorID     string  `json:"tutorId" validate:"required,uuid"`
	CourseID    string  `json:"courseId" validate:"omitempty,uuid"`
	ScheduledAt string  `json:"scheduledAt" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Duration    int     `json:"duration" validate:"omitempty,min=15,max=180"`
	Price       float64 `json:"price" validate:"omitempty,gte=0"`
}

// CreateSession books a meeting between the caller (student) and a tutor.
// The room id is unique across all sessions ever created; a storage-level
// collision is retried once with a fresh suffix.
func CreateSession(c *fiber.Ctx) error {
	actor := middleware.ActorFromCtx(c)

	var req CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tutorID, _ := uuid.Parse(req.TutorID)
	var tutor models.User
	if err := database.DB.First(&tutor, "id = ?", tutorID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tutor not found"})
	}

	var courseID *uuid.UUID
	if req.CourseID != "" {
		id, _ := uuid.Parse(req.CourseID)
		courseID = &id
	}

	scheduledAt, _ := time.Parse(time.RFC3339, req.ScheduledAt)
	duration := req.Duration
	if duration == 0 {
		duration = 60
	}

	session := models.Session{
		TutorID:     tutorID,
		StudentID:   actor.ID,
		CourseID:    courseID,
		RoomID:      utils.GenerateRoomID(),
		ScheduledAt: scheduledAt,
		Duration:    duration,
		Price:       req.Price,
		Status:      models.SessionUpcoming,
	}

	err := database.DB.Create(&session).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		session.ID = uuid.Nil
		session.RoomID = utils.GenerateRoomID()
		err = database.DB.Create(&session).Error
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to book session"})
	}

	database.DB.Preload("Tutor").Preload("Student").Preload("Course").First(&session, "id = ?", session.ID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Session booked successfully",
		"session": session,
	})
}

// GetMySessions lists the caller's sessions, on either side of the booking.
func GetMySessions(c *fiber.Ctx) error {
	actor := middleware.ActorFromCtx(c)

	query := database.DB.
		Where("tutor_id = ? OR student_id = ?", actor.ID, actor.ID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var sessions []models.Session
	query.
		Preload("Tutor").
		Preload("Student").
		Preload("Course").
		Order("scheduled_at asc").
		Find(&sessions)

	return c.JSON(fiber.Map{"sessions": sessions})
}

type UpdateSessionRequest struct {
	SessionID string  `json:"sessionId" validate:"required,uuid"`
	Status    string  `json:"status" validate:"omitempty,oneof=upcoming live completed cancelled"`
	Notes     *string `json:"notes" validate:"omitempty,max=2000"`
}

// UpdateSession mutates status and notes. Only the two participants (or an
// admin) may touch a booking. Terminal states stay terminal, with one
// exception: re-completing a completed session is accepted as a no-op.
func UpdateSession(c *fiber.Ctx) error {
	actor := middleware.ActorFromCtx(c)

	var req UpdateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var session models.Session
	if err := database.DB.First(&session, "id = ?", req.SessionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}

	if !middleware.PolicyParticipant.Allows(actor, session.TutorID, session.StudentID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not authorized to update this session"})
	}

	if req.Status != "" && req.Status != session.Status {
		if !canTransition(session.Status, req.Status) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Cannot change a " + session.Status + " session to " + req.Status,
			})
		}
		session.Status = req.Status
	}
	if req.Notes != nil {
		session.Notes = *req.Notes
	}

	if err := database.DB.Save(&session).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update session"})
	}

	database.DB.Preload("Tutor").Preload("Student").Preload("Course").First(&session, "id = ?", session.ID)

	return c.JSON(fiber.Map{
		"message": "Session updated successfully",
		"session": session,
	})
}
