package handlers

import (
	"errors"
	"strconv"

	"github.com/eduai/eduai_backend/database"
	"github.com/eduai/eduai_backend/middleware"
	"github.com/eduai/eduai_backend/models"
	"github.com/eduai/eduai_backend/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreateReviewRequest struct {
	TutorID  string `json:"tutorId" validate:"required,uuid"`
	CourseID string `json:"courseId" validate:"required,uuid"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Comment  string `json:"comment" validate:"required,max=1000"`
}

// CreateReview inserts the review and recomputes both aggregates in one
// transaction. The (student, course) unique index is what rejects a
// duplicate, so two concurrent submissions cannot both pass it.
func CreateReview(c *fiber.Ctx) error {
	actor := middleware.ActorFromCtx(c)

	var req CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	tutorID, _ := uuid.Parse(req.TutorID)
	courseID, _ := uuid.Parse(req.CourseID)

	var course models.Course
	if err := database.DB.First(&course, "id = ?", courseID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	review := models.Review{
		StudentID: actor.ID,
		TutorID:   tutorID,
		CourseID:  courseID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&review).Error; err != nil {
			return err
		}
		if err := services.RecomputeTutorRating(tx, tutorID); err != nil {
			return err
		}
		return services.RecomputeCourseRating(tx, courseID)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "You have already reviewed this course"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to submit review"})
	}

	database.DB.Preload("Student").Preload("Course").First(&review, "id = ?", review.ID)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Review submitted successfully",
		"review":  review,
	})
}

// ListReviews is public, filterable by course or tutor, newest first.
func ListReviews(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	query := database.DB.Model(&models.Review{})
	if courseID := c.Query("courseId"); courseID != "" {
		query = query.Where("course_id = ?", courseID)
	}
	if tutorID := c.Query("tutorId"); tutorID != "" {
		query = query.Where("tutor_id = ?", tutorID)
	}

	var total int64
	query.Count(&total)

	var reviews []models.Review
	offset := (page - 1) * limit
	query.
		Preload("Student").
		Preload("Course").
		Order("created_at desc").
		Offset(offset).Limit(limit).
		Find(&reviews)

	return c.JSON(fiber.Map{
		"reviews": reviews,
		"pagination": paginationMeta(page, limit, total),
	})
}
