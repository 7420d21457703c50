package handlers

import (
	"strconv"

	"github.com/eduai/eduai_backend/database"
	"github.com/eduai/eduai_backend/middleware"
	"github.com/eduai/eduai_backend/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ListUsers is the public tutor directory: filter by subject and free text,
// best-rated first.
func ListUsers(c *fiber.Ctx) error {
	role := c.Query("role", "tutor")
	subject := c.Query("subject")
	search := c.Query("search")
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "12"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 12
	}

	query := database.DB.Model(&models.User{}).Where("role = ?", role)
	if subject != "" {
		// subjects is stored as a JSON array of strings
		query = query.Where(`subjects LIKE ?`, `%"`+subject+`"%`)
	}
	if search != "" {
		query = query.Where("name ILIKE ? OR bio ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	query.Count(&total)

	var users []models.User
	offset := (page - 1) * limit
	query.Order("rating desc").Offset(offset).Limit(limit).Find(&users)

	return c.JSON(fiber.Map{
		"users": users,
		"pagination": paginationMeta(page, limit, total),
	})
}

func GetUser(c *fiber.Ctx) error {
	userID := c.Params("userId")

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	return c.JSON(fiber.Map{"user": user})
}

type UpdateUserRequest struct {
	Name       *string   `json:"name" validate:"omitempty,min=2,max=100"`
	Phone      *string   `json:"phone"`
	Bio        *string   `json:"bio" validate:"omitempty,max=500"`
	Avatar     *string   `json:"avatar"`
	Subjects   *[]string `json:"subjects"`
	HourlyRate *float64  `json:"hourly_rate" validate:"omitempty,gte=0"`

	// admin-only
	IsVerified *bool   `json:"is_verified"`
	Role       *string `json:"role" validate:"omitempty,oneof=student tutor admin"`
}

// UpdateUser lets a user edit their own profile; admins may also edit anyone
// and flip the admin-only fields. Rating and TotalReviews are derived and
// deliberately not editable here.
func UpdateUser(c *fiber.Ctx) error {
	actor := middleware.ActorFromCtx(c)
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}

	if !middleware.PolicyOwner.Allows(actor, userID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not authorized to update this profile"})
	}

	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	changed := false
	if req.Name != nil {
		user.Name = *req.Name
		changed = true
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
		changed = true
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
		changed = true
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
		changed = true
	}
	if req.HourlyRate != nil {
		user.HourlyRate = *req.HourlyRate
		changed = true
	}
	if req.Subjects != nil {
		user.Subjects = *req.Subjects
		changed = true
	}

	if actor.Role == "admin" {
		if req.IsVerified != nil {
			user.IsVerified = *req.IsVerified
			changed = true
		}
		if req.Role != nil {
			user.Role = *req.Role
			changed = true
		}
	}

	if !changed {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No valid fields to update"})
	}

	if err := database.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update profile"})
	}

	return c.JSON(fiber.Map{"message": "Profile updated successfully", "user": user})
}
