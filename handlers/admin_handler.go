package handlers

import (
	"strconv"

	"github.com/eduai/eduai_backend/database"
	"github.com/eduai/eduai_backend/models"
	"github.com/gofiber/fiber/v2"
)

type PlatformStatsResponse struct {
	TotalStudents  int64            `json:"total_students"`
	TotalTutors    int64            `json:"total_tutors"`
	TotalCourses   int64            `json:"total_courses"`
	TotalSessions  int64            `json:"total_sessions"`
	TotalReviews   int64            `json:"total_reviews"`
	TotalRevenue   float64          `json:"total_revenue"`
	RecentSessions []models.Session `json:"recent_sessions"`
}

func GetPlatformStats(c *fiber.Ctx) error {
	var response PlatformStatsResponse

	database.DB.Model(&models.User{}).Where("role = ?", "student").Count(&response.TotalStudents)
	database.DB.Model(&models.User{}).Where("role = ?", "tutor").Count(&response.TotalTutors)
	database.DB.Model(&models.Course{}).Count(&response.TotalCourses)
	database.DB.Model(&models.Session{}).Count(&response.TotalSessions)
	database.DB.Model(&models.Review{}).Count(&response.TotalReviews)

	var totalRevenue float64
	database.DB.Model(&models.Payment{}).
		Where("status = ?", models.PaymentCompleted).
		Select("COALESCE(SUM(amount), 0)").
		Row().Scan(&totalRevenue)
	response.TotalRevenue = totalRevenue

	database.DB.Order("created_at desc").Limit(5).
		Preload("Student").Preload("Tutor").
		Find(&response.RecentSessions)

	return c.JSON(response)
}

func AdminGetUsers(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	query := database.DB.Model(&models.User{})
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}

	var total int64
	query.Count(&total)

	var users []models.User
	query.Order("created_at desc").Offset(offset).Limit(limit).Find(&users)

	return c.JSON(fiber.Map{
		"users": users,
		"pagination": paginationMeta(page, limit, total),
	})
}
