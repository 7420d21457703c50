package handlers

import (
	"strconv"

	"github.com/eduai/eduai_backend/database"
	"github.com/eduai/eduai_backend/middleware"
	"github.com/eduai/eduai_backend/models"
	"github.com/eduai/eduai_backend/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// courseSortOrder maps the public sort keys onto ORDER BY clauses. Unknown
// keys fall back to newest.
func courseSortOrder(sort string) string {
	switch sort {
	case "popular":
		return "total_students desc"
	case "rating":
		return "rating desc"
	case "price-low":
		return "price asc"
	case "price-high":
		return "price desc"
	case "newest":
		fallthrough
	default:
		return "created_at desc"
	}
}

// ListCourses serves the public catalog: published courses only, filtered,
// sorted and paginated.
func ListCourses(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "12"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 12
	}

	query := database.DB.Model(&models.Course{}).Where("is_published = ?", true)

	if subject := c.Query("subject"); subject != "" {
		query = query.Where("subject = ?", subject)
	}
	if level := c.Query("level"); level != "" {
		query = query.Where("level = ?", level)
	}
	if minPrice := c.Query("minPrice"); minPrice != "" {
		if v, err := strconv.ParseFloat(minPrice, 64); err == nil {
			query = query.Where("price >= ?", v)
		}
	}
	if maxPrice := c.Query("maxPrice"); maxPrice != "" {
		if v, err := strconv.ParseFloat(maxPrice, 64); err == nil {
			query = query.Where("price <= ?", v)
		}
	}
	if rating := c.Query("rating"); rating != "" {
		if v, err := strconv.ParseFloat(rating, 64); err == nil {
			query = query.Where("rating >= ?", v)
		}
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("title ILIKE ? OR description ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	query.Count(&total)

	var courses []models.Course
	offset := (page - 1) * limit
	query.Order(courseSortOrder(c.Query("sort", "newest"))).
		Offset(offset).Limit(limit).
		Preload("Tutor").
		Find(&courses)

	return c.JSON(fiber.Map{
		"courses": courses,
		"pagination": paginationMeta(page, limit, total),
	})
}

func GetCourse(c *fiber.Ctx) error {
	courseID := c.Params("courseId")

	var course models.Course
	err := database.DB.
		Preload("Tutor").
		Preload("Lessons", func(db *gorm.DB) *gorm.DB { return db.Order("lesson_order asc") }).
		First(&course, "id = ?", courseID).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	return c.JSON(fiber.Map{"course": course})
}

type LessonInput struct {
	Title    string `json:"title" validate:"required,max=200"`
	VideoURL string `json:"video_url"`
	Duration int    `json:"duration" validate:"omitempty,gte=0"`
	Order    int    `json:"order" validate:"gte=0"`
}

type CreateCourseRequest struct {
	Title       string        `json:"title" validate:"required,max=200"`
	Description string        `json:"description" validate:"required,max=2000"`
	Subject     string        `json:"subject" validate:"required,oneof=Math Physics Chemistry Biology English Bengali Programming Business"`
	Level       string        `json:"level" validate:"required,oneof=School College University"`
	Price       float64       `json:"price" validate:"gte=0"`
	Thumbnail   string        `json:"thumbnail"`
	Syllabus    []string      `json:"syllabus"`
	Lessons     []LessonInput `json:"lessons" validate:"dive"`
	IsPublished bool          `json:"is_published"`
}

// CreateCourse attaches the course to the calling tutor; drafts stay hidden
// from the catalog until published.
func CreateCourse(c *fiber.Ctx) error {
	actor := middleware.ActorFromCtx(c)

	var req CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	course := models.Course{
		TutorID:     actor.ID,
		Title:       req.Title,
		Description: req.Description,
		Subject:     req.Subject,
		Level:       req.Level,
		Price:       req.Price,
		Thumbnail:   req.Thumbnail,
		Syllabus:    req.Syllabus,
		IsPublished: req.IsPublished,
	}
	for _, l := range req.Lessons {
		course.Lessons = append(course.Lessons, models.Lesson{
			Title:    l.Title,
			VideoURL: l.VideoURL,
			Duration: l.Duration,
			Order:    l.Order,
		})
	}

	if err := database.DB.Create(&course).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create course"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Course created successfully",
		"course":  course,
	})
}

type UpdateCourseRequest struct {
	Title       *string        `json:"title" validate:"omitempty,max=200"`
	Description *string        `json:"description" validate:"omitempty,max=2000"`
	Subject     *string        `json:"subject" validate:"omitempty,oneof=Math Physics Chemistry Biology English Bengali Programming Business"`
	Level       *string        `json:"level" validate:"omitempty,oneof=School College University"`
	Price       *float64       `json:"price" validate:"omitempty,gte=0"`
	Thumbnail   *string        `json:"thumbnail"`
	Syllabus    *[]string      `json:"syllabus"`
	Lessons     *[]LessonInput `json:"lessons" validate:"omitempty,dive"`
	IsPublished *bool          `json:"is_published"`
}

func UpdateCourse(c *fiber.Ctx) error {
	actor := middleware.ActorFromCtx(c)
	courseID := c.Params("courseId")

	var course models.Course
	if err := database.DB.First(&course, "id = ?", courseID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	if !middleware.PolicyOwner.Allows(actor, course.TutorID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not authorized to update this course"})
	}

	var req UpdateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if req.Title != nil {
		course.Title = *req.Title
	}
	if req.Description != nil {
		course.Description = *req.Description
	}
	if req.Subject != nil {
		course.Subject = *req.Subject
	}
	if req.Level != nil {
		course.Level = *req.Level
	}
	if req.Price != nil {
		course.Price = *req.Price
	}
	if req.Thumbnail != nil {
		course.Thumbnail = *req.Thumbnail
	}
	if req.Syllabus != nil {
		course.Syllabus = *req.Syllabus
	}
	if req.IsPublished != nil {
		course.IsPublished = *req.IsPublished
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if req.Lessons != nil {
			if err := tx.Where("course_id = ?", course.ID).Delete(&models.Lesson{}).Error; err != nil {
				return err
			}
			course.Lessons = nil
			for _, l := range *req.Lessons {
				course.Lessons = append(course.Lessons, models.Lesson{
					CourseID: course.ID,
					Title:    l.Title,
					VideoURL: l.VideoURL,
					Duration: l.Duration,
					Order:    l.Order,
				})
			}
		}
		return tx.Save(&course).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update course"})
	}

	return c.JSON(fiber.Map{"message": "Course updated successfully", "course": course})
}

func DeleteCourse(c *fiber.Ctx) error {
	actor := middleware.ActorFromCtx(c)
	courseID := c.Params("courseId")

	var course models.Course
	if err := database.DB.First(&course, "id = ?", courseID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	if !middleware.PolicyOwner.Allows(actor, course.TutorID) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Not authorized to delete this course"})
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", course.ID).Delete(&models.Lesson{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", course.ID).Delete(&models.Enrollment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&course).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete course"})
	}

	return c.JSON(fiber.Map{"message": "Course deleted successfully"})
}

// GetCourseLessons returns the lesson list with video URLs visible only to
// the enrolled student, the owning tutor, or an admin.
func GetCourseLessons(c *fiber.Ctx) error {
	actor := middleware.ActorFromCtx(c)
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid course id"})
	}

	var course models.Course
	err = database.DB.
		Preload("Lessons", func(db *gorm.DB) *gorm.DB { return db.Order("lesson_order asc") }).
		First(&course, "id = ?", courseID).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	hasAccess := middleware.PolicyOwner.Allows(actor, course.TutorID) ||
		services.IsEnrolled(database.DB, actor.ID, courseID)
	if !hasAccess {
		for i := range course.Lessons {
			course.Lessons[i].VideoURL = ""
		}
	}

	return c.JSON(fiber.Map{"lessons": course.Lessons, "enrolled": hasAccess})
}
