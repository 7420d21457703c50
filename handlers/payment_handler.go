package handlers

import (
	"log"
	"time"

	config "github.com/eduai/eduai_backend/configs"
	"github.com/eduai/eduai_backend/database"
	"github.com/eduai/eduai_backend/middleware"
	"github.com/eduai/eduai_backend/models"
	"github.com/eduai/eduai_backend/notifications"
	"github.com/eduai/eduai_backend/payments"
	"github.com/eduai/eduai_backend/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CreatePaymentRequest struct {
	CourseID string `json:"courseId" validate:"required,uuid"`
}

// CreatePayment starts the purchase of a course. Free courses enroll the
// student immediately with no payment record; paid courses open a charge
// intent and persist a pending payment that the webhook later completes.
func CreatePayment(c *fiber.Ctx) error {
	actor := middleware.ActorFromCtx(c)

	var req CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	courseID, _ := uuid.Parse(req.CourseID)
	var course models.Course
	if err := database.DB.First(&course, "id = ?", courseID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	if enrollsWithoutCharge(course.Price) {
		if err := services.EnrollStudent(database.DB, actor.ID, courseID); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to enroll in course"})
		}
		return c.JSON(fiber.Map{
			"message":  "Enrolled successfully",
			"enrolled": true,
		})
	}

	intent, err := payments.CreatePaymentIntent(course.Price, "usd", course.ID.String(), actor.ID.String())
	if err != nil {
		log.Printf("🔥 CRITICAL: CreatePaymentIntent failed: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": "Payment could not be initiated, please try again."})
	}

	payment := models.Payment{
		UserID:            actor.ID,
		CourseID:          courseID,
		Amount:            course.Price,
		Currency:          "usd",
		ProviderPaymentID: intent.ID,
		Status:            models.PaymentPending,
	}
	if err := database.DB.Create(&payment).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record payment"})
	}

	return c.JSON(fiber.Map{
		"client_secret": intent.ClientSecret,
		"payment_id":    payment.ID,
	})
}

func GetMyPayments(c *fiber.Ctx) error {
	actor := middleware.ActorFromCtx(c)

	var userPayments []models.Payment
	database.DB.
		Preload("Course").
		Where("user_id = ?", actor.ID).
		Order("created_at desc").
		Find(&userPayments)

	return c.JSON(fiber.Map{"payments": userPayments})
}

// enrollsWithoutCharge reports whether buying at this price skips the payment
// processor entirely.
func enrollsWithoutCharge(price float64) bool {
	return price == 0
}

type StripeWebhookPayload struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID string `json:"id"`
		} `json:"object"`
	} `json:"data"`
}

const (
	webhookAck      = "ack"
	webhookComplete = "complete"
	webhookFail     = "fail"
	webhookIgnore   = "ignore"
)

// webhookOutcome decides what a processor event does to a payment in the
// given status. A redelivery for an already-completed payment is acked with
// no side effects regardless of the event type.
func webhookOutcome(paymentStatus, eventType string) string {
	if paymentStatus == models.PaymentCompleted {
		return webhookAck
	}
	switch eventType {
	case "payment_intent.succeeded":
		return webhookComplete
	case "payment_intent.payment_failed":
		return webhookFail
	}
	return webhookIgnore
}

// HandlePaymentWebhook processes the processor's confirmation. The payload
// signature is verified before anything is touched, since this endpoint has
// no caller token. The callback may be delivered more than once: an
// already-completed payment is acked without side effects, and the
// enrollment add itself is idempotent.
func HandlePaymentWebhook(c *fiber.Ctx) error {
	if err := payments.VerifyWebhookSignature(c.Body(), c.Get("Stripe-Signature"),
		config.Config("STRIPE_WEBHOOK_SECRET"), time.Now()); err != nil {
		log.Printf("⚠️ Rejected webhook with invalid signature: %v", err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid webhook signature"})
	}

	var payload StripeWebhookPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse webhook payload"})
	}

	intentID := payload.Data.Object.ID
	if intentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing payment intent id"})
	}

	var payment models.Payment
	if err := database.DB.First(&payment, "provider_payment_id = ?", intentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Payment record not found"})
	}

	switch webhookOutcome(payment.Status, payload.Type) {
	case webhookAck:
		return c.JSON(fiber.Map{"message": "Webhook already processed"})

	case webhookComplete:
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			payment.Status = models.PaymentCompleted
			if err := tx.Save(&payment).Error; err != nil {
				return err
			}
			return services.EnrollStudent(tx, payment.UserID, payment.CourseID)
		})
		if err != nil {
			log.Printf("🔥 CRITICAL: Error processing successful webhook for intent %s: %v", intentID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to process webhook"})
		}

		go func() {
			var user models.User
			var course models.Course
			if database.DB.First(&user, "id = ?", payment.UserID).Error == nil &&
				database.DB.First(&course, "id = ?", payment.CourseID).Error == nil {
				notifications.SendEmail(user.Name, user.Email, "Enrollment Confirmed!",
					"<h1>You're In</h1><p>Your payment was successful and you are now enrolled in <b>"+course.Title+"</b>.</p>")
			}
		}()

		return c.JSON(fiber.Map{"message": "Payment completed and student enrolled"})

	case webhookFail:
		payment.Status = models.PaymentFailed
		database.DB.Save(&payment)
		return c.JSON(fiber.Map{"message": "Acknowledged failed payment"})
	}

	return c.JSON(fiber.Map{"message": "Event ignored"})
}
