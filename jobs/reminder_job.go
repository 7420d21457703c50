package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/eduai/eduai_backend/database"
	"github.com/eduai/eduai_backend/models"
	"github.com/eduai/eduai_backend/notifications"
)

// SendSessionReminders emails both participants of sessions starting within
// the next hour. The window matches the cron cadence so each session is
// reminded once.
func SendSessionReminders() {
	log.Println("Running job: SendSessionReminders...")

	now := time.Now()
	lowerBound := now.Add(60 * time.Minute)
	upperBound := now.Add(65 * time.Minute)

	var upcoming []models.Session
	err := database.DB.
		Preload("Student").
		Preload("Tutor").
		Where("status = ? AND scheduled_at BETWEEN ? AND ?", models.SessionUpcoming, lowerBound, upperBound).
		Find(&upcoming).Error
	if err != nil {
		log.Printf("Error checking for upcoming sessions: %v", err)
		return
	}

	for _, session := range upcoming {
		log.Printf("Sending reminder for session ID: %s", session.ID)

		emailSubject := "Reminder: Your Session Starts in 1 Hour!"
		emailBody := fmt.Sprintf(
			"<h1>Session Reminder</h1><p>Hi there,</p><p>This is a friendly reminder that your tutoring session is scheduled to start in one hour at %s.</p><p><b>Room:</b> %s</p>",
			session.ScheduledAt.Format(time.Kitchen),
			session.RoomID,
		)

		go notifications.SendEmail(session.Student.Name, session.Student.Email, emailSubject, emailBody)
		go notifications.SendEmail(session.Tutor.Name, session.Tutor.Email, emailSubject, emailBody)
	}
}
