// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"time"

	"trainerpro-backend/models"
	"trainerpro-backend/utils"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// ReminderService texts clients the evening before about their scheduled
// sessions and keeps a log of every attempt.
type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 6 PM
	c.AddFunc("0 18 * * *", s.SendDailyReminders)

	c.Start()
	log.Println("Session reminder scheduler started")
}

func mustUUID(s string) uuid.UUID {
	id, _ := uuid.Parse(s)
	return id
}

type reminderRow struct {
	SessionID    string
	TrainerID    string
	ClientID     string
	ClientName   string
	ClientPhone  string
	StartTime    string
	BusinessName string
	TrainerName  string
}

// SendDailyReminders processes all of tomorrow's scheduled sessions.
func (s *ReminderService) SendDailyReminders() {
	log.Println("Starting session reminder processing...")

	tomorrow := utils.BeginningOfDay(time.Now()).AddDate(0, 0, 1).Format(utils.DateLayout)

	var rows []reminderRow
	err := s.db.Table("sessions").
		Select(`sessions.id AS session_id, sessions.trainer_id, sessions.client_id,
			sessions.start_time,
			clients.name AS client_name, clients.phone AS client_phone,
			trainers.business_name, trainers.name AS trainer_name`).
		Joins("JOIN clients ON clients.id = sessions.client_id").
		Joins("JOIN trainers ON trainers.id = sessions.trainer_id").
		Where("sessions.session_date = ? AND sessions.status = ?",
			tomorrow, models.SessionScheduled).
		Scan(&rows).Error
	if err != nil {
		log.Printf("Failed to fetch tomorrow's sessions: %v", err)
		return
	}

	for _, row := range rows {
		s.sendReminder(row, tomorrow)
	}

	log.Printf("Session reminder processing completed, %d sessions handled", len(rows))
}

func (s *ReminderService) sendReminder(row reminderRow, date string) {
	if row.ClientPhone == "" {
		log.Printf("Client %s has no phone number, skipping reminder", row.ClientID)
		return
	}

	from := row.BusinessName
	if from == "" {
		from = row.TrainerName
	}
	message := fmt.Sprintf("Hi %s, a reminder about your training session with %s tomorrow (%s) at %s.",
		row.ClientName, from, date, row.StartTime)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(row.ClientPhone)
	params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	params.SetBody(message)

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send reminder to %s: %v", row.ClientPhone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Reminder sent to %s, SID: %s", row.ClientPhone, *resp.Sid)
	} else {
		log.Printf("Reminder sent to %s, but no SID returned", row.ClientPhone)
	}

	entry := models.ReminderLog{
		TrainerID:    mustUUID(row.TrainerID),
		ClientID:     mustUUID(row.ClientID),
		SessionID:    mustUUID(row.SessionID),
		Message:      message,
		Status:       status,
		ErrorMessage: errorMsg,
		SentAt:       time.Now(),
	}
	if err := s.db.Create(&entry).Error; err != nil {
		log.Printf("Failed to log reminder for session %s: %v", row.SessionID, err)
	}
}
