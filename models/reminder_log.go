package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReminderLog records each session-reminder SMS attempt made by the daily
// scheduler.
type ReminderLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TrainerID uuid.UUID `gorm:"type:uuid;index;not null" json:"trainerId"`
	ClientID  uuid.UUID `gorm:"type:uuid;index;not null" json:"clientId"`
	SessionID uuid.UUID `gorm:"type:uuid;index;not null" json:"sessionId"`

	Message      string    `gorm:"type:text" json:"message"`
	Status       string    `gorm:"type:varchar(20)" json:"status"` // sent, failed
	ErrorMessage string    `gorm:"type:text" json:"errorMessage"`
	SentAt       time.Time `json:"sentAt"`

	CreatedAt time.Time `json:"createdAt"`
}

func (r *ReminderLog) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
