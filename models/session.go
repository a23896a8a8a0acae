package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session statuses. Complete and cancel write these unconditionally; there is
// no guard on the current status.
const (
	SessionScheduled = "scheduled"
	SessionCompleted = "completed"
	SessionCancelled = "cancelled"
)

// Session is a scheduled training appointment, not an auth session.
type Session struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TrainerID uuid.UUID `gorm:"type:uuid;index;not null" json:"trainerId"`
	ClientID  uuid.UUID `gorm:"type:uuid;index;not null" json:"clientId"`

	SessionDate Date   `gorm:"type:date;index;not null" json:"sessionDate"`
	StartTime   string `gorm:"not null" json:"startTime"` // HH:MM
	EndTime     string `gorm:"not null" json:"endTime"`
	SessionType string `gorm:"default:'training'" json:"sessionType"`
	Status      string `gorm:"default:'scheduled'" json:"status"`
	Notes       string `json:"notes"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

func (s *Session) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}
