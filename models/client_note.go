package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientNote is an append-only annotation; notes are never edited or removed
// except when the whole client is deleted.
type ClientNote struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ClientID  uuid.UUID `gorm:"type:uuid;index;not null" json:"clientId"`
	TrainerID uuid.UUID `gorm:"type:uuid;index;not null" json:"trainerId"`

	NoteText string `gorm:"type:text;not null" json:"noteText"`

	CreatedAt time.Time `json:"createdAt"`
}

func (n *ClientNote) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return
}
