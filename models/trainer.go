package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"trainerpro-backend/utils"
)

type Trainer struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Password     string    `gorm:"column:password_hash;not null" json:"-"`
	BusinessName string    `json:"businessName"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Hash the password before the row is written; controllers only ever see
// the plaintext on the way in.
func (t *Trainer) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	hashed, err := utils.HashPassword(t.Password)
	if err != nil {
		return err
	}
	t.Password = hashed
	return
}
