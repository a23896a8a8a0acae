package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Client struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TrainerID uuid.UUID `gorm:"type:uuid;index;not null" json:"trainerId"`

	Name   string   `gorm:"not null" json:"name"`
	Email  string   `json:"email"`
	Phone  string   `json:"phone"`
	Age    *int     `json:"age"`
	Gender string   `json:"gender"`
	Weight *float64 `json:"weight"`
	Height *float64 `json:"height"`

	Status   string `gorm:"default:'active'" json:"status"`
	Notes    string `json:"notes"`
	PhotoURL string `json:"photoUrl"`

	CreatedAt time.Time `json:"createdAt"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
