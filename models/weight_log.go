package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WeightLog holds at most one body-weight reading per client per date;
// writes upsert on the (client_id, date) unique index.
type WeightLog struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ClientID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_weight_client_date,priority:1;not null" json:"clientId"`

	Date   Date    `gorm:"type:date;uniqueIndex:idx_weight_client_date,priority:2;not null" json:"date"`
	Weight float64 `gorm:"not null" json:"weight"`
	Notes  string  `json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (w *WeightLog) BeforeCreate(tx *gorm.DB) (err error) {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return
}
