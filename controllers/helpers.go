package controllers

import (
	"time"

	"trainerpro-backend/config"
	"trainerpro-backend/models"
	"trainerpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// timeNow is swapped out in tests that pin the calendar reference date.
var timeNow = time.Now

// trainerUUID pulls the authenticated trainer id out of the request context.
func trainerUUID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := utils.TrainerID(c)
	if !ok {
		return uuid.Nil, false
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, false
	}
	return parsed, true
}

// clientForTrainer is the ownership check for every client-scoped operation.
// A malformed id, a missing row and another trainer's client all come back as
// gorm.ErrRecordNotFound so callers answer 404 without leaking existence.
func clientForTrainer(trainerID uuid.UUID, clientID string) (*models.Client, error) {
	id, err := uuid.Parse(clientID)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	var client models.Client
	if err := config.DB.Where("trainer_id = ? AND id = ?", trainerID, id).
		First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

// sessionForTrainer is the ownership check for session-scoped operations,
// with the same not-found semantics as clientForTrainer.
func sessionForTrainer(trainerID uuid.UUID, sessionID string) (*models.Session, error) {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	var session models.Session
	if err := config.DB.Where("trainer_id = ? AND id = ?", trainerID, id).
		First(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}
