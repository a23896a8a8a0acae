// controllers/session.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"trainerpro-backend/config"
	"trainerpro-backend/models"
	"trainerpro-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SessionInput struct {
	ClientID    string `json:"clientId" binding:"required"`
	SessionDate string `json:"sessionDate" binding:"required"`
	StartTime   string `json:"startTime" binding:"required"`
	EndTime     string `json:"endTime" binding:"required"`
	SessionType string `json:"sessionType"`
	Status      string `json:"status"`
	Notes       string `json:"notes"`
}

// CreateSession schedules a session; new sessions always start out scheduled
// regardless of any status in the payload.
func CreateSession(c *gin.Context) {
	trainerID, ok := trainerUUID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Trainer not found in context")
		return
	}

	var input SessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !utils.ValidDate(input.SessionDate) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid session date")
		return
	}

	client, err := clientForTrainer(trainerID, input.ClientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.SessionType == "" {
		input.SessionType = "training"
	}

	session := models.Session{
		TrainerID:   trainerID,
		ClientID:    client.ID,
		SessionDate: models.Date(input.SessionDate),
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
		SessionType: input.SessionType,
		Status:      models.SessionScheduled,
		Notes:       input.Notes,
	}

	if err := config.DB.Create(&session).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create session")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"sessionId": session.ID})
}

func GetSession(c *gin.Context) {
	trainerID, ok := trainerUUID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Trainer not found in context")
		return
	}

	session, err := sessionForTrainer(trainerID, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Session not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, session)
}

// UpdateSession is a full field replace on a trainer-owned session.
func UpdateSession(c *gin.Context) {
	trainerID, ok := trainerUUID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Trainer not found in context")
		return
	}

	session, err := sessionForTrainer(trainerID, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Session not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	var input struct {
		SessionDate string `json:"sessionDate" binding:"required"`
		StartTime   string `json:"startTime" binding:"required"`
		EndTime     string `json:"endTime" binding:"required"`
		SessionType string `json:"sessionType" binding:"required"`
		Status      string `json:"status"`
		Notes       string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !utils.ValidDate(input.SessionDate) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid session date")
		return
	}
	switch input.Status {
	case "":
		input.Status = models.SessionScheduled
	case models.SessionScheduled, models.SessionCompleted, models.SessionCancelled:
	default:
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid session status")
		return
	}

	now := time.Now()
	session.SessionDate = models.Date(input.SessionDate)
	session.StartTime = input.StartTime
	session.EndTime = input.EndTime
	session.SessionType = input.SessionType
	session.Status = input.Status
	session.Notes = input.Notes
	session.UpdatedAt = &now

	if err := config.DB.Save(session).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Session updated successfully"})
}

func DeleteSession(c *gin.Context) {
	trainerID, ok := trainerUUID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Trainer not found in context")
		return
	}

	session, err := sessionForTrainer(trainerID, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Session not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := config.DB.Where("id = ? AND trainer_id = ?", session.ID, trainerID).
		Delete(&models.Session{}).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Session deleted successfully"})
}

// setSessionStatus backs the complete and cancel transitions. The write is
// unconditional: the current status is not checked first.
func setSessionStatus(c *gin.Context, status string) {
	trainerID, ok := trainerUUID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Trainer not found in context")
		return
	}

	session, err := sessionForTrainer(trainerID, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Session not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	now := time.Now()
	if err := config.DB.Model(session).
		Updates(map[string]interface{}{"status": status, "updated_at": &now}).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Session " + status})
}

func CompleteSession(c *gin.Context) {
	setSessionStatus(c, models.SessionCompleted)
}

func CancelSession(c *gin.Context) {
	setSessionStatus(c, models.SessionCancelled)
}

// GetSessionHistory lists every session for one client, newest first.
func GetSessionHistory(c *gin.Context) {
	trainerID, ok := trainerUUID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Trainer not found in context")
		return
	}

	client, err := clientForTrainer(trainerID, c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Client not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	sessions := []models.Session{}
	if err := config.DB.Where("client_id = ? AND trainer_id = ?", client.ID, trainerID).
		Order("session_date DESC, start_time DESC").
		Find(&sessions).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve sessions")
		return
	}

	c.JSON(http.StatusOK, sessions)
}
