// controllers/weight.go
package controllers

import (
	"errors"
	"net/http"

	"trainerpro-backend/config"
	"trainerpro-backend/models"
	"trainerpro-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WeightLogInput struct {
	Date   string   `json:"date" binding:"required"`
	Weight *float64 `json:"weight" binding:"required"`
	Notes  string   `json:"notes"`
}

// AddWeightLog upserts the client's reading for the date: a second submission
// for the same day overwrites the first.
func AddWeightLog(c *gin.Context) {
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

	var input WeightLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !utils.ValidDate(input.Date) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date")
		return
	}

	entry := models.WeightLog{
		ClientID: client.ID,
		Date:     models.Date(input.Date),
		Weight:   *input.Weight,
		Notes:    input.Notes,
	}

	if err := config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "client_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"weight", "notes", "updated_at"}),
	}).Create(&entry).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save weight log")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Weight logged successfully"})
}

func GetWeightLogs(c *gin.Context) {
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

	logs := []models.WeightLog{}
	if err := config.DB.Where("client_id = ?", client.ID).
		Order("date DESC").
		Find(&logs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve weight logs")
		return
	}

	c.JSON(http.StatusOK, logs)
}
