// controllers/note.go
package controllers

import (
	"errors"
	"net/http"

	"trainerpro-backend/config"
	"trainerpro-backend/models"
	"trainerpro-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ClientNoteInput struct {
	NoteText string `json:"noteText" binding:"required"`
}

func AddClientNote(c *gin.Context) {
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

	var input ClientNoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	note := models.ClientNote{
		ClientID:  client.ID,
		TrainerID: trainerID,
		NoteText:  input.NoteText,
	}
	if err := config.DB.Create(&note).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to add note")
		return
	}

	c.JSON(http.StatusCreated, note)
}
