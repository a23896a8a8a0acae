// controllers/profile.go
package controllers

import (
	"net/http"

	"trainerpro-backend/config"
	"trainerpro-backend/models"
	"trainerpro-backend/utils"

	"github.com/gin-gonic/gin"
)

type UpdateProfileInput struct {
	Name         string `json:"name" binding:"required"`
	BusinessName string `json:"businessName"`
}

func GetProfile(c *gin.Context) {
	trainerID, ok := trainerUUID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Trainer not found in context")
		return
	}

	var trainer models.Trainer
	if err := config.DB.First(&trainer, "id = ?", trainerID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Trainer not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":         trainer.Name,
		"email":        trainer.Email,
		"businessName": trainer.BusinessName,
	})
}

func UpdateProfile(c *gin.Context) {
	trainerID, ok := trainerUUID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Trainer not found in context")
		return
	}

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := config.DB.Model(&models.Trainer{}).Where("id = ?", trainerID).
		Updates(map[string]interface{}{
			"name":          input.Name,
			"business_name": input.BusinessName,
		}).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}
