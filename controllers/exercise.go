// controllers/exercise.go
package controllers

import (
	"net/http"
	"strings"

	"trainerpro-backend/config"
	"trainerpro-backend/models"
	"trainerpro-backend/utils"

	"github.com/gin-gonic/gin"
)

// SearchExercises backs the autocomplete: case-insensitive substring match
// over the static catalog, at most 10 rows in name order.
func SearchExercises(c *gin.Context) {
	query := strings.ToLower(c.Query("q"))

	exercises := []models.Exercise{}
	if err := config.DB.Where("LOWER(name) LIKE ?", "%"+query+"%").
		Order("name").
		Limit(10).
		Find(&exercises).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to search exercises")
		return
	}

	c.JSON(http.StatusOK, exercises)
}
