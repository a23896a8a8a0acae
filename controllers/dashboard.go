// controllers/dashboard.go
package controllers

import (
	"net/http"

	"trainerpro-backend/config"
	"trainerpro-backend/models"
	"trainerpro-backend/utils"

	"github.com/gin-gonic/gin"
)

func GetDashboardOverview(c *gin.Context) {
	trainerID, ok := trainerUUID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Trainer not found in context")
		return
	}

	var totalClients int64
	config.DB.Model(&models.Client{}).
		Where("trainer_id = ?", trainerID).
		Count(&totalClients)

	var activeClients int64
	config.DB.Model(&models.Client{}).
		Where("trainer_id = ? AND status = ?", trainerID, "active").
		Count(&activeClients)

	today := utils.BeginningOfDay(timeNow()).Format(utils.DateLayout)

	recentSessions := []CalendarSession{}
	config.DB.Table("sessions").
		Select("sessions.*, clients.name AS client_name").
		Joins("JOIN clients ON clients.id = sessions.client_id").
		Where("sessions.trainer_id = ? AND sessions.session_date >= ?", trainerID, today).
		Order("sessions.session_date, sessions.start_time").
		Limit(5).
		Scan(&recentSessions)

	c.JSON(http.StatusOK, gin.H{
		"totalClients":   totalClients,
		"activeClients":  activeClients,
		"recentSessions": recentSessions,
	})
}
