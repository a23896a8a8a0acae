// controllers/calendar.go
package controllers

import (
	"net/http"
	"strconv"

	"trainerpro-backend/config"
	"trainerpro-backend/models"
	"trainerpro-backend/utils"

	"github.com/gin-gonic/gin"
)

// CalendarSession is a session row joined with the client's name for display.
type CalendarSession struct {
	models.Session
	ClientName string `json:"clientName"`
}

// ClientOption is the short form used to populate scheduling dropdowns.
type ClientOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// GetCalendarWeek returns the Monday-aligned week at the requested offset:
// seven buckets keyed by ISO date, each holding that day's sessions in start
// order. Days without sessions are present as empty buckets.
func GetCalendarWeek(c *gin.Context) {
	trainerID, ok := trainerUUID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Trainer not found in context")
		return
	}

	weekOffset, _ := strconv.Atoi(c.DefaultQuery("week_offset", "0"))

	start, end := utils.WeekWindow(timeNow(), weekOffset)
	startDate := start.Format(utils.DateLayout)
	endDate := end.Format(utils.DateLayout)
	weekDates := utils.WeekDates(start)

	rows := []CalendarSession{}
	if err := config.DB.Table("sessions").
		Select("sessions.*, clients.name AS client_name").
		Joins("JOIN clients ON clients.id = sessions.client_id").
		Where("sessions.trainer_id = ? AND sessions.session_date BETWEEN ? AND ?",
			trainerID, startDate, endDate).
		Order("sessions.session_date, sessions.start_time").
		Scan(&rows).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve sessions")
		return
	}

	weekSessions := make(map[string][]CalendarSession, 7)
	for _, date := range weekDates {
		weekSessions[date] = []CalendarSession{}
	}
	for _, row := range rows {
		date := string(row.SessionDate)
		if _, ok := weekSessions[date]; ok {
			weekSessions[date] = append(weekSessions[date], row)
		}
	}

	clients := []ClientOption{}
	if err := config.DB.Model(&models.Client{}).
		Select("id, name").
		Where("trainer_id = ?", trainerID).
		Order("name").
		Scan(&clients).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve clients")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"weekStart":    startDate,
		"weekEnd":      endDate,
		"weekOffset":   weekOffset,
		"weekDates":    weekDates,
		"weekSessions": weekSessions,
		"clients":      clients,
	})
}
