// controllers/client.go
package controllers

import (
	"errors"
	"net/http"
	"strings"

	"trainerpro-backend/config"
	"trainerpro-backend/models"
	"trainerpro-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ClientInput covers create and update; both are full profile submissions.
// It binds from JSON or from a multipart form when a photo rides along.
type ClientInput struct {
	Name   string   `form:"name" json:"name" binding:"required"`
	Email  string   `form:"email" json:"email"`
	Phone  string   `form:"phone" json:"phone"`
	Age    *int     `form:"age" json:"age"`
	Gender string   `form:"gender" json:"gender"`
	Weight *float64 `form:"weight" json:"weight"`
	Height *float64 `form:"height" json:"height"`
	Status string   `form:"status" json:"status"`
	Notes  string   `form:"notes" json:"notes"`
}

// WorkoutDay is one logged date with its exercise count, for day lists.
type WorkoutDay struct {
	WorkoutDate   models.Date `json:"workoutDate"`
	ExerciseCount int         `json:"exerciseCount"`
}

func CreateClient(c *gin.Context) {
	trainerID, ok := trainerUUID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Trainer not found in context")
		return
	}

	var input ClientInput
	if err := c.ShouldBind(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Status == "" {
		input.Status = "active"
	}

	client := models.Client{
		TrainerID: trainerID,
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Age:       input.Age,
		Gender:    input.Gender,
		Weight:    input.Weight,
		Height:    input.Height,
		Status:    input.Status,
		Notes:     input.Notes,
	}

	if file, err := c.FormFile("photo"); err == nil && file != nil {
		photoURL, err := utils.SaveUploadedPhoto(c, file)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save photo")
			return
		}
		client.PhotoURL = photoURL
	}

	if err := config.DB.Create(&client).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create client")
		return
	}

	c.JSON(http.StatusCreated, client)
}

func GetClients(c *gin.Context) {
	trainerID, ok := trainerUUID(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "Trainer not found in context")
		return
	}

	query := config.DB.Where("trainer_id = ?", trainerID)

	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	clients := []models.Client{}
	if err := query.Order("created_at DESC").Find(&clients).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve clients")
		return
	}

	c.JSON(http.StatusOK, clients)
}

// GetClient returns the profile together with the side panels of the client
// page: next sessions, recent workout days, weight history and latest notes.
func GetClient(c *gin.Context) {
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

	today := utils.BeginningOfDay(timeNow()).Format(utils.DateLayout)

	upcomingSessions := []models.Session{}
	config.DB.Where("client_id = ? AND session_date >= ? AND status != ?",
		client.ID, today, models.SessionCompleted).
		Order("session_date, start_time").
		Limit(5).
		Find(&upcomingSessions)

	recentWorkouts := []WorkoutDay{}
	config.DB.Model(&models.WorkoutLog{}).
		Select("workout_date, COUNT(*) as exercise_count").
		Where("client_id = ?", client.ID).
		Group("workout_date").
		Order("workout_date DESC").
		Limit(5).
		Scan(&recentWorkouts)

	weightHistory := []models.WeightLog{}
	config.DB.Where("client_id = ?", client.ID).
		Order("date DESC").
		Limit(10).
		Find(&weightHistory)

	clientNotes := []models.ClientNote{}
	config.DB.Where("client_id = ?", client.ID).
		Order("created_at DESC").
		Limit(5).
		Find(&clientNotes)

	c.JSON(http.StatusOK, gin.H{
		"client":           client,
		"upcomingSessions": upcomingSessions,
		"recentWorkouts":   recentWorkouts,
		"weightHistory":    weightHistory,
		"clientNotes":      clientNotes,
	})
}

func UpdateClient(c *gin.Context) {
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

	var input ClientInput
	if err := c.ShouldBind(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Status == "" {
		input.Status = "active"
	}

	// Without a new photo the existing reference stays untouched. The old
	// file is removed only after the row update succeeds.
	oldPhotoURL := ""
	newPhotoURL := ""
	if file, err := c.FormFile("photo"); err == nil && file != nil {
		photoURL, err := utils.SaveUploadedPhoto(c, file)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save photo")
			return
		}
		oldPhotoURL = client.PhotoURL
		newPhotoURL = photoURL
		client.PhotoURL = photoURL
	}

	client.Name = input.Name
	client.Email = input.Email
	client.Phone = input.Phone
	client.Age = input.Age
	client.Gender = input.Gender
	client.Weight = input.Weight
	client.Height = input.Height
	client.Status = input.Status
	client.Notes = input.Notes

	if err := config.DB.Save(client).Error; err != nil {
		// the row still points at the old photo, so the new file is the orphan
		utils.DeletePhoto(newPhotoURL)
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update client")
		return
	}

	if oldPhotoURL != "" {
		utils.DeletePhoto(oldPhotoURL)
	}

	c.JSON(http.StatusOK, client)
}

// DeleteClient removes the client and everything hanging off it: sessions,
// workout logs, weight logs, notes and the photo file.
func DeleteClient(c *gin.Context) {
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

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("client_id = ? AND trainer_id = ?", client.ID, trainerID).
			Delete(&models.Session{}).Error; err != nil {
			return err
		}
		if err := tx.Where("client_id = ? AND trainer_id = ?", client.ID, trainerID).
			Delete(&models.WorkoutLog{}).Error; err != nil {
			return err
		}
		if err := tx.Where("client_id = ?", client.ID).
			Delete(&models.WeightLog{}).Error; err != nil {
			return err
		}
		if err := tx.Where("client_id = ? AND trainer_id = ?", client.ID, trainerID).
			Delete(&models.ClientNote{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ? AND trainer_id = ?", client.ID, trainerID).
			Delete(&models.Client{}).Error
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete client")
		return
	}

	utils.DeletePhoto(client.PhotoURL)

	c.JSON(http.StatusOK, gin.H{"message": "Client deleted successfully"})
}

// UploadClientPhoto replaces just the photo, outside of a profile update.
func UploadClientPhoto(c *gin.Context) {
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

	file, err := c.FormFile("photo")
	if err != nil || file == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "No photo provided")
		return
	}

	photoURL, err := utils.SaveUploadedPhoto(c, file)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to save photo")
		return
	}

	oldPhotoURL := client.PhotoURL
	if err := config.DB.Model(client).Update("photo_url", photoURL).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update photo")
		return
	}
	utils.DeletePhoto(oldPhotoURL)

	c.JSON(http.StatusOK, gin.H{"photoUrl": photoURL})
}
