// controllers/workout.go
package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"trainerpro-backend/config"
	"trainerpro-backend/models"
	"trainerpro-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SetInput accepts one submitted set. Blank, null, absent or otherwise
// malformed numbers are coerced to unset rather than rejected.
type SetInput struct {
	Weight *float64
	Reps   *int
}

func (s *SetInput) UnmarshalJSON(b []byte) error {
	var raw struct {
		Weight json.RawMessage `json:"weight"`
		Reps   json.RawMessage `json:"reps"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	s.Weight = coerceFloat(raw.Weight)
	s.Reps = coerceInt(raw.Reps)
	return nil
}

func coerceFloat(raw json.RawMessage) *float64 {
	v := rawNumber(raw)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

func coerceInt(raw json.RawMessage) *int {
	v := rawNumber(raw)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

// rawNumber unwraps a JSON number or numeric string, returning "" for
// anything unusable.
func rawNumber(raw json.RawMessage) string {
	v := strings.TrimSpace(string(raw))
	if v == "" || v == "null" {
		return ""
	}
	if strings.HasPrefix(v, `"`) {
		var s string
		if json.Unmarshal(raw, &s) != nil {
			return ""
		}
		v = strings.TrimSpace(s)
	}
	return v
}

type ExerciseInput struct {
	Name  string     `json:"name"`
	Notes string     `json:"notes"`
	Sets  []SetInput `json:"sets"`
}

type WorkoutInput struct {
	WorkoutDate string          `json:"workoutDate"`
	Exercises   []ExerciseInput `json:"exercises"`
}

// saveExercises runs the record procedure on a submission: exercises with a
// blank name are skipped silently, the rest get one row each with the set
// detail and its derived summary.
func saveExercises(tx *gorm.DB, trainerID, clientID uuid.UUID, date string, exercises []ExerciseInput) error {
	for _, ex := range exercises {
		name := strings.TrimSpace(ex.Name)
		if name == "" {
			continue
		}

		sets := make(models.SetList, 0, len(ex.Sets))
		for _, set := range ex.Sets {
			sets = append(sets, models.SetEntry{Weight: set.Weight, Reps: set.Reps})
		}

		row := models.NewWorkoutLog(trainerID, clientID, date, name, ex.Notes, sets)
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func RecordWorkout(c *gin.Context) {
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

	var input WorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !utils.ValidDate(input.WorkoutDate) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid workout date")
		return
	}

	if err := saveExercises(config.DB, trainerID, client.ID, input.WorkoutDate, input.Exercises); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to log workout")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Workout logged successfully"})
}

// ReplaceWorkoutDay makes editing a day a full replace: the day's rows are
// dropped and the submission is recorded from scratch, so an exercise left
// out of the resubmission is gone.
func ReplaceWorkoutDay(c *gin.Context) {
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

	date := c.Param("date")
	if !utils.ValidDate(date) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid workout date")
		return
	}

	var input WorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("client_id = ? AND workout_date = ? AND trainer_id = ?",
			client.ID, date, trainerID).
			Delete(&models.WorkoutLog{}).Error; err != nil {
			return err
		}
		return saveExercises(tx, trainerID, client.ID, date, input.Exercises)
	})
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update workout")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Workout updated successfully"})
}

// GetWorkoutDay returns the day's exercises in creation order. Rows with a
// missing or unreadable detail blob still show their summary columns.
func GetWorkoutDay(c *gin.Context) {
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

	exercises := []models.WorkoutLog{}
	if err := config.DB.Where("client_id = ? AND workout_date = ? AND trainer_id = ?",
		client.ID, c.Param("date"), trainerID).
		Order("created_at").
		Find(&exercises).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve workout")
		return
	}

	c.JSON(http.StatusOK, exercises)
}

// DeleteWorkoutDay is idempotent; deleting a day with no rows succeeds.
func DeleteWorkoutDay(c *gin.Context) {
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

	if err := config.DB.Where("client_id = ? AND workout_date = ? AND trainer_id = ?",
		client.ID, c.Param("date"), trainerID).
		Delete(&models.WorkoutLog{}).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete workout")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Workout deleted successfully"})
}

// GetWorkoutDays lists the client's logged dates, newest first.
func GetWorkoutDays(c *gin.Context) {
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

	days := []WorkoutDay{}
	if err := config.DB.Model(&models.WorkoutLog{}).
		Select("workout_date, COUNT(*) as exercise_count").
		Where("client_id = ?", client.ID).
		Group("workout_date").
		Order("workout_date DESC").
		Scan(&days).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve workouts")
		return
	}

	c.JSON(http.StatusOK, days)
}
