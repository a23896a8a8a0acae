package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SetEntry is one performed set. A nil field is unset — the trainer left it
// blank — which is distinct from an explicit zero.
type SetEntry struct {
	Weight *float64 `json:"weight"`
	Reps   *int     `json:"reps"`
}

// SetList is the authoritative per-set detail of a WorkoutLog row, stored as a
// JSON blob next to the denormalized summary columns.
type SetList []SetEntry

func (s SetList) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan tolerates absent or corrupt payloads: the detail comes back nil and the
// row still loads, so the summary columns stay readable.
func (s *SetList) Scan(value interface{}) error {
	var b []byte
	switch v := value.(type) {
	case nil:
		*s = nil
		return nil
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return errors.New("type assertion to []byte failed")
	}
	if len(b) == 0 || json.Unmarshal(b, s) != nil {
		*s = nil
	}
	return nil
}

// NormalizeSets guarantees every stored exercise carries at least one set. An
// exercise submitted without set data gets a single fully-unset set.
func NormalizeSets(sets SetList) SetList {
	if len(sets) == 0 {
		return SetList{{}}
	}
	return sets
}

// SummarizeSets derives the denormalized summary from a set list: the set
// count, the floored mean of the reps that are set and the exact mean of the
// weights that are set. Unset values are skipped per field; a set value of
// zero still counts. When no set defines a field, its average is nil.
func SummarizeSets(sets SetList) (count int, avgReps *int, avgWeight *float64) {
	count = len(sets)

	repsSum, repsN := 0, 0
	weightSum, weightN := 0.0, 0
	for _, set := range sets {
		if set.Reps != nil {
			repsSum += *set.Reps
			repsN++
		}
		if set.Weight != nil {
			weightSum += *set.Weight
			weightN++
		}
	}

	if repsN > 0 {
		mean := repsSum / repsN
		avgReps = &mean
	}
	if weightN > 0 {
		mean := weightSum / float64(weightN)
		avgWeight = &mean
	}
	return count, avgReps, avgWeight
}

// WorkoutLog is one exercise performed by a client on a given date. The Sets,
// AvgReps and AvgWeight columns are always derived from SetsData via
// SummarizeSets at write time, never written independently.
type WorkoutLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ClientID  uuid.UUID `gorm:"type:uuid;index;not null" json:"clientId"`
	TrainerID uuid.UUID `gorm:"type:uuid;index;not null" json:"trainerId"`

	ExerciseName string   `gorm:"not null" json:"exerciseName"`
	Sets         int      `json:"sets"`
	AvgReps      *int     `json:"avgReps"`
	AvgWeight    *float64 `json:"avgWeight"`
	Notes        string   `json:"notes"`
	WorkoutDate  Date     `gorm:"type:date;index;not null" json:"workoutDate"`
	SetsData     SetList  `gorm:"type:text" json:"setsData"`

	CreatedAt time.Time `json:"createdAt"`
}

func (w *WorkoutLog) BeforeCreate(tx *gorm.DB) (err error) {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return
}

// NewWorkoutLog builds a row for one exercise: the set list is normalized and
// the summary columns are filled in from it.
func NewWorkoutLog(trainerID, clientID uuid.UUID, date, exerciseName, notes string, sets SetList) WorkoutLog {
	sets = NormalizeSets(sets)
	count, avgReps, avgWeight := SummarizeSets(sets)
	return WorkoutLog{
		ClientID:     clientID,
		TrainerID:    trainerID,
		ExerciseName: exerciseName,
		Sets:         count,
		AvgReps:      avgReps,
		AvgWeight:    avgWeight,
		Notes:        notes,
		WorkoutDate:  Date(date),
		SetsData:     sets,
	}
}
