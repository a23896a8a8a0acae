package models

import "gorm.io/gorm"

// Exercise is static catalog data backing the autocomplete; end users never
// mutate it.
type Exercise struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	Name        string `gorm:"not null" json:"name"`
	MuscleGroup string `json:"muscleGroup"`
	Equipment   string `json:"equipment"`
}

// SeedExercises loads the starter catalog on first boot; a non-empty table is
// left untouched.
func SeedExercises(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Exercise{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	catalog := []Exercise{
		{Name: "Bench Press", MuscleGroup: "Chest", Equipment: "Barbell"},
		{Name: "Squat", MuscleGroup: "Legs", Equipment: "Barbell"},
		{Name: "Deadlift", MuscleGroup: "Back", Equipment: "Barbell"},
		{Name: "Pull-ups", MuscleGroup: "Back", Equipment: "Bodyweight"},
		{Name: "Push-ups", MuscleGroup: "Chest", Equipment: "Bodyweight"},
		{Name: "Shoulder Press", MuscleGroup: "Shoulders", Equipment: "Dumbbell"},
		{Name: "Bicep Curls", MuscleGroup: "Arms", Equipment: "Dumbbell"},
		{Name: "Tricep Dips", MuscleGroup: "Arms", Equipment: "Bodyweight"},
		{Name: "Lunges", MuscleGroup: "Legs", Equipment: "Bodyweight"},
		{Name: "Plank", MuscleGroup: "Core", Equipment: "Bodyweight"},
	}
	return db.Create(&catalog).Error
}
