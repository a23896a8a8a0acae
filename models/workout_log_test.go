package models_test

import (
	"testing"

	"trainerpro-backend/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int          { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestSummarizeSets(t *testing.T) {
	tests := []struct {
		name          string
		sets          models.SetList
		wantCount     int
		wantAvgReps   *int
		wantAvgWeight *float64
	}{
		{
			name: "bench press scenario",
			sets: models.SetList{
				{Weight: floatPtr(100), Reps: intPtr(10)},
				{Weight: floatPtr(105), Reps: intPtr(8)},
				{},
			},
			wantCount:     3,
			wantAvgReps:   intPtr(9), // floor((10+8)/2)
			wantAvgWeight: floatPtr(102.5),
		},
		{
			name:          "single fully unset set",
			sets:          models.SetList{{}},
			wantCount:     1,
			wantAvgReps:   nil,
			wantAvgWeight: nil,
		},
		{
			name: "reps average truncates, weight average does not",
			sets: models.SetList{
				{Weight: floatPtr(10), Reps: intPtr(10)},
				{Weight: floatPtr(11), Reps: intPtr(9)},
				{Weight: floatPtr(12), Reps: intPtr(8)},
			},
			wantCount:     3,
			wantAvgReps:   intPtr(9),
			wantAvgWeight: floatPtr(11),
		},
		{
			name: "truncation drops the fraction",
			sets: models.SetList{
				{Reps: intPtr(10)},
				{Reps: intPtr(9)},
			},
			wantCount:     2,
			wantAvgReps:   intPtr(9), // floor(19/2)
			wantAvgWeight: nil,
		},
		{
			name: "unset propagates per field",
			sets: models.SetList{
				{Reps: intPtr(12)},
				{Weight: floatPtr(60)},
			},
			wantCount:     2,
			wantAvgReps:   intPtr(12),
			wantAvgWeight: floatPtr(60),
		},
		{
			name: "explicit zero is defined, not unset",
			sets: models.SetList{
				{Weight: floatPtr(0), Reps: intPtr(0)},
				{Weight: floatPtr(100), Reps: intPtr(10)},
			},
			wantCount:     2,
			wantAvgReps:   intPtr(5),
			wantAvgWeight: floatPtr(50),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count, avgReps, avgWeight := models.SummarizeSets(tt.sets)
			assert.Equal(t, tt.wantCount, count)
			assert.Equal(t, tt.wantAvgReps, avgReps)
			assert.Equal(t, tt.wantAvgWeight, avgWeight)
		})
	}
}

func TestNormalizeSets(t *testing.T) {
	normalized := models.NormalizeSets(nil)
	require.Len(t, normalized, 1)
	assert.Nil(t, normalized[0].Weight)
	assert.Nil(t, normalized[0].Reps)

	sets := models.SetList{{Weight: floatPtr(80), Reps: intPtr(5)}}
	assert.Equal(t, sets, models.NormalizeSets(sets))
}

func TestNewWorkoutLog(t *testing.T) {
	trainerID := uuid.New()
	clientID := uuid.New()

	row := models.NewWorkoutLog(trainerID, clientID, "2025-03-10", "Squat", "felt heavy", nil)
	assert.Equal(t, trainerID, row.TrainerID)
	assert.Equal(t, clientID, row.ClientID)
	assert.Equal(t, "Squat", row.ExerciseName)
	assert.Equal(t, 1, row.Sets)
	assert.Nil(t, row.AvgReps)
	assert.Nil(t, row.AvgWeight)
	require.Len(t, row.SetsData, 1)
}

func TestSetListScan(t *testing.T) {
	t.Run("bytes roundtrip", func(t *testing.T) {
		original := models.SetList{
			{Weight: floatPtr(100), Reps: intPtr(10)},
			{},
		}
		value, err := original.Value()
		require.NoError(t, err)

		var scanned models.SetList
		require.NoError(t, scanned.Scan(value))
		assert.Equal(t, original, scanned)
	})

	t.Run("string input", func(t *testing.T) {
		var scanned models.SetList
		require.NoError(t, scanned.Scan(`[{"weight":50,"reps":null}]`))
		require.Len(t, scanned, 1)
		assert.Equal(t, floatPtr(50), scanned[0].Weight)
		assert.Nil(t, scanned[0].Reps)
	})

	t.Run("corrupt payload degrades to nil, not an error", func(t *testing.T) {
		scanned := models.SetList{{Weight: floatPtr(1)}}
		require.NoError(t, scanned.Scan([]byte("{not json")))
		assert.Nil(t, scanned)
	})

	t.Run("null column", func(t *testing.T) {
		var scanned models.SetList
		require.NoError(t, scanned.Scan(nil))
		assert.Nil(t, scanned)
	})
}
