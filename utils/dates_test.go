package utils_test

import (
	"testing"
	"time"

	"trainerpro-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekWindow(t *testing.T) {
	// Wednesday 2025-03-12
	wednesday := time.Date(2025, 3, 12, 15, 30, 0, 0, time.UTC)

	start, end := utils.WeekWindow(wednesday, 0)
	assert.Equal(t, "2025-03-10", start.Format(utils.DateLayout)) // Monday
	assert.Equal(t, "2025-03-16", end.Format(utils.DateLayout))   // Sunday
	assert.Equal(t, time.Monday, start.Weekday())

	start, end = utils.WeekWindow(wednesday, -1)
	assert.Equal(t, "2025-03-03", start.Format(utils.DateLayout))
	assert.Equal(t, "2025-03-09", end.Format(utils.DateLayout))

	start, end = utils.WeekWindow(wednesday, 2)
	assert.Equal(t, "2025-03-24", start.Format(utils.DateLayout))
	assert.Equal(t, "2025-03-30", end.Format(utils.DateLayout))
}

func TestWeekWindowMondayAndSunday(t *testing.T) {
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	start, _ := utils.WeekWindow(monday, 0)
	assert.Equal(t, "2025-03-10", start.Format(utils.DateLayout))

	sunday := time.Date(2025, 3, 16, 23, 59, 0, 0, time.UTC)
	start, end := utils.WeekWindow(sunday, 0)
	assert.Equal(t, "2025-03-10", start.Format(utils.DateLayout))
	assert.Equal(t, "2025-03-16", end.Format(utils.DateLayout))
}

func TestWeekDates(t *testing.T) {
	start, _ := utils.WeekWindow(time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), 0)
	dates := utils.WeekDates(start)
	require.Len(t, dates, 7)
	assert.Equal(t, "2025-03-10", dates[0])
	assert.Equal(t, "2025-03-16", dates[6])
}

func TestValidDate(t *testing.T) {
	assert.True(t, utils.ValidDate("2025-03-12"))
	assert.False(t, utils.ValidDate("12-03-2025"))
	assert.False(t, utils.ValidDate("2025-13-40"))
	assert.False(t, utils.ValidDate(""))
	assert.False(t, utils.ValidDate("not-a-date"))
}
