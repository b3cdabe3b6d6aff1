package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func datePtr(t time.Time) *time.Time {
	d := DateUTC(t)
	return &d
}

func TestCanClick(t *testing.T) {
	today := time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC)

	assert.True(t, CanClick(nil, today), "never clicked")
	assert.False(t, CanClick(datePtr(today), today), "already clicked today")
	assert.True(t, CanClick(datePtr(today.AddDate(0, 0, -1)), today), "clicked yesterday")
	assert.True(t, CanClick(datePtr(today.AddDate(0, 0, -7)), today), "clicked last week")

	// Time of day within the same date never matters.
	morning := time.Date(2025, 6, 10, 0, 1, 0, 0, time.UTC)
	assert.False(t, CanClick(datePtr(morning), today))
}

func TestNextStreak(t *testing.T) {
	today := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, NextStreak(nil, 0, today), "first ever click")
	assert.Equal(t, 6, NextStreak(datePtr(today.AddDate(0, 0, -1)), 5, today), "consecutive day")
	assert.Equal(t, 1, NextStreak(datePtr(today.AddDate(0, 0, -2)), 5, today), "one day gap resets")
	assert.Equal(t, 1, NextStreak(datePtr(today.AddDate(0, 0, -30)), 12, today), "long gap resets")
}

func TestClickPower(t *testing.T) {
	assert.Equal(t, int64(100), ClickPower(1))
	assert.Equal(t, int64(110), ClickPower(2))
	assert.Equal(t, int64(140), ClickPower(5))
	assert.Equal(t, int64(100), ClickPower(0), "degenerate streak clamps to base")
}

func TestClickPower_CumulativeSeries(t *testing.T) {
	// N consecutive daily clicks must total sum_{k=1}^{N} 100+(k-1)*10.
	const days = 14
	var total, expected int64
	for k := 1; k <= days; k++ {
		total += ClickPower(k)
		expected += int64(100 + (k-1)*10)
	}
	assert.Equal(t, expected, total)
}

func TestDisplayPower(t *testing.T) {
	assert.Equal(t, int64(100), DisplayPower(0, 0))
	assert.Equal(t, int64(195), DisplayPower(5, 0.9), "100 + floor(90) + 5")
	assert.Equal(t, int64(130+42), DisplayPower(45, 0.42), "streak bonus capped at 30")
}

func TestDateUTC(t *testing.T) {
	local := time.Date(2025, 6, 10, 23, 59, 59, 0, time.FixedZone("UTC+5", 5*3600))
	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), DateUTC(local))

	// An early local morning east of UTC is still the previous UTC date.
	late := time.Date(2025, 6, 10, 2, 0, 0, 0, time.FixedZone("UTC+5", 5*3600))
	assert.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), DateUTC(late))
}
