package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCombineDateTime(t *testing.T) {
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	got := combineDateTime(date, "14:30")
	assert.Equal(t, time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC), got)
}

func TestCombineDateTimeTrimsSpaces(t *testing.T) {
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	got := combineDateTime(date, " 08:05 ")
	assert.Equal(t, 8, got.Hour())
	assert.Equal(t, 5, got.Minute())
}

func TestCombineDateTimeBadInputFallsBackToMidnight(t *testing.T) {
	date := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	got := combineDateTime(date, "siang")
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), got)
}
