package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayRangeUTC(t *testing.T) {
	in := time.Date(2025, 3, 15, 17, 42, 9, 123456789, time.UTC)
	start, end := DayRangeUTC(in)

	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 3, 15, 23, 59, 59, 999000000, time.UTC), end)
}

func TestDayRangeUTCNormalizesZone(t *testing.T) {
	// 01:30 WIB (+7) = 18:30 UTC hari sebelumnya
	wib := time.FixedZone("WIB", 7*3600)
	in := time.Date(2025, 3, 16, 1, 30, 0, 0, wib)

	start, _ := DayRangeUTC(in)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), start)
}

func TestDayRangeUTCCoversWholeDay(t *testing.T) {
	start, end := DayRangeUTC(time.Date(2025, 12, 31, 12, 0, 0, 0, time.UTC))

	inside := time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)
	outside := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.False(t, inside.Before(start) || inside.After(end))
	assert.True(t, outside.After(end))
}

func TestTodayRangeUTC(t *testing.T) {
	start, end := TodayRangeUTC()
	now := time.Now().UTC()

	assert.Equal(t, now.Year(), start.Year())
	assert.Equal(t, now.YearDay(), start.YearDay())
	assert.True(t, end.After(start))
	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, 23, end.Hour())
}
