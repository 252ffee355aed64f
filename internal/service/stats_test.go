package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 2026-08-30 is a Sunday.
var statsToday = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func TestDateRangeWeekStartsMonday(t *testing.T) {
	start, end := DateRange("week", 0, statsToday)
	assert.Equal(t, "2026-08-24", start.Format("2006-01-02"))
	assert.Equal(t, "2026-08-30", end.Format("2006-01-02"))

	start, end = DateRange("week", -1, statsToday)
	assert.Equal(t, "2026-08-17", start.Format("2006-01-02"))
	assert.Equal(t, "2026-08-23", end.Format("2006-01-02"))
}

func TestDateRangeMonth(t *testing.T) {
	start, end := DateRange("month", 0, statsToday)
	assert.Equal(t, "2026-08-01", start.Format("2006-01-02"))
	assert.Equal(t, "2026-08-31", end.Format("2006-01-02"))

	start, end = DateRange("month", -1, statsToday)
	assert.Equal(t, "2026-07-01", start.Format("2006-01-02"))
	assert.Equal(t, "2026-07-31", end.Format("2006-01-02"))

	// year boundary
	jan := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	start, end = DateRange("month", -1, jan)
	assert.Equal(t, "2025-12-01", start.Format("2006-01-02"))
	assert.Equal(t, "2025-12-31", end.Format("2006-01-02"))
}

func TestDateRangeYear(t *testing.T) {
	start, end := DateRange("year", -1, statsToday)
	assert.Equal(t, "2025-01-01", start.Format("2006-01-02"))
	assert.Equal(t, "2025-12-31", end.Format("2006-01-02"))
}

func TestMeanMedianStddev(t *testing.T) {
	xs := []float64{3, 3.5, 4, 4.5, 5}
	assert.InDelta(t, 4.0, mean(xs), 1e-9)
	assert.InDelta(t, 4.0, median(xs), 1e-9)
	assert.InDelta(t, 3.75, median([]float64{3, 3.5, 4, 4.5}), 1e-9)
	assert.InDelta(t, 0.0, stddev([]float64{2, 2, 2}), 1e-9)
	assert.InDelta(t, 1.0, stddev([]float64{1, 3, 1, 3}), 1e-9)
}

func TestBestStreak(t *testing.T) {
	days := map[string]*dayTally{
		"2026-08-20": {total: 2, done: 2},
		"2026-08-21": {total: 1, done: 1},
		"2026-08-22": {total: 3, done: 3},
		"2026-08-23": {total: 2, done: 1}, // breaks the run
		"2026-08-25": {total: 1, done: 1},
		"2026-08-26": {total: 1, done: 1},
	}
	assert.Equal(t, 3, bestStreak(days))

	assert.Equal(t, 0, bestStreak(map[string]*dayTally{}))
	assert.Equal(t, 1, bestStreak(map[string]*dayTally{"2026-08-01": {total: 1, done: 1}}))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 7, daysBetween("2026-08-24", "2026-08-30"))
	assert.Equal(t, 1, daysBetween("2026-08-30", "2026-08-30"))
}

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "ทำงาน", categoryLabel("work"))
	assert.Equal(t, "สุขภาพ", categoryLabel("health"))
	assert.Equal(t, "อื่นๆ", categoryLabel("other"))
	assert.Equal(t, "ดนตรี", categoryLabel("ดนตรี"), "unknown keys pass through")
}
