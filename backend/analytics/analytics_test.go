package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"studytracker/backend/models"
)

func logOn(date string, subject string, hours float64, difficulty int) models.StudyLog {
	return models.StudyLog{UserID: 1, Date: date, Subject: subject, Hours: hours, Difficulty: difficulty}
}

func TestTotalHoursBySubject(t *testing.T) {
	logs := []models.StudyLog{
		logOn("2024-01-01", "math", 2, 3),
		logOn("2024-01-02", "math", 1.5, 2),
		logOn("2024-01-02", "physics", 3, 4),
	}

	totals := TotalHoursBySubject(logs)
	assert.Equal(t, 3.5, totals["math"])
	assert.Equal(t, 3.0, totals["physics"])
	assert.Len(t, totals, 2)
}

func TestTotalHoursBySubjectEmpty(t *testing.T) {
	assert.Empty(t, TotalHoursBySubject(nil))
}

func TestStreak(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		want  int
	}{
		{"no entries", nil, 0},
		{"single day", []string{"2024-01-01"}, 1},
		{"three consecutive", []string{"2024-01-03", "2024-01-02", "2024-01-01"}, 3},
		{"gap stops streak", []string{"2024-01-03", "2024-01-01"}, 1},
		{"duplicates count once", []string{"2024-01-02", "2024-01-02", "2024-01-01"}, 2},
		{"order does not matter", []string{"2024-01-01", "2024-01-03", "2024-01-02"}, 3},
		{"across month boundary", []string{"2024-02-01", "2024-01-31"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs []models.StudyLog
			for _, d := range tt.dates {
				logs = append(logs, logOn(d, "math", 1, 3))
			}
			assert.Equal(t, tt.want, Streak(logs))
		})
	}
}

func TestLevelThresholds(t *testing.T) {
	tests := []struct {
		hours float64
		want  string
	}{
		{0, "Beginner"},
		{49.9, "Beginner"},
		{50.0, "Intermediate"},
		{149.99, "Intermediate"},
		{150.0, "Advanced"},
		{299.9, "Advanced"},
		{300.0, "Master"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Level(tt.hours), "hours=%v", tt.hours)
	}
}

func TestProfileStatsEmpty(t *testing.T) {
	stats := ProfileStats(nil)

	assert.Equal(t, 0.0, stats.TotalHours)
	assert.Equal(t, 0, stats.TotalDays)
	assert.Equal(t, 0.0, stats.AvgDifficulty)
	assert.Equal(t, "N/A", stats.BestSubject)
	assert.Equal(t, 0, stats.Streak)
	assert.Equal(t, "Beginner", stats.Level)
}

func TestProfileStats(t *testing.T) {
	logs := []models.StudyLog{
		logOn("2024-01-01", "math", 2, 3),
		logOn("2024-01-02", "math", 2, 4),
		logOn("2024-01-02", "physics", 1, 2),
	}

	stats := ProfileStats(logs)
	assert.Equal(t, 5.0, stats.TotalHours)
	assert.Equal(t, 2, stats.TotalDays)
	assert.Equal(t, 3.0, stats.AvgDifficulty)
	assert.Equal(t, "math", stats.BestSubject)
	assert.Equal(t, 2, stats.Streak)
	assert.Equal(t, "Beginner", stats.Level)
}

func TestReadinessNeedsThreeEntries(t *testing.T) {
	logs := []models.StudyLog{
		logOn("2024-01-01", "math", 2, 3),
		logOn("2024-01-02", "math", 2, 3),
	}

	_, _, ok := Readiness(logs)
	assert.False(t, ok)
}

func TestReadinessTracksTargetFormula(t *testing.T) {
	// Latest entry is day 3 with hours=1, difficulty=5:
	// y = 1*10 - 5*2 + 3*1.5 = 4.5
	logs := []models.StudyLog{
		logOn("2024-01-01", "math", 2, 3),
		logOn("2024-01-02", "math", 4, 2),
		logOn("2024-01-03", "math", 1, 5),
	}

	score, status, ok := Readiness(logs)
	assert.True(t, ok)
	assert.InDelta(t, 4.5, score, 0.05)
	assert.Equal(t, "risk zone", status)
}

func TestReadinessOnTrack(t *testing.T) {
	// Constant hours/difficulty: y at day 4 = 9*10 - 2*2 + 4*1.5 = 92
	logs := []models.StudyLog{
		logOn("2024-01-01", "math", 9, 2),
		logOn("2024-01-02", "math", 9, 2),
		logOn("2024-01-03", "math", 9, 2),
		logOn("2024-01-04", "math", 9, 2),
	}

	score, status, ok := Readiness(logs)
	assert.True(t, ok)
	assert.InDelta(t, 92, score, 0.1)
	assert.Equal(t, "on track", status)
}

func TestReadinessClampedToHundred(t *testing.T) {
	logs := []models.StudyLog{
		logOn("2024-01-01", "math", 15, 1),
		logOn("2024-01-02", "math", 15, 1),
		logOn("2024-01-03", "math", 15, 1),
	}

	score, status, ok := Readiness(logs)
	assert.True(t, ok)
	assert.Equal(t, 100.0, score)
	assert.Equal(t, "on track", status)
}

func TestReadinessWithinRange(t *testing.T) {
	logs := []models.StudyLog{
		logOn("2024-01-01", "math", 3, 4),
		logOn("2024-01-05", "physics", 6, 1),
		logOn("2024-01-09", "math", 0.5, 5),
		logOn("2024-01-11", "math", 8, 2),
	}

	score, _, ok := Readiness(logs)
	assert.True(t, ok)
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 100.0)
}
