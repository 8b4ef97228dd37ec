// Package analytics derives all dashboard and profile figures from a user's
// full study log. Everything is recomputed from scratch on each request;
// per-user histories are small enough that caching would not pay for itself.
package analytics

import (
	"math"
	"sort"
	"time"

	"studytracker/backend/models"
)

const dateLayout = "2006-01-02"

// Level thresholds on total logged hours.
const (
	masterHours       = 300
	advancedHours     = 150
	intermediateHours = 50
)

// Stats is the profile-page summary.
type Stats struct {
	TotalHours    float64 `json:"total_hours"`
	TotalDays     int     `json:"total_days"`
	AvgDifficulty float64 `json:"avg_difficulty"`
	BestSubject   string  `json:"best_subject"`
	Streak        int     `json:"streak"`
	Level         string  `json:"level"`
}

// TotalHoursBySubject sums logged hours grouped by subject.
func TotalHoursBySubject(logs []models.StudyLog) map[string]float64 {
	totals := make(map[string]float64)
	for _, l := range logs {
		totals[l.Subject] += l.Hours
	}
	return totals
}

// TotalHours sums all logged hours.
func TotalHours(logs []models.StudyLog) float64 {
	var total float64
	for _, l := range logs {
		total += l.Hours
	}
	return total
}

// Streak counts consecutive calendar days with at least one entry, walking
// backward from the most recent logged date. Dates that do not parse are
// ignored.
func Streak(logs []models.StudyLog) int {
	seen := make(map[string]time.Time)
	for _, l := range logs {
		if _, ok := seen[l.Date]; ok {
			continue
		}
		d, err := time.Parse(dateLayout, l.Date)
		if err != nil {
			continue
		}
		seen[l.Date] = d
	}
	if len(seen) == 0 {
		return 0
	}

	dates := make([]time.Time, 0, len(seen))
	for _, d := range seen {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })

	streak := 1
	for i := 1; i < len(dates); i++ {
		if dates[i-1].Sub(dates[i]) == 24*time.Hour {
			streak++
		} else {
			break
		}
	}
	return streak
}

// Level maps total hours onto a tier label.
func Level(totalHours float64) string {
	switch {
	case totalHours >= masterHours:
		return "Master"
	case totalHours >= advancedHours:
		return "Advanced"
	case totalHours >= intermediateHours:
		return "Intermediate"
	default:
		return "Beginner"
	}
}

// ProfileStats builds the profile summary for a user's logs.
func ProfileStats(logs []models.StudyLog) Stats {
	total := TotalHours(logs)

	stats := Stats{
		TotalHours:  round(total, 1),
		BestSubject: "N/A",
		Streak:      Streak(logs),
		Level:       Level(total),
	}

	if len(logs) == 0 {
		return stats
	}

	days := make(map[string]struct{})
	var difficultySum float64
	for _, l := range logs {
		days[l.Date] = struct{}{}
		difficultySum += float64(l.Difficulty)
	}
	stats.TotalDays = len(days)
	stats.AvgDifficulty = round(difficultySum/float64(len(logs)), 2)

	bySubject := TotalHoursBySubject(logs)
	best, bestHours := "", math.Inf(-1)
	for subject, hours := range bySubject {
		if hours > bestHours || (hours == bestHours && subject < best) {
			best, bestHours = subject, hours
		}
	}
	stats.BestSubject = best

	return stats
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
