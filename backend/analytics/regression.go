package analytics

import (
	"math"
	"sort"

	"studytracker/backend/models"
)

// MinReadinessEntries is the minimum history needed to fit the model.
const MinReadinessEntries = 3

// Readiness tier thresholds.
const (
	onTrackScore   = 75
	needsWorkScore = 50
)

// Readiness fits a linear model over the user's history and predicts a 0-100
// score for the latest entry, plus a tier label. ok is false with fewer than
// MinReadinessEntries entries.
//
// The target is the synthetic formula
//
//	y = hours*10 - difficulty*2 + dayIndex*1.5
//
// so the fit reproduces the formula rather than forecasting an independent
// outcome, and the prediction lands next to the training data. This is an
// illustrative heuristic carried over as-is, not a meaningful forecast.
func Readiness(logs []models.StudyLog) (score float64, status string, ok bool) {
	if len(logs) < MinReadinessEntries {
		return 0, "", false
	}

	sorted := make([]models.StudyLog, len(logs))
	copy(sorted, logs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	n := len(sorted)
	rows := make([][4]float64, n)
	targets := make([]float64, n)
	for i, l := range sorted {
		day := float64(i + 1)
		rows[i] = [4]float64{1, day, l.Hours, float64(l.Difficulty)}
		targets[i] = l.Hours*10 - float64(l.Difficulty)*2 + day*1.5
	}

	beta, solved := fitLeastSquares(rows, targets)
	if !solved {
		return 0, "", false
	}

	latest := sorted[n-1]
	predicted := beta[0] +
		beta[1]*float64(n) +
		beta[2]*latest.Hours +
		beta[3]*float64(latest.Difficulty)

	score = round(math.Min(math.Max(predicted, 0), 100), 2)

	switch {
	case score >= onTrackScore:
		status = "on track"
	case score >= needsWorkScore:
		status = "needs improvement"
	default:
		status = "risk zone"
	}

	return score, status, true
}

// fitLeastSquares solves the normal equations for ordinary least squares over
// rows of [1, day, hours, difficulty]. A tiny ridge term keeps the system
// solvable when hours or difficulty are constant across the history, which
// makes those columns collinear with the intercept.
func fitLeastSquares(rows [][4]float64, targets []float64) ([4]float64, bool) {
	const dims = 4
	const ridge = 1e-9

	var ata [dims][dims]float64
	var atb [dims]float64
	for r, row := range rows {
		for i := 0; i < dims; i++ {
			for j := 0; j < dims; j++ {
				ata[i][j] += row[i] * row[j]
			}
			atb[i] += row[i] * targets[r]
		}
	}
	for i := 0; i < dims; i++ {
		ata[i][i] += ridge
	}

	// Gaussian elimination with partial pivoting.
	for col := 0; col < dims; col++ {
		pivot := col
		for r := col + 1; r < dims; r++ {
			if math.Abs(ata[r][col]) > math.Abs(ata[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(ata[pivot][col]) < 1e-12 {
			return [4]float64{}, false
		}
		ata[col], ata[pivot] = ata[pivot], ata[col]
		atb[col], atb[pivot] = atb[pivot], atb[col]

		for r := col + 1; r < dims; r++ {
			factor := ata[r][col] / ata[col][col]
			for c := col; c < dims; c++ {
				ata[r][c] -= factor * ata[col][c]
			}
			atb[r] -= factor * atb[col]
		}
	}

	var beta [4]float64
	for i := dims - 1; i >= 0; i-- {
		sum := atb[i]
		for j := i + 1; j < dims; j++ {
			sum -= ata[i][j] * beta[j]
		}
		beta[i] = sum / ata[i][i]
	}
	return beta, true
}
