package domain

// SimilarityMatrix holds cosine scores, rows are rules and columns are
// control points. Every score lies in [0, 1].
type SimilarityMatrix struct {
	Rules         []string    `json:"rules"`
	ControlPoints []string    `json:"control_points"`
	Scores        [][]float64 `json:"scores"`
}

// Rows returns the number of rules.
func (m SimilarityMatrix) Rows() int { return len(m.Scores) }

// Cols returns the number of control points.
func (m SimilarityMatrix) Cols() int { return len(m.ControlPoints) }

// Best returns the highest score of a rule row and the column it was found
// in. A row with no columns returns (-1, 0).
func (m SimilarityMatrix) Best(row int) (col int, score float64) {
	col = -1
	for j, s := range m.Scores[row] {
		if col == -1 || s > score {
			col, score = j, s
		}
	}
	return col, score
}

// Covered reports whether a rule's best score reaches the threshold.
func (m SimilarityMatrix) Covered(row int, threshold float64) bool {
	col, score := m.Best(row)
	return col >= 0 && score >= threshold
}

// Uncovered returns the rules whose best score stays below the threshold,
// in row order.
func (m SimilarityMatrix) Uncovered(threshold float64) []string {
	var out []string
	for i := range m.Scores {
		if !m.Covered(i, threshold) {
			out = append(out, m.Rules[i])
		}
	}
	return out
}

// Matching thresholds.
const (
	DefaultThreshold = 0.6
	MinThreshold     = 0.1
	MaxThreshold     = 1.0
)

// ValidThreshold returns true if t lies in [MinThreshold, MaxThreshold].
func ValidThreshold(t float64) bool {
	return t >= MinThreshold && t <= MaxThreshold
}
