package similarity

import (
	"fmt"

	"github.com/Hena1149/Cases-Test-OpenAI/internal/core/domain"
	"github.com/Hena1149/Cases-Test-OpenAI/internal/logger"
)

// Compare fits a vectorizer on rules and control points together and
// returns the len(rules) x len(pdcs) cosine matrix. Both lists must be
// non-empty.
func Compare(rules, pdcs []string) (domain.SimilarityMatrix, error) {
	if len(rules) == 0 || len(pdcs) == 0 {
		return domain.SimilarityMatrix{}, fmt.Errorf("%d rules, %d control points: %w",
			len(rules), len(pdcs), domain.ErrEmptyCorpus)
	}

	corpus := make([]string, 0, len(rules)+len(pdcs))
	corpus = append(corpus, rules...)
	corpus = append(corpus, pdcs...)
	vz := Fit(corpus)
	logger.Debug("tf-idf vocabulary: %d terms over %d documents", len(vz.vocabulary), len(corpus))

	pdcVecs := make([]Vector, len(pdcs))
	for j, p := range pdcs {
		pdcVecs[j] = vz.Transform(p)
	}

	scores := make([][]float64, len(rules))
	for i, r := range rules {
		rv := vz.Transform(r)
		row := make([]float64, len(pdcs))
		for j, pv := range pdcVecs {
			row[j] = clamp(rv.Dot(pv))
		}
		scores[i] = row
	}

	return domain.SimilarityMatrix{
		Rules:         append([]string(nil), rules...),
		ControlPoints: append([]string(nil), pdcs...),
		Scores:        scores,
	}, nil
}

// clamp absorbs floating-point drift around the [0, 1] bounds.
func clamp(s float64) float64 {
	switch {
	case s < 0:
		return 0
	case s > 1:
		return 1
	default:
		return s
	}
}
