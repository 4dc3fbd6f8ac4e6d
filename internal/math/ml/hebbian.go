package ml

import (
	"fmt"

	"github.com/drakos74/hopfield/internal/model"
)

// Train builds the hebbian weight matrix for the given binary patterns.
// Every ordered pair i != j accumulates bipolar[i]*bipolar[j] across all patterns.
// Weights are the raw integer sums, there is no scaling or normalisation.
func Train(patterns []model.Pattern) (model.WeightMatrix, error) {
	if len(patterns) == 0 {
		return model.WeightMatrix{}, fmt.Errorf("no patterns to train on: %w", model.InvalidInputErr)
	}
	n := len(patterns[0])
	if n == 0 {
		return model.WeightMatrix{}, fmt.Errorf("empty pattern: %w", model.InvalidInputErr)
	}
	for k, p := range patterns {
		if len(p) != n {
			return model.WeightMatrix{}, fmt.Errorf("pattern %d has length %d instead of %d: %w", k, len(p), n, model.InvalidInputErr)
		}
	}

	w := make([][]int, n)
	for i := range w {
		w[i] = make([]int, n)
	}

	for _, p := range patterns {
		x := p.Bipolar()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				// the diagonal stays 0
				if i != j {
					w[i][j] += x[i] * x[j]
				}
			}
		}
	}

	cells := make([]int, 0, n*n)
	for i := range w {
		cells = append(cells, w[i]...)
	}
	return model.NewWeightMatrix(n, cells)
}
