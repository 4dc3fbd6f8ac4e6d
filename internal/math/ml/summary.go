package ml

import (
	"fmt"

	"github.com/drakos74/hopfield/internal/model"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the distribution of the off-diagonal weights.
type Summary struct {
	Size     int     `json:"size"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Mean     float64 `json:"mean"`
	StdDev   float64 `json:"std_dev"`
	Positive int     `json:"positive"`
	Negative int     `json:"negative"`
	Zero     int     `json:"zero"`
}

func (s Summary) String() string {
	return fmt.Sprintf("size=%d min=%.0f max=%.0f mean=%.3f std=%.3f +%d/-%d/0:%d",
		s.Size, s.Min, s.Max, s.Mean, s.StdDev, s.Positive, s.Negative, s.Zero)
}

// Summarize computes statistics over all w[i][j] with i != j.
func Summarize(w model.WeightMatrix) Summary {
	n := w.Size()
	s := Summary{Size: n}
	if n < 2 {
		return s
	}
	values := make([]float64, 0, n*(n-1))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			v := w.At(i, j)
			switch {
			case v > 0:
				s.Positive++
			case v < 0:
				s.Negative++
			default:
				s.Zero++
			}
			values = append(values, float64(v))
		}
	}
	s.Min = floats.Min(values)
	s.Max = floats.Max(values)
	s.Mean, s.StdDev = stat.MeanStdDev(values, nil)
	return s
}
