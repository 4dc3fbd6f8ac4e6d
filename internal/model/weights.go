package model

import (
	"encoding/json"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// WeightMatrix is the square, symmetric, zero-diagonal matrix produced by hebbian training.
// It cannot be modified after construction.
type WeightMatrix struct {
	n     int
	cells []int
}

// NewWeightMatrix creates a matrix of size n from row-major cells.
// The cells are copied.
func NewWeightMatrix(n int, cells []int) (WeightMatrix, error) {
	if n <= 0 {
		return WeightMatrix{}, fmt.Errorf("matrix size must be positive, got %d: %w", n, InvalidInputErr)
	}
	if len(cells) != n*n {
		return WeightMatrix{}, fmt.Errorf("expected %d cells for size %d, got %d: %w", n*n, n, len(cells), InvalidInputErr)
	}
	c := make([]int, len(cells))
	copy(c, cells)
	return WeightMatrix{n: n, cells: c}, nil
}

// Size returns the number of neurons, i.e. rows or columns.
func (w WeightMatrix) Size() int {
	return w.n
}

// At returns the weight between neuron i and neuron j.
func (w WeightMatrix) At(i, j int) int {
	return w.cells[i*w.n+j]
}

// Row returns a copy of the weights of neuron i.
func (w WeightMatrix) Row(i int) []int {
	r := make([]int, w.n)
	copy(r, w.cells[i*w.n:(i+1)*w.n])
	return r
}

// Cells returns a row-major copy of all the weights.
func (w WeightMatrix) Cells() []int {
	c := make([]int, len(w.cells))
	copy(c, w.cells)
	return c
}

// IsSymmetric checks w[i][j] == w[j][i] for all pairs.
func (w WeightMatrix) IsSymmetric() bool {
	for i := 0; i < w.n; i++ {
		for j := i + 1; j < w.n; j++ {
			if w.At(i, j) != w.At(j, i) {
				return false
			}
		}
	}
	return true
}

// HasZeroDiagonal checks w[i][i] == 0 for all i.
func (w WeightMatrix) HasZeroDiagonal() bool {
	for i := 0; i < w.n; i++ {
		if w.At(i, i) != 0 {
			return false
		}
	}
	return true
}

// Dense exports the weights as a gonum matrix.
func (w WeightMatrix) Dense() *mat.Dense {
	d := mat.NewDense(w.n, w.n, nil)
	for i := 0; i < w.n; i++ {
		for j := 0; j < w.n; j++ {
			d.Set(i, j, float64(w.At(i, j)))
		}
	}
	return d
}

// Sym exports the upper triangle as a gonum symmetric matrix.
func (w WeightMatrix) Sym() *mat.SymDense {
	s := mat.NewSymDense(w.n, nil)
	for i := 0; i < w.n; i++ {
		for j := i; j < w.n; j++ {
			s.SetSym(i, j, float64(w.At(i, j)))
		}
	}
	return s
}

type weightsJSON struct {
	Size  int   `json:"size"`
	Cells []int `json:"cells"`
}

// MarshalJSON encodes the matrix with its size and row-major cells.
func (w WeightMatrix) MarshalJSON() ([]byte, error) {
	return json.Marshal(weightsJSON{Size: w.n, Cells: w.cells})
}

// UnmarshalJSON decodes and validates the matrix dimensions.
func (w *WeightMatrix) UnmarshalJSON(data []byte) error {
	var v weightsJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	m, err := NewWeightMatrix(v.Size, v.Cells)
	if err != nil {
		return err
	}
	*w = m
	return nil
}
