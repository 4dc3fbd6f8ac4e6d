package model

import "fmt"

const (
	// Width is the number of columns of a pattern image.
	Width = 16
	// Height is the number of rows of a pattern image.
	Height = 16
	// Size is the length of a flattened pattern.
	Size = Width * Height
)

// Pattern is a flattened Width x Height image.
// Pixels are either binary {0,1} or bipolar {-1,+1} depending on where the pattern comes from.
type Pattern []int

// NewPattern creates an all-zero pattern of the default size.
func NewPattern() Pattern {
	return make(Pattern, Size)
}

// Index returns the flat index for the given grid coordinates.
func Index(row, col int) int {
	return row*Width + col
}

// Copy returns a new pattern with the same pixels.
func (p Pattern) Copy() Pattern {
	c := make(Pattern, len(p))
	copy(c, p)
	return c
}

// Bipolar maps the binary pixels to {-1,+1}.
func (p Pattern) Bipolar() Pattern {
	b := make(Pattern, len(p))
	for i, v := range p {
		b[i] = 2*v - 1
	}
	return b
}

// Binary maps bipolar pixels back to {0,1}.
func (p Pattern) Binary() Pattern {
	b := make(Pattern, len(p))
	for i, v := range p {
		b[i] = (v + 1) / 2
	}
	return b
}

// Validate checks that the pattern is a full grid of binary pixels.
func (p Pattern) Validate() error {
	if len(p) != Size {
		return fmt.Errorf("pattern has %d pixels instead of %d: %w", len(p), Size, InvalidInputErr)
	}
	for i, v := range p {
		if v != 0 && v != 1 {
			return fmt.Errorf("pixel %d has non-binary value %d: %w", i, v, InvalidInputErr)
		}
	}
	return nil
}

// Equal checks if both patterns hold exactly the same pixels.
func (p Pattern) Equal(other Pattern) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// Hamming counts the positions where the two patterns differ.
// Patterns of different length differ additionally in every missing position.
func (p Pattern) Hamming(other Pattern) int {
	n, m := len(p), len(other)
	if m < n {
		n, m = m, n
	}
	d := m - n
	for i := 0; i < n; i++ {
		if p[i] != other[i] {
			d++
		}
	}
	return d
}

// Grid returns the pattern as rows of Width pixels.
func (p Pattern) Grid() [][]int {
	rows := len(p) / Width
	grid := make([][]int, rows)
	for r := 0; r < rows; r++ {
		grid[r] = make([]int, Width)
		copy(grid[r], p[r*Width:(r+1)*Width])
	}
	return grid
}
