package ml

import (
	"testing"

	"github.com/drakos74/hopfield/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	w, err := Train([]model.Pattern{alternating()})
	require.NoError(t, err)

	s := Summarize(w)
	assert.Equal(t, model.Size, s.Size)
	assert.Equal(t, -1.0, s.Min)
	assert.Equal(t, 1.0, s.Max)
	// 128*127 same-parity pairs per parity, 128*128 cross pairs per direction
	assert.Equal(t, 2*128*127, s.Positive)
	assert.Equal(t, 2*128*128, s.Negative)
	assert.Equal(t, 0, s.Zero)
	assert.Less(t, s.Mean, 0.0)
	assert.InDelta(t, 1.0, s.StdDev, 0.01)
}

func TestSummarize_Cancelling(t *testing.T) {
	a := model.Pattern{1, 0}
	b := model.Pattern{1, 1}
	w, err := Train([]model.Pattern{a, b})
	require.NoError(t, err)

	s := Summarize(w)
	assert.Equal(t, 2, s.Zero)
	assert.Equal(t, 0.0, s.Mean)
	assert.Equal(t, 0.0, s.StdDev)
}
