package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeightMatrix(t *testing.T) {
	cells := []int{0, 2, 2, 0}
	w, err := NewWeightMatrix(2, cells)
	require.NoError(t, err)
	cells[1] = 5
	assert.Equal(t, 2, w.At(0, 1))
	assert.Equal(t, []int{2, 0}, w.Row(1))
	assert.True(t, w.IsSymmetric())
	assert.True(t, w.HasZeroDiagonal())

	s := w.Sym()
	r, _ := s.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2.0, s.At(1, 0))

	_, err = NewWeightMatrix(2, []int{0, 1, 1})
	assert.ErrorIs(t, err, InvalidInputErr)
	_, err = NewWeightMatrix(0, nil)
	assert.ErrorIs(t, err, InvalidInputErr)
}

func TestWeightMatrix_Checks(t *testing.T) {
	asym, err := NewWeightMatrix(2, []int{0, 1, -1, 0})
	require.NoError(t, err)
	assert.False(t, asym.IsSymmetric())
	assert.True(t, asym.HasZeroDiagonal())

	diag, err := NewWeightMatrix(2, []int{1, 0, 0, 0})
	require.NoError(t, err)
	assert.True(t, diag.IsSymmetric())
	assert.False(t, diag.HasZeroDiagonal())
}

func TestWeightMatrix_JSON(t *testing.T) {
	w, err := NewWeightMatrix(3, []int{0, 1, -1, 1, 0, 3, -1, 3, 0})
	require.NoError(t, err)

	b, err := json.Marshal(w)
	require.NoError(t, err)
	assert.JSONEq(t, `{"size":3,"cells":[0,1,-1,1,0,3,-1,3,0]}`, string(b))

	var v WeightMatrix
	require.NoError(t, json.Unmarshal(b, &v))
	assert.Equal(t, w.Cells(), v.Cells())

	err = json.Unmarshal([]byte(`{"size":3,"cells":[0,1]}`), &v)
	assert.ErrorIs(t, err, InvalidInputErr)
}
