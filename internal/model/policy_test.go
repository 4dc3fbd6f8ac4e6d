package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePolicy(t *testing.T) {

	type test struct {
		method string
		p      float64
		w, h   int
		policy Policy
		err    error
	}

	tests := map[string]test{
		"flip": {
			method: "flip",
			p:      0.3,
			policy: Policy{Method: Flip, P: 0.3},
		},
		"flip-upper": {
			method: " FLIP ",
			p:      1,
			policy: Policy{Method: Flip, P: 1},
		},
		"crop": {
			method: "Crop",
			w:      10,
			h:      8,
			policy: Policy{Method: Crop, Box: Box{Width: 10, Height: 8}},
		},
		"flip-out-of-range": {
			method: "flip",
			p:      2,
			err:    InvalidInputErr,
		},
		"crop-too-large": {
			method: "crop",
			w:      10,
			h:      17,
			err:    InvalidInputErr,
		},
		"unknown": {
			method: "rotate",
			err:    InvalidInputErr,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			policy, err := ParsePolicy(tt.method, tt.p, tt.w, tt.h)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.policy, policy)
		})
	}
}

func TestParseMethod(t *testing.T) {
	assert.Equal(t, Flip, ParseMethod("Flip"))
	assert.Equal(t, Crop, ParseMethod(" CROP "))
	assert.Equal(t, Method("smudge"), ParseMethod("smudge"))
}

func TestParseBox(t *testing.T) {
	b, err := ParseBox("10x12")
	require.NoError(t, err)
	assert.Equal(t, Box{Width: 10, Height: 12}, b)
	assert.Equal(t, "10x12", b.String())

	_, err = ParseBox("ten")
	assert.ErrorIs(t, err, InvalidInputErr)
}

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy()
	assert.NoError(t, p.Validate())
	assert.Equal(t, Flip, p.Method)
	assert.Equal(t, 0.3, p.P)
	assert.Equal(t, Box{Width: 10, Height: 10}, p.Box)
	assert.Equal(t, "flip(0.30)", p.String())
	assert.Equal(t, "crop(4x6)", CropPolicy(4, 6).String())
}
