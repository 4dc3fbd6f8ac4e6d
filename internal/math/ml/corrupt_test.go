package ml

import (
	"math"
	"math/rand"
	"testing"

	"github.com/drakos74/hopfield/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ones() model.Pattern {
	p := model.NewPattern()
	for i := range p {
		p[i] = 1
	}
	return p
}

func TestCorrupt_Flip(t *testing.T) {

	type test struct {
		pattern model.Pattern
		p       float64
		check   func(t *testing.T, in, out model.Pattern)
	}

	tests := map[string]test{
		"zero-probability": {
			pattern: randomPatterns(1, 1, model.Size)[0],
			p:       0,
			check: func(t *testing.T, in, out model.Pattern) {
				assert.Equal(t, in, out)
			},
		},
		"full-probability": {
			pattern: randomPatterns(2, 1, model.Size)[0],
			p:       1,
			check: func(t *testing.T, in, out model.Pattern) {
				assert.Equal(t, model.Size, in.Hamming(out))
				for i := range in {
					assert.Equal(t, 1-in[i], out[i])
				}
			},
		},
		"default-probability": {
			pattern: alternating(),
			p:       model.DefaultP,
			check: func(t *testing.T, in, out model.Pattern) {
				// ~77 expected flips
				d := in.Hamming(out)
				assert.Greater(t, d, 40)
				assert.Less(t, d, 115)
				assert.NoError(t, out.Validate())
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			in := tt.pattern.Copy()
			out, err := Corrupt(tt.pattern, model.FlipPolicy(tt.p), rand.New(rand.NewSource(11)))
			require.NoError(t, err)
			assert.Equal(t, in, tt.pattern)
			assert.Len(t, out, model.Size)
			tt.check(t, tt.pattern, out)
		})
	}
}

func TestCorrupt_FlipReproducible(t *testing.T) {
	p := alternating()
	policy := model.FlipPolicy(0.5)

	a, err := Corrupt(p, policy, rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	b, err := Corrupt(p, policy, rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	c, err := Corrupt(p, policy, rand.New(rand.NewSource(100)))
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestCorrupt_FlipDrawsPerPixel(t *testing.T) {
	// p = 0 still consumes one draw per pixel
	rnd := rand.New(rand.NewSource(5))
	_, err := Corrupt(alternating(), model.FlipPolicy(0), rnd)
	require.NoError(t, err)

	ref := rand.New(rand.NewSource(5))
	for i := 0; i < model.Size; i++ {
		ref.Float64()
	}
	assert.Equal(t, ref.Float64(), rnd.Float64())
}

func TestCorrupt_Crop(t *testing.T) {

	type test struct {
		pattern model.Pattern
		box     model.Box
		ones    int
		on      [][2]int
		off     [][2]int
	}

	tests := map[string]test{
		"full-grid": {
			pattern: ones(),
			box:     model.Box{Width: 16, Height: 16},
			ones:    model.Size,
		},
		"empty-box": {
			pattern: ones(),
			box:     model.Box{Width: 0, Height: 0},
			ones:    0,
		},
		"default-box": {
			pattern: ones(),
			box:     model.Box{Width: 10, Height: 10},
			ones:    100,
			on:      [][2]int{{3, 3}, {12, 12}, {3, 12}},
			off:     [][2]int{{2, 3}, {3, 2}, {13, 12}, {12, 13}},
		},
		"wide-box": {
			pattern: ones(),
			box:     model.Box{Width: 4, Height: 2},
			ones:    8,
			// x = 6, y = 7
			on:  [][2]int{{7, 6}, {8, 9}},
			off: [][2]int{{6, 6}, {9, 6}, {7, 5}, {7, 10}},
		},
		"odd-box": {
			pattern: ones(),
			box:     model.Box{Width: 3, Height: 5},
			ones:    15,
			// x = 6, y = 5
			on:  [][2]int{{5, 6}, {9, 8}},
			off: [][2]int{{4, 6}, {10, 6}, {5, 9}},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			in := tt.pattern.Copy()
			out, err := Corrupt(tt.pattern, model.CropPolicy(tt.box.Width, tt.box.Height), nil)
			require.NoError(t, err)
			assert.Equal(t, in, tt.pattern)

			count := 0
			for _, v := range out {
				count += v
			}
			assert.Equal(t, tt.ones, count)
			for _, rc := range tt.on {
				assert.Equal(t, 1, out[model.Index(rc[0], rc[1])], "%v", rc)
			}
			for _, rc := range tt.off {
				assert.Equal(t, 0, out[model.Index(rc[0], rc[1])], "%v", rc)
			}
		})
	}
}

func TestCorrupt_CropKeepsInsideUntouched(t *testing.T) {
	p := randomPatterns(8, 1, model.Size)[0]
	// non-binary marker inside the box
	p[model.Index(8, 8)] = 7

	out, err := Corrupt(p, model.CropPolicy(16, 16), nil)
	require.NoError(t, err)
	assert.Equal(t, p, out)

	out, err = Corrupt(p, model.CropPolicy(6, 6), nil)
	require.NoError(t, err)
	assert.Equal(t, 7, out[model.Index(8, 8)])
	assert.Equal(t, p[model.Index(5, 5)], out[model.Index(5, 5)])
	assert.Equal(t, 0, out[model.Index(4, 5)])
}

func TestCorrupt_Errors(t *testing.T) {

	type test struct {
		pattern model.Pattern
		policy  model.Policy
		rnd     *rand.Rand
	}

	rnd := rand.New(rand.NewSource(1))

	tests := map[string]test{
		"negative-p": {
			pattern: alternating(),
			policy:  model.FlipPolicy(-0.1),
			rnd:     rnd,
		},
		"large-p": {
			pattern: alternating(),
			policy:  model.FlipPolicy(1.1),
			rnd:     rnd,
		},
		"nan-p": {
			pattern: alternating(),
			policy:  model.FlipPolicy(math.NaN()),
			rnd:     rnd,
		},
		"no-source": {
			pattern: alternating(),
			policy:  model.FlipPolicy(0.3),
		},
		"wide-box": {
			pattern: alternating(),
			policy:  model.CropPolicy(17, 10),
		},
		"tall-box": {
			pattern: alternating(),
			policy:  model.CropPolicy(10, 20),
		},
		"negative-box": {
			pattern: alternating(),
			policy:  model.CropPolicy(-2, 4),
		},
		"unknown-method": {
			pattern: alternating(),
			policy:  model.Policy{Method: "blur"},
			rnd:     rnd,
		},
		"short-pattern": {
			pattern: model.Pattern{1, 0, 1},
			policy:  model.FlipPolicy(0.3),
			rnd:     rnd,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Corrupt(tt.pattern, tt.policy, tt.rnd)
			assert.ErrorIs(t, err, model.InvalidInputErr)
		})
	}
}
