package ml

import (
	"fmt"
	"math/rand"

	"github.com/drakos74/hopfield/internal/model"
)

// Corrupt creates a degraded copy of the pattern according to the policy.
// The given source is the only randomness used, so the same seed produces the same probe.
// rnd is not safe for concurrent use, every goroutine needs its own.
func Corrupt(pattern model.Pattern, policy model.Policy, rnd *rand.Rand) (model.Pattern, error) {
	if len(pattern) != model.Size {
		return nil, fmt.Errorf("pattern has %d pixels instead of %d: %w", len(pattern), model.Size, model.InvalidInputErr)
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	switch policy.Method {
	case model.Flip:
		if rnd == nil {
			return nil, fmt.Errorf("flip needs a random source: %w", model.InvalidInputErr)
		}
		return flip(pattern, policy.P, rnd), nil
	case model.Crop:
		return crop(pattern, policy.Box), nil
	}
	return nil, fmt.Errorf("unknown corruption method '%s': %w", policy.Method, model.InvalidInputErr)
}

func flip(pattern model.Pattern, p float64, rnd *rand.Rand) model.Pattern {
	corrupted := pattern.Copy()
	for i := range corrupted {
		// draw for every pixel, even for p = 0 or p = 1
		if rnd.Float64() < p {
			corrupted[i] = 1 - corrupted[i]
		}
	}
	return corrupted
}

func crop(pattern model.Pattern, box model.Box) model.Pattern {
	corrupted := pattern.Copy()
	x := (model.Width - box.Width) / 2
	y := (model.Height - box.Height) / 2
	for row := 0; row < model.Height; row++ {
		for col := 0; col < model.Width; col++ {
			if row < y || row >= y+box.Height || col < x || col >= x+box.Width {
				corrupted[model.Index(row, col)] = 0
			}
		}
	}
	return corrupted
}
