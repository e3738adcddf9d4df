package dataset

import (
	"errors"
	"fmt"

	"github.com/statproj/gofit/rng"
)

// ErrInvalidConfig reports generator parameters that are rejected before any
// random draw is consumed.
var ErrInvalidConfig = errors.New("invalid generator configuration")

// GenerateLinear draws n observations from the straight line
// y = alpha0 + alpha1*x with independent zero-mean Gaussian noise of
// standard deviation sigma. The abscissas are x_i = 1, 2, ..., n and every
// observation carries the uncertainty sigma.
//
// The source is consumed exactly n times, once per observation in order, so
// a fixed seed reproduces the dataset exactly.
func GenerateLinear(src *rng.Source, n int, alpha0, alpha1, sigma float64) (*Dataset, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: sample size must be at least 1, got %d", ErrInvalidConfig, n)
	}
	if sigma <= 0 {
		return nil, fmt.Errorf("%w: noise scale must be positive, got %g", ErrInvalidConfig, sigma)
	}

	obs := make([]Observation, n)
	for i := range obs {
		x := float64(i + 1)
		obs[i] = Observation{
			X:      x,
			Y:      alpha0 + alpha1*x + src.Gaussian(0, sigma),
			SigmaY: sigma,
		}
	}

	return &Dataset{Obs: obs, Name: "synthetic_linear"}, nil
}
