// SPDX-License-Identifier: MIT

package gcn

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/graphconv/matrix"
	"github.com/pkg/errors"
)

// Initializer draws one weight for a fanIn×fanOut matrix.
type Initializer func(rng *rand.Rand, fanIn, fanOut int) float64

// Uniform draws from [lo, hi). Panics when the bounds are not finite or lo > hi.
func Uniform(lo, hi float64) Initializer {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo > hi {
		panic("gcn: Uniform: bounds must be finite with lo <= hi")
	}
	return func(rng *rand.Rand, _, _ int) float64 {
		return lo + (hi-lo)*rng.Float64()
	}
}

// GlorotUniform draws from [-l, l) with l = sqrt(6 / (fanIn + fanOut)).
func GlorotUniform() Initializer {
	return func(rng *rand.Rand, fanIn, fanOut int) float64 {
		l := math.Sqrt(6 / float64(fanIn+fanOut))
		return -l + 2*l*rng.Float64()
	}
}

// Constant fills every weight with v.
func Constant(v float64) Initializer {
	return func(*rand.Rand, int, int) float64 { return v }
}

// initWeights fills a rows×cols matrix in row-major order from init.
func initWeights(rows, cols int, seed int64, init Initializer) (*matrix.Dense, error) {
	w, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, errors.Wrap(err, "gcn: init weights")
	}
	rng := rand.New(rand.NewSource(seed))
	err = w.Apply(func(_, _ int, _ float64) float64 {
		return init(rng, rows, cols)
	})
	if err != nil {
		return nil, errors.Wrap(err, "gcn: init weights")
	}

	return w, nil
}
