// SPDX-License-Identifier: MIT

// Package gcn: functional configuration for Layer construction.
//
// Defaults follow the plain formulation of the layer:
//   - degree taken from A (not A + I),
//   - zero-degree nodes propagate +Inf/NaN instead of failing,
//   - W ~ Uniform[0, 1) from a time-seeded source,
//   - sequential matrix products.
package gcn

import (
	"time"

	"github.com/katalvlaran/graphconv/matrix"
)

// Stage names an intermediate of a forward pass reported to a Hook.
type Stage int

const (
	// StageNormalized carries S = D^-1/2 · (A + I) · D^-1/2 (a copy).
	StageNormalized Stage = iota
	// StageProjected carries P = X · W.
	StageProjected
	// StagePropagated carries S · P before rectification.
	StagePropagated
	// StageActivated carries the returned H = ReLU(S · P).
	StageActivated
)

func (s Stage) String() string {
	switch s {
	case StageNormalized:
		return "normalized"
	case StageProjected:
		return "projected"
	case StagePropagated:
		return "propagated"
	case StageActivated:
		return "activated"
	default:
		return "unknown"
	}
}

// Hook observes forward-pass intermediates. It runs synchronously on the
// calling goroutine and must not retain or mutate m.
type Hook func(stage Stage, m *matrix.Dense)

// Option configures a Layer.
type Option func(*config)

type config struct {
	seed           int64
	init           Initializer
	weights        matrix.Matrix
	selfLoopDegree bool
	strictDegree   bool
	workers        int
	hook           Hook
	adjOpts        []matrix.Option
}

const (
	// DefaultWorkers keeps forward passes single-threaded.
	DefaultWorkers = 1
)

// WithSeed fixes the random source used by the weight initializer.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithInitializer replaces the default Uniform(0, 1) initializer.
// Panics on a nil initializer.
func WithInitializer(init Initializer) Option {
	if init == nil {
		panic("gcn: WithInitializer: nil initializer")
	}
	return func(c *config) { c.init = init }
}

// WithWeights supplies W explicitly (copied); the initializer is not used.
// Its shape is checked by New against inputDim×outputDim.
func WithWeights(w matrix.Matrix) Option {
	return func(c *config) { c.weights = w }
}

// WithSelfLoopDegree derives degrees from A + I instead of A, giving the
// standard GCN renormalization.
func WithSelfLoopDegree() Option {
	return func(c *config) { c.selfLoopDegree = true }
}

// WithStrictDegree makes New fail with ErrDegenerateDegree when any degree
// is not strictly positive and finite.
func WithStrictDegree() Option {
	return func(c *config) { c.strictDegree = true }
}

// WithWorkers sets the goroutine budget of each matrix product in Forward.
// n <= 0 selects one worker per logical CPU core.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// WithHook registers an observer for forward-pass intermediates.
func WithHook(h Hook) Option {
	return func(c *config) { c.hook = h }
}

// WithAdjacencyOptions forwards builder options to matrix.BuildAdjacency
// when the layer is built by NewFromEdges.
func WithAdjacencyOptions(opts ...matrix.Option) Option {
	return func(c *config) { c.adjOpts = append(c.adjOpts, opts...) }
}

func gatherOptions(opts ...Option) config {
	c := config{
		seed:    time.Now().UnixNano(),
		init:    Uniform(0, 1),
		workers: DefaultWorkers,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&c)
		}
	}

	return c
}
