// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for adjacency builders and the
// numeric policy of Dense. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Defaults mirror an undirected, unweighted, loop-free simple graph, the
//     usual input of a graph convolution.
//   - Numeric policy is orthogonal: validateNaNInf controls whether Set/Apply
//     and builder ingestion reject NaN/Inf. Kernels that write directly into
//     their output buffer (Mul, Pow, ReLU, DiagEmbed) are not subject to it,
//     so non-finite intermediates propagate instead of failing.
package matrix

// Numeric policy.
const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set/Apply.
	DefaultValidateNaNInf = true
)

// Adjacency build policy. These constants MUST reflect defaultOptions.
const (
	// DefaultDirected false ⇒ undirected (mirror [u,v] into [v,u], except loops).
	DefaultDirected = false

	// DefaultWeighted false ⇒ binary adjacency with unit entries.
	DefaultWeighted = false

	// DefaultAllowMulti true ⇒ parallel edges overwrite the same cell
	// (last-write-wins). false ⇒ first-edge-wins.
	DefaultAllowMulti = true

	// DefaultAllowLoops includes self-loops when true.
	DefaultAllowLoops = false
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf

	directed   bool // DefaultDirected
	weighted   bool // DefaultWeighted
	allowMulti bool // DefaultAllowMulti
	allowLoops bool // DefaultAllowLoops
}

// WithValidateNaNInf enables rejection of NaN/±Inf on Set/Apply and on
// weighted edge ingestion.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables the finite-value guard. Use for matrices that
// legitimately carry non-finite values (e.g. inverse degrees of isolated nodes).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithDirected treats each edge as u→v only.
func WithDirected() Option {
	return func(o *Options) { o.directed = true }
}

// WithUndirected mirrors each edge into both cells (default).
func WithUndirected() Option {
	return func(o *Options) { o.directed = false }
}

// WithWeighted writes Edge.Weight instead of 1.
func WithWeighted() Option {
	return func(o *Options) { o.weighted = true }
}

// WithUnweighted writes 1 for every accepted edge (default).
func WithUnweighted() Option {
	return func(o *Options) { o.weighted = false }
}

// WithAllowMulti lets parallel edges overwrite the cell (last-write-wins).
func WithAllowMulti() Option {
	return func(o *Options) { o.allowMulti = true }
}

// WithDisallowMulti keeps only the first edge per cell (first-edge-wins).
func WithDisallowMulti() Option {
	return func(o *Options) { o.allowMulti = false }
}

// WithAllowLoops keeps self-loop edges (u==v) on the diagonal.
func WithAllowLoops() Option {
	return func(o *Options) { o.allowLoops = true }
}

// WithDisallowLoops silently drops self-loop edges (default).
func WithDisallowLoops() Option {
	return func(o *Options) { o.allowLoops = false }
}

// NewMatrixOptions resolves opts over the defaults. Exposed for tests and
// callers that want to inspect the effective policy.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Directed reports the resolved directedness.
func (o Options) Directed() bool { return o.directed }

// Weighted reports whether edge weights are kept.
func (o Options) Weighted() bool { return o.weighted }

// AllowLoops reports whether self-loops are kept.
func (o Options) AllowLoops() bool { return o.allowLoops }

// AllowMulti reports the parallel-edge policy.
func (o Options) AllowMulti() bool { return o.allowMulti }

// ValidateNaNInf reports the numeric policy.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		validateNaNInf: DefaultValidateNaNInf,
		directed:       DefaultDirected,
		weighted:       DefaultWeighted,
		allowMulti:     DefaultAllowMulti,
		allowLoops:     DefaultAllowLoops,
	}
}

// gatherOptions applies user options in order over the defaults.
// Nil options are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
