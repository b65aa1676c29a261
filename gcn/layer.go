// SPDX-License-Identifier: MIT

package gcn

import (
	"math"
	"sync"

	"github.com/katalvlaran/graphconv/internal/parallel"
	"github.com/katalvlaran/graphconv/matrix"
	"github.com/pkg/errors"
)

// Operation tags used in error messages.
const (
	opNew          = "New"
	opNewFromEdges = "NewFromEdges"
	opForward      = "Forward"
	opForwardBatch = "ForwardBatch"
	opSetWeights   = "SetWeights"
)

// Layer is one symmetric-normalized graph convolution:
//
//	H = ReLU(D^-1/2 · (A + I) · D^-1/2 · X · W)
//
// Everything derived from A is computed once by New and never mutated
// afterwards. W is the only mutable state: Forward reads it under a read
// lock and SetWeights replaces it under the write lock, so an optimizer
// step never interleaves with an in-flight forward pass.
type Layer struct {
	inputDim  int
	outputDim int
	n         int

	adj        *matrix.Dense // A
	selfLoops  *matrix.Dense // A + I
	degree     []float64     // d
	degreeMat  *matrix.Dense // diag(d)
	invSqrt    *matrix.Dense // diag(d^-1/2)
	normalized *matrix.Dense // D^-1/2 · (A + I) · D^-1/2

	workers int
	hook    Hook

	mu sync.RWMutex
	w  *matrix.Dense // inputDim × outputDim
}

// New builds a layer over the N×N adjacency a.
//
// The degree of node i is the i-th row sum of a (or of a + I under
// WithSelfLoopDegree). A zero degree yields +Inf in D^-1/2; the layer is
// still built and, since 0·Inf = NaN, the NaN spreads through S to every
// output row, unless WithStrictDegree is set.
//
// Errors: ErrShape (non-square a, inputDim ≠ N, non-positive dims, bad
// WithWeights shape), matrix.ErrNilMatrix, ErrDegenerateDegree.
func New(inputDim, outputDim int, a matrix.Matrix, opts ...Option) (*Layer, error) {
	cfg := gatherOptions(opts...)

	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, errors.Wrap(err, "gcn: "+opNew)
	}
	if inputDim <= 0 || outputDim <= 0 {
		return nil, dimsErr(opNew, inputDim, outputDim)
	}
	n := a.Rows()
	if a.Cols() != n {
		return nil, shapeErr(opNew, "adjacency", n, n, a.Rows(), a.Cols())
	}
	// W rows must match the node count.
	if inputDim != n {
		return nil, shapeErr(opNew, "weights", n, outputDim, inputDim, outputDim)
	}

	l := &Layer{
		inputDim:  inputDim,
		outputDim: outputDim,
		n:         n,
		workers:   cfg.workers,
		hook:      cfg.hook,
	}
	if err := l.buildGraphTensors(a, cfg); err != nil {
		return nil, err
	}

	var err error
	if cfg.weights != nil {
		if err = checkWeights(opNew, cfg.weights, inputDim, outputDim); err != nil {
			return nil, err
		}
		l.w, err = matrix.DenseCopy(cfg.weights)
	} else {
		l.w, err = initWeights(inputDim, outputDim, cfg.seed, cfg.init)
	}
	if err != nil {
		return nil, errors.Wrap(err, "gcn: "+opNew)
	}

	return l, nil
}

// NewFromEdges builds the n×n adjacency from edges with
// matrix.BuildAdjacency (options from WithAdjacencyOptions) and then
// calls New.
func NewFromEdges(inputDim, outputDim, n int, edges []matrix.Edge, opts ...Option) (*Layer, error) {
	cfg := gatherOptions(opts...)
	a, err := matrix.BuildAdjacency(n, edges, cfg.adjOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "gcn: "+opNewFromEdges)
	}

	return New(inputDim, outputDim, a, opts...)
}

// buildGraphTensors derives A + I, d, D, D^-1/2 and S from a.
func (l *Layer) buildGraphTensors(a matrix.Matrix, cfg config) error {
	wrap := func(err error) error { return errors.Wrap(err, "gcn: "+opNew) }

	adj, err := matrix.DenseCopy(a)
	if err != nil {
		return wrap(err)
	}
	id, err := matrix.NewIdentity(l.n)
	if err != nil {
		return wrap(err)
	}
	sum, err := matrix.Add(adj, id)
	if err != nil {
		return wrap(err)
	}
	selfLoops := sum.(*matrix.Dense)

	degreeSrc := adj
	if cfg.selfLoopDegree {
		degreeSrc = selfLoops
	}
	degree, err := matrix.RowSums(degreeSrc)
	if err != nil {
		return wrap(err)
	}
	if cfg.strictDegree {
		for i, d := range degree {
			if !(d > 0) || math.IsInf(d, 0) {
				return errors.Wrapf(ErrDegenerateDegree, "gcn: %s: node %d has degree %g", opNew, i, d)
			}
		}
	}

	degreeMat, err := matrix.DiagEmbed(degree)
	if err != nil {
		return wrap(err)
	}
	invSqrt, err := matrix.DiagEmbed(matrix.PowVec(degree, -0.5))
	if err != nil {
		return wrap(err)
	}
	left, err := matrix.Mul(invSqrt, selfLoops)
	if err != nil {
		return wrap(err)
	}
	normalized, err := matrix.Mul(left, invSqrt)
	if err != nil {
		return wrap(err)
	}

	l.adj = adj
	l.selfLoops = selfLoops
	l.degree = degree
	l.degreeMat = degreeMat
	l.invSqrt = invSqrt
	l.normalized = normalized.(*matrix.Dense)

	return nil
}

// checkWeights validates a candidate W against inputDim×outputDim.
func checkWeights(op string, w matrix.Matrix, inputDim, outputDim int) error {
	if err := matrix.ValidateNotNil(w); err != nil {
		return errors.Wrap(err, "gcn: "+op)
	}
	if w.Rows() != inputDim || w.Cols() != outputDim {
		return shapeErr(op, "weights", inputDim, outputDim, w.Rows(), w.Cols())
	}

	return nil
}

// Forward computes H = ReLU(S · (X · W)) for an N×inputDim feature matrix.
// The result is a fresh N×outputDim matrix; every finite entry is ≥ 0.
//
// Errors: ErrShape when X is not N×inputDim; matrix.ErrNilMatrix.
func (l *Layer) Forward(x matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(x); err != nil {
		return nil, errors.Wrap(err, "gcn: "+opForward)
	}
	if x.Rows() != l.n || x.Cols() != l.inputDim {
		return nil, shapeErr(opForward, "features", l.n, l.inputDim, x.Rows(), x.Cols())
	}
	if l.hook != nil {
		l.hook(StageNormalized, l.Normalized())
	}

	l.mu.RLock()
	p, err := l.mul(x, l.w)
	l.mu.RUnlock()
	if err != nil {
		return nil, errors.Wrap(err, "gcn: "+opForward)
	}
	l.emit(StageProjected, p)

	h, err := l.mul(l.normalized, p)
	if err != nil {
		return nil, errors.Wrap(err, "gcn: "+opForward)
	}
	l.emit(StagePropagated, h)

	if err = matrix.ReLUInPlace(h); err != nil {
		return nil, errors.Wrap(err, "gcn: "+opForward)
	}
	l.emit(StageActivated, h)

	return h, nil
}

// ForwardBatch runs Forward for every feature matrix concurrently, one
// logical CPU core per in-flight pass, and returns results in input order.
// On failure it returns the error of the lowest failing index.
func (l *Layer) ForwardBatch(xs []matrix.Matrix) ([]*matrix.Dense, error) {
	out := make([]*matrix.Dense, len(xs))
	errs := make([]error, len(xs))
	parallel.ForEach(len(xs), parallel.DefaultLimit(), func(i int) {
		out[i], errs[i] = l.Forward(xs[i])
	})
	for i, err := range errs {
		if err != nil {
			return nil, errors.Wrapf(err, "gcn: %s: item %d", opForwardBatch, i)
		}
	}

	return out, nil
}

func (l *Layer) mul(a, b matrix.Matrix) (*matrix.Dense, error) {
	var (
		m   matrix.Matrix
		err error
	)
	if l.workers == 1 {
		m, err = matrix.Mul(a, b)
	} else {
		m, err = matrix.MulParallel(a, b, l.workers)
	}
	if err != nil {
		return nil, err
	}

	return m.(*matrix.Dense), nil
}

func (l *Layer) emit(s Stage, m *matrix.Dense) {
	if l.hook != nil {
		l.hook(s, m)
	}
}

// SetWeights replaces W with a copy of w. It blocks until in-flight
// forward passes release their read lock.
//
// Errors: ErrShape when w is not inputDim×outputDim; matrix.ErrNilMatrix.
func (l *Layer) SetWeights(w matrix.Matrix) error {
	if err := checkWeights(opSetWeights, w, l.inputDim, l.outputDim); err != nil {
		return err
	}
	cp, err := matrix.DenseCopy(w)
	if err != nil {
		return errors.Wrap(err, "gcn: "+opSetWeights)
	}

	l.mu.Lock()
	l.w = cp
	l.mu.Unlock()

	return nil
}

// Weights returns a copy of W.
func (l *Layer) Weights() *matrix.Dense {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.w.Clone().(*matrix.Dense)
}

// Dims returns (inputDim, outputDim).
func (l *Layer) Dims() (inputDim, outputDim int) { return l.inputDim, l.outputDim }

// Nodes returns N.
func (l *Layer) Nodes() int { return l.n }

// Adjacency returns a copy of A.
func (l *Layer) Adjacency() *matrix.Dense { return l.adj.Clone().(*matrix.Dense) }

// SelfLoops returns a copy of A + I.
func (l *Layer) SelfLoops() *matrix.Dense { return l.selfLoops.Clone().(*matrix.Dense) }

// Degree returns a copy of the degree vector d.
func (l *Layer) Degree() []float64 { return append([]float64(nil), l.degree...) }

// DegreeMatrix returns a copy of D = diag(d).
func (l *Layer) DegreeMatrix() *matrix.Dense { return l.degreeMat.Clone().(*matrix.Dense) }

// InvSqrtDegree returns a copy of D^-1/2.
func (l *Layer) InvSqrtDegree() *matrix.Dense { return l.invSqrt.Clone().(*matrix.Dense) }

// Normalized returns a copy of S = D^-1/2 · (A + I) · D^-1/2.
func (l *Layer) Normalized() *matrix.Dense { return l.normalized.Clone().(*matrix.Dense) }
