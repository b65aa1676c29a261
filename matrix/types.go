// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by kernels and adjacency builders.
// Errors and options live in dedicated files (errors.go, options.go).
package matrix

// Edge is one entry of an index-based edge list consumed by BuildAdjacency.
// From and To are zero-based node indices in [0, n). Weight is used only
// when the builder runs with WithWeighted(); otherwise every edge writes 1.
type Edge struct {
	From   int     // source node index
	To     int     // destination node index
	Weight float64 // finite edge weight (weighted mode only)
}

// pairKey is an ordered pair (u,v) used to de-duplicate parallel edges under
// the first-edge-wins policy. Undirected mode normalizes into {min,max}.
type pairKey struct {
	u int // row index
	v int // column index
}

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}
