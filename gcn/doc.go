// SPDX-License-Identifier: MIT

// Package gcn implements a single symmetric-normalized graph convolution
// layer over a fixed dense adjacency matrix.
//
// For an N×N adjacency A, a learnable input_dim×output_dim weight matrix W
// and an N×input_dim feature matrix X:
//
//	A_hat = A + I_N
//	d_i   = Σ_j A_ij                  (row degree of A)
//	S     = D^-1/2 · A_hat · D^-1/2    (D = diag(d))
//	H     = ReLU(S · X · W)
//
// A_hat, D, D^-1/2 and S are computed once by New. Forward is a pure,
// deterministic function of (X, W).
//
// Note on normalization: degrees come from A, not from A_hat, which differs
// from the usual GCN renormalization trick. WithSelfLoopDegree switches to
// degrees of A_hat.
//
// Degenerate graphs: a node with no edges has d_i = 0, so D^-1/2 holds +Inf
// for it. Products follow IEEE 754 (0·Inf = NaN), so the node's row and
// column of S are NaN and every row of H comes out NaN. WithStrictDegree
// rejects such graphs at construction with ErrDegenerateDegree instead;
// WithSelfLoopDegree avoids zero degrees altogether.
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]float64{{1, 0, 0}, {0, 1, 1}, {0, 1, 1}})
//	layer, _ := gcn.New(3, 2, a, gcn.WithSeed(42))
//	h, _ := layer.Forward(x) // 3×2, every entry ≥ 0
package gcn
