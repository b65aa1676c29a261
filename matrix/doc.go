// Package matrix offers dense linear algebra for small and medium graphs.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with error-returning At/Set and an
//     optional NaN/Inf guard (WithValidateNaNInf / WithNoValidateNaNInf).
//   - Kernels: Add, Sub, Mul, MulParallel, Transpose, Scale, Hadamard, MatVec.
//   - Element-wise helpers: Pow, PowVec, ReLU, ReplaceInfNaN, IsFinite, AllClose.
//   - Diagonal helpers: NewIdentity, NewOnes, Diag, DiagEmbed.
//   - BuildAdjacency for turning an index edge list into an adjacency matrix,
//     and RowSums/ColSums for degree vectors.
//
// Kernels always allocate a fresh result and never mutate their operands.
// They write into the result buffer directly, so non-finite intermediates
// (for example 0^-0.5) propagate instead of failing; the numeric guard only
// applies to Set, Apply and builder ingestion.
//
// Errors are sentinels prefixed "matrix:" wrapped with an operation tag;
// match them with errors.Is.
package matrix
