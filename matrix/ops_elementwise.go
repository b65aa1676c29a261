// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise kernels (power, rectification, sanitization, comparison).
//   - One private micro-kernel (ewMap) owns the loop; public functions are thin.
//
// Determinism & Performance:
//   - Fixed flat 0..n-1 loop over the row-major buffer.
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.
//
// Numeric policy:
//   - ewMap writes directly into the result buffer, so non-finite outputs
//     (0^-0.5 = +Inf, NaN inputs) propagate instead of failing.

package matrix

import "math"

const (
	opPow           = "Pow"
	opReLU          = "ReLU"
	opReplaceInfNaN = "ReplaceInfNaN"
	opAllClose      = "AllClose"
	opIsFinite      = "IsFinite"
)

// ewMap returns a fresh Dense with out[i,j] = f(X[i,j]).
func ewMap(X Matrix, tag string, f func(v float64) float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	src, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out, err := NewDense(src.r, src.c)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	for idx, v := range src.data {
		out.data[idx] = f(v)
	}

	return out, nil
}

// isFinite reports v ∉ {NaN, ±Inf}.
func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// relu is max(v, 0) with NaN passed through unchanged.
func relu(v float64) float64 {
	if v < 0 {
		return 0
	}

	return v
}

// Pow returns out[i,j] = X[i,j]^p (math.Pow semantics).
// Zero raised to a negative power yields +Inf; it is not an error.
// Time: O(r*c). Space: O(r*c).
func Pow(X Matrix, p float64) (*Dense, error) {
	return ewMap(X, opPow, func(v float64) float64 { return math.Pow(v, p) })
}

// PowVec returns a new slice with out[i] = x[i]^p.
func PowVec(x []float64, p float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = math.Pow(v, p)
	}

	return out
}

// ReLU returns out[i,j] = max(X[i,j], 0).
// NaN entries stay NaN and +Inf stays +Inf; -Inf becomes 0.
// Time: O(r*c). Space: O(r*c).
func ReLU(X Matrix) (*Dense, error) {
	return ewMap(X, opReLU, relu)
}

// ReLUInPlace rectifies m in place, bypassing the numeric policy.
func ReLUInPlace(m *Dense) error {
	if m == nil {
		return matrixErrorf(opReLU, ErrNilMatrix)
	}
	for idx, v := range m.data {
		m.data[idx] = relu(v)
	}

	return nil
}

// ReplaceInfNaN returns a copy of X where any {±Inf, NaN} are replaced by val.
// Policy: val must be finite; otherwise ErrNaNInf is returned.
func ReplaceInfNaN(X Matrix, val float64) (*Dense, error) {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return nil, matrixErrorf(opReplaceInfNaN, ErrNaNInf)
	}

	return ewMap(X, opReplaceInfNaN, func(v float64) float64 {
		if !isFinite(v) {
			return val
		}
		return v
	})
}

// IsFinite reports whether every entry of X is finite.
func IsFinite(X Matrix) (bool, error) {
	if err := ValidateNotNil(X); err != nil {
		return false, matrixErrorf(opIsFinite, err)
	}
	src, err := asDense(X)
	if err != nil {
		return false, matrixErrorf(opIsFinite, err)
	}
	for _, v := range src.data {
		if !isFinite(v) {
			return false, nil
		}
	}

	return true, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol must be finite; negative values are normalized to |rtol|, |atol|.
//   - NaN is never close to anything; +Inf equals +Inf and -Inf equals -Inf.
//
// Time: O(r*c). Space: O(1) for Dense operands.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var av, bv float64
	for idx := range da.data {
		av, bv = da.data[idx], db.data[idx]
		if av == bv {
			continue // covers equal infinities
		}
		if math.IsNaN(av) || math.IsNaN(bv) || math.IsInf(av, 0) || math.IsInf(bv, 0) {
			return false, nil
		}
		if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
			return false, nil
		}
	}

	return true, nil
}
