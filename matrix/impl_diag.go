// SPDX-License-Identifier: MIT
// Package matrix - diagonal extraction/embedding and neutral-element constructors.
//
// Determinism:
//   - Fixed i-loop; one write per diagonal cell.
//
// Numeric policy:
//   - DiagEmbed writes directly into the buffer, so +Inf/NaN entries of the
//     vector survive (needed for inverse degrees of isolated nodes).

package matrix

const (
	opDiag      = "Diag"
	opDiagEmbed = "DiagEmbed"
	opIdentity  = "NewIdentity"
)

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// IdentityLike returns I with dimension = Rows(m); requires square shape.
func IdentityLike(m Matrix) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}

	return NewIdentity(m.Rows())
}

// NewOnes returns a rows×cols matrix filled with 1.
func NewOnes(rows, cols int) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	for idx := range m.data {
		m.data[idx] = 1.0
	}

	return m, nil
}

// Diag extracts the main diagonal of m: out[i] = m[i,i] for i < min(r,c).
func Diag(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDiag, err)
	}
	n := m.Rows()
	if m.Cols() < n {
		n = m.Cols()
	}
	out := make([]float64, n)
	var err error
	for i := 0; i < n; i++ {
		if out[i], err = m.At(i, i); err != nil {
			return nil, matrixErrorf(opDiag, err)
		}
	}

	return out, nil
}

// DiagEmbed builds the n×n diagonal matrix diag(v), n = len(v).
// Errors: ErrInvalidDimensions for an empty vector.
func DiagEmbed(v []float64) (*Dense, error) {
	n := len(v)
	m, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opDiagEmbed, err)
	}
	for i, x := range v {
		m.data[i*n+i] = x
	}

	return m, nil
}
