// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/graphconv/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// toGonum copies a Dense into a gonum matrix.
func toGonum(m *matrix.Dense) *mat.Dense {
	r, c := m.Shape()
	return mat.NewDense(r, c, m.RawData())
}

// TestKernelsAgreeWithGonum compares the hand-written kernels with gonum on
// finite random inputs.
func TestKernelsAgreeWithGonum(t *testing.T) {
	const tol = 1e-12
	shapes := [][3]int{{1, 1, 1}, {3, 5, 2}, {16, 16, 16}, {31, 7, 19}}

	for i, sh := range shapes {
		r, k, c := sh[0], sh[1], sh[2]
		t.Run(fmt.Sprintf("%dx%dx%d", r, k, c), func(t *testing.T) {
			a := RandDense(t, r, k, int64(10+i))
			b := RandDense(t, k, c, int64(20+i))

			var want mat.Dense
			want.Mul(toGonum(a), toGonum(b))

			got, err := matrix.Mul(a, b)
			require.NoError(t, err)
			require.True(t, floats.EqualApprox(got.(*matrix.Dense).RawData(), want.RawMatrix().Data, tol))

			got, err = matrix.MulParallel(a, b, 3)
			require.NoError(t, err)
			require.True(t, floats.EqualApprox(got.(*matrix.Dense).RawData(), want.RawMatrix().Data, tol))

			tr, err := matrix.Transpose(a)
			require.NoError(t, err)
			require.True(t, mat.Equal(toGonum(tr.(*matrix.Dense)), toGonum(a).T()))

			x := make([]float64, k)
			for j := range x {
				x[j] = float64(j) - 1.5
			}
			var y mat.VecDense
			y.MulVec(toGonum(a), mat.NewVecDense(k, x))
			gotY, err := matrix.MatVec(a, x)
			require.NoError(t, err)
			require.True(t, floats.EqualApprox(gotY, y.RawVector().Data, tol))

			sums, err := matrix.RowSums(a)
			require.NoError(t, err)
			for row := 0; row < r; row++ {
				require.InDelta(t, floats.Sum(a.RawData()[row*k:(row+1)*k]), sums[row], tol)
			}
		})
	}
}
