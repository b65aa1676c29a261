// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/graphconv/matrix"
	"github.com/stretchr/testify/require"
)

func TestBuildAdjacencyDefaults(t *testing.T) {
	edges := []matrix.Edge{
		{From: 0, To: 1, Weight: 5},
		{From: 1, To: 2, Weight: 7},
		{From: 2, To: 2, Weight: 1}, // dropped: loops disallowed
	}
	a, err := matrix.BuildAdjacency(3, edges)
	require.NoError(t, err)
	require.Equal(t, []float64{
		0, 1, 0,
		1, 0, 1,
		0, 1, 0,
	}, a.RawData())
	require.NoError(t, matrix.ValidateSymmetric(a, 0))
}

func TestBuildAdjacencyPolicies(t *testing.T) {
	edges := []matrix.Edge{
		{From: 0, To: 1, Weight: 2},
		{From: 1, To: 0, Weight: 3},
		{From: 1, To: 1, Weight: 4},
	}

	tests := []struct {
		name string
		opts []matrix.Option
		want []float64
	}{
		{
			name: "weighted last write wins",
			opts: []matrix.Option{matrix.WithWeighted()},
			want: []float64{0, 3, 3, 0},
		},
		{
			name: "weighted first edge wins",
			opts: []matrix.Option{matrix.WithWeighted(), matrix.WithDisallowMulti()},
			want: []float64{0, 2, 2, 0},
		},
		{
			name: "directed weighted with loops",
			opts: []matrix.Option{matrix.WithDirected(), matrix.WithWeighted(), matrix.WithAllowLoops()},
			want: []float64{0, 2, 3, 4},
		},
		{
			name: "directed distinct keys survive dedup",
			opts: []matrix.Option{matrix.WithDirected(), matrix.WithDisallowMulti(), matrix.WithUnweighted()},
			want: []float64{0, 1, 1, 0},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, err := matrix.BuildAdjacency(2, edges, tc.opts...)
			require.NoError(t, err)
			require.Equal(t, tc.want, a.RawData())
		})
	}
}

func TestBuildAdjacencyErrors(t *testing.T) {
	_, err := matrix.BuildAdjacency(0, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.BuildAdjacency(2, []matrix.Edge{{From: 0, To: 2}})
	require.ErrorIs(t, err, matrix.ErrUnknownVertex)
	require.Contains(t, err.Error(), "edge 0")

	_, err = matrix.BuildAdjacency(2, []matrix.Edge{{From: 0, To: 1, Weight: math.Inf(1)}}, matrix.WithWeighted())
	require.ErrorIs(t, err, matrix.ErrInvalidWeight)

	// Unweighted mode ignores the weight field entirely.
	a, err := matrix.BuildAdjacency(2, []matrix.Edge{{From: 0, To: 1, Weight: math.NaN()}})
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 1, 0}, a.RawData())
}
