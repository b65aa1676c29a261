package gcn_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/graphconv/gcn"
	"github.com/katalvlaran/graphconv/matrix"
	"github.com/stretchr/testify/require"
)

func TestWithSeedReproducesWeights(t *testing.T) {
	a := mustRows(t, [][]float64{{0, 1}, {1, 0}})

	l1, err := gcn.New(2, 3, a, gcn.WithSeed(42))
	require.NoError(t, err)
	l2, err := gcn.New(2, 3, a, gcn.WithSeed(42))
	require.NoError(t, err)
	l3, err := gcn.New(2, 3, a, gcn.WithSeed(43))
	require.NoError(t, err)

	require.Equal(t, l1.Weights().RawData(), l2.Weights().RawData())
	require.NotEqual(t, l1.Weights().RawData(), l3.Weights().RawData())
}

func TestDefaultInitializerIsUnitUniform(t *testing.T) {
	a, err := matrix.NewIdentity(16)
	require.NoError(t, err)
	l, err := gcn.New(16, 16, a, gcn.WithSeed(1))
	require.NoError(t, err)

	l.Weights().Do(func(i, j int, v float64) bool {
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
		return true
	})
}

func TestInitializers(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	u := gcn.Uniform(-2, 3)
	g := gcn.GlorotUniform()
	limit := 1.0 // sqrt(6 / (2 + 4))
	for i := 0; i < 1000; i++ {
		v := u(rng, 4, 4)
		require.GreaterOrEqual(t, v, -2.0)
		require.Less(t, v, 3.0)

		v = g(rng, 2, 4)
		require.GreaterOrEqual(t, v, -limit)
		require.Less(t, v, limit)
	}
	require.Equal(t, 0.25, gcn.Constant(0.25)(rng, 1, 1))
}

func TestInitializerPanics(t *testing.T) {
	require.Panics(t, func() { gcn.Uniform(1, 0) })
	require.Panics(t, func() { gcn.WithInitializer(nil) })
}

func TestWithHookReportsStagesInOrder(t *testing.T) {
	var stages []gcn.Stage
	var last *matrix.Dense
	l := threeNodeLayer(t, gcn.WithHook(func(s gcn.Stage, m *matrix.Dense) {
		stages = append(stages, s)
		last = m
	}))

	h, err := l.Forward(threeNodeFeatures(t))
	require.NoError(t, err)
	require.Equal(t, []gcn.Stage{
		gcn.StageNormalized, gcn.StageProjected, gcn.StagePropagated, gcn.StageActivated,
	}, stages)
	require.Equal(t, h.RawData(), last.RawData())
}

func TestWithHookSeesPreActivation(t *testing.T) {
	var propagated *matrix.Dense
	l := threeNodeLayer(t, gcn.WithHook(func(s gcn.Stage, m *matrix.Dense) {
		if s == gcn.StagePropagated {
			propagated = m.Clone().(*matrix.Dense)
		}
	}))

	_, err := l.Forward(threeNodeFeatures(t))
	require.NoError(t, err)
	requireClose(t, mustRows(t, [][]float64{{8, -2}, {18, -1.5}, {21, -1.5}}), propagated)
}

func TestStageString(t *testing.T) {
	require.Equal(t, "normalized", gcn.StageNormalized.String())
	require.Equal(t, "projected", gcn.StageProjected.String())
	require.Equal(t, "propagated", gcn.StagePropagated.String())
	require.Equal(t, "activated", gcn.StageActivated.String())
	require.Equal(t, "unknown", gcn.Stage(99).String())
}

func TestWithWorkersMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	const n = 12
	a := randomAdjacency(t, rng, n)
	x := randomFeatures(t, rng, n, n)

	seq, err := gcn.New(n, 5, a, gcn.WithSeed(4), gcn.WithSelfLoopDegree())
	require.NoError(t, err)
	hs, err := seq.Forward(x)
	require.NoError(t, err)

	for _, workers := range []int{0, 2, 5, 64} {
		par, err := gcn.New(n, 5, a, gcn.WithSeed(4), gcn.WithSelfLoopDegree(), gcn.WithWorkers(workers))
		require.NoError(t, err)
		hp, err := par.Forward(x)
		require.NoError(t, err)
		require.Equal(t, hs.RawData(), hp.RawData(), "workers=%d", workers)
	}
}

func TestNewFromEdges(t *testing.T) {
	edges := []matrix.Edge{{From: 1, To: 2}, {From: 0, To: 0}}

	l, err := gcn.NewFromEdges(3, 2, 3, edges,
		gcn.WithWeights(mustRows(t, [][]float64{{1, 0}, {0, 1}, {1, -1}})),
		gcn.WithAdjacencyOptions(matrix.WithAllowLoops()),
	)
	require.NoError(t, err)
	requireClose(t, mustRows(t, [][]float64{{1, 0, 0}, {0, 0, 1}, {0, 1, 0}}), l.Adjacency())
	require.Equal(t, []float64{1, 1, 1}, l.Degree())

	_, err = gcn.NewFromEdges(3, 2, 3, []matrix.Edge{{From: 0, To: 7}})
	require.ErrorIs(t, err, matrix.ErrUnknownVertex)
}
