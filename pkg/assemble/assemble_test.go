package assemble_test

import (
	"math/big"
	"testing"

	"github.com/aretw0/boardchain/pkg/assemble"
	"github.com/aretw0/boardchain/pkg/domain"
	"github.com/aretw0/boardchain/pkg/model"
	"github.com/aretw0/boardchain/pkg/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBuild[T any](t *testing.T, topo domain.Topology, a numeric.Arith[T]) *model.Relation[T] {
	t.Helper()
	rel, err := model.Build(topo, a)
	require.NoError(t, err)
	return rel
}

func TestTable_ExciseAndTranspose(t *testing.T) {
	tbl := assemble.NewTable(3, 3, 0)
	v := 0
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			tbl.Set(i, j, v)
			v++
		}
	}

	ex := tbl.Excise(1)
	r, c := ex.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	assert.Equal(t, 0, ex.At(0, 0))
	assert.Equal(t, 2, ex.At(0, 1))
	assert.Equal(t, 6, ex.At(1, 0))
	assert.Equal(t, 8, ex.At(1, 1))

	tr := ex.Transpose()
	assert.Equal(t, 6, tr.At(0, 1))
	assert.Equal(t, 2, tr.At(1, 0))

	assert.Panics(t, func() { tbl.At(3, 0) })
}

func TestDense_ColumnStochastic(t *testing.T) {
	topo := domain.DefaultTopology()
	m := assemble.Dense(mustBuild[float64](t, topo, numeric.Float{}))

	r, c := m.Dims()
	require.Equal(t, 42, r)
	require.Equal(t, 42, c)

	for j := 0; j < c; j++ {
		sum := 0.0
		for i := 0; i < r; i++ {
			v := m.At(i, j)
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
			sum += v
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "column %d", j)
	}
}

func TestDense_Orientation(t *testing.T) {
	topo := domain.DefaultTopology()
	rel := mustBuild[float64](t, topo, numeric.Float{})
	m := assemble.Dense(rel)
	labels := assemble.Labels(topo)

	// Entry (i, j) is the move from labels[j] into labels[i].
	for i, to := range labels {
		for j, from := range labels {
			assert.Equal(t, rel.At(from, to), m.At(i, j), "from %d to %d", from, to)
		}
	}
}

func TestExact_MatchesDense(t *testing.T) {
	topologies := []domain.Topology{domain.DefaultTopology()}
	small, err := domain.NewTopology(9, 2, 2, 5, []domain.State{0, 7})
	require.NoError(t, err)
	topologies = append(topologies, small)

	for _, topo := range topologies {
		dense := assemble.Dense(mustBuild[float64](t, topo, numeric.Float{}))
		exact := assemble.Exact(mustBuild[*big.Rat](t, topo, numeric.Rational{}))
		cast := assemble.ToDense(exact)

		r, c := dense.Dims()
		er, ec := exact.Dims()
		require.Equal(t, r, er)
		require.Equal(t, c, ec)

		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				assert.InDelta(t, dense.At(i, j), cast.At(i, j), 1e-9, "%s (%d,%d)", topo.Key(), i, j)
			}
		}

		for j := 0; j < ec; j++ {
			sum := new(big.Rat)
			for i := 0; i < er; i++ {
				sum.Add(sum, exact.At(i, j))
			}
			assert.Equal(t, "1", sum.RatString(), "%s column %d", topo.Key(), j)
		}
	}
}

func TestLabels(t *testing.T) {
	topo := domain.DefaultTopology()
	labels := assemble.Labels(topo)

	require.Len(t, labels, 42)
	assert.NotContains(t, labels, topo.GoToJail)
	assert.Equal(t, domain.State(29), labels[29])
	assert.Equal(t, domain.State(31), labels[30])
	assert.Equal(t, topo.JailThird(), labels[41])
}

func TestSparse_RowStochasticWithTrap(t *testing.T) {
	topo := domain.DefaultTopology()
	chain := assemble.Sparse(mustBuild[float64](t, topo, numeric.Float{}))

	assert.Len(t, chain.States(), 43)
	for _, s := range chain.States() {
		sum := 0.0
		for _, v := range chain.Row(s) {
			sum += v
		}
		assert.InDelta(t, 1.0, sum, 1e-9, "state %d", s)
		assert.Zero(t, chain.Prob(s, topo.GoToJail))
	}

	assert.Equal(t, map[domain.State]float64{topo.JailFirst(): 1}, chain.Row(topo.GoToJail))
	for _, v := range chain.Edges {
		assert.Positive(t, v)
	}
}
