package model_test

import (
	"math/big"
	"testing"

	"github.com/aretw0/boardchain/pkg/domain"
	"github.com/aretw0/boardchain/pkg/model"
	"github.com/stretchr/testify/assert"
)

func TestRelation_PairsAreOrdered(t *testing.T) {
	rel := mustBuild[float64](t, domain.DefaultTopology(), approx)

	pairs := rel.Pairs()
	assert.Equal(t, rel.Len(), len(pairs))
	for i := 1; i < len(pairs); i++ {
		prev, cur := pairs[i-1], pairs[i]
		assert.True(t, prev.From < cur.From || (prev.From == cur.From && prev.To < cur.To), "pairs %v then %v", prev, cur)
	}
}

func TestRelation_RowIsACopy(t *testing.T) {
	topo := domain.DefaultTopology()
	rel := mustBuild[float64](t, topo, approx)

	row := rel.Row(0)
	row[5] = 42

	assert.NotEqual(t, 42.0, rel.At(0, 5))
	assert.Zero(t, rel.At(0, topo.JailSecond()))
	assert.Equal(t, topo, rel.Topology())
	assert.Len(t, rel.States(), 43)
}

func TestDiagnose_SoundRelation(t *testing.T) {
	for _, topo := range topologies(t) {
		assert.Empty(t, model.Diagnose(mustBuild[float64](t, topo, approx)), topo.Key())
		assert.Empty(t, model.Diagnose(mustBuild[*big.Rat](t, topo, exact)), topo.Key())
	}
}
