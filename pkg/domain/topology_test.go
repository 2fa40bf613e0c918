package domain_test

import (
	"testing"

	"github.com/aretw0/boardchain/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTopology_Validation(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		dice     int
		jail     domain.State
		gotoJail domain.State
		chance   []domain.State
		wantErr  bool
	}{
		{name: "Default board", size: 40, dice: 2, jail: 10, gotoJail: 30, chance: []domain.State{7, 22, 36}},
		{name: "Single die small board", size: 6, dice: 1, jail: 1, gotoJail: 4},
		{name: "Jail equals goto_jail", size: 40, dice: 2, jail: 10, gotoJail: 10, wantErr: true},
		{name: "Board too small", size: 1, dice: 2, jail: 0, gotoJail: 0, wantErr: true},
		{name: "No dice", size: 40, dice: 0, jail: 10, gotoJail: 30, wantErr: true},
		{name: "Jail off board", size: 40, dice: 2, jail: 40, gotoJail: 30, wantErr: true},
		{name: "Negative goto_jail", size: 40, dice: 2, jail: 10, gotoJail: -1, wantErr: true},
		{name: "Chance off board", size: 40, dice: 2, jail: 10, gotoJail: 30, chance: []domain.State{41}, wantErr: true},
		{name: "Chance on goto_jail", size: 40, dice: 2, jail: 10, gotoJail: 30, chance: []domain.State{30}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewTopology(tt.size, tt.dice, tt.jail, tt.gotoJail, tt.chance)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrConfig)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewTopology_JailEqualsGoToJailAlwaysFails(t *testing.T) {
	for size := 2; size <= 12; size++ {
		for dice := 1; dice <= 3; dice++ {
			for j := 0; j < size; j++ {
				_, err := domain.NewTopology(size, dice, domain.State(j), domain.State(j), nil)
				require.ErrorIs(t, err, domain.ErrConfig, "size=%d dice=%d jail=%d", size, dice, j)
			}
		}
	}
}

func TestTopology_DerivedStates(t *testing.T) {
	topo := domain.DefaultTopology()

	assert.Equal(t, domain.State(40), topo.JailFirst())
	assert.Equal(t, domain.State(41), topo.JailSecond())
	assert.Equal(t, domain.State(42), topo.JailThird())
	assert.Equal(t, 43, topo.NumStates())
	assert.Len(t, topo.States(), 43)
	assert.Equal(t, 2, topo.MinAdvance())
	assert.Equal(t, 12, topo.MaxAdvance())

	assert.Equal(t, topo.JailFirst(), topo.Redirect(30))
	assert.Equal(t, domain.State(29), topo.Redirect(29))
	assert.Equal(t, domain.State(1), topo.Advance(35, 6))

	assert.True(t, topo.IsChance(22))
	assert.False(t, topo.IsChance(23))
	assert.True(t, topo.IsJail(41))
	assert.False(t, topo.IsJail(30))
}

func TestTopology_Kind(t *testing.T) {
	topo := domain.DefaultTopology()

	cases := map[domain.State]domain.Kind{
		0:  domain.KindSpace,
		7:  domain.KindChance,
		10: domain.KindJail,
		30: domain.KindGoToJail,
		40: domain.KindJailFirst,
		41: domain.KindJailSecond,
		42: domain.KindJailThird,
		43: domain.KindUnknown,
		-1: domain.KindUnknown,
	}
	for s, want := range cases {
		assert.Equal(t, want, topo.Kind(s), "state %d", s)
	}
}

func TestNewTopology_CopiesChanceSpaces(t *testing.T) {
	chance := []domain.State{36, 7, 22, 7}
	topo, err := domain.NewTopology(40, 2, 10, 30, chance)
	require.NoError(t, err)

	chance[0] = 1
	assert.Equal(t, []domain.State{7, 22, 36}, topo.Chance)
}

func TestStandardBoard(t *testing.T) {
	board := domain.StandardBoard()

	assert.Equal(t, 40, board.Size())
	assert.Equal(t, "Baltic Avenue", board.Name(3))
	assert.Equal(t, "Boardwalk", board.Name(39))
	assert.Equal(t, "Space 41", board.Name(41))

	cost, ok := board.HotelCost(39)
	assert.True(t, ok)
	assert.Equal(t, 50, cost)

	_, ok = board.HotelCost(0)
	assert.False(t, ok)
	assert.Len(t, board.Properties(), 22)
}
