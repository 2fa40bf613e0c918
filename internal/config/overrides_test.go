package config_test

import (
	"testing"

	"github.com/aretw0/boardchain/internal/config"
	"github.com/aretw0/boardchain/pkg/domain"
	"github.com/aretw0/boardchain/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeOverrides(t *testing.T) {
	t.Run("query strings", func(t *testing.T) {
		o, err := config.DecodeOverrides(map[string]any{
			"size":   "12",
			"chance": "1,5",
			"power":  "4",
		})
		require.NoError(t, err)
		require.NotNil(t, o.Size)
		assert.Equal(t, 12, *o.Size)
		assert.Equal(t, []int{1, 5}, o.Chance)
		assert.Equal(t, 4, *o.Power)
		assert.Nil(t, o.Dice)
	})

	t.Run("json numbers", func(t *testing.T) {
		o, err := config.DecodeOverrides(map[string]any{
			"jail":      float64(3),
			"goto_jail": float64(9),
			"chance":    []any{float64(2)},
		})
		require.NoError(t, err)
		assert.Equal(t, 3, *o.Jail)
		assert.Equal(t, 9, *o.GoToJail)
		assert.Equal(t, []int{2}, o.Chance)
	})

	t.Run("empty", func(t *testing.T) {
		o, err := config.DecodeOverrides(nil)
		require.NoError(t, err)
		assert.True(t, o.Empty())
	})

	t.Run("not a number", func(t *testing.T) {
		_, err := config.DecodeOverrides(map[string]any{"size": "big"})
		assert.Error(t, err)
	})
}

func TestApply(t *testing.T) {
	base := config.Default()

	o, err := config.DecodeOverrides(map[string]any{"size": "12", "jail": "3", "goto_jail": "9", "chance": "1"})
	require.NoError(t, err)

	cfg, err := base.Apply(o)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Size)
	assert.Equal(t, []int{1}, cfg.ChanceSpaces)
	assert.Equal(t, []int{7, 22, 36}, base.ChanceSpaces, "base is untouched")

	bad, err := config.DecodeOverrides(map[string]any{"jail": "30"})
	require.NoError(t, err)
	_, err = base.Apply(bad)
	assert.ErrorIs(t, err, domain.ErrConfig)
}

func TestApply_BoundsBoardSize(t *testing.T) {
	base := config.Default()

	huge, err := config.DecodeOverrides(map[string]any{"size": "5000000"})
	require.NoError(t, err)
	_, err = base.Apply(huge)
	require.ErrorIs(t, err, domain.ErrConfig)

	errs := schema.ValidationErrors(err)
	require.Len(t, errs, 1)
	verr, ok := errs[0].(*schema.ValidationError)
	require.True(t, ok)
	assert.Equal(t, "size", verr.Key)
	assert.Equal(t, "must be at most 1000", verr.Reason)

	largest, err := config.DecodeOverrides(map[string]any{"size": "1000"})
	require.NoError(t, err)
	cfg, err := base.Apply(largest)
	require.NoError(t, err)
	assert.Equal(t, 1000, cfg.Size)
}
