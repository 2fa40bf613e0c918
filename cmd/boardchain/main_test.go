package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/boardchain"
	"github.com/aretw0/boardchain/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The commands are package globals, so flag state carries over between
// executions; the cases run in order and each sets what it relies on.
func TestCommands(t *testing.T) {
	run := func(t *testing.T, args ...string) (string, error) {
		t.Helper()
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetErr(&out)
		rootCmd.SetArgs(args)
		err := rootCmd.Execute()
		return out.String(), err
	}

	t.Run("default is report", func(t *testing.T) {
		out, err := run(t, "--plain")
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "P^6 > 0?\ntrue\nSteady state probabilities:\n"))
	})

	t.Run("not regular still succeeds", func(t *testing.T) {
		out, err := run(t, "report", "--plain", "--power", "1")
		require.NoError(t, err)
		assert.Equal(t, "P^1 > 0?\nfalse\nNo steady state to compute.\n", out)
	})

	t.Run("version", func(t *testing.T) {
		out, err := run(t, "version")
		require.NoError(t, err)
		assert.Equal(t, "boardchain version "+boardchain.Version+"\n", out)
	})

	t.Run("jail equals goto_jail", func(t *testing.T) {
		_, err := run(t, "matrix", "--jail", "30")
		assert.ErrorIs(t, err, domain.ErrConfig)
	})
}
