package tui_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/boardchain/internal/presentation/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	tui.PrintBanner(&buf, "v1.2.3")
	assert.Contains(t, buf.String(), "v1.2.3")
}

func TestVerdict(t *testing.T) {
	assert.Contains(t, tui.Verdict(true), "true")
	assert.Contains(t, tui.Verdict(false), "false")
}

func TestNewRenderer(t *testing.T) {
	render, err := tui.NewRenderer(80)
	require.NoError(t, err)

	out, err := render("# Steady\n\n| Space | Probability |\n|---|---:|\n| GO (0) | 0.03 |\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Steady")
	assert.Contains(t, out, "GO (0)")
}

func TestIsTerminal_RegularFile(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, tui.IsTerminal(f))
	assert.Equal(t, 0, tui.Width(f))
}
