package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/boardchain"
	"github.com/aretw0/boardchain/internal/presentation/tui"
)

// Announce writes the banner and the address a long-running server listens
// on. Servers write it to stderr so it never mixes with protocol output.
func Announce(w io.Writer, server, addr string) {
	tui.PrintBanner(w, boardchain.Version)
	fmt.Fprintf(w, "  %s listening on %s\n\n", server, addr)
}
