package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/boardchain"
	"github.com/aretw0/boardchain/internal/presentation/graph"
	"github.com/aretw0/boardchain/internal/presentation/report"
	"github.com/aretw0/boardchain/pkg/domain"
)

// GraphOptions configure RunGraph.
type GraphOptions struct {
	Min       float64        // smallest transition probability drawn
	Highlight []domain.State // styled as visited
	Current   *domain.State  // styled as the player's position
}

// RunGraph prints a Mermaid diagram of the transitions with probability at
// least opts.Min.
func RunGraph(w io.Writer, eng *boardchain.Engine, opts GraphOptions) error {
	sc, err := eng.Sparse()
	if err != nil {
		return err
	}
	if opts.Current != nil && !eng.Topology().Contains(*opts.Current) {
		return fmt.Errorf("current state %d: %w", *opts.Current, domain.ErrUnknownState)
	}
	label := func(s domain.State) string {
		return report.Label(eng.Board(), eng.Topology(), s)
	}

	var overlay *graph.Overlay
	if len(opts.Highlight) > 0 || opts.Current != nil {
		overlay = &graph.Overlay{Visited: opts.Highlight, Current: opts.Current}
	}
	_, err = fmt.Fprint(w, graph.GenerateMermaid(sc, label, opts.Min, overlay))
	return err
}
