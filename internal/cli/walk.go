package cli

import (
	"context"
	"io"

	"github.com/aretw0/boardchain"
	"github.com/aretw0/boardchain/internal/presentation/report"
	"github.com/aretw0/boardchain/pkg/domain"
)

// WalkOptions configure RunWalk.
type WalkOptions struct {
	Walks  int
	Length int
	Start  *domain.State // nil draws a random start per walk
	Width  int           // longest histogram bar
}

// RunWalk samples walks and prints a histogram of where they end.
func RunWalk(ctx context.Context, w io.Writer, eng *boardchain.Engine, opts WalkOptions) error {
	counts, err := eng.Walks(ctx, opts.Walks, opts.Length, opts.Start)
	if err != nil {
		return err
	}
	width := opts.Width
	if width <= 0 {
		width = 50
	}
	return report.WriteHistogram(w, counts, eng.Topology().States(), width)
}
