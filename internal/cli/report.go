package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/aretw0/boardchain"
	"github.com/aretw0/boardchain/internal/presentation/report"
	"github.com/aretw0/boardchain/internal/presentation/tui"
)

// ReportOptions select what the report prints.
type ReportOptions struct {
	Power        int
	Plain        bool // never render markdown, even on a terminal
	Expectations bool
	JailDistance bool
	IncludeJail  bool
}

// RunReport certifies regularity and prints the steady state when the
// certificate holds. A non-regular chain is reported, not treated as an error.
func RunReport(w io.Writer, eng *boardchain.Engine, opts ReportOptions) error {
	a, err := eng.Analyze(opts.Power)
	if err != nil {
		return err
	}

	topo, board := eng.Topology(), eng.Board()
	doc := report.Document{Board: topo.Key(), Power: a.Power, Regular: a.Regular}
	if a.Regular {
		doc.Steady = report.Steady(a.Steady, board, topo)
		if opts.Expectations {
			doc.Expectations = report.Expectations(a.Steady, board, topo)
		}
	}

	if f, ok := w.(*os.File); ok && !opts.Plain && tui.IsTerminal(f) {
		return renderRich(f, doc)
	}

	if _, err := fmt.Fprintf(w, "P^%d > 0?\n%v\n", a.Power, a.Regular); err != nil {
		return err
	}
	if !a.Regular {
		_, err := fmt.Fprintln(w, "No steady state to compute.")
		return err
	}
	if err := report.WriteSteady(w, doc.Steady); err != nil {
		return err
	}
	if len(doc.Expectations) > 0 {
		if err := report.WriteExpectations(w, doc.Expectations); err != nil {
			return err
		}
	}
	if opts.JailDistance {
		return report.WriteJailDistance(w, report.JailDistance(a.Steady, topo, opts.IncludeJail))
	}
	return nil
}

func renderRich(f *os.File, doc report.Document) error {
	render, err := tui.NewRenderer(tui.Width(f))
	if err != nil {
		return err
	}
	out, err := render(report.Markdown(doc))
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(f, "P^%d > 0? %s\n", doc.Power, tui.Verdict(doc.Regular)); err != nil {
		return err
	}
	_, err = fmt.Fprint(f, out)
	return err
}
