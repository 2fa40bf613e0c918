package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/boardchain"
	"github.com/aretw0/boardchain/pkg/assemble"
)

// RunMatrix prints the column-stochastic matrix, one row per destination
// state. Exact mode prints rationals.
func RunMatrix(w io.Writer, eng *boardchain.Engine, exact bool) error {
	labels := assemble.Labels(eng.Topology())

	var cell func(i, j int) string
	if exact {
		t, err := eng.Exact()
		if err != nil {
			return err
		}
		cell = func(i, j int) string { return t.At(i, j).RatString() }
	} else {
		m, err := eng.Dense()
		if err != nil {
			return err
		}
		cell = func(i, j int) string { return fmt.Sprintf("%.6f", m.At(i, j)) }
	}

	header := make([]string, len(labels))
	for j, s := range labels {
		header[j] = s.String()
	}
	if _, err := fmt.Fprintf(w, "to\\from\t%s\n", strings.Join(header, "\t")); err != nil {
		return err
	}

	row := make([]string, len(labels))
	for i, s := range labels {
		for j := range labels {
			row[j] = cell(i, j)
		}
		if _, err := fmt.Fprintf(w, "%d\t%s\n", s, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}
