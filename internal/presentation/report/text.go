package report

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/aretw0/boardchain/pkg/domain"
)

// WriteSteady prints entries with their labels right-aligned.
func WriteSteady(w io.Writer, entries []Entry) error {
	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.Label
	}
	labels = spaceAlign(labels)

	if _, err := fmt.Fprintln(w, "Steady state probabilities:"); err != nil {
		return err
	}
	for i, e := range entries {
		if _, err := fmt.Fprintf(w, "\t%s: %.6f\n", labels[i], e.Probability); err != nil {
			return err
		}
	}
	return nil
}

// WriteExpectations prints the expected hotel rent table.
func WriteExpectations(w io.Writer, items []Expectation) error {
	labels := make([]string, len(items))
	for i, e := range items {
		labels[i] = e.Label
	}
	labels = spaceAlign(labels)

	if _, err := fmt.Fprintln(w, "Expected hotel rent per turn:"); err != nil {
		return err
	}
	for i, e := range items {
		if _, err := fmt.Fprintf(w, "\t%s: %8.3f (hotel %d)\n", labels[i], e.Expected, e.HotelCost); err != nil {
			return err
		}
	}
	return nil
}

// WriteJailDistance prints offset and probability pairs, one per line.
func WriteJailDistance(w io.Writer, points []Point) error {
	if _, err := fmt.Fprintln(w, "Distance from jail:"); err != nil {
		return err
	}
	for _, p := range points {
		if _, err := fmt.Fprintf(w, "\t%+4d: %.6f\n", p.Offset, p.Probability); err != nil {
			return err
		}
	}
	return nil
}

// WriteHistogram draws one bar per state, scaled so the longest is width
// characters wide. Every state of states is listed, visited or not.
func WriteHistogram(w io.Writer, counts map[domain.State]int, states []domain.State, width int) error {
	peak := 0
	for _, n := range counts {
		peak = max(peak, n)
	}
	ordered := slices.Clone(states)
	slices.Sort(ordered)

	for _, s := range ordered {
		n := counts[s]
		bar := 0
		if peak > 0 {
			bar = n * width / peak
		}
		if _, err := fmt.Fprintf(w, "%4d | %s %d\n", s, strings.Repeat("#", bar), n); err != nil {
			return err
		}
	}
	return nil
}

// spaceAlign left-pads every string to the length of the longest.
func spaceAlign(strs []string) []string {
	longest := 0
	for _, s := range strs {
		longest = max(longest, len(s))
	}
	out := make([]string, len(strs))
	for i, s := range strs {
		out[i] = strings.Repeat(" ", longest-len(s)) + s
	}
	return out
}
