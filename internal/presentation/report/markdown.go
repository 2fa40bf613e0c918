package report

import (
	"fmt"
	"strings"
)

// Document collects everything the report command shows.
type Document struct {
	Board        string
	Power        int
	Regular      bool
	Steady       []Entry
	Expectations []Expectation
}

// Markdown renders the document for glamour.
func Markdown(d Document) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Board %s\n\n", d.Board)
	fmt.Fprintf(&sb, "**P^%d > 0?** `%v`\n\n", d.Power, d.Regular)

	if !d.Regular {
		sb.WriteString("No steady state to compute.\n")
		return sb.String()
	}

	sb.WriteString("## Steady state probabilities\n\n")
	sb.WriteString("| Space | Probability |\n|---|---:|\n")
	for _, e := range d.Steady {
		fmt.Fprintf(&sb, "| %s | %.6f |\n", escape(e.Label), e.Probability)
	}

	if len(d.Expectations) > 0 {
		sb.WriteString("\n## Expected hotel rent per turn\n\n")
		sb.WriteString("| Property | Hotel | Expected |\n|---|---:|---:|\n")
		for _, e := range d.Expectations {
			fmt.Fprintf(&sb, "| %s | %d | %.3f |\n", escape(e.Label), e.HotelCost, e.Expected)
		}
	}
	return sb.String()
}

func escape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
