package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/boardchain/pkg/assemble"
	"github.com/aretw0/boardchain/pkg/domain"
	"github.com/aretw0/boardchain/pkg/model"
)

// Overlay marks states to emphasise on the diagram.
type Overlay struct {
	Visited []domain.State
	Current *domain.State
}

// GenerateMermaid produces a Mermaid flowchart of every transition whose
// probability is at least min. Node shapes follow the state kind:
// - Jail and its turns: ((Circle))
// - goto_jail: [[Subroutine]]
// - Chance: {{Hexagon}}
// - Default: [Rectangle]
// Moves inside the jail sub-chain are drawn dotted.
func GenerateMermaid(sc assemble.SparseChain, labels func(domain.State) string, min float64, overlay *Overlay) string {
	topo := sc.Topology

	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for _, s := range sc.States() {
		opener, closer := "[", "]"
		switch topo.Kind(s) {
		case domain.KindJail, domain.KindJailFirst, domain.KindJailSecond, domain.KindJailThird:
			opener, closer = "((", "))"
		case domain.KindGoToJail:
			opener, closer = "[[", "]]"
		case domain.KindChance:
			opener, closer = "{{", "}}"
		}
		label := strings.ReplaceAll(labels(s), "\"", "'")
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", nodeID(s), opener, label, closer)
	}

	for _, p := range sortedPairs(sc) {
		prob := sc.Edges[p]
		if prob < min {
			continue
		}
		arrow := "--"
		tail := "-->"
		if topo.IsJail(p.From) && topo.Kind(p.From) != domain.KindJail {
			arrow, tail = "-.", ".->"
		}
		fmt.Fprintf(&sb, "    %s %s \"%.4f\" %s %s\n", nodeID(p.From), arrow, prob, tail, nodeID(p.To))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[domain.State]bool)
		for _, s := range overlay.Visited {
			if seen[s] || !topo.Contains(s) {
				continue
			}
			seen[s] = true
			fmt.Fprintf(&sb, "    class %s visited;\n", nodeID(s))
		}
		if overlay.Current != nil && topo.Contains(*overlay.Current) {
			fmt.Fprintf(&sb, "    class %s current;\n", nodeID(*overlay.Current))
		}
	}

	return sb.String()
}

func nodeID(s domain.State) string {
	return fmt.Sprintf("s%d", s)
}

// sortedPairs orders edges by source and then destination.
func sortedPairs(sc assemble.SparseChain) []model.Pair {
	var out []model.Pair
	for _, from := range sc.States() {
		for _, to := range sc.States() {
			if _, ok := sc.Edges[model.Pair{From: from, To: to}]; ok {
				out = append(out, model.Pair{From: from, To: to})
			}
		}
	}
	return out
}
