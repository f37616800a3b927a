// Package diagram renders analysis reports as Mermaid diagram text.
// Renderers are pure functions of the report: they never re-classify modules
// or re-derive violations.
package diagram

import (
	"fmt"
	"strings"

	"github.com/hexaview/hexaview/internal/adapters/outbound/tui"
	"github.com/hexaview/hexaview/internal/domain"
)

type layerPair struct {
	from, to domain.Layer
}

// Mermaid produces a flowchart of the layer graph: one node per non-empty
// layer colored with its taxonomy color, aggregated dependency edges, and
// violating edges drawn dashed in red. Output is deterministic for a fixed
// report.
func Mermaid(report *domain.AnalysisReport, taxonomy *domain.Taxonomy) string {
	var b strings.Builder
	b.WriteString("flowchart TD\n")

	// Nodes, in enumeration order.
	present := make(map[domain.Layer]bool)
	for _, l := range domain.AllLayers {
		summary := report.Layers[l]
		if summary.Count == 0 {
			continue
		}
		present[l] = true
		fmt.Fprintf(&b, "    %s[\"%s (%d)\"]\n", l, tui.LayerLabel(l), summary.Count)
	}

	// Aggregate module edges into layer pairs. Intra-layer edges are noise
	// at this zoom level.
	edgeCounts := make(map[layerPair]int)
	for _, m := range report.Modules {
		for _, dep := range m.Dependencies {
			if m.Layer == dep.TargetLayer {
				continue
			}
			edgeCounts[layerPair{m.Layer, dep.TargetLayer}]++
		}
	}

	violating := make(map[layerPair]bool)
	for _, v := range report.Violations {
		violating[layerPair{v.SourceLayer, v.TargetLayer}] = true
	}

	// Edges in enumeration order so repeated runs emit identical text.
	var redLinks []int
	link := 0
	for _, from := range domain.AllLayers {
		for _, to := range domain.AllLayers {
			pair := layerPair{from, to}
			count, ok := edgeCounts[pair]
			if !ok {
				continue
			}
			if violating[pair] {
				fmt.Fprintf(&b, "    %s -.->|%d| %s\n", from, count, to)
				redLinks = append(redLinks, link)
			} else {
				fmt.Fprintf(&b, "    %s -->|%d| %s\n", from, count, to)
			}
			link++
		}
	}

	// Styling.
	for _, l := range domain.AllLayers {
		if !present[l] {
			continue
		}
		fmt.Fprintf(&b, "    style %s fill:%s,stroke:#333,color:#111\n", l, taxonomy.Color(l))
	}
	for _, idx := range redLinks {
		fmt.Fprintf(&b, "    linkStyle %d stroke:#EF4444,stroke-width:2px\n", idx)
	}

	return b.String()
}
