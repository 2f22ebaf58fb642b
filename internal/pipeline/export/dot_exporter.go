package export

import (
	"fmt"
	"strings"

	"github.com/GoSim-25-26J-441/pipeline-parser/internal/pipeline/domain"
	"github.com/GoSim-25-26J-441/pipeline-parser/internal/pipeline/graph"
)

const (
	nodeStyle      = `shape=box,style="rounded,filled",fillcolor="#eef6ff"`
	implicitStyle  = `shape=box,style="rounded,dashed"`
	cycleNodeStyle = `shape=box,style="rounded,filled",fillcolor="#f8d7da",color="#dc3545"`
)

// ToDOT renders p as a Graphviz digraph. Edge endpoints missing from the node
// list are drawn dashed, and the nodes and edges of one cycle (if any) are
// drawn in red.
func ToDOT(p *domain.Pipeline, title string) string {
	g := graph.FromPipeline(p)
	cycle := graph.FindCycle(g)

	onCycle := map[string]bool{}
	cycleEdges := map[[2]string]bool{}
	for i := 0; i+1 < len(cycle); i++ {
		onCycle[cycle[i]] = true
		cycleEdges[[2]string{cycle[i], cycle[i+1]}] = true
	}

	types := map[string]string{}
	for _, n := range p.Nodes {
		if _, ok := types[n.ID]; !ok {
			types[n.ID] = n.Type
		}
	}

	var b strings.Builder
	b.WriteString("digraph G {\n  rankdir=LR;\n  node [shape=box, style=rounded];\n")
	if title != "" {
		b.WriteString(fmt.Sprintf(`  labelloc="t"; label=%s; fontname="Helvetica";`, quote(title)))
		b.WriteString("\n")
	}

	for _, id := range g.Nodes() {
		typ, declared := types[id]
		label := quote(id)
		if typ != "" {
			label = `"` + escape(id) + `\n(` + escape(typ) + `)"`
		}
		style := nodeStyle
		switch {
		case onCycle[id]:
			style = cycleNodeStyle
		case !declared:
			style = implicitStyle
		}
		b.WriteString(fmt.Sprintf("  %s [label=%s, %s];\n", quote(id), label, style))
	}

	for i, e := range p.Edges {
		attrs := fmt.Sprintf(`tooltip="edge#%d"`, i)
		if e.ID != "" {
			attrs = fmt.Sprintf("tooltip=%s", quote(e.ID))
		}
		if cycleEdges[[2]string{e.Source, e.Target}] {
			attrs += `, color="#dc3545", penwidth=2`
		}
		b.WriteString(fmt.Sprintf("  %s -> %s [%s];\n", quote(e.Source), quote(e.Target), attrs))
	}

	b.WriteString("}\n")
	return b.String()
}

func escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

func quote(s string) string { return `"` + escape(s) + `"` }
