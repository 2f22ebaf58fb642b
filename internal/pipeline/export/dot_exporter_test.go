package export

import (
	"strings"
	"testing"

	"github.com/GoSim-25-26J-441/pipeline-parser/internal/pipeline/domain"
	"github.com/stretchr/testify/assert"
)

func TestToDOT_AcyclicPipeline(t *testing.T) {
	p := &domain.Pipeline{
		Nodes: []domain.Node{{ID: "in", Type: "customInput"}, {ID: "out"}},
		Edges: []domain.Edge{{ID: "e-1", Source: "in", Target: "out"}},
	}

	dot := ToDOT(p, "demo")

	assert.True(t, strings.HasPrefix(dot, "digraph G {\n"))
	assert.True(t, strings.HasSuffix(dot, "}\n"))
	assert.Contains(t, dot, `label="demo";`)
	assert.Contains(t, dot, `"in" [label="in\n(customInput)", `)
	assert.Contains(t, dot, `"out" [label="out", `)
	assert.Contains(t, dot, `"in" -> "out" [tooltip="e-1"];`)
	assert.NotContains(t, dot, "#dc3545")
}

func TestToDOT_HighlightsCycle(t *testing.T) {
	p := &domain.Pipeline{
		Nodes: []domain.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}},
		Edges: []domain.Edge{
			{Source: "C", Target: "A"},
			{Source: "A", Target: "B"},
			{Source: "B", Target: "A"},
		},
	}

	dot := ToDOT(p, "")

	assert.NotContains(t, dot, "labelloc")
	assert.Contains(t, dot, `"A" -> "B" [tooltip="edge#1", color="#dc3545", penwidth=2];`)
	assert.Contains(t, dot, `"B" -> "A" [tooltip="edge#2", color="#dc3545", penwidth=2];`)
	assert.Contains(t, dot, `"C" -> "A" [tooltip="edge#0"];`)
	assert.Contains(t, dot, `"C" [label="C", shape=box,style="rounded,filled",fillcolor="#eef6ff"];`)
}

func TestToDOT_ImplicitNodesAndEscaping(t *testing.T) {
	p := &domain.Pipeline{
		Nodes: []domain.Node{{ID: `say "hi"`}},
		Edges: []domain.Edge{{Source: `say "hi"`, Target: "ghost"}},
	}

	dot := ToDOT(p, "")

	assert.Contains(t, dot, `"say \"hi\"" [label="say \"hi\"", `)
	assert.Contains(t, dot, `"ghost" [label="ghost", shape=box,style="rounded,dashed"];`)
}
