package graph

import (
	"testing"

	"github.com/GoSim-25-26J-441/pipeline-parser/internal/pipeline/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func edges(pairs ...string) []domain.Edge {
	out := make([]domain.Edge, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, domain.Edge{Source: pairs[i], Target: pairs[i+1]})
	}
	return out
}

func TestBuild_EmptyInput(t *testing.T) {
	g := Build(nil, nil)
	require.NotNil(t, g)
	assert.Equal(t, 0, g.Len())
	assert.Equal(t, 0, g.EdgeCount())
	assert.Empty(t, g.Nodes())
}

func TestBuild_IsolatedNodes(t *testing.T) {
	g := Build([]string{"A", "B", "C"}, nil)

	assert.Equal(t, []string{"A", "B", "C"}, g.Nodes())
	for _, id := range g.Nodes() {
		assert.True(t, g.Has(id))
		assert.NotNil(t, g.Neighbors(id), "isolated node %s should have an empty list", id)
		assert.Empty(t, g.Neighbors(id))
	}
}

func TestBuild_NeighborsKeepInputOrder(t *testing.T) {
	g := Build([]string{"A", "B", "C", "D"}, edges("A", "D", "A", "B", "A", "C"))

	assert.Equal(t, []string{"D", "B", "C"}, g.Neighbors("A"))
	assert.Equal(t, 3, g.EdgeCount())
}

func TestBuild_DuplicateEdgesRepeat(t *testing.T) {
	g := Build([]string{"A", "B"}, edges("A", "B", "A", "B"))

	assert.Equal(t, []string{"B", "B"}, g.Neighbors("A"))
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, 2, g.Len())
}

func TestBuild_MaterializesUndeclaredEndpoints(t *testing.T) {
	g := Build([]string{"A"}, edges("A", "X", "Y", "A"))

	assert.Equal(t, []string{"A", "X", "Y"}, g.Nodes())
	assert.True(t, g.Has("X"))
	assert.True(t, g.Has("Y"))
	assert.Empty(t, g.Neighbors("X"))
	assert.Equal(t, []string{"A"}, g.Neighbors("Y"))
}

func TestBuild_DuplicateNodeIDsCollapse(t *testing.T) {
	g := Build([]string{"A", "A", "B"}, nil)

	assert.Equal(t, 2, g.Len())
	assert.Equal(t, []string{"A", "B"}, g.Nodes())
}

func TestFromPipeline(t *testing.T) {
	p := &domain.Pipeline{
		Nodes: []domain.Node{{ID: "in", Type: "customInput"}, {ID: "llm", Type: "llm"}},
		Edges: []domain.Edge{{ID: "e1", Source: "in", Target: "llm", SourceHandle: "in-value"}},
	}

	g := FromPipeline(p)
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, []string{"llm"}, g.Neighbors("in"))
}
