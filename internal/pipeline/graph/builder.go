package graph

import "github.com/GoSim-25-26J-441/pipeline-parser/internal/pipeline/domain"

// Graph is an adjacency list keyed by node id. Keys keep first-seen order so
// traversals and exports are deterministic.
type Graph struct {
	order []string
	out   map[string][]string
	edges int
}

func newGraph(capacity int) *Graph {
	return &Graph{
		order: make([]string, 0, capacity),
		out:   make(map[string][]string, capacity),
	}
}

func (g *Graph) ensure(id string) {
	if _, ok := g.out[id]; !ok {
		g.out[id] = []string{}
		g.order = append(g.order, id)
	}
}

// Build turns a node list and an edge list into a Graph. Edge endpoints that
// are missing from nodes are added with no out-neighbors. Duplicate edges are
// kept as repeated adjacency entries.
func Build(nodes []string, edges []domain.Edge) *Graph {
	g := newGraph(len(nodes))
	for _, id := range nodes {
		g.ensure(id)
	}
	for _, e := range edges {
		g.ensure(e.Source)
		g.ensure(e.Target)
		g.out[e.Source] = append(g.out[e.Source], e.Target)
		g.edges++
	}
	return g
}

// FromPipeline builds the graph for a submitted pipeline.
func FromPipeline(p *domain.Pipeline) *Graph {
	return Build(p.NodeIDs(), p.Edges)
}

func (g *Graph) Len() int { return len(g.order) }

func (g *Graph) EdgeCount() int { return g.edges }

// Nodes returns the keys in first-seen order. The slice must not be modified.
func (g *Graph) Nodes() []string { return g.order }

func (g *Graph) Neighbors(id string) []string { return g.out[id] }

func (g *Graph) Has(id string) bool {
	_, ok := g.out[id]
	return ok
}
