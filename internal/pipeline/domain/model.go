package domain

type Attrs map[string]any

// Node is a pipeline editor node. Only ID takes part in graph analysis;
// the rest is carried through untouched.
type Node struct {
	ID       string `json:"id"`
	Type     string `json:"type,omitempty"`
	Position Attrs  `json:"position,omitempty"`
	Data     Attrs  `json:"data,omitempty"`
}

type Edge struct {
	ID           string `json:"id,omitempty"`
	Source       string `json:"source"`
	Target       string `json:"target"`
	SourceHandle string `json:"sourceHandle,omitempty"`
	TargetHandle string `json:"targetHandle,omitempty"`
}

type Pipeline struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// NodeIDs returns the submitted node ids in order, duplicates included.
func (p *Pipeline) NodeIDs() []string {
	ids := make([]string, 0, len(p.Nodes))
	for _, n := range p.Nodes {
		ids = append(ids, n.ID)
	}
	return ids
}

// ParseResult counts the submitted lists, not the materialized graph, so an
// edge pointing at an undeclared node does not raise NumNodes.
type ParseResult struct {
	NumNodes int  `json:"num_nodes"`
	NumEdges int  `json:"num_edges"`
	IsDAG    bool `json:"is_dag"`
}
