package http

import "github.com/GoSim-25-26J-441/pipeline-parser/internal/pipeline/domain"

// ParseRequest is the editor's submission. Required strings are pointers so
// that a missing key fails validation while an empty string is accepted.
type ParseRequest struct {
	Nodes []NodeDTO `json:"nodes" binding:"required,dive"`
	Edges []EdgeDTO `json:"edges" binding:"required,dive"`
}

type NodeDTO struct {
	ID       *string        `json:"id" binding:"required"`
	Type     *string        `json:"type,omitempty"`
	Position map[string]any `json:"position,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
}

type EdgeDTO struct {
	ID           *string `json:"id,omitempty"`
	Source       *string `json:"source" binding:"required"`
	Target       *string `json:"target" binding:"required"`
	SourceHandle *string `json:"sourceHandle,omitempty"`
	TargetHandle *string `json:"targetHandle,omitempty"`
}

type ParseResponse struct {
	NumNodes int  `json:"num_nodes"`
	NumEdges int  `json:"num_edges"`
	IsDAG    bool `json:"is_dag"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error   string       `json:"error"`
	Detail  string       `json:"detail,omitempty"`
	Details []FieldError `json:"details,omitempty"`
}

func (r *ParseRequest) ToDomain() *domain.Pipeline {
	p := &domain.Pipeline{
		Nodes: make([]domain.Node, 0, len(r.Nodes)),
		Edges: make([]domain.Edge, 0, len(r.Edges)),
	}
	for _, n := range r.Nodes {
		p.Nodes = append(p.Nodes, domain.Node{
			ID:       str(n.ID),
			Type:     str(n.Type),
			Position: n.Position,
			Data:     n.Data,
		})
	}
	for _, e := range r.Edges {
		p.Edges = append(p.Edges, domain.Edge{
			ID:           str(e.ID),
			Source:       str(e.Source),
			Target:       str(e.Target),
			SourceHandle: str(e.SourceHandle),
			TargetHandle: str(e.TargetHandle),
		})
	}
	return p
}

func toResponse(r *domain.ParseResult) ParseResponse {
	return ParseResponse{
		NumNodes: r.NumNodes,
		NumEdges: r.NumEdges,
		IsDAG:    r.IsDAG,
	}
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
