package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/GoSim-25-26J-441/pipeline-parser/internal/pipeline/domain"
	"github.com/go-playground/validator/v10"
)

// Document is the on-disk shape of a pipeline. Required string fields are
// pointers so a missing key is told apart from an empty value.
type Document struct {
	Nodes []DocNode `json:"nodes" yaml:"nodes" validate:"required,dive"`
	Edges []DocEdge `json:"edges" yaml:"edges" validate:"required,dive"`
}

type DocNode struct {
	ID       *string        `json:"id" yaml:"id" validate:"required"`
	Type     string         `json:"type,omitempty" yaml:"type,omitempty"`
	Position map[string]any `json:"position,omitempty" yaml:"position,omitempty"`
	Data     map[string]any `json:"data,omitempty" yaml:"data,omitempty"`
}

type DocEdge struct {
	ID           string  `json:"id,omitempty" yaml:"id,omitempty"`
	Source       *string `json:"source" yaml:"source" validate:"required"`
	Target       *string `json:"target" yaml:"target" validate:"required"`
	SourceHandle string  `json:"sourceHandle,omitempty" yaml:"sourceHandle,omitempty"`
	TargetHandle string  `json:"targetHandle,omitempty" yaml:"targetHandle,omitempty"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks required fields and reports every missing one.
func (d *Document) Validate() error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidPipeline, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s is %s", fieldPath(fe.Namespace()), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidPipeline, strings.Join(msgs, "; "))
}

// fieldPath turns "Document.Nodes[2].ID" into "nodes[2].id".
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	return strings.ToLower(ns)
}

// ToPipeline converts a validated document. Call Validate first.
func (d *Document) ToPipeline() *domain.Pipeline {
	p := &domain.Pipeline{
		Nodes: make([]domain.Node, 0, len(d.Nodes)),
		Edges: make([]domain.Edge, 0, len(d.Edges)),
	}
	for _, n := range d.Nodes {
		p.Nodes = append(p.Nodes, domain.Node{
			ID:       deref(n.ID),
			Type:     n.Type,
			Position: n.Position,
			Data:     n.Data,
		})
	}
	for _, e := range d.Edges {
		p.Edges = append(p.Edges, domain.Edge{
			ID:           e.ID,
			Source:       deref(e.Source),
			Target:       deref(e.Target),
			SourceHandle: e.SourceHandle,
			TargetHandle: e.TargetHandle,
		})
	}
	return p
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
