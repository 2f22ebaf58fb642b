package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/GoSim-25-26J-441/pipeline-parser/internal/logging"
	"github.com/GoSim-25-26J-441/pipeline-parser/internal/pipeline/domain"
	"github.com/GoSim-25-26J-441/pipeline-parser/internal/pipeline/graph"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/GoSim-25-26J-441/pipeline-parser/internal/pipeline/service"

// ParseService analyzes submitted pipelines. It holds no per-request state
// and is safe for concurrent use.
type ParseService struct {
	tracer trace.Tracer
}

func NewParseService() *ParseService {
	return &ParseService{tracer: otel.Tracer(tracerName)}
}

// Parse counts the submitted nodes and edges and reports whether the
// pipeline graph is acyclic.
func (s *ParseService) Parse(ctx context.Context, p *domain.Pipeline) (*domain.ParseResult, error) {
	logger := logging.NewLogger(ctx)
	if p == nil {
		parseTotal.WithLabelValues(resultError).Inc()
		return nil, fmt.Errorf("parse: %w: no pipeline", domain.ErrInvalidPipeline)
	}

	logger.LogInfof("parse", "received pipeline with %d nodes and %d edges", len(p.Nodes), len(p.Edges))

	_, span := s.tracer.Start(ctx, "pipeline.parse")
	defer span.End()

	start := time.Now()
	g := graph.FromPipeline(p)
	cycle := graph.FindCycle(g)
	parseDuration.Observe(time.Since(start).Seconds())

	res := &domain.ParseResult{
		NumNodes: len(p.Nodes),
		NumEdges: len(p.Edges),
		IsDAG:    cycle == nil,
	}

	graphNodes.Observe(float64(g.Len()))
	graphEdges.Observe(float64(g.EdgeCount()))
	span.SetAttributes(
		attribute.Int("pipeline.num_nodes", res.NumNodes),
		attribute.Int("pipeline.num_edges", res.NumEdges),
		attribute.Int("pipeline.graph_nodes", g.Len()),
		attribute.Bool("pipeline.is_dag", res.IsDAG),
	)

	if res.IsDAG {
		parseTotal.WithLabelValues(resultDAG).Inc()
	} else {
		parseTotal.WithLabelValues(resultCyclic).Inc()
		logger.LogDebugf("parse", "cycle=%s", strings.Join(cycle, " -> "))
	}

	logger.LogInfof("parse", "analysis complete nodes=%d edges=%d is_dag=%t", res.NumNodes, res.NumEdges, res.IsDAG)
	return res, nil
}

// Cycle returns a witness cycle for p, or nil when p is a DAG.
func (s *ParseService) Cycle(p *domain.Pipeline) []string {
	if p == nil {
		return nil
	}
	return graph.FindCycle(graph.FromPipeline(p))
}
