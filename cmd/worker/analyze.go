package main

import (
	"context"
	"encoding/json"
	"io"

	"github.com/GoSim-25-26J-441/pipeline-parser/internal/pipeline/ingest/parser"
	"github.com/GoSim-25-26J-441/pipeline-parser/internal/pipeline/service"
)

// analyzeFile reads a pipeline file, runs the parse service, and prints JSON.
func analyzeFile(ctx context.Context, w io.Writer, path string, showCycle bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	p, err := parser.ParseFile(path)
	if err != nil {
		return err
	}

	svc := service.NewParseService()
	res, err := svc.Parse(ctx, p)
	if err != nil {
		return err
	}

	out := struct {
		NumNodes int      `json:"num_nodes"`
		NumEdges int      `json:"num_edges"`
		IsDAG    bool     `json:"is_dag"`
		Cycle    []string `json:"cycle,omitempty"`
	}{
		NumNodes: res.NumNodes,
		NumEdges: res.NumEdges,
		IsDAG:    res.IsDAG,
	}
	if showCycle && !res.IsDAG {
		out.Cycle = svc.Cycle(p)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
