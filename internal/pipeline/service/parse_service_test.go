package service

import (
	"context"
	"sync"
	"testing"

	"github.com/GoSim-25-26J-441/pipeline-parser/internal/logging"
	"github.com/GoSim-25-26J-441/pipeline-parser/internal/pipeline/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pipeline(nodes []string, pairs ...string) *domain.Pipeline {
	p := &domain.Pipeline{Nodes: []domain.Node{}, Edges: []domain.Edge{}}
	for _, id := range nodes {
		p.Nodes = append(p.Nodes, domain.Node{ID: id})
	}
	for i := 0; i+1 < len(pairs); i += 2 {
		p.Edges = append(p.Edges, domain.Edge{Source: pairs[i], Target: pairs[i+1]})
	}
	return p
}

func TestParse_Scenarios(t *testing.T) {
	tests := []struct {
		name string
		in   *domain.Pipeline
		want domain.ParseResult
	}{
		{"chain", pipeline([]string{"A", "B", "C"}, "A", "B", "B", "C"), domain.ParseResult{NumNodes: 3, NumEdges: 2, IsDAG: true}},
		{"triangle", pipeline([]string{"A", "B", "C"}, "A", "B", "B", "C", "C", "A"), domain.ParseResult{NumNodes: 3, NumEdges: 3, IsDAG: false}},
		{"self loop", pipeline([]string{"A"}, "A", "A"), domain.ParseResult{NumNodes: 1, NumEdges: 1, IsDAG: false}},
		{"empty", pipeline(nil), domain.ParseResult{NumNodes: 0, NumEdges: 0, IsDAG: true}},
		{"duplicate edge", pipeline([]string{"A", "B"}, "A", "B", "A", "B"), domain.ParseResult{NumNodes: 2, NumEdges: 2, IsDAG: true}},
		{"undeclared node", pipeline([]string{"A"}, "A", "X"), domain.ParseResult{NumNodes: 1, NumEdges: 1, IsDAG: true}},
	}

	svc := NewParseService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := logging.WithRequestID(context.Background(), "test-"+tt.name)
			got, err := svc.Parse(ctx, tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestParse_NilPipeline(t *testing.T) {
	before := testutil.ToFloat64(parseTotal.WithLabelValues(resultError))

	_, err := NewParseService().Parse(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidPipeline)
	assert.Equal(t, before+1, testutil.ToFloat64(parseTotal.WithLabelValues(resultError)))
}

func TestParse_RecordsResultMetric(t *testing.T) {
	svc := NewParseService()
	dagBefore := testutil.ToFloat64(parseTotal.WithLabelValues(resultDAG))
	cyclicBefore := testutil.ToFloat64(parseTotal.WithLabelValues(resultCyclic))

	_, err := svc.Parse(context.Background(), pipeline([]string{"A", "B"}, "A", "B"))
	require.NoError(t, err)
	_, err = svc.Parse(context.Background(), pipeline([]string{"A", "B"}, "A", "B", "B", "A"))
	require.NoError(t, err)

	assert.Equal(t, dagBefore+1, testutil.ToFloat64(parseTotal.WithLabelValues(resultDAG)))
	assert.Equal(t, cyclicBefore+1, testutil.ToFloat64(parseTotal.WithLabelValues(resultCyclic)))
}

func TestParse_ConcurrentRequestsAreIndependent(t *testing.T) {
	svc := NewParseService()
	cyclic := pipeline([]string{"A", "B", "C"}, "A", "B", "B", "C", "C", "A")
	acyclic := pipeline([]string{"A", "B", "C"}, "A", "B", "B", "C")

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for i := 0; i < 32; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if res, err := svc.Parse(context.Background(), cyclic); err != nil || res.IsDAG {
				errs <- "cyclic pipeline reported as DAG"
			}
		}()
		go func() {
			defer wg.Done()
			if res, err := svc.Parse(context.Background(), acyclic); err != nil || !res.IsDAG {
				errs <- "acyclic pipeline reported as cyclic"
			}
		}()
	}
	wg.Wait()
	close(errs)
	for msg := range errs {
		t.Error(msg)
	}
}

func TestCycle(t *testing.T) {
	svc := NewParseService()
	assert.Nil(t, svc.Cycle(nil))
	assert.Nil(t, svc.Cycle(pipeline([]string{"A", "B"}, "A", "B")))
	assert.Equal(t, []string{"A", "B", "A"}, svc.Cycle(pipeline([]string{"A", "B"}, "A", "B", "B", "A")))
}
