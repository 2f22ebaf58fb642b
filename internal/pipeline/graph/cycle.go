package graph

type color uint8

const (
	unvisited color = iota
	inProgress
	done
)

// frame is one level of the DFS: the node being expanded and the index of
// the next out-neighbor to look at.
type frame struct {
	node string
	next int
}

// HasCycle reports whether g contains a directed cycle. A self-loop counts.
//
// Three-color DFS over an explicit stack, so path length is bounded by memory
// rather than goroutine stack size. Runs in O(V+E).
func HasCycle(g *Graph) bool {
	_, _, found := walk(g)
	return found
}

// IsDAG is the negation of HasCycle. An empty graph is a DAG.
func IsDAG(g *Graph) bool {
	return !HasCycle(g)
}

// FindCycle returns one cycle as a closed path [v0, v1, ..., v0], or nil if g
// is acyclic. Which cycle is returned depends on key order.
func FindCycle(g *Graph) []string {
	stack, closing, found := walk(g)
	if !found {
		return nil
	}
	start := 0
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].node == closing {
			start = i
			break
		}
	}
	cycle := make([]string, 0, len(stack)-start+1)
	for _, f := range stack[start:] {
		cycle = append(cycle, f.node)
	}
	return append(cycle, closing)
}

// walk stops at the first back-edge and returns the active path at that
// moment together with the in-progress node the edge points to.
func walk(g *Graph) ([]frame, string, bool) {
	if g == nil {
		return nil, "", false
	}
	state := make(map[string]color, len(g.order))
	var stack []frame

	for _, root := range g.order {
		if state[root] != unvisited {
			continue
		}
		state[root] = inProgress
		stack = append(stack[:0], frame{node: root})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			nbrs := g.out[top.node]
			if top.next == len(nbrs) {
				state[top.node] = done
				stack = stack[:len(stack)-1]
				continue
			}
			nbr := nbrs[top.next]
			top.next++

			switch state[nbr] {
			case inProgress:
				return stack, nbr, true
			case unvisited:
				state[nbr] = inProgress
				stack = append(stack, frame{node: nbr})
			}
		}
	}
	return nil, "", false
}
