// Package dfs implements cycle detection for word graphs.
//
// FindCycles runs a three-color DFS over every word and records one cycle per
// back-edge (an edge into a Gray word). This is not an enumeration of all
// simple cycles, whose number can grow exponentially with text length; it is
// a witness set that is empty exactly when the graph is acyclic. Each cycle is
// rotated so its smallest word comes first (Booth's algorithm) and the list is
// sorted, so the output is deterministic.
//
// Complexity:
//
//   - Time:   O(V + E + C·L)   (C = back-edges, L = average cycle length)
//   - Memory: O(V + L_max)
package dfs

import (
	"errors"
	"sort"

	"github.com/katalvlaran/textgraph/core"
)

// cycleFinder holds the coloring state of one FindCycles run.
type cycleFinder struct {
	graph  *core.Graph
	state  []int
	path   []int
	seen   map[string]struct{}
	cycles [][]string
}

// FindCycles returns the distinct back-edge cycles of g. Each cycle is closed:
// its first word is repeated at the end, so a self-loop "the the" is
// reported as [the the]. A nil or acyclic graph yields nil.
func FindCycles(g *core.Graph) [][]string {
	if g == nil {
		return nil
	}

	n := g.Len()
	f := &cycleFinder{
		graph: g,
		state: make([]int, n),
		path:  make([]int, 0, n),
		seen:  make(map[string]struct{}),
	}
	for v := 0; v < n; v++ {
		if f.state[v] == White {
			f.visit(v)
		}
	}
	if len(f.cycles) == 0 {
		return nil
	}

	sort.Slice(f.cycles, func(i, j int) bool {
		return JoinSig(f.cycles[i]) < JoinSig(f.cycles[j])
	})

	return f.cycles
}

// HasCycle reports whether g contains at least one directed cycle.
func HasCycle(g *core.Graph) bool {
	_, err := TopologicalSort(g)
	return errors.Is(err, ErrCycleDetected)
}

func (f *cycleFinder) visit(id int) {
	f.state[id] = Gray
	f.path = append(f.path, id)

	var a core.Arc
	for _, a = range f.graph.Arcs(id) {
		switch f.state[a.To] {
		case White:
			f.visit(a.To)
		case Gray:
			f.record(a.To)
		}
	}

	f.path = f.path[:len(f.path)-1]
	f.state[id] = Black
}

// record stores the cycle from start to the top of the path, closed back to start.
func (f *cycleFinder) record(start int) {
	idx := indexOf(f.path, start)
	base := make([]string, 0, len(f.path)-idx)
	for _, id := range f.path[idx:] {
		base = append(base, f.graph.WordAt(id))
	}

	rot := MinimalRotation(base)
	closed := append(rot, rot[0])
	sig := JoinSig(closed)
	if _, ok := f.seen[sig]; ok {
		return
	}
	f.seen[sig] = struct{}{}
	f.cycles = append(f.cycles, closed)
}
