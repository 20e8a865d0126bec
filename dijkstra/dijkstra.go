// Package dijkstra implements Dijkstra's shortest-path algorithm on word graphs.
//
// Dijkstra computes the minimum-cost path from a single source word to all
// other reachable words. Edge weights are observation counts and therefore
// always ≥ 1, so no negative-weight scan is needed.
// It processes words in order of increasing distance using a min-heap priority
// queue, relaxing edges and updating distances accordingly.
//
// Notes on implementation choices:
//
//   - All tables are slices keyed by the graph's dense word index.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - With a Target, we stop as soon as the target is popped from the heap.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"log/slog"

	"github.com/katalvlaran/textgraph/core"
)

// noPrev marks a word without predecessor (the source, or an unreached word).
const noPrev = -1

// Dijkstra computes shortest distances from the source word (Options.Source)
// to all other words in g.
//
// Returns a *Result whose Dist covers every word of g (Unreachable when not
// reached) and whose Prev covers every reached word except the source.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (*core.MissingWordsError).
//  4. Target, when set, must be in g (*core.MissingWordsError).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	r, err := newRunner(g, opts...)
	if err != nil {
		return nil, err
	}
	r.init()
	r.process()

	return r.result(), nil
}

// newRunner builds and validates options, then allocates index-keyed tables.
func newRunner(g *core.Graph, opts ...Option) (*runner, error) {
	// 1) Build Options
	cfg := DefaultOptions("")
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	cfg.Source = core.Normalize(cfg.Source)
	cfg.Target = core.Normalize(cfg.Target)

	// 2) Validate Source is provided
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}

	// 3) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 4) Validate endpoints exist in the graph
	words := []string{cfg.Source}
	if cfg.Target != "" {
		words = append(words, cfg.Target)
	}
	if err := g.CheckWords(words...); err != nil {
		return nil, err
	}

	src, _ := g.Index(cfg.Source)
	target := noPrev
	if cfg.Target != "" {
		target, _ = g.Index(cfg.Target)
	}

	// 5) Prepare data structures for the algorithm.
	n := g.Len()

	return &runner{
		g:       g,
		options: cfg,
		src:     src,
		target:  target,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph // The input graph; read-only within Dijkstra.
	options Options     // Configuration options (Source, Target, MaxDistance).
	src     int         // Index of Source.
	target  int         // Index of Target, or noPrev when settling everything.
	dist    []int64     // index → current best distance from Source.
	prev    []int       // index → predecessor index on the shortest path.
	visited []bool      // index → distance is finalized.
	pq      nodePQ      // Min-heap of *nodeItem for lazy priority queue.
	settled int         // Number of words finalized, for logging.
}

// init sets up initial distances, predecessors, visited flags, and pushes Source=0 into the heap.
func (r *runner) init() {
	// 1) Initialize dist[v] = +∞ and prev[v] = none for all words v.
	for v := range r.dist {
		r.dist[v] = Unreachable
		r.prev[v] = noPrev
	}

	// 2) Distance to the source is zero.
	r.dist[r.src] = 0

	// 3) Push the source with distance 0 onto the heap.
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.src, dist: 0})
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the word
// with the minimum distance from the source and relaxes its outgoing edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (all reachable words processed).
//   - The minimum distance in the heap exceeds MaxDistance.
//   - The target word has just been finalized.
func (r *runner) process() {
	var u int
	var d int64
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem)
		u = item.id
		d = item.dist

		// 2) Skip stale heap entries.
		if r.visited[u] {
			continue
		}

		// 3) Nothing closer remains within the cap.
		if d > r.options.MaxDistance {
			break
		}

		// 4) Its shortest distance d is now final.
		r.visited[u] = true
		r.settled++
		if u == r.target {
			break
		}

		// 5) Relax all outgoing edges from u.
		r.relax(u)
	}

	slog.Debug("dijkstra completed",
		slog.String("source", r.options.Source),
		slog.String("target", r.options.Target),
		slog.Int("settled", r.settled),
		slog.Int("words", len(r.dist)),
	)
}

// relax examines each edge outgoing from u and attempts to improve distances to its successors.
// If a shorter path to v is found (newDist < dist[v]), we update dist[v], prev[v], and push a new heap entry.
//
// Assumes r.dist[u] is finalized before calling relax(u).
func (r *runner) relax(u int) {
	var a core.Arc
	var newDist int64
	for _, a = range r.g.Arcs(u) {
		if r.visited[a.To] {
			continue
		}

		// Candidate distance Source → … → u → v.
		newDist = r.dist[u] + a.Weight
		if newDist > r.options.MaxDistance {
			continue
		}

		// Strict “<”: equal distances keep the first predecessor found.
		if newDist >= r.dist[a.To] {
			continue
		}

		r.dist[a.To] = newDist
		r.prev[a.To] = u

		// Lazy decrease-key: older entries for a.To are skipped when popped.
		heap.Push(&r.pq, &nodeItem{id: a.To, dist: newDist})
	}
}

// pathTo walks predecessor links back from v and returns the word sequence
// Source … v, or nil when v was not reached.
func (r *runner) pathTo(v int) []string {
	if r.dist[v] == Unreachable {
		return nil
	}
	var rev []string
	for cur := v; cur != noPrev; cur = r.prev[cur] {
		rev = append(rev, r.g.WordAt(cur))
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}

// result converts the index tables into a word-keyed Result.
func (r *runner) result() *Result {
	words := r.g.Words()
	res := &Result{
		Source: r.options.Source,
		Dist:   make(map[string]int64, len(words)),
		Prev:   make(map[string]string, len(words)),
	}
	for i, w := range words {
		res.Dist[w] = r.dist[i]
		if r.prev[i] != noPrev {
			res.Prev[w] = words[r.prev[i]]
		}
	}

	return res
}

// nodeItem represents a word index and its current distance from the source.
type nodeItem struct {
	id   int   // word index
	dist int64 // distance from source
}

// nodePQ is a min-heap (priority queue) of *nodeItem, ordered by nodeItem.dist ascending.
// When a shorter distance to an already queued word is found, a new *nodeItem is
// pushed; the outdated entry is ignored when popped (checked via visited).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
