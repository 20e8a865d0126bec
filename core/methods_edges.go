// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge insertion and adjacency queries.
//
// Determinism:
//   - Neighbors()/Arcs() return successors in first-insertion order.
//   - Edges() walks sources in index order, then each source's arcs in order.
//
// Concurrency:
//   - AddEdge under mu write lock; every query under mu read lock.

package core

// AddEdge records one observation of the ordered pair from→to and returns the
// resulting weight.
//
// Steps:
//  1. Case-fold both endpoints; reject empty words (ErrEmptyWord).
//  2. Ensure both endpoints exist as words.
//  3. If the arc exists, bump its weight; otherwise append a new arc of weight 1.
//
// Self-loops ("the the") are legal and stored like any other pair.
//
// Complexity: O(len(from)+len(to)) amortized.
func (g *Graph) AddEdge(from, to string) (int64, error) {
	from = Normalize(from)
	to = Normalize(to)
	if from == "" || to == "" {
		return 0, ErrEmptyWord
	}

	return g.addWeighted(from, to, 1), nil
}

// Weight returns the weight of from→to, or 0 when the edge (or either word) is absent.
func (g *Graph) Weight(from, to string) int64 {
	from = Normalize(from)
	to = Normalize(to)

	g.mu.RLock()
	defer g.mu.RUnlock()

	u, ok := g.index[from]
	if !ok {
		return 0
	}
	v, ok := g.index[to]
	if !ok {
		return 0
	}
	k, ok := g.arcPos[u][v]
	if !ok {
		return 0
	}

	return g.arcs[u][k].Weight
}

// HasEdge reports whether from→to has been observed at least once.
func (g *Graph) HasEdge(from, to string) bool {
	return g.Weight(from, to) > 0
}

// Neighbors returns the successors of word with their weights, in the order the
// edges were first created. An absent word, or one without outgoing edges,
// yields an empty slice.
//
// Complexity: O(d) where d is the out-degree.
func (g *Graph) Neighbors(word string) []Neighbor {
	word = Normalize(word)

	g.mu.RLock()
	defer g.mu.RUnlock()

	u, ok := g.index[word]
	if !ok {
		return []Neighbor{}
	}
	out := make([]Neighbor, 0, len(g.arcs[u]))
	var a Arc
	for _, a = range g.arcs[u] {
		out = append(out, Neighbor{Word: g.words[a.To], Weight: a.Weight})
	}

	return out
}

// NeighborWeights is Neighbors as a successor→weight map. Never nil.
func (g *Graph) NeighborWeights(word string) map[string]int64 {
	nbs := g.Neighbors(word)
	out := make(map[string]int64, len(nbs))
	var nb Neighbor
	for _, nb = range nbs {
		out[nb.Word] = nb.Weight
	}

	return out
}

// Arcs returns the live successor slice of index i. Callers must treat it as
// read-only. Out-of-range indices panic.
// Complexity: O(1)
func (g *Graph) Arcs(i int) []Arc {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.arcs[i]
}

// HasArc reports whether index u has an edge to index v.
// Complexity: O(1)
func (g *Graph) HasArc(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.arcPos[u][v]
	return ok
}

// OutWeight returns the total outgoing weight of index i.
func (g *Graph) OutWeight(i int) int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var sum int64
	var a Arc
	for _, a = range g.arcs[i] {
		sum += a.Weight
	}

	return sum
}

// Edges returns every edge exactly once, labelled with words.
// Complexity: O(E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	var a Arc
	for u, arcs := range g.arcs {
		for _, a = range arcs {
			out = append(out, Edge{From: g.words[u], To: g.words[a.To], Weight: a.Weight})
		}
	}

	return out
}

// EdgeCount returns the number of distinct directed edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
