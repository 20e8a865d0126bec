// Package core provides the word-adjacency Graph every textgraph algorithm
// reads from.
//
// The Graph G = (V,E) is built from a stream of adjacent word pairs:
//
//   - V is the set of distinct case-folded words. A word's identity is its
//     lowercase form, so "The", "THE" and "the" are one vertex.
//   - E holds directed edges from→to. Each ordered pair is stored once; its
//     Weight counts how many times the pair was observed (always ≥ 1).
//   - Adding an edge implicitly adds both endpoints.
//   - Nothing is ever removed: the graph only grows.
//
// Storage layout:
//
//	index[word]   = i                 // stable integer index, assigned at first insertion
//	words[i]      = word              // lowercase label
//	arcs[i]       = []Arc{{To, W}}    // successors of i in first-insertion order
//	arcPos[i][j]  = k                 // position of the i→j arc inside arcs[i]
//
// Case-folding happens once, when a word is assigned its index; algorithms then
// work on integer indices and never rehash strings while traversing.
// Successor order is the order in which each from→to pair was first seen; this
// order is observable (bridge words are reported in it).
//
// Core Methods:
//
//	// Words
//	AddWord(word string) error            // O(len(word))
//	HasWord(word string) bool             // O(len(word)), case-insensitive
//	Index(word string) (int, bool)        // O(len(word))
//	WordAt(i int) string                  // O(1)
//	Words() []string                      // O(V), index order
//	SortedWords() []string                // O(V·log V)
//	Len() int                             // O(1)
//
//	// Edges
//	AddEdge(from, to string) (int64, error) // O(1) amortized, returns the new weight
//	Weight(from, to string) int64           // O(1), 0 when absent
//	HasEdge(from, to string) bool           // O(1)
//	Neighbors(word string) []Neighbor       // O(d), insertion order, never nil-error
//	NeighborWeights(word string) map[string]int64
//	Arcs(i int) []Arc                       // O(1), read-only view
//	HasArc(u, v int) bool                   // O(1)
//	OutWeight(i int) int64                  // O(d)
//	Edges() []Edge                          // O(E), source index order then arc order
//	EdgeCount() int                         // O(1)
//
//	// Persistence
//	WriteEdgeList(w io.Writer) error        // "from\tto\tweight" lines
//	ReadEdgeList(r io.Reader) (*Graph, error)
//
// Concurrency:
//
//	A single sync.RWMutex guards the structure, so readers may run in parallel.
//	The supported lifecycle is still single-writer-then-many-readers: build the
//	graph completely, then query it. Arcs returns the live slice and must not be
//	retained across a concurrent AddEdge.
//
// Errors:
//
//	ErrEmptyWord       – zero-length word passed to AddWord/AddEdge.
//	ErrWordNotFound    – a query referenced an absent word (see MissingWordsError).
//	ErrBadEdgeList     – malformed line in ReadEdgeList input.
package core
