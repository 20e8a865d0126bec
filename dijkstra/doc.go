// Package dijkstra computes shortest paths over a word graph, where the cost of
// an edge is the number of times its word pair was observed.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source word to all
//     reachable words in O((V + E) log V) time, where V = |words| and E = |edges|.
//   - It relies on a min-heap (priority queue) to always expand the next-closest word.
//   - ShortestPath answers one source/target query, stopping as soon as the
//     target is settled, and reconstructs the path from predecessor links.
//
// Key features:
//
//   - Functional options (Source, WithTarget, WithMaxDistance) tune a run without
//     changing the API signature.
//   - Source == target short-circuits to a zero-length, single-word path.
//   - AllFrom reports a path (or the reason for its absence) from one word to
//     every other word, in alphabetical order, from a single run.
//   - Describe renders any outcome as the text shown to users:
//
//     Path from a to d: a → c → d
//     Length: 3
//
//     No x or y in the graph!
//     No path exists from a to d!
//
// Tie-breaking:
//
//   - When several words share the minimum distance, the heap pops them in an
//     unspecified order. Two equally short paths may therefore be reported in
//     either form; callers must not depend on which.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Each word is settled at most once (V extractions).
//   - Each successful relaxation pushes one heap entry (≤ E pushes).
//   - Space: O(V + E)
//   - O(V) for the index-keyed distance, predecessor and visited tables.
//   - O(E) worst-case heap entries under the lazy decrease-key strategy.
//
// Error handling:
//
//   - ErrNilGraph:        a nil *core.Graph was passed.
//   - ErrEmptySource:     Dijkstra was called without Source(...).
//   - ErrNoPath:          ShortestPath found the target unreachable.
//   - ErrBadMaxDistance:  WithMaxDistance received a negative value (panics).
//   - *core.MissingWordsError (errors.Is core.ErrWordNotFound): an endpoint is absent.
//
// Thread safety:
//
//   - The graph is only read. Concurrent queries over a graph that is no
//     longer being built are safe.
package dijkstra
