// Package bfs provides breadth-first search over a word graph, returning
// hop-count distances, parent links, and visit order.
//
// What
//
//   - Explore words in non-decreasing distance (edge count) from a start word,
//     following edges in their direction only.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from word → distance (edges) from start
//   - Parent: map from word → its predecessor in the BFS tree
//   - Layers() groups the visit order by depth.
//   - Reachable is the shorthand returning Order only.
//   - OnVisit hook may abort the search with an error.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - MinWeight ignores pairs seen fewer than a given number of times.
//
// Why
//
//   - Answer “which words can follow this one, and how soon?” in O(V + E).
//   - Layered neighbourhoods of a word for the CLI and HTTP API.
//
// Determinism
//
//	Successors are enqueued in the order their edges were first observed,
//	so the visit sequence is fully reproducible for a given text.
//
// Complexity (V = |Words|, E = |Edges|)
//
//   - Time:   O(V + E)   (each word and edge seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//	res, err := bfs.BFS(g, "the", bfs.WithMaxDepth(2), bfs.WithMinWeight(2))
//	if err != nil {
//		// ErrGraphNil, *core.MissingWordsError, ErrOptionViolation,
//		// ctx.Err(), or a hook error
//	}
//	for depth, words := range res.Layers() {
//		fmt.Println(depth, words)
//	}
package bfs
