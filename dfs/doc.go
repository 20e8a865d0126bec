// Package dfs implements depth-first traversal, cycle detection and
// topological sort on a word graph.
//
// What:
//
//   - DFS: explores as far as possible along each edge before backtracking.
//     Supports pre- and post-order hooks, cancellation, depth limiting,
//     edge filtering and full-graph (forest) traversal.
//   - FindCycles / HasCycle: back-edge cycles of the text, canonicalized by
//     minimal rotation. A text is cyclic as soon as some word sequence leads
//     back to a word already read.
//   - TopologicalSort: an order of the words consistent with every edge, or
//     ErrCycleDetected.
//
// Complexity:
//
//   - DFS:             Time O(V+E), Memory O(V)
//   - FindCycles:      Time O(V+E + C·L), Memory O(V+L_max)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil              graph pointer is nil
//   - *core.MissingWordsError  start word not in graph
//   - ErrCycleDetected         TopologicalSort on a cyclic graph
//   - context.Canceled         traversal canceled via context
//   - hook errors              propagated from OnVisit or OnExit
package dfs
