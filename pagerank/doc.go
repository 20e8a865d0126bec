// Package pagerank scores the words of a word graph by weighted PageRank.
//
// Model:
//
//	N  = number of words, d = damping factor (default 0.85)
//	r₀ = 1/N for every word
//
//	each iteration (default 500, fixed count, no convergence test):
//	  r'(v)  = (1-d)/N + D
//	  D      = Σ_{u dangling} d·r(u)/N           // redistributed to every word
//	  r'(v) += Σ_{u→v} d·r(u)·w(u,v)/W(u)        // W(u) = Σ outgoing weights of u
//
//	after the last iteration, if |Σ r − 1| > tolerance (default 0.001),
//	every score is divided by Σ r.
//
// A dangling word has no outgoing edges (or an outgoing weight sum of 0).
// Self-loops are ordinary edges and feed rank back to their word.
//
// API:
//
//	Compute(ctx, g, opts...) (*Result, error)   // every word, ErrEmptyGraph on N == 0
//	Score(ctx, g, word, opts...) float64        // one word, NotFound (-1) when absent
//	Result.Ranked() []Ranked                    // descending score, ties by word
//	Describe(word, score) string                // "PageRank value for 'w': 0.1234"
//
// The context is used for tracing only; a run always completes its iterations.
//
// Complexity: O(k·(V+E)) time, O(V) space, where k is the iteration count.
package pagerank
