// Package textgraph turns a plain-text document into a directed, weighted
// word-adjacency graph and answers questions about it.
//
// What is a word graph?
//
//	Every distinct word (case-folded, letters only) is a node. Each time word
//	B directly follows word A in the text, the edge A→B gains one unit of
//	weight. "to be or not to be" yields:
//
//	    to ──2──▶ be ──1──▶ or ──1──▶ not
//	    ▲                              │
//	    └──────────────1───────────────┘
//
// Packages:
//
//	core/        the Graph: words, weighted edges, edge-list persistence
//	tokenize/    text → Graph (letter runs, streaming)
//	bridge/      bridge words: w1 → b → w2
//	augment/     insert a random bridge word between adjacent input words
//	dijkstra/    shortest weighted path between words
//	pagerank/    weighted PageRank with dangling-word redistribution
//	walk/        random walk that stops on a dead end or a repeated edge
//	bfs/         reachability layers from a word
//	dfs/         depth-first order, cycles, topological order
//	dot/         Graphviz DOT output and rendering
//	rng/         seeded random streams
//
// The textgraph command (cmd/textgraph) exposes all of the above on the
// command line and, with `textgraph serve`, over a JSON HTTP API.
//
//	go install github.com/katalvlaran/textgraph/cmd/textgraph@latest
package textgraph
