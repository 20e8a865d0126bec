// Package dfs defines types and options for depth-first search over a word
// graph, including cancellation, pre-/post-order hooks, depth limiting, edge
// filtering and full-graph traversal.
package dfs

import (
	"context"
	"errors"
)

// Visitation states of a word during DFS.
const (
	White = iota // White: not visited yet.
	Gray         // Gray: on the recursion stack.
	Black        // Black: the word and all its descendants are finished.
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS,
	// TopologicalSort or FindCycles.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrCycleDetected indicates TopologicalSort met a cycle.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a word is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(word string, depth int) error

	// OnExit, if non-nil, is invoked after all descendants of a word are
	// finished (post-order), before the word is appended to Order.
	OnExit func(word string) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start word. Default is -1 (no limit).
	MaxDepth int

	// FilterEdge, if non-nil, is called for each outgoing edge before
	// descending. Return false to skip the edge.
	FilterEdge func(from, to string, weight int64) bool

	// FullTraversal runs DFS from every unvisited word in index order,
	// covering words the start cannot reach.
	FullTraversal bool

	// SkippedEdges counts edges rejected by FilterEdge.
	SkippedEdges int
}

// DefaultOptions returns Background context, no hooks, no depth limit,
// no filter and single-source traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for DFS traversal. A nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(word string, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(word string) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth. A limit of 0 visits only the start word.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterEdge skips every edge for which fn returns false.
func WithFilterEdge(fn func(from, to string, weight int64) bool) Option {
	return func(o *DFSOptions) {
		o.FilterEdge = fn
	}
}

// WithFullTraversal restarts DFS from each unvisited word.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Order records words in the sequence they finished (post-order).
	Order []string

	// Depth maps each word to its discovery depth in its DFS tree.
	Depth map[string]int

	// Parent maps each word to the word it was discovered from.
	// Roots do not appear.
	Parent map[string]string

	// Visited flags which words were reached.
	Visited map[string]bool

	// SkippedEdges is the number of edges rejected by FilterEdge.
	SkippedEdges int
}
