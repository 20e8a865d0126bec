// Package bfs provides breadth-first search over a word graph,
// returning hop-count distances, parent links, and visit order.
//
// BFS explores words in increasing hop distance from a start word,
// with an optional visit hook, depth limiting, and a minimum edge weight.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/textgraph/core"
)

// queueItem pairs a word index with its BFS depth.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited []bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start (case-insensitive),
// applying any number of functional Options.
// Returns ErrGraphNil or a *core.MissingWordsError for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS(g *core.Graph, start string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate start word
	if err := g.CheckWords(start); err != nil {
		return nil, err
	}
	src, _ := g.Index(start)

	// Prepare walker
	n := g.Len()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	// Seed queue with start word (no parent)
	w.enqueue(src, 0, -1)
	// Main loop
	return w.res, w.loop()
}

// Reachable returns every word reachable from start, start included, in BFS
// order. It is BFS with the Order field only.
func Reachable(g *core.Graph, start string, opts ...Option) ([]string, error) {
	res, err := BFS(g, start, opts...)
	if err != nil {
		return nil, err
	}

	return res.Order, nil
}

// enqueue marks id visited at depth d, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(id, d, parent int) {
	w.visited[id] = true
	word := w.graph.WordAt(id)
	w.res.Depth[word] = d
	if parent >= 0 {
		w.res.Parent[word] = w.graph.WordAt(parent)
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	return item
}

// visit records the word in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	word := w.graph.WordAt(item.id)
	w.res.Order = append(w.res.Order, word)
	if err := w.opts.OnVisit(word, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", word, err)
	}
	return nil
}

// enqueueNeighbors walks successors in insertion order, applies MinWeight and
// MaxDepth, and enqueues each unseen successor.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, a := range w.graph.Arcs(item.id) {
		if a.Weight < w.opts.MinWeight {
			continue
		}
		if !w.visited[a.To] {
			w.enqueue(a.To, nextDepth, item.id)
		}
	}
}
