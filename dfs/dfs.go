// Package dfs implements depth-first search (single-source and forest) on a
// word graph. Edges are followed in the direction the words were read, and
// successors are explored in first-insertion order.
//
// Complexity:
//
//   - Time:   O(V + E), plus the cost of hooks and filters.
//   - Memory: O(V) for the recursion stack and result maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - *core.MissingWordsError   if the start word is absent (single-source mode).
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/textgraph/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph   *core.Graph
	opts    DFSOptions
	res     *DFSResult
	visited []bool
}

// DFS performs depth-first search on g from start. With WithFullTraversal it
// covers every word, starting each new tree at the lowest unvisited index,
// and start is ignored.
func DFS(g *core.Graph, start string, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	n := g.Len()
	res := &DFSResult{
		Order:   make([]string, 0, n),
		Depth:   make(map[string]int, n),
		Parent:  make(map[string]string, n),
		Visited: make(map[string]bool, n),
	}
	walker := &dfsWalker{graph: g, opts: dopts, res: res, visited: make([]bool, n)}

	if dopts.FullTraversal {
		for i := 0; i < n; i++ {
			if walker.visited[i] {
				continue
			}
			if err := walker.traverse(i, 0); err != nil {
				return res, err
			}
		}
	} else {
		if err := g.CheckWords(start); err != nil {
			return nil, err
		}
		id, _ := g.Index(start)
		if err := walker.traverse(id, 0); err != nil {
			return res, err
		}
	}
	res.SkippedEdges = walker.opts.SkippedEdges

	return res, nil
}

// traverse visits word id at depth, recursing into unvisited successors.
func (w *dfsWalker) traverse(id, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	word := w.graph.WordAt(id)
	w.visited[id] = true
	w.res.Visited[word] = true
	w.res.Depth[word] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(word, depth); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", word, err)
		}
	}

	var a core.Arc
	for _, a = range w.graph.Arcs(id) {
		if w.visited[a.To] {
			continue
		}
		if w.opts.FilterEdge != nil && !w.opts.FilterEdge(word, w.graph.WordAt(a.To), a.Weight) {
			w.opts.SkippedEdges++
			continue
		}
		if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
			continue
		}
		w.res.Parent[w.graph.WordAt(a.To)] = word
		if err := w.traverse(a.To, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(word); err != nil {
			w.res.Order = nil
			return fmt.Errorf("dfs: OnExit hook for %q: %w", word, err)
		}
	}
	w.res.Order = append(w.res.Order, word)

	return nil
}
