// Package walk performs random walks over a word graph.
//
// A walk starts at a uniformly chosen word and repeatedly follows a uniformly
// chosen outgoing edge (edge weights are ignored). It stops when
//
//   - the current word has no outgoing edges, or
//   - the chosen edge was already traversed; the destination is then appended
//     once more and the walk is marked Repeated.
//
// Every directed edge is therefore traversed at most once before the repeat
// that ends the walk, so a walk visits at most E+2 words.
//
// Randomness is injected as a *rand.Rand; nil selects the rng.DefaultSeed
// stream. The same seed and graph always produce the same walk.
package walk

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strings"

	"github.com/katalvlaran/textgraph/core"
	"github.com/katalvlaran/textgraph/rng"
)

// ErrEmptyGraph indicates that the graph is nil or has no words.
var ErrEmptyGraph = errors.New("walk: graph is empty")

// Separator joins the words of a rendered walk.
const Separator = " -> "

// RepeatedSuffix marks the final word of a walk that ended on a repeated edge.
const RepeatedSuffix = " (repeated edge)"

// Result is one random walk.
type Result struct {
	// Words lists the visited words in order, starting word first.
	Words []string

	// Repeated reports whether the walk ended by choosing an edge a second time.
	// When true, the last entry of Words is the destination of that edge.
	Repeated bool
}

// String renders the walk as "a -> b -> c", with RepeatedSuffix on the last
// word when the walk ended on a repeated edge.
func (r *Result) String() string {
	s := strings.Join(r.Words, Separator)
	if r.Repeated {
		s += RepeatedSuffix
	}

	return s
}

// Save writes the rendered walk to path, creating or truncating the file.
func (r *Result) Save(path string) error {
	if err := os.WriteFile(path, []byte(r.String()), 0o644); err != nil {
		return fmt.Errorf("walk: save %s: %w", path, err)
	}

	return nil
}

// edgeKey identifies a directed edge by its endpoint indices.
type edgeKey struct{ from, to int }

// Walk performs one random walk over g using r.
//
// Returns ErrEmptyGraph when g is nil or has no words. The graph is only read.
//
// Complexity: O(L) time and space, where L ≤ E+2 is the walk length.
func Walk(g *core.Graph, r *rand.Rand) (*Result, error) {
	if g == nil || g.Len() == 0 {
		return nil, ErrEmptyGraph
	}
	r = rng.Or(r)

	cur := r.Intn(g.Len())
	res := &Result{Words: []string{g.WordAt(cur)}}
	seen := make(map[edgeKey]struct{})

	for {
		arcs := g.Arcs(cur)
		if len(arcs) == 0 {
			break
		}
		next := arcs[r.Intn(len(arcs))].To
		res.Words = append(res.Words, g.WordAt(next))

		k := edgeKey{from: cur, to: next}
		if _, ok := seen[k]; ok {
			res.Repeated = true
			break
		}
		seen[k] = struct{}{}
		cur = next
	}

	slog.Debug("random walk completed",
		slog.Int("length", len(res.Words)),
		slog.Bool("repeated", res.Repeated),
		slog.Int("word_count", g.Len()),
	)

	return res, nil
}
