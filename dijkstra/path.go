package dijkstra

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/textgraph/core"
)

// ShortestPath returns the minimum-weight path from w1 to w2.
//
// Both words are case-folded. Absent words yield a *core.MissingWordsError
// naming each of them; w1 == w2 yields the single-word path of length 0
// without running the algorithm; an unreachable w2 yields an error wrapping
// ErrNoPath. Additional options (e.g. WithMaxDistance) are forwarded.
//
// Complexity: O((V + E) log V) worst case; usually less thanks to the early stop.
func ShortestPath(g *core.Graph, w1, w2 string, opts ...Option) (*Path, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	w1 = core.Normalize(w1)
	w2 = core.Normalize(w2)
	if err := g.CheckWords(w1, w2); err != nil {
		return nil, err
	}
	if w1 == w2 {
		return &Path{From: w1, To: w2, Words: []string{w1}}, nil
	}

	all := make([]Option, 0, len(opts)+2)
	all = append(all, opts...)
	all = append(all, Source(w1), WithTarget(w2))
	r, err := newRunner(g, all...)
	if err != nil {
		return nil, err
	}
	r.init()
	r.process()

	words := r.pathTo(r.target)
	if words == nil {
		return nil, noPath(w1, w2)
	}

	return &Path{From: w1, To: w2, Words: words, Length: r.dist[r.target]}, nil
}

// PathTo reconstructs the path from the run's source to word using Prev.
// Errors mirror ShortestPath: *core.MissingWordsError when word was not part
// of the graph, ErrNoPath (wrapped) when it was never reached.
func (res *Result) PathTo(word string) (*Path, error) {
	word = core.Normalize(word)
	d, ok := res.Dist[word]
	if !ok {
		return nil, &core.MissingWordsError{Words: []string{word}}
	}
	if d == Unreachable {
		return nil, noPath(res.Source, word)
	}

	var rev []string
	cur := word
	for {
		rev = append(rev, cur)
		p, ok := res.Prev[cur]
		if !ok {
			break
		}
		cur = p
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return &Path{From: res.Source, To: word, Words: rev, Length: d}, nil
}

// Outcome is one entry of AllFrom: either a Path or the reason there is none.
type Outcome struct {
	To   string
	Path *Path
	Err  error
}

// String renders the outcome with Describe.
func (o Outcome) String() string {
	from := ""
	if o.Path != nil {
		from = o.Path.From
	}
	var np *noPathError
	if errors.As(o.Err, &np) {
		from = np.from
	}

	return Describe(from, o.To, o.Path, o.Err)
}

// AllFrom computes, with a single Dijkstra run, the shortest path from source
// to every other word of g. Outcomes are sorted by target word.
//
// A missing source yields a *core.MissingWordsError and no outcomes.
func AllFrom(g *core.Graph, source string, opts ...Option) ([]Outcome, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	source = core.Normalize(source)
	all := make([]Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, Source(source))
	res, err := Dijkstra(g, all...)
	if err != nil {
		return nil, err
	}

	targets := g.SortedWords()
	out := make([]Outcome, 0, len(targets))
	var to string
	for _, to = range targets {
		if to == source {
			continue
		}
		p, err := res.PathTo(to)
		out = append(out, Outcome{To: to, Path: p, Err: err})
	}

	return out, nil
}

// Describe renders the outcome of a path query as user-facing text:
//
//	Path from a to d: a → c → d\nLength: 3
//	No x or y in the graph!
//	No path exists from a to d!
//
// from and to are case-folded. Errors other than the two above are rendered
// with their Error text.
func Describe(from, to string, p *Path, err error) string {
	from = core.Normalize(from)
	to = core.Normalize(to)

	var missing *core.MissingWordsError
	switch {
	case err == nil && p != nil:
		return p.String()
	case errors.As(err, &missing):
		return missing.Message()
	case errors.Is(err, ErrNoPath):
		return "No path exists from " + from + " to " + to + "!"
	case err != nil:
		return err.Error()
	default:
		return ""
	}
}

// noPathError carries the endpoints of an unreachable pair and unwraps to ErrNoPath.
type noPathError struct {
	from, to string
}

func noPath(from, to string) error { return &noPathError{from: from, to: to} }

// Error implements error.
func (e *noPathError) Error() string {
	return fmt.Sprintf("%s from %s to %s", ErrNoPath.Error(), e.from, e.to)
}

// Unwrap exposes ErrNoPath to errors.Is.
func (e *noPathError) Unwrap() error { return ErrNoPath }

func formatInt(v int64) string { return strconv.FormatInt(v, 10) }
