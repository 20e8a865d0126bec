// SPDX-License-Identifier: MIT
//
// File: edgelist.go
// Role: Human-readable edge-list persistence.
//
// Format (one record per line, UTF-8):
//
//	# comment
//	from<TAB>to<TAB>weight      // a directed edge observed weight times
//	word                        // a word with no incident edges
//
// Fields are separated by any run of whitespace on input; output always uses
// a single TAB. Blank lines and lines starting with '#' are ignored.

package core

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteEdgeList writes g in edge-list form: a header comment, then every edge
// in Edges() order, then any word that touches no edge.
//
// Complexity: O(V+E)
func (g *Graph) WriteEdgeList(w io.Writer) error {
	bw := bufio.NewWriter(w)
	edges := g.Edges()
	words := g.Words()

	if _, err := fmt.Fprintf(bw, "# textgraph edge list: %d words, %d edges\n", len(words), len(edges)); err != nil {
		return err
	}

	touched := make(map[string]struct{}, len(words))
	var e Edge
	for _, e = range edges {
		touched[e.From] = struct{}{}
		touched[e.To] = struct{}{}
		if _, err := fmt.Fprintf(bw, "%s\t%s\t%d\n", e.From, e.To, e.Weight); err != nil {
			return err
		}
	}

	var word string
	for _, word = range words {
		if _, ok := touched[word]; ok {
			continue
		}
		if _, err := fmt.Fprintln(bw, word); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// ReadEdgeList parses an edge list produced by WriteEdgeList (or by hand) into
// a new Graph. Repeated pairs accumulate their weights.
//
// Errors:
//   - ErrBadEdgeList (wrapped with the line number) for a wrong field count or a
//     weight that is not a positive integer.
//   - Any error from the underlying reader.
func ReadEdgeList(r io.Reader) (*Graph, error) {
	g := NewGraph()
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.Fields(text)
		switch len(fields) {
		case 1:
			if err := g.AddWord(fields[0]); err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrBadEdgeList, line, err)
			}
		case 3:
			weight, err := strconv.ParseInt(fields[2], 10, 64)
			if err != nil || weight < 1 {
				return nil, fmt.Errorf("%w: line %d: weight %q", ErrBadEdgeList, line, fields[2])
			}
			g.addWeighted(Normalize(fields[0]), Normalize(fields[1]), weight)
		default:
			return nil, fmt.Errorf("%w: line %d: want 1 or 3 fields, got %d", ErrBadEdgeList, line, len(fields))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return g, nil
}

// addWeighted adds weight observations of from→to in one step and returns the
// resulting edge weight. Inputs must already be normalized and non-empty.
func (g *Graph) addWeighted(from, to string, weight int64) int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	u := g.ensureWord(from)
	v := g.ensureWord(to)
	if g.arcPos[u] == nil {
		g.arcPos[u] = make(map[int]int)
	}
	if k, ok := g.arcPos[u][v]; ok {
		g.arcs[u][k].Weight += weight
		return g.arcs[u][k].Weight
	}
	g.arcPos[u][v] = len(g.arcs[u])
	g.arcs[u] = append(g.arcs[u], Arc{To: v, Weight: weight})
	g.edgeCount++

	return weight
}
