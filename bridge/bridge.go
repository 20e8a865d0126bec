// Package bridge finds bridge words: for words A and C, every B with A→B and B→C.
//
// Find is the algorithmic core and is total (absent words simply yield no
// bridges). Query adds the human-readable summary that tells "word absent"
// apart from "no bridges".
//
// Complexity:
//
//	Time  O(d(A)) hash lookups, where d(A) is the out-degree of A.
//	Space O(k) for k bridge words.
package bridge

import (
	"errors"
	"strings"

	"github.com/katalvlaran/textgraph/core"
)

// ErrNoBridgeWords is reported by Result.Err when both words exist but nothing links them.
var ErrNoBridgeWords = errors.New("bridge: no bridge words")

// Find returns the bridge words from w1 to w2 in the order in which w1's
// successor edges were first created. Inputs are case-folded. The result is
// empty (never nil) when either word is absent or no bridge exists.
func Find(g *core.Graph, w1, w2 string) []string {
	out := []string{}
	u, ok := g.Index(w1)
	if !ok {
		return out
	}
	v, ok := g.Index(w2)
	if !ok {
		return out
	}

	var a core.Arc
	for _, a = range g.Arcs(u) {
		if g.HasArc(a.To, v) {
			out = append(out, g.WordAt(a.To))
		}
	}

	return out
}

// Result is the outcome of a Query.
type Result struct {
	From    string   // case-folded first word
	To      string   // case-folded second word
	Missing []string // words absent from the graph, in argument order
	Words   []string // bridge words, in discovery order
}

// Query resolves the bridge words between w1 and w2 and records which inputs,
// if any, were absent.
func Query(g *core.Graph, w1, w2 string) Result {
	res := Result{From: core.Normalize(w1), To: core.Normalize(w2)}

	var mw *core.MissingWordsError
	if err := g.CheckWords(res.From, res.To); errors.As(err, &mw) {
		res.Missing = mw.Words
		return res
	}
	res.Words = Find(g, res.From, res.To)

	return res
}

// Err classifies the result: *core.MissingWordsError, ErrNoBridgeWords, or nil
// when at least one bridge word was found.
func (r Result) Err() error {
	if len(r.Missing) > 0 {
		return &core.MissingWordsError{Words: r.Missing}
	}
	if len(r.Words) == 0 {
		return ErrNoBridgeWords
	}
	return nil
}

// String renders the result the way it is shown to users:
//
//	No x in the graph!
//	No x or y in the graph!
//	No bridge words from b to a!
//	The bridge words from a to c are: b.
//	The bridge words from p to q are: r, s and t.
func (r Result) String() string {
	if len(r.Missing) > 0 {
		return (&core.MissingWordsError{Words: r.Missing}).Message()
	}
	if len(r.Words) == 0 {
		return "No bridge words from " + r.From + " to " + r.To + "!"
	}

	return "The bridge words from " + r.From + " to " + r.To + " are: " + JoinList(r.Words) + "."
}

// JoinList joins words as an English list: "a", "a and b", "a, b and c".
func JoinList(words []string) string {
	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	}

	var sb strings.Builder
	last := len(words) - 1
	for i, w := range words {
		if i > 0 {
			if i == last {
				sb.WriteString(" and ")
			} else {
				sb.WriteString(", ")
			}
		}
		sb.WriteString(w)
	}

	return sb.String()
}
