// Package augment rewrites a text by inserting one bridge word between every
// adjacent pair of words that has at least one.
package augment

import (
	"math/rand"
	"strings"

	"github.com/katalvlaran/textgraph/bridge"
	"github.com/katalvlaran/textgraph/core"
	"github.com/katalvlaran/textgraph/rng"
	"github.com/katalvlaran/textgraph/tokenize"
)

// Augment tokenizes text and, for each consecutive pair, inserts a bridge
// word chosen uniformly at random with r. Bridge words are inserted in
// their stored (lowercase) form; the input words keep their original case.
// The output is the resulting word sequence joined by single spaces, so input
// punctuation and spacing are not reproduced.
//
// With fewer than two words there is nothing to bridge and text is returned
// unchanged. A nil r uses the rng.DefaultSeed stream.
//
// Complexity: O(n·d) for n words and maximum out-degree d.
func Augment(g *core.Graph, text string, r *rand.Rand) string {
	words := tokenize.Words(text)
	if len(words) < 2 {
		return text
	}
	r = rng.Or(r)

	out := make([]string, 0, 2*len(words)-1)
	out = append(out, words[0])
	for i := 1; i < len(words); i++ {
		if bridges := bridge.Find(g, words[i-1], words[i]); len(bridges) > 0 {
			out = append(out, bridges[r.Intn(len(bridges))])
		}
		out = append(out, words[i])
	}

	return strings.Join(out, " ")
}
