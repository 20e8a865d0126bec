package augment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/textgraph/augment"
	"github.com/katalvlaran/textgraph/core"
	"github.com/katalvlaran/textgraph/rng"
	"github.com/katalvlaran/textgraph/tokenize"
)

func sampleGraph(t *testing.T) *core.Graph {
	t.Helper()
	g, err := tokenize.BuildString("A B C D A C D B")
	require.NoError(t, err)
	return g
}

func TestAugment_InsertsBridgeKeepingInputCase(t *testing.T) {
	g := sampleGraph(t)

	// a→c has the single bridge b; b→a has none.
	assert.Equal(t, "A b C", augment.Augment(g, "A C", rng.FromSeed(1)))
	assert.Equal(t, "B A", augment.Augment(g, "B A", rng.FromSeed(1)))
}

func TestAugment_RebuildsSpacing(t *testing.T) {
	g := sampleGraph(t)

	// c→a is bridged by d (c→d→a).
	assert.Equal(t, "A b C d A", augment.Augment(g, "  A,   C;\n A?", nil))
}

func TestAugment_ShortInputUnchanged(t *testing.T) {
	g := sampleGraph(t)

	for _, in := range []string{"", "   ", "A!", "123 A ..."} {
		assert.Equal(t, in, augment.Augment(g, in, nil), "input %q", in)
	}
}

func TestAugment_UnknownWordsPassThrough(t *testing.T) {
	g := sampleGraph(t)

	assert.Equal(t, "hello there A b C", augment.Augment(g, "hello there A C", nil))
}

func TestAugment_SeedDeterminism(t *testing.T) {
	g := core.NewGraph()
	for _, mid := range []string{"r", "s", "t", "u"} {
		_, _ = g.AddEdge("p", mid)
		_, _ = g.AddEdge(mid, "q")
	}
	text := "p q p q p q p q"

	first := augment.Augment(g, text, rng.FromSeed(42))
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, augment.Augment(g, text, rng.FromSeed(42)))
	}

	// Every inserted word must be one of the bridges.
	words := tokenize.Words(first)
	require.Len(t, words, 8+4)
	for i := 1; i < len(words); i += 3 {
		assert.Contains(t, []string{"r", "s", "t", "u"}, words[i])
	}
}

func TestAugment_AllBridgesReachable(t *testing.T) {
	g := core.NewGraph()
	for _, mid := range []string{"r", "s", "t"} {
		_, _ = g.AddEdge("p", mid)
		_, _ = g.AddEdge(mid, "q")
	}

	seen := map[string]bool{}
	r := rng.FromSeed(7)
	for i := 0; i < 200; i++ {
		seen[tokenize.Words(augment.Augment(g, "p q", r))[1]] = true
	}
	assert.Equal(t, map[string]bool{"r": true, "s": true, "t": true}, seen)
}
