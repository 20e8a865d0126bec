package walk_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/textgraph/core"
	"github.com/katalvlaran/textgraph/rng"
	"github.com/katalvlaran/textgraph/tokenize"
	"github.com/katalvlaran/textgraph/walk"
)

const sampleText = "A B C D A C D B"

func build(t *testing.T, text string) *core.Graph {
	t.Helper()
	g, err := tokenize.BuildString(text)
	require.NoError(t, err)

	return g
}

func TestWalk_EmptyGraph(t *testing.T) {
	_, err := walk.Walk(core.NewGraph(), rng.FromSeed(1))
	require.ErrorIs(t, err, walk.ErrEmptyGraph)

	_, err = walk.Walk(nil, nil)
	require.ErrorIs(t, err, walk.ErrEmptyGraph)
}

// checkWalk asserts the structural guarantees of a finished walk.
func checkWalk(t *testing.T, g *core.Graph, res *walk.Result) {
	t.Helper()
	require.NotEmpty(t, res.Words)
	require.True(t, g.HasWord(res.Words[0]))

	seen := make(map[[2]string]bool)
	for i := 1; i < len(res.Words); i++ {
		e := [2]string{res.Words[i-1], res.Words[i]}
		require.True(t, g.HasEdge(e[0], e[1]), "step %d: %v is not an edge", i, e)

		last := i == len(res.Words)-1
		if seen[e] {
			require.True(t, last && res.Repeated, "edge %v repeated before the end", e)
		}
		seen[e] = true
	}

	if res.Repeated {
		require.GreaterOrEqual(t, len(res.Words), 2)
	} else {
		// A walk that did not repeat must end on a word without successors.
		assert.Empty(t, g.Neighbors(res.Words[len(res.Words)-1]))
	}
	assert.LessOrEqual(t, len(res.Words), g.EdgeCount()+2)
}

func TestWalk_Properties(t *testing.T) {
	texts := []string{
		sampleText,
		"a b",
		"the the",
		"to be or not to be that is the question",
		"the quick brown fox jumps over the lazy dog and the dog sleeps",
	}
	for _, text := range texts {
		g := build(t, text)
		for seed := int64(1); seed <= 200; seed++ {
			res, err := walk.Walk(g, rng.FromSeed(seed))
			require.NoError(t, err)
			checkWalk(t, g, res)
		}
	}
}

func TestWalk_Deterministic(t *testing.T) {
	g := build(t, sampleText)
	a, err := walk.Walk(g, rng.FromSeed(42))
	require.NoError(t, err)
	b, err := walk.Walk(g, rng.FromSeed(42))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := walk.Walk(g, nil)
	require.NoError(t, err)
	d, err := walk.Walk(g, rng.FromSeed(0))
	require.NoError(t, err)
	assert.Equal(t, c, d)
}

func TestWalk_SelfLoopRepeats(t *testing.T) {
	g := build(t, "The the")
	res, err := walk.Walk(g, rng.FromSeed(7))
	require.NoError(t, err)

	assert.Equal(t, []string{"the", "the", "the"}, res.Words)
	assert.True(t, res.Repeated)
	assert.Equal(t, "the -> the -> the (repeated edge)", res.String())
}

func TestWalk_SingleWord(t *testing.T) {
	res, err := walk.Walk(build(t, "hello"), rng.FromSeed(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"hello"}, res.Words)
	assert.False(t, res.Repeated)
	assert.Equal(t, "hello", res.String())
}

func TestResult_String(t *testing.T) {
	r := &walk.Result{Words: []string{"a", "b", "c"}}
	assert.Equal(t, "a -> b -> c", r.String())

	r.Repeated = true
	assert.Equal(t, "a -> b -> c (repeated edge)", r.String())
}

func TestResult_Save(t *testing.T) {
	r := &walk.Result{Words: []string{"a", "b", "a"}, Repeated: true}
	path := filepath.Join(t.TempDir(), "walk.txt")
	require.NoError(t, r.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a -> b -> a (repeated edge)", string(data))

	err = r.Save(filepath.Join(t.TempDir(), "missing", "walk.txt"))
	require.Error(t, err)
}
