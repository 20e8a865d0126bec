// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph word and edge contracts.

package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/textgraph/core"
)

func TestGraph_AddWord(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddWord(WordEmpty), core.ErrEmptyWord)
	require.NoError(t, g.AddWord("Hello"))
	require.NoError(t, g.AddWord("HELLO"), "re-adding in another case is a no-op")

	assert.Equal(t, 1, g.Len())
	assert.Equal(t, []string{"hello"}, g.Words())
	assert.True(t, g.HasWord("hello"))
	assert.True(t, g.HasWord("hElLo"))
	assert.False(t, g.HasWord(WordEmpty))
}

func TestGraph_CaseNeverAffectsIdentity(t *testing.T) {
	g := BuildFromWords(t, "The cat saw THE dog")

	for _, w := range []string{"the", "The", "THE", "cat", "CAT", "dog", "missing", "MISSING"} {
		assert.Equal(t, g.HasWord(core.Normalize(w)), g.HasWord(w), "HasWord(%q)", w)
	}
	assert.Equal(t, 4, g.Len())
	assert.Equal(t, []string{"the", "cat", "saw", "dog"}, g.Words())
}

func TestGraph_AddEdgeAccumulatesWeight(t *testing.T) {
	g := BuildFromWords(t, SampleText)

	assert.Equal(t, 4, g.Len())
	assert.Equal(t, 7-1, g.EdgeCount(), "c→d observed twice but stored once")
	assert.Equal(t, int64(2), g.Weight(WordC, WordD))
	assert.Equal(t, int64(1), g.Weight("A", "B"))
	assert.Equal(t, int64(0), g.Weight(WordB, WordA))
	assert.Equal(t, int64(0), g.Weight(WordX, WordA))
	assert.True(t, g.HasEdge("D", "b"))
	assert.False(t, g.HasEdge(WordB, WordD))

	w, err := g.AddEdge("C", "D")
	require.NoError(t, err)
	assert.Equal(t, int64(3), w)
	assert.Equal(t, 6, g.EdgeCount())
}

func TestGraph_AddEdgeEmptyEndpoint(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge(WordEmpty, WordA)
	require.ErrorIs(t, err, core.ErrEmptyWord)
	_, err = g.AddEdge(WordA, WordEmpty)
	require.ErrorIs(t, err, core.ErrEmptyWord)
	assert.Equal(t, 0, g.Len(), "failed AddEdge must not add endpoints")
}

func TestGraph_SelfLoop(t *testing.T) {
	g := BuildFromWords(t, "very very very good")

	assert.Equal(t, int64(2), g.Weight("very", "very"))
	assert.Equal(t, []string{"very", "good"}, NeighborWords(g.Neighbors("very")))
}

func TestGraph_NeighborsInsertionOrder(t *testing.T) {
	g := BuildFromWords(t, SampleText)

	assert.Equal(t, []core.Neighbor{{Word: "b", Weight: 1}, {Word: "c", Weight: 1}}, g.Neighbors(WordA))
	assert.Equal(t, []string{"a", "b"}, NeighborWords(g.Neighbors("D")))
	assert.Equal(t, map[string]int64{"d": 2}, g.NeighborWeights(WordC))
}

func TestGraph_NeighborsOfAbsentOrSinkWord(t *testing.T) {
	g := BuildFromWords(t, "alpha omega")

	assert.NotNil(t, g.Neighbors(WordX))
	assert.Empty(t, g.Neighbors(WordX))
	assert.Empty(t, g.Neighbors("omega"))
	assert.NotNil(t, g.NeighborWeights(WordX))
	assert.Empty(t, g.NeighborWeights(WordX))
}

func TestGraph_IndexAPI(t *testing.T) {
	g := BuildFromWords(t, SampleText)

	a, ok := g.Index("A")
	require.True(t, ok)
	c, ok := g.Index(WordC)
	require.True(t, ok)
	_, ok = g.Index(WordX)
	require.False(t, ok)

	assert.Equal(t, 0, a, "first word gets index 0")
	assert.Equal(t, WordA, g.WordAt(a))
	assert.Equal(t, []core.Arc{{To: 3, Weight: 2}}, g.Arcs(c))
	assert.Equal(t, int64(2), g.OutWeight(a))
}

func TestGraph_EdgesListEveryEdgeOnce(t *testing.T) {
	g := BuildFromWords(t, SampleText)

	want := []core.Edge{
		{From: "a", To: "b", Weight: 1},
		{From: "a", To: "c", Weight: 1},
		{From: "b", To: "c", Weight: 1},
		{From: "c", To: "d", Weight: 2},
		{From: "d", To: "a", Weight: 1},
		{From: "d", To: "b", Weight: 1},
	}
	assert.Equal(t, want, g.Edges())
}

func TestGraph_SortedWords(t *testing.T) {
	g := BuildFromWords(t, "zeta beta alpha")

	assert.Equal(t, []string{"zeta", "beta", "alpha"}, g.Words())
	assert.Equal(t, []string{"alpha", "beta", "zeta"}, g.SortedWords())
}

func TestGraph_CheckWords(t *testing.T) {
	g := BuildFromWords(t, SampleText)

	require.NoError(t, g.CheckWords("A", "d"))

	tests := []struct {
		name    string
		words   []string
		missing []string
		message string
	}{
		{"first missing", []string{"X", "C"}, []string{"x"}, "No x in the graph!"},
		{"second missing", []string{"A", "Y"}, []string{"y"}, "No y in the graph!"},
		{"both missing", []string{"X", "Y"}, []string{"x", "y"}, "No x or y in the graph!"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := g.CheckWords(tc.words...)
			require.ErrorIs(t, err, core.ErrWordNotFound)

			var mw *core.MissingWordsError
			require.True(t, errors.As(err, &mw))
			assert.Equal(t, tc.missing, mw.Words)
			assert.Equal(t, tc.message, mw.Message())
		})
	}
}
