// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the core tests.

package core_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/textgraph/core"
)

// Common words used across core tests.
const (
	WordEmpty = ""

	WordA = "a"
	WordB = "b"
	WordC = "c"
	WordD = "d"
	WordX = "x"
	WordY = "y"
)

// SampleText is the reference document: its consecutive pairs are
// (a,b),(b,c),(c,d),(d,a),(a,c),(c,d),(d,b), so c→d has weight 2.
const SampleText = "A B C D A C D B"

// Common concurrency sizes used across core tests.
const (
	NReaders = 50
	NRounds  = 100
)

// BuildFromWords adds an edge for every consecutive pair of space-separated words.
func BuildFromWords(t testing.TB, text string) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	words := strings.Fields(text)
	for i := 0; i+1 < len(words); i++ {
		_, err := g.AddEdge(words[i], words[i+1])
		require.NoError(t, err, "AddEdge(%s,%s)", words[i], words[i+1])
	}

	return g
}

// NeighborWords projects Neighbors() onto their words, keeping order.
func NeighborWords(nbs []core.Neighbor) []string {
	out := make([]string, 0, len(nbs))
	for _, nb := range nbs {
		out = append(out, nb.Word)
	}

	return out
}
