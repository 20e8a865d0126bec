// SPDX-License-Identifier: MIT
package core_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/textgraph/core"
)

func TestEdgeList_Write(t *testing.T) {
	g := BuildFromWords(t, SampleText)
	require.NoError(t, g.AddWord("lonely"))

	var buf bytes.Buffer
	require.NoError(t, g.WriteEdgeList(&buf))

	want := "# textgraph edge list: 5 words, 6 edges\n" +
		"a\tb\t1\n" +
		"a\tc\t1\n" +
		"b\tc\t1\n" +
		"c\td\t2\n" +
		"d\ta\t1\n" +
		"d\tb\t1\n" +
		"lonely\n"
	assert.Equal(t, want, buf.String())
}

func TestEdgeList_ReadBackPreservesGraph(t *testing.T) {
	g := BuildFromWords(t, SampleText)
	require.NoError(t, g.AddWord("lonely"))

	var buf bytes.Buffer
	require.NoError(t, g.WriteEdgeList(&buf))

	back, err := core.ReadEdgeList(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.Words(), back.Words())
	assert.Equal(t, g.Edges(), back.Edges())
}

func TestEdgeList_ReadAccumulatesAndFolds(t *testing.T) {
	in := "# hand written\n\nThe  cat 2\nthe\tCAT\t3\ncat sat 1\n"

	g, err := core.ReadEdgeList(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, int64(5), g.Weight("the", "cat"))
	assert.Equal(t, 2, g.EdgeCount())
}

func TestEdgeList_ReadRejectsMalformed(t *testing.T) {
	for _, in := range []string{
		"a b\n",
		"a b zero\n",
		"a b 0\n",
		"a b -4\n",
		"a b 1 extra\n",
	} {
		_, err := core.ReadEdgeList(strings.NewReader(in))
		assert.ErrorIs(t, err, core.ErrBadEdgeList, "input %q", in)
	}
}
