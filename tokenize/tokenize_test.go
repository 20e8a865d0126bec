package tokenize_test

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/textgraph/tokenize"
)

func TestWords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"separators only", " 42, -- !\n", nil},
		{"keeps case", "Hello World", []string{"Hello", "World"}},
		{"punctuation splits", "don't stop-now", []string{"don", "t", "stop", "now"}},
		{"digits split", "abc123def", []string{"abc", "def"}},
		{"line breaks", "one\r\ntwo\nthree", []string{"one", "two", "three"}},
		{"non ascii separates", "café au lait", []string{"caf", "au", "lait"}},
		{"trailing word", "  last", []string{"last"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tokenize.Words(tc.in))
		})
	}
}

func TestScanWords_SmallReads(t *testing.T) {
	// One byte per Read forces ScanWords to ask for more data mid-word.
	sc := bufio.NewScanner(iotest.OneByteReader(strings.NewReader("alpha, beta;gamma")))
	sc.Split(tokenize.ScanWords)

	var got []string
	for sc.Scan() {
		got = append(got, sc.Text())
	}
	require.NoError(t, sc.Err())
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, got)
}

func TestBuild_SampleDocument(t *testing.T) {
	g, err := tokenize.BuildString("A B C D A C D B")
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c", "d"}, g.Words())
	assert.Equal(t, int64(2), g.Weight("c", "d"))
	assert.Equal(t, 6, g.EdgeCount())
}

func TestBuild_PunctuationAndLinesJoinPairs(t *testing.T) {
	g, err := tokenize.BuildString("To explore strange new worlds,\nTo seek out new life.")
	require.NoError(t, err)

	assert.True(t, g.HasEdge("worlds", "to"), "pairs span line breaks and punctuation")
	assert.Equal(t, int64(2), g.Weight("to", "explore")+g.Weight("to", "seek"))
	assert.Equal(t, []string{"worlds", "life"}, []string{g.Neighbors("new")[0].Word, g.Neighbors("new")[1].Word})
}

func TestBuild_SingleWordIsAVertex(t *testing.T) {
	g, err := tokenize.BuildString("...Hello!")
	require.NoError(t, err)

	assert.Equal(t, 1, g.Len())
	assert.Equal(t, 0, g.EdgeCount())
}

func TestBuild_Empty(t *testing.T) {
	g, err := tokenize.BuildString("1234 ?!")
	require.NoError(t, err)
	assert.Equal(t, 0, g.Len())
}

func TestBuild_ReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := tokenize.Build(iotest.ErrReader(boom))
	require.ErrorIs(t, err, boom)
}

func TestBuildFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("the quick brown fox"), 0o644))

	g, err := tokenize.BuildFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Len())

	_, err = tokenize.BuildFile(filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
