package dot_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/textgraph/core"
	"github.com/katalvlaran/textgraph/dot"
	"github.com/katalvlaran/textgraph/tokenize"
)

func build(t *testing.T, text string) *core.Graph {
	t.Helper()
	g, err := tokenize.BuildString(text)
	require.NoError(t, err)

	return g
}

func TestWrite_ToBe(t *testing.T) {
	g := build(t, "To be or not to be")
	want := `digraph TextGraph {
  graph [fontname="Arial", rankdir=LR];
  node [fontname="Arial", shape=ellipse];
  edge [fontname="Arial"];

  "to";
  "be";
  "or";
  "not";

  "to" -> "be" [label="2", weight=2, penwidth=1.30];
  "be" -> "or" [label="1", weight=1, penwidth=1.00];
  "or" -> "not" [label="1", weight=1, penwidth=1.00];
  "not" -> "to" [label="1", weight=1, penwidth=1.00];
}
`
	assert.Equal(t, want, dot.String(g, dot.Options{}))
}

func TestWrite_CustomHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, dot.Write(&buf, core.NewGraph(), dot.Options{Name: "G", RankDir: "TB", FontName: "Mono"}))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "digraph G {\n"))
	assert.Contains(t, out, `graph [fontname="Mono", rankdir=TB];`)
	assert.True(t, strings.HasSuffix(out, "}\n"))
}

func TestWrite_EscapesQuotes(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge(`say"hi`, `back\slash`)
	require.NoError(t, err)

	out := dot.String(g, dot.DefaultOptions())
	assert.Contains(t, out, `"say\"hi" -> "back\\slash"`)
}

func TestPenWidth(t *testing.T) {
	assert.Equal(t, 1.0, dot.PenWidth(1))
	assert.Equal(t, 1.0, dot.PenWidth(0))
	assert.InDelta(t, 2.0, dot.PenWidth(10), 1e-12)
	assert.InDelta(t, 3.0, dot.PenWidth(100), 1e-12)
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"dot", "EDGES", " svg ", "png", "Pdf"} {
		_, err := dot.ParseFormat(s)
		require.NoError(t, err, s)
	}
	_, err := dot.ParseFormat("gif")
	require.ErrorIs(t, err, dot.ErrUnsupportedFormat)

	f, _ := dot.ParseFormat("PNG")
	assert.Equal(t, dot.FormatPNG, f)
	assert.True(t, f.NeedsGraphviz())
	assert.False(t, dot.FormatDOT.NeedsGraphviz())
}

func TestRender_Errors(t *testing.T) {
	ctx := context.Background()
	var out bytes.Buffer

	err := dot.Render(ctx, strings.NewReader("digraph G {}"), &out, dot.FormatDOT)
	require.ErrorIs(t, err, dot.ErrUnsupportedFormat)

	r := dot.Renderer{Binary: "textgraph-no-such-graphviz-binary"}
	assert.False(t, r.Available())
	err = r.Render(ctx, strings.NewReader("digraph G {}"), &out, dot.FormatSVG)
	require.ErrorIs(t, err, dot.ErrGraphvizNotFound)
}

func TestRender_SVG(t *testing.T) {
	r := dot.Renderer{}
	if !r.Available() {
		t.Skip("graphviz not installed")
	}
	var out bytes.Buffer
	err := r.Export(context.Background(), build(t, "a b c"), &out, dot.FormatSVG, dot.DefaultOptions())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "<svg")
}

func TestSaveFile(t *testing.T) {
	g := build(t, "a b a b")
	dir := filepath.Join(t.TempDir(), "nested", "out")
	r := dot.Renderer{}

	dotPath := filepath.Join(dir, "graph.dot")
	require.NoError(t, r.SaveFile(context.Background(), g, dotPath, dot.FormatDOT, dot.DefaultOptions()))
	data, err := os.ReadFile(dotPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"a" -> "b" [label="2", weight=2, penwidth=1.30];`)

	edgePath := filepath.Join(dir, "graph.tsv")
	require.NoError(t, r.SaveFile(context.Background(), g, edgePath, dot.FormatEdges, dot.DefaultOptions()))
	f, err := os.Open(edgePath)
	require.NoError(t, err)
	defer f.Close()
	back, err := core.ReadEdgeList(f)
	require.NoError(t, err)
	assert.Equal(t, int64(2), back.Weight("a", "b"))
	assert.Equal(t, int64(1), back.Weight("b", "a"))
}

func TestSaveFile_NoPartialOnFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.svg")
	r := dot.Renderer{Binary: "textgraph-no-such-graphviz-binary"}
	err := r.SaveFile(context.Background(), build(t, "a b"), path, dot.FormatSVG, dot.DefaultOptions())
	require.ErrorIs(t, err, dot.ErrGraphvizNotFound)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
