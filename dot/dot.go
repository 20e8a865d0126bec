// Package dot describes a word graph in Graphviz DOT and renders it through
// the external Graphviz "dot" program.
//
// Every word is written once as a node, in index order, and every edge once,
// in Edges() order, with three attributes:
//
//	label    = weight, shown on the arrow
//	weight   = weight, a layout hint pulling heavy pairs closer
//	penwidth = 1 + log10(weight), so a pair seen 10 times is drawn twice as thick
//
// Quotes and backslashes inside words are escaped.
package dot

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/katalvlaran/textgraph/core"
)

// Options controls the DOT header.
type Options struct {
	Name     string // digraph identifier
	RankDir  string // Graphviz rankdir: LR, TB, RL or BT
	FontName string // font for graph, nodes and edges
}

// DefaultOptions returns the layout used by the CLI and HTTP API.
func DefaultOptions() Options {
	return Options{
		Name:     "TextGraph",
		RankDir:  "LR",
		FontName: "Arial",
	}
}

// PenWidth maps an edge weight to a stroke width: 1 for weight ≤ 1,
// 1 + log10(weight) above.
func PenWidth(weight int64) float64 {
	if weight <= 1 {
		return 1
	}

	return 1 + math.Log10(float64(weight))
}

// Quote returns s as a double-quoted DOT ID.
func Quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)

	return `"` + s + `"`
}

// Write emits g as a DOT digraph. Zero-valued fields of opts fall back to
// DefaultOptions.
func Write(w io.Writer, g *core.Graph, opts Options) error {
	def := DefaultOptions()
	if opts.Name == "" {
		opts.Name = def.Name
	}
	if opts.RankDir == "" {
		opts.RankDir = def.RankDir
	}
	if opts.FontName == "" {
		opts.FontName = def.FontName
	}

	bw := bufio.NewWriter(w)
	font := Quote(opts.FontName)
	fmt.Fprintf(bw, "digraph %s {\n", opts.Name)
	fmt.Fprintf(bw, "  graph [fontname=%s, rankdir=%s];\n", font, opts.RankDir)
	fmt.Fprintf(bw, "  node [fontname=%s, shape=ellipse];\n", font)
	fmt.Fprintf(bw, "  edge [fontname=%s];\n\n", font)

	if g != nil {
		for _, word := range g.Words() {
			fmt.Fprintf(bw, "  %s;\n", Quote(word))
		}
		bw.WriteString("\n")
		for _, e := range g.Edges() {
			fmt.Fprintf(bw, "  %s -> %s [label=\"%d\", weight=%d, penwidth=%.2f];\n",
				Quote(e.From), Quote(e.To), e.Weight, e.Weight, PenWidth(e.Weight))
		}
	}
	bw.WriteString("}\n")

	return bw.Flush()
}

// String returns Write's output as a string.
func String(g *core.Graph, opts Options) string {
	var sb strings.Builder
	_ = Write(&sb, g, opts)

	return sb.String()
}
