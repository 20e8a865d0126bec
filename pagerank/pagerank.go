package pagerank

import (
	"context"
	"log/slog"
	"math"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/textgraph/core"
)

var tracer = otel.Tracer("textgraph.pagerank")

// Compute runs PageRank over every word of g.
//
// Steps:
//  1. Apply options; reject a nil or empty graph (ErrEmptyGraph).
//  2. Cache each word's outgoing weight W(u) and collect dangling words.
//  3. Iterate Options.Iterations times, swapping two rank slices.
//  4. Renormalize when |Σ r − 1| exceeds Options.Tolerance.
//
// The graph is only read.
//
// Complexity: O(k·(V+E)) time, O(V) space.
func Compute(ctx context.Context, g *core.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	if g == nil || g.Len() == 0 {
		return nil, ErrEmptyGraph
	}

	n := g.Len()
	_, span := tracer.Start(ctx, "pagerank.Compute",
		trace.WithAttributes(
			attribute.Int("word_count", n),
			attribute.Int("edge_count", g.EdgeCount()),
			attribute.Float64("damping", cfg.Damping),
			attribute.Int("iterations", cfg.Iterations),
		),
	)
	defer span.End()

	N := float64(n)
	d := cfg.Damping

	// Outgoing weight per word; dangling words have none.
	outW := make([]float64, n)
	dangling := make([]int, 0)
	for u := 0; u < n; u++ {
		outW[u] = float64(g.OutWeight(u))
		if outW[u] == 0 {
			dangling = append(dangling, u)
		}
	}
	span.SetAttributes(attribute.Int("dangling_count", len(dangling)))

	rank := make([]float64, n)
	next := make([]float64, n)
	initial := 1.0 / N
	for u := range rank {
		rank[u] = initial
	}

	base := (1 - d) / N
	var u int
	var a core.Arc
	for iter := 0; iter < cfg.Iterations; iter++ {
		var danglingMass float64
		for _, u = range dangling {
			danglingMass += d * rank[u] / N
		}
		for v := range next {
			next[v] = base + danglingMass
		}
		for u = 0; u < n; u++ {
			if outW[u] == 0 {
				continue
			}
			share := d * rank[u] / outW[u]
			for _, a = range g.Arcs(u) {
				next[a.To] += share * float64(a.Weight)
			}
		}
		rank, next = next, rank
	}

	var sum float64
	for _, r := range rank {
		sum += r
	}
	normalized := math.Abs(sum-1) > cfg.Tolerance
	if normalized && sum > 0 {
		for v := range rank {
			rank[v] /= sum
		}
	}

	words := g.Words()
	scores := make(map[string]float64, n)
	for i, w := range words {
		scores[w] = rank[i]
	}

	slog.Debug("PageRank completed",
		slog.Int("iterations", cfg.Iterations),
		slog.Int("word_count", n),
		slog.Int("dangling_count", len(dangling)),
		slog.Float64("sum", sum),
		slog.Bool("normalized", normalized),
	)
	span.SetAttributes(
		attribute.Float64("sum", sum),
		attribute.Bool("normalized", normalized),
	)

	return &Result{
		Scores:     scores,
		Iterations: cfg.Iterations,
		Sum:        sum,
		Normalized: normalized,
	}, nil
}

// Score returns the PageRank of a single word, case-insensitively, or
// NotFound when g is nil or does not contain the word.
//
// Each call runs a full Compute; use Compute directly to score many words.
func Score(ctx context.Context, g *core.Graph, word string, opts ...Option) float64 {
	if g == nil || !g.HasWord(word) {
		return NotFound
	}
	res, err := Compute(ctx, g, opts...)
	if err != nil {
		return NotFound
	}

	return res.Scores[core.Normalize(word)]
}
