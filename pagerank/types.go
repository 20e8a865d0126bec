package pagerank

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors returned by the pagerank package.
var (
	// ErrEmptyGraph indicates that the graph is nil or has no words.
	ErrEmptyGraph = errors.New("pagerank: graph is empty")

	// ErrBadDamping indicates a damping factor outside [0, 1].
	ErrBadDamping = errors.New("pagerank: damping must be in [0, 1]")

	// ErrBadIterations indicates a non-positive iteration count.
	ErrBadIterations = errors.New("pagerank: iterations must be positive")

	// ErrBadTolerance indicates a negative normalization tolerance.
	ErrBadTolerance = errors.New("pagerank: tolerance must be non-negative")
)

// Defaults for a run.
const (
	// DefaultDamping is the probability of following an edge rather than jumping.
	DefaultDamping = 0.85

	// DefaultIterations is the fixed number of power iterations.
	DefaultIterations = 500

	// DefaultTolerance bounds |Σ r − 1| before scores are renormalized.
	DefaultTolerance = 0.001
)

// NotFound is the score Score reports for a word that is not in the graph.
const NotFound = -1.0

// Options configures a PageRank run.
type Options struct {
	Damping    float64 // in [0, 1]
	Iterations int     // > 0
	Tolerance  float64 // ≥ 0
}

// Option represents a functional option for configuring PageRank.
type Option func(*Options)

// DefaultOptions returns the standard configuration: 0.85, 500, 0.001.
func DefaultOptions() Options {
	return Options{
		Damping:    DefaultDamping,
		Iterations: DefaultIterations,
		Tolerance:  DefaultTolerance,
	}
}

// WithDamping sets the damping factor. Values outside [0, 1] panic with ErrBadDamping.
func WithDamping(d float64) Option {
	return func(o *Options) {
		if d < 0 || d > 1 {
			panic(ErrBadDamping.Error())
		}
		o.Damping = d
	}
}

// WithIterations sets the iteration count. Values < 1 panic with ErrBadIterations.
func WithIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			panic(ErrBadIterations.Error())
		}
		o.Iterations = n
	}
}

// WithTolerance sets the renormalization tolerance. Negative values panic with ErrBadTolerance.
func WithTolerance(t float64) Option {
	return func(o *Options) {
		if t < 0 {
			panic(ErrBadTolerance.Error())
		}
		o.Tolerance = t
	}
}

// Result is the outcome of Compute.
type Result struct {
	// Scores maps every word to its final score.
	Scores map[string]float64

	// Iterations is the number of power iterations performed.
	Iterations int

	// Sum is Σ r after the last iteration, before any renormalization.
	Sum float64

	// Normalized reports whether scores were divided by Sum.
	Normalized bool
}

// Ranked is one word and its score.
type Ranked struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
}

// String renders the entry as "word: 0.1234".
func (r Ranked) String() string {
	return fmt.Sprintf("%s: %.4f", r.Word, r.Score)
}

// Ranked lists all words by descending score; equal scores are ordered by word.
func (res *Result) Ranked() []Ranked {
	out := make([]Ranked, 0, len(res.Scores))
	for w, s := range res.Scores {
		out = append(out, Ranked{Word: w, Score: s})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Word < out[j].Word
	})

	return out
}

// Describe renders a single-word query the way users see it:
//
//	PageRank value for 'the': 0.1234
//	Word 'zebra' not found in the graph.
//
// Any negative score is treated as NotFound.
func Describe(word string, score float64) string {
	if score < 0 {
		return "Word '" + word + "' not found in the graph."
	}

	return fmt.Sprintf("PageRank value for '%s': %.4f", word, score)
}
