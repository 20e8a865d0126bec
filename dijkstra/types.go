// Package dijkstra defines core types and configuration options
// for shortest-path queries over a word graph.
//
// Options:
//
//	– Source:      word to start from (required by Dijkstra).
//	– Target:      optional word; the run stops as soon as it is settled.
//	– MaxDistance: optional cap on distances to explore; words beyond it stay unreached.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if no source word was provided.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrNoPath          if the target cannot be reached from the source.
//	– ErrBadMaxDistance  if MaxDistance < 0.
package dijkstra

import (
	"errors"
	"math"
	"strings"
)

// Sentinel errors returned by the dijkstra package.
var (
	// ErrEmptySource indicates that no source word was provided.
	ErrEmptySource = errors.New("dijkstra: source word is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNoPath indicates that the target is unreachable from the source.
	ErrNoPath = errors.New("dijkstra: no path")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Unreachable is the distance reported for words the run never reached.
const Unreachable int64 = math.MaxInt64

// Options configures a Dijkstra run.
//
// Source      – starting word (case-insensitive, must be present in the graph).
// Target      – if non-empty, stop as soon as this word's distance is final.
// MaxDistance – words whose distance would exceed this value are not explored.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
type Options struct {
	Source      string // The word to start from
	Target      string // Optional early-exit word
	MaxDistance int64  // Maximum distance to explore
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting word. Must be provided to Dijkstra.
func Source(word string) Option {
	return func(o *Options) {
		o.Source = word
	}
}

// WithTarget makes the run stop once word is settled. Distances of words not
// yet settled at that moment are upper bounds, not final values.
func WithTarget(word string) Option {
	return func(o *Options) {
		o.Target = word
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Words whose shortest distance would exceed this value are not explored.
// Negative values panic with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct initialized with defaults
// for the given source word.
//
// Defaults:
//   - Source:      <as passed> (validated in Dijkstra).
//   - Target:      "" (settle every reachable word).
//   - MaxDistance: math.MaxInt64 (no distance limit).
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		MaxDistance: math.MaxInt64,
	}
}

// Result holds the outcome of a Dijkstra run.
//
// Dist maps every word to its distance from Source (Unreachable if never
// reached). Prev maps every reached word except Source to its predecessor on
// one shortest path.
type Result struct {
	Source string
	Dist   map[string]int64
	Prev   map[string]string
}

// Path is a shortest path between two words.
type Path struct {
	From   string   // case-folded source word
	To     string   // case-folded target word
	Words  []string // From … To inclusive
	Length int64    // sum of edge weights along Words
}

// Arrow separates words when a Path is printed.
const Arrow = " → "

// String renders the path as shown to users:
//
//	Path from a to d: a → c → d
//	Length: 3
func (p *Path) String() string {
	var sb strings.Builder
	sb.WriteString("Path from ")
	sb.WriteString(p.From)
	sb.WriteString(" to ")
	sb.WriteString(p.To)
	sb.WriteString(": ")
	sb.WriteString(strings.Join(p.Words, Arrow))
	sb.WriteString("\nLength: ")
	sb.WriteString(formatInt(p.Length))

	return sb.String()
}
