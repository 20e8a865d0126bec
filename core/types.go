// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Arc, Neighbor and Edge types, sentinel errors, the
//       MissingWordsError diagnostic and the NewGraph constructor.

package core

import (
	"errors"
	"strings"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyWord indicates that an empty string was offered as a word.
	ErrEmptyWord = errors.New("core: word is empty")

	// ErrWordNotFound indicates a query referenced a word absent from the graph.
	// Use errors.As with *MissingWordsError to learn which words were missing.
	ErrWordNotFound = errors.New("core: word not found")

	// ErrBadEdgeList indicates a malformed line while reading an edge list.
	ErrBadEdgeList = errors.New("core: malformed edge list")
)

// Arc is one outgoing edge seen from its source index.
type Arc struct {
	// To is the index of the destination word.
	To int

	// Weight is the number of times the pair was observed (≥ 1).
	Weight int64
}

// Neighbor is a successor word paired with the weight of the edge leading to it.
type Neighbor struct {
	Word   string
	Weight int64
}

// Edge is a fully labelled directed edge, used for listing and persistence.
type Edge struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Weight int64  `json:"weight"`
}

// Graph is the word-adjacency graph.
//
// index and words form a bijection between lowercase words and dense indices.
// arcs[i] keeps i's successors in first-insertion order; arcPos[i] maps a
// destination index to its position in arcs[i] so repeated pairs only bump a weight.
type Graph struct {
	mu sync.RWMutex // guards everything below

	index  map[string]int // word → index
	words  []string       // index → word
	arcs   [][]Arc        // index → successors, insertion order
	arcPos []map[int]int  // index → (destination index → position in arcs)

	edgeCount int // number of distinct (from,to) pairs
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		index: make(map[string]int),
	}
}

// Normalize returns the canonical (lowercase) form of a word.
// Every Graph method applies it to its inputs.
func Normalize(word string) string {
	return strings.ToLower(word)
}

// MissingWordsError reports which of the queried words are absent from a graph.
// Words are kept lowercase and in argument order; a word queried twice and
// missing twice is listed twice, so the message names exactly what was asked.
type MissingWordsError struct {
	Words []string
}

// Error implements error.
func (e *MissingWordsError) Error() string {
	return "core: " + strings.Join(e.Words, " or ") + " not in graph"
}

// Is lets errors.Is(err, ErrWordNotFound) match a *MissingWordsError.
func (e *MissingWordsError) Is(target error) bool {
	return target == ErrWordNotFound
}

// Message renders the human-readable diagnostic, e.g. "No x or y in the graph!".
func (e *MissingWordsError) Message() string {
	return "No " + strings.Join(e.Words, " or ") + " in the graph!"
}

// CheckWords returns a *MissingWordsError naming every word not present in g,
// or nil when all are present. Inputs are case-folded.
//
// Complexity: O(k) lookups for k words.
func (g *Graph) CheckWords(words ...string) error {
	var missing []string
	var w string
	for _, w = range words {
		w = Normalize(w)
		if !g.HasWord(w) {
			missing = append(missing, w)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	return &MissingWordsError{Words: missing}
}
