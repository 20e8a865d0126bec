// SPDX-License-Identifier: MIT
//
// File: methods_words.go
// Role: Word (vertex) lifecycle and queries.
//
// Determinism:
//   - Words() returns words in index (first-insertion) order.
//   - SortedWords() returns words sorted lexicographically ascending.
//
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "sort"

// AddWord inserts a word if missing (idempotent).
//
// Implementation:
//   - Stage 1: Case-fold and reject the empty word (ErrEmptyWord).
//   - Stage 2: Under the write lock, assign the next free index if the word is new.
//
// Complexity:
//   - Time O(len(word)) amortized, Space O(1) amortized.
func (g *Graph) AddWord(word string) error {
	word = Normalize(word)
	if word == "" {
		return ErrEmptyWord
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureWord(word)

	return nil
}

// ensureWord returns the index of a normalized, non-empty word, allocating one
// if needed. Caller must hold the write lock.
func (g *Graph) ensureWord(word string) int {
	if i, ok := g.index[word]; ok {
		return i
	}
	i := len(g.words)
	g.index[word] = i
	g.words = append(g.words, word)
	g.arcs = append(g.arcs, nil)
	g.arcPos = append(g.arcPos, nil)

	return i
}

// HasWord reports whether the word is in the graph, ignoring case.
// The empty word is never present.
func (g *Graph) HasWord(word string) bool {
	_, ok := g.Index(word)
	return ok
}

// Index returns the stable integer index assigned to word, ignoring case.
func (g *Graph) Index(word string) (int, bool) {
	word = Normalize(word)
	g.mu.RLock()
	defer g.mu.RUnlock()
	i, ok := g.index[word]

	return i, ok
}

// WordAt returns the lowercase word stored at index i.
// It panics if i is out of range, like a slice index would.
func (g *Graph) WordAt(i int) string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.words[i]
}

// Words returns a copy of all words in index order.
// Complexity: O(V)
func (g *Graph) Words() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]string, len(g.words))
	copy(out, g.words)

	return out
}

// SortedWords returns all words sorted ascending, for presentation.
// Complexity: O(V·log V)
func (g *Graph) SortedWords() []string {
	out := g.Words()
	sort.Strings(out)

	return out
}

// Len returns the number of distinct words.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.words)
}
