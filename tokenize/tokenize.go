// Package tokenize turns raw text into the ordered word stream the graph is
// built from, and builds core.Graph values from documents.
//
// Contract:
//
//   - A word is a maximal run of ASCII letters [A-Za-z].
//   - Everything else (digits, punctuation, whitespace, line breaks, non-ASCII
//     letters) is a separator and is dropped.
//   - Case is preserved; case-folding is the graph's job.
package tokenize

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/textgraph/core"
)

// maxWordLen bounds a single token; longer letter runs fail the scan with
// bufio.ErrTooLong rather than growing the buffer without limit.
const maxWordLen = 1 << 20

func isLetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// ScanWords is a bufio.SplitFunc yielding each run of ASCII letters.
func ScanWords(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && !isLetter(data[start]) {
		start++
	}
	for i := start; i < len(data); i++ {
		if !isLetter(data[i]) {
			return i + 1, data[start:i], nil
		}
	}
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}

	// Request more data; keep the partial word.
	return start, nil, nil
}

// newScanner wraps r in a word scanner.
func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxWordLen)
	sc.Split(ScanWords)
	return sc
}

// Words returns the words of text in order, with their original case.
func Words(text string) []string {
	var out []string
	sc := newScanner(strings.NewReader(text))
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out
}

// Build streams r through the tokenizer and returns the resulting graph:
// every word becomes a vertex, every adjacent pair an edge observation.
// Only read errors are returned.
func Build(r io.Reader) (*core.Graph, error) {
	g := core.NewGraph()
	sc := newScanner(r)

	prev := ""
	for sc.Scan() {
		word := sc.Text()
		if prev == "" {
			// A lone word is still a vertex, even without a successor.
			if err := g.AddWord(word); err != nil {
				return nil, err
			}
		} else if _, err := g.AddEdge(prev, word); err != nil {
			return nil, err
		}
		prev = word
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tokenize: read input: %w", err)
	}

	return g, nil
}

// BuildString is Build over an in-memory document. It only fails on a letter
// run longer than the scanner limit.
func BuildString(text string) (*core.Graph, error) {
	return Build(strings.NewReader(text))
}

// BuildFile opens path and builds its graph.
func BuildFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tokenize: open %s: %w", path, err)
	}
	defer f.Close()

	return Build(f)
}
