package pagerank_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/textgraph/pagerank"
	"github.com/katalvlaran/textgraph/tokenize"
)

// ExampleCompute ranks a three-word cycle; every word ends with one third.
func ExampleCompute() {
	g, _ := tokenize.BuildString("a b c a")

	res, err := pagerank.Compute(context.Background(), g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, r := range res.Ranked() {
		fmt.Println(r)
	}
	// Output:
	// a: 0.3333
	// b: 0.3333
	// c: 0.3333
}

// ExampleScore queries one word, then a word the text never contains.
func ExampleScore() {
	g, _ := tokenize.BuildString("a b")
	ctx := context.Background()

	fmt.Println(pagerank.Describe("A", pagerank.Score(ctx, g, "A")))
	fmt.Println(pagerank.Describe("zebra", pagerank.Score(ctx, g, "zebra")))
	// Output:
	// PageRank value for 'A': 0.3509
	// Word 'zebra' not found in the graph.
}
