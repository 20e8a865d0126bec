package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/textgraph/bfs"
	"github.com/katalvlaran/textgraph/tokenize"
)

// ExampleBFS demonstrates BFS layering over the words of a short text.
// Each layer lists the words first reachable in that many steps.
func ExampleBFS() {
	g, _ := tokenize.BuildString("the cat sat on the mat and the cat ran")

	res, err := bfs.BFS(g, "the")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for depth, words := range res.Layers() {
		fmt.Println(depth, words)
	}
	// Output:
	// 0 [the]
	// 1 [cat mat]
	// 2 [sat ran and]
	// 3 [on]
}

// ExampleBFS_maxDepth stops after the direct successors.
func ExampleBFS_maxDepth() {
	g, _ := tokenize.BuildString("the cat sat on the mat and the cat ran")

	words, _ := bfs.Reachable(g, "the", bfs.WithMaxDepth(1))
	fmt.Println(words)
	// Output: [the cat mat]
}
