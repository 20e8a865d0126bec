package core_test

import (
	"fmt"

	"github.com/katalvlaran/textgraph/core"
)

// ExampleGraph builds a graph from adjacent word pairs and inspects it.
func ExampleGraph() {
	g := core.NewGraph()
	words := []string{"To", "be", "or", "not", "to", "be"}
	for i := 0; i+1 < len(words); i++ {
		_, _ = g.AddEdge(words[i], words[i+1])
	}

	fmt.Println("words:", g.Words())
	fmt.Println("to→be weight:", g.Weight("to", "BE"))
	fmt.Println("successors of be:", g.Neighbors("be"))

	// Output:
	// words: [to be or not]
	// to→be weight: 2
	// successors of be: [{or 1}]
}
