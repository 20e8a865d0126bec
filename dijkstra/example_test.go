// Package dijkstra_test provides examples demonstrating shortest-path queries.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/textgraph/dijkstra"
	"github.com/katalvlaran/textgraph/tokenize"
)

// ExampleShortestPath builds the graph of "A B C D A C D B" and asks for a→d.
// The pair c→d is observed twice, so a→c→d costs 1+2 = 3.
func ExampleShortestPath() {
	g, err := tokenize.BuildString("A B C D A C D B")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	p, err := dijkstra.ShortestPath(g, "A", "D")
	fmt.Println(dijkstra.Describe("A", "D", p, err))

	p, err = dijkstra.ShortestPath(g, "A", "X")
	fmt.Println(dijkstra.Describe("A", "X", p, err))
	// Output:
	// Path from a to d: a → c → d
	// Length: 3
	// No x in the graph!
}

// ExampleDijkstra shows the full single-source run and its distance table.
func ExampleDijkstra() {
	g, _ := tokenize.BuildString("to be or not to be")

	res, err := dijkstra.Dijkstra(g, dijkstra.Source("to"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("dist[be]=%d, dist[or]=%d, dist[not]=%d\n", res.Dist["be"], res.Dist["or"], res.Dist["not"])
	// Output: dist[be]=2, dist[or]=3, dist[not]=4
}
