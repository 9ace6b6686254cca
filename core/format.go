// File: format.go
// Role: Debug text form of a Graph (fmt.Stringer).

package core

import (
	"fmt"
	"strings"
)

// String renders the graph for debugging:
//
//	Vertices: [A B C]
//	Edges:
//	  (A -> B): 5
//
// Vertices and edges are listed in label order: by value for built-in
// integer, float and string identities (so 2 precedes 10), by fmt form for
// any other type. Directed graphs print every
// stored pair as "(v -> w): weight"; undirected graphs print each edge once
// as "(v <-> w): weight".
func (g *Graph[V, W]) String() string {
	var sb strings.Builder

	sb.WriteString("Vertices: ")
	fmt.Fprint(&sb, sortedByLabel(g.order))
	sb.WriteString("\nEdges:\n")

	arrow := "<->"
	if g.directed {
		arrow = "->"
	}
	g.walkEdges(func(v, w V, weight W) {
		fmt.Fprintf(&sb, "  (%v %s %v): %v\n", v, arrow, w, weight)
	})

	return sb.String()
}
