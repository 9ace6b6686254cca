// File: methods_adjacent.go
// Role: Internal adjacency and vertex-index maintenance shared by vertex and
//       edge methods. Callers validate presence before calling in.
// Invariants kept here:
//   - order[pos[v]] == v for every vertex; len(order) == len(adj).
//   - Undirected: a non-loop entry adj[v][w] always has its mirror adj[w][v].

package core

import (
	"cmp"
	"fmt"
	"sort"
)

// vertexPair is an ordered (from, to) key for edge bookkeeping.
type vertexPair[V comparable] struct{ a, b V }

// insertVertex registers v in the adjacency map and the dense index.
// The caller guarantees v is absent.
func (g *Graph[V, W]) insertVertex(v V) {
	g.adj[v] = make(map[V]W)
	g.pos[v] = len(g.order)
	g.order = append(g.order, v)
}

// dropVertex removes v from the adjacency map and the dense index by
// swapping the last index slot into v's position. Edges must already be gone.
func (g *Graph[V, W]) dropVertex(v V) {
	i := g.pos[v]
	last := len(g.order) - 1
	if i != last {
		moved := g.order[last]
		g.order[i] = moved
		g.pos[moved] = i
	}
	var zero V
	g.order[last] = zero // release the identity for GC
	g.order = g.order[:last]
	delete(g.pos, v)
	delete(g.adj, v)
}

// unlinkEdge deletes adj[v][w] and, for undirected graphs, its mirror.
// The mirror delete is guarded: w must still be a vertex holding v.
func (g *Graph[V, W]) unlinkEdge(v, w V) {
	delete(g.adj[v], w)
	if g.directed {
		return
	}
	if nbrs, ok := g.adj[w]; ok {
		if _, ok = nbrs[v]; ok {
			delete(nbrs, v)
		}
	}
}

// missingVertex wraps ErrVertexNotFound with the offending identity.
func missingVertex[V comparable](v V) error {
	return fmt.Errorf("%w: %v", ErrVertexNotFound, v)
}

// missingEdge wraps ErrEdgeNotFound with the queried pair.
func missingEdge[V comparable](v, w V) error {
	return fmt.Errorf("%w: (%v, %v)", ErrEdgeNotFound, v, w)
}

// sortedByLabel returns a copy of ids in a stable display order.
// Built-in integer, float and string identities sort by value; any other
// type sorts by its fmt form. Ties keep their relative input order.
func sortedByLabel[V comparable](ids []V) []V {
	out := make([]V, len(ids))
	copy(out, ids)
	if len(out) < 2 {
		return out
	}
	if _, ok := compareOrdered(out[0], out[0]); ok {
		sort.SliceStable(out, func(i, j int) bool {
			c, _ := compareOrdered(out[i], out[j])
			return c < 0
		})
		return out
	}

	labels := make(map[V]string, len(out))
	var id V
	for _, id = range out {
		labels[id] = fmt.Sprint(id)
	}
	sort.SliceStable(out, func(i, j int) bool { return labels[out[i]] < labels[out[j]] })

	return out
}

// compareOrdered compares a and b by value when V is a built-in ordered
// kind; ok is false for every other type (named types included).
func compareOrdered[V comparable](a, b V) (int, bool) {
	switch x := any(a).(type) {
	case int:
		return cmp.Compare(x, any(b).(int)), true
	case int8:
		return cmp.Compare(x, any(b).(int8)), true
	case int16:
		return cmp.Compare(x, any(b).(int16)), true
	case int32:
		return cmp.Compare(x, any(b).(int32)), true
	case int64:
		return cmp.Compare(x, any(b).(int64)), true
	case uint:
		return cmp.Compare(x, any(b).(uint)), true
	case uint8:
		return cmp.Compare(x, any(b).(uint8)), true
	case uint16:
		return cmp.Compare(x, any(b).(uint16)), true
	case uint32:
		return cmp.Compare(x, any(b).(uint32)), true
	case uint64:
		return cmp.Compare(x, any(b).(uint64)), true
	case uintptr:
		return cmp.Compare(x, any(b).(uintptr)), true
	case float32:
		return cmp.Compare(x, any(b).(float32)), true
	case float64:
		return cmp.Compare(x, any(b).(float64)), true
	case string:
		return cmp.Compare(x, any(b).(string)), true
	}

	return 0, false
}

// neighborKeys snapshots the keys of one neighbour map.
func neighborKeys[V comparable, W any](nbrs map[V]W) []V {
	out := make([]V, 0, len(nbrs))
	var w V
	for w = range nbrs {
		out = append(out, w)
	}

	return out
}
