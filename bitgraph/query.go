package bitgraph

import "fmt"

// NextNode returns the neighbor of u that lies on a shortest path toward v:
// the first neighbor, in adjacency order, whose edge row (viewed from u) has
// bit v set. The second return is false if u==v or u and v are in different
// components.
func (g *Graph) NextNode(u, v int) (int, bool, error) {
	if g == nil {
		return 0, false, ErrNilReceiver
	}
	if err := g.validateNode(u); err != nil {
		return 0, false, err
	}
	if err := g.validateNode(v); err != nil {
		return 0, false, err
	}
	if u == v {
		return 0, false, nil
	}
	for _, e := range g.adj.Of(u) {
		ok, err := g.bm.Get(e.EdgeID, u, v)
		if err != nil {
			return 0, false, err
		}
		if ok {
			return e.Neighbor, true, nil
		}
	}
	return 0, false, nil
}

// NextNodes returns every neighbor of u whose edge row (viewed from u) has
// bit v set, in adjacency order. Empty if u==v or unreachable.
func (g *Graph) NextNodes(u, v int) ([]int, error) {
	if g == nil {
		return nil, ErrNilReceiver
	}
	if err := g.validateNode(u); err != nil {
		return nil, err
	}
	if err := g.validateNode(v); err != nil {
		return nil, err
	}
	if u == v {
		return nil, nil
	}
	var out []int
	for _, e := range g.adj.Of(u) {
		ok, err := g.bm.Get(e.EdgeID, u, v)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, e.Neighbor)
		}
	}
	return out, nil
}

// Path returns the sequence of intermediate nodes from u to v, inclusive of
// v, by repeatedly calling NextNode. Empty if u==v. Returns (nil, false) if
// u and v are in different components.
func (g *Graph) Path(u, v int) ([]int, bool, error) {
	if g == nil {
		return nil, false, ErrNilReceiver
	}
	if err := g.validateNode(u); err != nil {
		return nil, false, err
	}
	if err := g.validateNode(v); err != nil {
		return nil, false, err
	}
	if u == v {
		return nil, true, nil
	}
	var out []int
	cur := u
	for cur != v {
		next, ok, err := g.NextNode(cur, v)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, nil
		}
		out = append(out, next)
		cur = next
	}
	return out, true, nil
}

// AreConnected reports whether u and v lie in the same component: true if
// u==v, or if any outgoing edge from u has v's bit set.
func (g *Graph) AreConnected(u, v int) (bool, error) {
	if g == nil {
		return false, ErrNilReceiver
	}
	if err := g.validateNode(u); err != nil {
		return false, err
	}
	if err := g.validateNode(v); err != nil {
		return false, err
	}
	if u == v {
		return true, nil
	}
	_, ok, err := g.NextNode(u, v)
	return ok, err
}

// N reports the node count of the built graph.
func (g *Graph) N() int {
	if g == nil {
		return 0
	}
	return g.n
}

func (g *Graph) validateNode(v int) error {
	if v < 0 || v >= g.n {
		return fmt.Errorf("%w: node id %d out of range [0,%d)", ErrInvalidArgument, v, g.n)
	}
	return nil
}

// IntoBuilder converts the graph back into a Builder: nodes and edges are
// retained, the populated matrix is discarded. Calling Build again without
// changes reproduces the same edge ids, since enumeration only depends on
// node/neighbor ordering; adding or removing an edge shifts the ids of every
// edge enumerated after it.
func (g *Graph) IntoBuilder() *Builder {
	if g == nil {
		return nil
	}
	adj := make([]map[int]struct{}, g.n)
	for i := range adj {
		adj[i] = make(map[int]struct{})
	}
	for _, e := range g.edges {
		adj[e.lo][e.hi] = struct{}{}
		adj[e.hi][e.lo] = struct{}{}
	}
	return &Builder{n: g.n, adj: adj}
}
