package edgematrix

import (
	"fmt"

	"github.com/PoOnesNerfect/bit-gossip/bitrow"
)

// EdgeMatrix is the dynamic-width bit-matrix store: for each undirected edge
// {a,b} with a<b, one row oriented a→b and one oriented b→a, each of width N
// (the node/destination count).
type EdgeMatrix struct {
	n        int
	lo, hi   []int // per edge, canonical endpoints (lo<hi)
	fwd, rev []*bitrow.Row
}

// New returns an EdgeMatrix with no edges yet, declared for n destinations.
func New(n int) *EdgeMatrix {
	return &EdgeMatrix{n: n}
}

// N returns the destination-bit width (== node count).
func (m *EdgeMatrix) N() int { return m.n }

// M returns the number of edges currently stored.
func (m *EdgeMatrix) M() int { return len(m.lo) }

// AddEdge appends a new edge {a,b} (the endpoints are swapped if a>b, so the
// stored pair is always lo<hi) and seeds it per the initial matrix rule: the row oriented away from a
// gets bit b set (the edge is trivially a shortest path from a to b), and
// symmetrically the row oriented away from b gets bit a set. Returns the new
// edge's id.
func (m *EdgeMatrix) AddEdge(a, b int) int {
	if a > b {
		a, b = b, a
	}
	id := len(m.lo)
	m.lo = append(m.lo, a)
	m.hi = append(m.hi, b)
	fwd := bitrow.NewRow(m.n)
	fwd.Set(b)
	rev := bitrow.NewRow(m.n)
	rev.Set(a)
	m.fwd = append(m.fwd, fwd)
	m.rev = append(m.rev, rev)
	return id
}

// Endpoints returns the canonical (lo, hi) pair for edge id.
func (m *EdgeMatrix) Endpoints(edgeID int) (lo, hi int) {
	return m.lo[edgeID], m.hi[edgeID]
}

// Other returns the neighbor of fromNode across edgeID.
func (m *EdgeMatrix) Other(edgeID, fromNode int) (int, error) {
	lo, hi := m.lo[edgeID], m.hi[edgeID]
	switch fromNode {
	case lo:
		return hi, nil
	case hi:
		return lo, nil
	default:
		return 0, fmt.Errorf("%w: edge %d, node %d", ErrNotIncident, edgeID, fromNode)
	}
}

// RowFor returns the row of edgeID oriented outgoing from fromNode.
func (m *EdgeMatrix) RowFor(edgeID, fromNode int) (*bitrow.Row, error) {
	if edgeID < 0 || edgeID >= len(m.lo) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEdge, edgeID)
	}
	switch fromNode {
	case m.lo[edgeID]:
		return m.fwd[edgeID], nil
	case m.hi[edgeID]:
		return m.rev[edgeID], nil
	default:
		return nil, fmt.Errorf("%w: edge %d, node %d", ErrNotIncident, edgeID, fromNode)
	}
}

// OrInto ORs src into the row of edgeID oriented outgoing from fromNode,
// reporting whether any bit changed. Used by the sequential gossip engine.
func (m *EdgeMatrix) OrInto(edgeID, fromNode int, src *bitrow.Row) (bool, error) {
	row, err := m.RowFor(edgeID, fromNode)
	if err != nil {
		return false, err
	}
	return row.Or(src), nil
}

// NewRow returns a zero-valued scratch row of this matrix's declared width,
// used by the gossip engine for temporary per-node computation.
func (m *EdgeMatrix) NewRow() *bitrow.Row {
	return bitrow.NewRow(m.n)
}

// Get reports the bit for dest in the row of edgeID oriented outgoing from
// fromNode.
func (m *EdgeMatrix) Get(edgeID, fromNode, dest int) (bool, error) {
	row, err := m.RowFor(edgeID, fromNode)
	if err != nil {
		return false, err
	}
	return row.Get(dest), nil
}
