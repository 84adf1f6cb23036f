package edgematrix

import (
	"fmt"

	"github.com/PoOnesNerfect/bit-gossip/bitrow"
)

// AtomicEdgeMatrix is the concurrent-build counterpart of EdgeMatrix: the
// same two-rows-per-edge layout, backed by bitrow.AtomicRow so that workers
// processing different nodes can write to the same edge's rows concurrently.
type AtomicEdgeMatrix struct {
	n        int
	lo, hi   []int
	fwd, rev []*bitrow.AtomicRow
}

// FromEdgeMatrix seeds an AtomicEdgeMatrix from an already-seeded, unbuilt
// EdgeMatrix, thawing every row into its atomic counterpart.
func FromEdgeMatrix(m *EdgeMatrix) *AtomicEdgeMatrix {
	out := &AtomicEdgeMatrix{
		n:   m.n,
		lo:  append([]int(nil), m.lo...),
		hi:  append([]int(nil), m.hi...),
		fwd: make([]*bitrow.AtomicRow, len(m.fwd)),
		rev: make([]*bitrow.AtomicRow, len(m.rev)),
	}
	for i := range m.fwd {
		out.fwd[i] = bitrow.Thaw(m.fwd[i])
		out.rev[i] = bitrow.Thaw(m.rev[i])
	}
	return out
}

// N returns the destination-bit width.
func (m *AtomicEdgeMatrix) N() int { return m.n }

// M returns the number of edges.
func (m *AtomicEdgeMatrix) M() int { return len(m.lo) }

// Endpoints returns the canonical (lo, hi) pair for edge id.
func (m *AtomicEdgeMatrix) Endpoints(edgeID int) (lo, hi int) {
	return m.lo[edgeID], m.hi[edgeID]
}

// RowFor returns the atomic row of edgeID oriented outgoing from fromNode.
func (m *AtomicEdgeMatrix) RowFor(edgeID, fromNode int) (*bitrow.AtomicRow, error) {
	switch fromNode {
	case m.lo[edgeID]:
		return m.fwd[edgeID], nil
	case m.hi[edgeID]:
		return m.rev[edgeID], nil
	default:
		return nil, fmt.Errorf("%w: edge %d, node %d", ErrNotIncident, edgeID, fromNode)
	}
}

// RowSnapshot returns a plain-Row copy of the current contents of the atomic
// row of edgeID oriented outgoing from fromNode, for read-only per-iteration
// use by the parallel gossip engine.
func (m *AtomicEdgeMatrix) RowSnapshot(edgeID, fromNode int) (*bitrow.Row, error) {
	row, err := m.RowFor(edgeID, fromNode)
	if err != nil {
		return nil, err
	}
	return row.Freeze(), nil
}

// NewRow returns a zero-valued scratch row of this matrix's declared width.
func (m *AtomicEdgeMatrix) NewRow() *bitrow.Row {
	return bitrow.NewRow(m.n)
}

// OrInto ORs a plain Row of newly-discovered bits into the atomic row of
// edgeID oriented outgoing from fromNode. Safe to call concurrently from
// different goroutines targeting different edges, and safe (if racy in
// which writer "wins" a given word) when two goroutines target the same
// edge from opposite endpoints, because the update is a monotone fetch-or.
func (m *AtomicEdgeMatrix) OrInto(edgeID, fromNode int, src *bitrow.Row) (bool, error) {
	row, err := m.RowFor(edgeID, fromNode)
	if err != nil {
		return false, err
	}
	return row.Or(src), nil
}

// Freeze converts every atomic row into a plain Row and returns the
// resulting EdgeMatrix, for handoff to the read-only query phase.
func (m *AtomicEdgeMatrix) Freeze() *EdgeMatrix {
	out := &EdgeMatrix{
		n:   m.n,
		lo:  append([]int(nil), m.lo...),
		hi:  append([]int(nil), m.hi...),
		fwd: make([]*bitrow.Row, len(m.fwd)),
		rev: make([]*bitrow.Row, len(m.rev)),
	}
	for i := range m.fwd {
		out.fwd[i] = m.fwd[i].Freeze()
		out.rev[i] = m.rev[i].Freeze()
	}
	return out
}
