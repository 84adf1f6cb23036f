package bitgraph

import (
	"fmt"

	"github.com/PoOnesNerfect/bit-gossip/bitrow"
)

// atomicFixedMatrix64 is the concurrent-build counterpart of
// fixedMatrix[uint64]: same two-rows-per-edge layout, backed by
// bitrow.AtomicFixed64 so that workers processing different nodes can write
// to the same edge's rows concurrently, mirroring
// edgematrix.AtomicEdgeMatrix one tier down. A single atomic word already
// covers every n<=64 case, so the parallel path has no need for
// fixedMatrix's uint16/uint32 split — that split exists purely to save
// memory on the sequential path.
type atomicFixedMatrix64 struct {
	n        int
	lo, hi   []int
	fwd, rev []*bitrow.AtomicFixed64
}

// fromFixedMatrix64 seeds an atomicFixedMatrix64 from an already-seeded,
// unbuilt fixedMatrix[uint64], thawing every row into its atomic
// counterpart.
func fromFixedMatrix64(m *fixedMatrix[uint64]) *atomicFixedMatrix64 {
	out := &atomicFixedMatrix64{
		n:   m.n,
		lo:  append([]int(nil), m.lo...),
		hi:  append([]int(nil), m.hi...),
		fwd: make([]*bitrow.AtomicFixed64, len(m.fwd)),
		rev: make([]*bitrow.AtomicFixed64, len(m.rev)),
	}
	for i := range m.fwd {
		out.fwd[i] = bitrow.ThawFixed64(m.fwd[i])
		out.rev[i] = bitrow.ThawFixed64(m.rev[i])
	}
	return out
}

func (m *atomicFixedMatrix64) rowFor(edgeID, fromNode int) (*bitrow.AtomicFixed64, error) {
	switch fromNode {
	case m.lo[edgeID]:
		return m.fwd[edgeID], nil
	case m.hi[edgeID]:
		return m.rev[edgeID], nil
	default:
		return nil, fmt.Errorf("%w: edge %d, node %d", ErrInvalidArgument, edgeID, fromNode)
	}
}

// RowFor returns a point-in-time Fixed[uint64] snapshot of edgeID's row
// oriented outgoing from fromNode, safe to hand to the single-threaded
// per-node scratch computation.
func (m *atomicFixedMatrix64) RowFor(edgeID, fromNode int) (*bitrow.Fixed[uint64], error) {
	row, err := m.rowFor(edgeID, fromNode)
	if err != nil {
		return nil, err
	}
	return row.Freeze(), nil
}

// OrInto ORs src into the atomic row of edgeID oriented outgoing from
// fromNode. Safe to call concurrently from different goroutines, including
// the two writing to the same edge's opposite-endpoint rows, because the
// update is a monotone fetch-or.
func (m *atomicFixedMatrix64) OrInto(edgeID, fromNode int, src *bitrow.Fixed[uint64]) (bool, error) {
	row, err := m.rowFor(edgeID, fromNode)
	if err != nil {
		return false, err
	}
	return row.Or(src), nil
}

// NewRow returns a zero-valued scratch row of this matrix's declared width.
func (m *atomicFixedMatrix64) NewRow() *bitrow.Fixed[uint64] {
	return bitrow.NewFixed[uint64](m.n)
}

// Freeze converts every atomic row into a plain Fixed[uint64] and returns
// the resulting fixedMatrix[uint64], for handoff to the read-only query
// phase.
func (m *atomicFixedMatrix64) Freeze() *fixedMatrix[uint64] {
	out := &fixedMatrix[uint64]{
		n:   m.n,
		lo:  append([]int(nil), m.lo...),
		hi:  append([]int(nil), m.hi...),
		fwd: make([]*bitrow.Fixed[uint64], len(m.fwd)),
		rev: make([]*bitrow.Fixed[uint64], len(m.rev)),
	}
	for i := range m.fwd {
		out.fwd[i] = m.fwd[i].Freeze()
		out.rev[i] = m.rev[i].Freeze()
	}
	return out
}

// atomicFixed128Matrix is the concurrent-build counterpart of
// fixed128Matrix, backed by bitrow.AtomicFixed128.
type atomicFixed128Matrix struct {
	n        int
	lo, hi   []int
	fwd, rev []*bitrow.AtomicFixed128
}

// fromFixed128Matrix seeds an atomicFixed128Matrix from an already-seeded,
// unbuilt fixed128Matrix, thawing every row into its atomic counterpart.
func fromFixed128Matrix(m *fixed128Matrix) *atomicFixed128Matrix {
	out := &atomicFixed128Matrix{
		n:   m.n,
		lo:  append([]int(nil), m.lo...),
		hi:  append([]int(nil), m.hi...),
		fwd: make([]*bitrow.AtomicFixed128, len(m.fwd)),
		rev: make([]*bitrow.AtomicFixed128, len(m.rev)),
	}
	for i := range m.fwd {
		out.fwd[i] = bitrow.ThawFixed128(m.fwd[i])
		out.rev[i] = bitrow.ThawFixed128(m.rev[i])
	}
	return out
}

func (m *atomicFixed128Matrix) rowFor(edgeID, fromNode int) (*bitrow.AtomicFixed128, error) {
	switch fromNode {
	case m.lo[edgeID]:
		return m.fwd[edgeID], nil
	case m.hi[edgeID]:
		return m.rev[edgeID], nil
	default:
		return nil, fmt.Errorf("%w: edge %d, node %d", ErrInvalidArgument, edgeID, fromNode)
	}
}

// RowFor returns a point-in-time Fixed128 snapshot of edgeID's row oriented
// outgoing from fromNode.
func (m *atomicFixed128Matrix) RowFor(edgeID, fromNode int) (*bitrow.Fixed128, error) {
	row, err := m.rowFor(edgeID, fromNode)
	if err != nil {
		return nil, err
	}
	return row.Freeze(), nil
}

// OrInto ORs src into the atomic row of edgeID oriented outgoing from
// fromNode.
func (m *atomicFixed128Matrix) OrInto(edgeID, fromNode int, src *bitrow.Fixed128) (bool, error) {
	row, err := m.rowFor(edgeID, fromNode)
	if err != nil {
		return false, err
	}
	return row.Or(src), nil
}

// NewRow returns a zero-valued scratch row of this matrix's declared width.
func (m *atomicFixed128Matrix) NewRow() *bitrow.Fixed128 {
	return bitrow.NewFixed128(m.n)
}

// Freeze converts every atomic row into a plain Fixed128 and returns the
// resulting fixed128Matrix, for handoff to the read-only query phase.
func (m *atomicFixed128Matrix) Freeze() *fixed128Matrix {
	out := &fixed128Matrix{
		n:   m.n,
		lo:  append([]int(nil), m.lo...),
		hi:  append([]int(nil), m.hi...),
		fwd: make([]*bitrow.Fixed128, len(m.fwd)),
		rev: make([]*bitrow.Fixed128, len(m.rev)),
	}
	for i := range m.fwd {
		out.fwd[i] = m.fwd[i].Freeze()
		out.rev[i] = m.rev[i].Freeze()
	}
	return out
}
