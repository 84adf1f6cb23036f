package bitgraph

import (
	"fmt"

	"github.com/PoOnesNerfect/bit-gossip/bitrow"
)

// fixed128Matrix is the two-word (Fixed128) edge-row store for node counts
// in (64, 128]. Structurally identical to fixedMatrix, kept separate because
// bitrow.Fixed128 is a hand-written type rather than a Fixed[W] instantiation.
type fixed128Matrix struct {
	n        int
	lo, hi   []int
	fwd, rev []*bitrow.Fixed128
}

func newFixed128Matrix(n int) *fixed128Matrix {
	return &fixed128Matrix{n: n}
}

func (m *fixed128Matrix) addEdge(a, b int) int {
	if a > b {
		a, b = b, a
	}
	id := len(m.lo)
	m.lo = append(m.lo, a)
	m.hi = append(m.hi, b)
	fwd := bitrow.NewFixed128(m.n)
	fwd.Set(b)
	rev := bitrow.NewFixed128(m.n)
	rev.Set(a)
	m.fwd = append(m.fwd, fwd)
	m.rev = append(m.rev, rev)
	return id
}

func (m *fixed128Matrix) M() int { return len(m.lo) }

func (m *fixed128Matrix) Endpoints(edgeID int) (int, int) { return m.lo[edgeID], m.hi[edgeID] }

func (m *fixed128Matrix) Other(edgeID, fromNode int) (int, error) {
	lo, hi := m.lo[edgeID], m.hi[edgeID]
	switch fromNode {
	case lo:
		return hi, nil
	case hi:
		return lo, nil
	default:
		return 0, fmt.Errorf("%w: edge %d, node %d", ErrInvalidArgument, edgeID, fromNode)
	}
}

func (m *fixed128Matrix) RowFor(edgeID, fromNode int) (*bitrow.Fixed128, error) {
	switch fromNode {
	case m.lo[edgeID]:
		return m.fwd[edgeID], nil
	case m.hi[edgeID]:
		return m.rev[edgeID], nil
	default:
		return nil, fmt.Errorf("%w: edge %d, node %d", ErrInvalidArgument, edgeID, fromNode)
	}
}

func (m *fixed128Matrix) OrInto(edgeID, fromNode int, src *bitrow.Fixed128) (bool, error) {
	row, err := m.RowFor(edgeID, fromNode)
	if err != nil {
		return false, err
	}
	return row.Or(src), nil
}

func (m *fixed128Matrix) NewRow() *bitrow.Fixed128 {
	return bitrow.NewFixed128(m.n)
}

func (m *fixed128Matrix) Get(edgeID, fromNode, dest int) (bool, error) {
	row, err := m.RowFor(edgeID, fromNode)
	if err != nil {
		return false, err
	}
	return row.Get(dest), nil
}
