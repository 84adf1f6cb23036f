package bitgraph

import (
	"fmt"

	"github.com/PoOnesNerfect/bit-gossip/bitrow"
	"golang.org/x/exp/constraints"
)

// fixedMatrix is the fixed-single-word edge-row store for node counts that
// fit in one machine word (16, 32 or 64 bits), generic over the backing
// unsigned type. It mirrors edgematrix.EdgeMatrix's two-rows-per-edge layout
// and seeding rule but stores bitrow.Fixed[W] rows instead of bitrow.Row,
// avoiding the word-array indirection for small graphs.
type fixedMatrix[W constraints.Unsigned] struct {
	n        int
	lo, hi   []int
	fwd, rev []*bitrow.Fixed[W]
}

func newFixedMatrix[W constraints.Unsigned](n int) *fixedMatrix[W] {
	return &fixedMatrix[W]{n: n}
}

func (m *fixedMatrix[W]) addEdge(a, b int) int {
	if a > b {
		a, b = b, a
	}
	id := len(m.lo)
	m.lo = append(m.lo, a)
	m.hi = append(m.hi, b)
	fwd := bitrow.NewFixed[W](m.n)
	fwd.Set(b)
	rev := bitrow.NewFixed[W](m.n)
	rev.Set(a)
	m.fwd = append(m.fwd, fwd)
	m.rev = append(m.rev, rev)
	return id
}

func (m *fixedMatrix[W]) M() int { return len(m.lo) }

func (m *fixedMatrix[W]) Endpoints(edgeID int) (int, int) { return m.lo[edgeID], m.hi[edgeID] }

func (m *fixedMatrix[W]) Other(edgeID, fromNode int) (int, error) {
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

func (m *fixedMatrix[W]) RowFor(edgeID, fromNode int) (*bitrow.Fixed[W], error) {
	switch fromNode {
	case m.lo[edgeID]:
		return m.fwd[edgeID], nil
	case m.hi[edgeID]:
		return m.rev[edgeID], nil
	default:
		return nil, fmt.Errorf("%w: edge %d, node %d", ErrInvalidArgument, edgeID, fromNode)
	}
}

func (m *fixedMatrix[W]) OrInto(edgeID, fromNode int, src *bitrow.Fixed[W]) (bool, error) {
	row, err := m.RowFor(edgeID, fromNode)
	if err != nil {
		return false, err
	}
	return row.Or(src), nil
}

func (m *fixedMatrix[W]) NewRow() *bitrow.Fixed[W] {
	return bitrow.NewFixed[W](m.n)
}

func (m *fixedMatrix[W]) Get(edgeID, fromNode, dest int) (bool, error) {
	row, err := m.RowFor(edgeID, fromNode)
	if err != nil {
		return false, err
	}
	return row.Get(dest), nil
}
