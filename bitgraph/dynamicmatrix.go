package bitgraph

import (
	"github.com/PoOnesNerfect/bit-gossip/bitrow"
	"github.com/PoOnesNerfect/bit-gossip/edgematrix"
)

// atomicSnapshotMatrix adapts *edgematrix.AtomicEdgeMatrix to the matrix[T]
// interface with T = *bitrow.Row: reads take a point-in-time copy of the
// requested atomic row (safe to hand to the single-threaded per-node scratch
// computation), and writes go straight through to the atomic fetch-or.
type atomicSnapshotMatrix struct {
	m *edgematrix.AtomicEdgeMatrix
}

func (a atomicSnapshotMatrix) RowFor(edgeID, fromNode int) (*bitrow.Row, error) {
	return a.m.RowSnapshot(edgeID, fromNode)
}

func (a atomicSnapshotMatrix) OrInto(edgeID, fromNode int, src *bitrow.Row) (bool, error) {
	return a.m.OrInto(edgeID, fromNode, src)
}

func (a atomicSnapshotMatrix) NewRow() *bitrow.Row {
	return a.m.NewRow()
}
