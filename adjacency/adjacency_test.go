package adjacency_test

import (
	"testing"

	"github.com/PoOnesNerfect/bit-gossip/adjacency"
	"github.com/stretchr/testify/require"
)

func TestTableAddEdgeBothEndpoints(t *testing.T) {
	tbl := adjacency.NewTable(4)
	tbl.AddEdge(0, 1, 0)
	tbl.AddEdge(1, 2, 1)
	tbl.Sort()

	require.Equal(t, adjacency.List{{Neighbor: 1, EdgeID: 0}}, tbl.Of(0))
	require.Equal(t, adjacency.List{
		{Neighbor: 0, EdgeID: 0},
		{Neighbor: 2, EdgeID: 1},
	}, tbl.Of(1))
	require.Equal(t, 2, tbl.Degree(1))
}

func TestTableSortOrdersByNeighborID(t *testing.T) {
	tbl := adjacency.NewTable(4)
	tbl.AddEdge(0, 3, 0)
	tbl.AddEdge(0, 1, 1)
	tbl.AddEdge(0, 2, 2)
	tbl.Sort()

	got := tbl.Of(0)
	require.Len(t, got, 3)
	require.Equal(t, 1, got[0].Neighbor)
	require.Equal(t, 2, got[1].Neighbor)
	require.Equal(t, 3, got[2].Neighbor)
}

func TestTableRemoveEdge(t *testing.T) {
	tbl := adjacency.NewTable(3)
	tbl.AddEdge(0, 1, 0)
	tbl.AddEdge(1, 2, 1)
	tbl.RemoveEdge(0, 1, 0)

	require.Empty(t, tbl.Of(0))
	require.Len(t, tbl.Of(1), 1)
	require.Equal(t, 2, tbl.Of(1)[0].Neighbor)
}

func TestTableResizeGrowAndShrink(t *testing.T) {
	tbl := adjacency.NewTable(2)
	tbl.AddEdge(0, 1, 0)

	tbl.Resize(4)
	require.Equal(t, 4, tbl.N())
	require.Empty(t, tbl.Of(2))

	tbl.Resize(1)
	require.Equal(t, 1, tbl.N())
}

func TestTableCloneIsIndependent(t *testing.T) {
	tbl := adjacency.NewTable(2)
	tbl.AddEdge(0, 1, 0)
	clone := tbl.Clone()
	clone.AddEdge(0, 1, 99) // duplicate on purpose, just to mutate clone

	require.Len(t, tbl.Of(0), 1)
	require.Len(t, clone.Of(0), 2)
}
