package bitgraph_test

import (
	"math/rand"
	"testing"

	"github.com/PoOnesNerfect/bit-gossip/bitgraph"
	"github.com/stretchr/testify/require"
)

// S1: six-node tree.
func TestSixNodeTree(t *testing.T) {
	b := bitgraph.NewBuilder(6)
	for _, e := range [][2]int{{0, 1}, {0, 3}, {1, 2}, {1, 4}, {3, 4}, {3, 5}} {
		require.NoError(t, b.Connect(e[0], e[1]))
	}
	g, err := b.Build()
	require.NoError(t, err)

	next, ok, err := g.NextNode(2, 5)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, next)

	path, ok, err := g.Path(2, 5)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, path, 4)
	require.Equal(t, 1, path[0])
	require.Equal(t, 3, path[2])
	require.Equal(t, 5, path[3])
	require.Contains(t, []int{0, 4}, path[1])
}

// S2: 4x3 grid with two edges removed.
func TestGridWithRemovedEdges(t *testing.T) {
	b := bitgraph.NewBuilder(12)
	// rows of 4: 0-3, 4-7, 8-11
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			require.NoError(t, b.Connect(r*4+c, r*4+c+1))
		}
	}
	for r := 0; r < 2; r++ {
		for c := 0; c < 4; c++ {
			require.NoError(t, b.Connect(r*4+c, (r+1)*4+c))
		}
	}
	require.NoError(t, b.Disconnect(1, 5))
	require.NoError(t, b.Disconnect(5, 9))

	g, err := b.Build()
	require.NoError(t, err)

	next, ok, err := g.NextNode(0, 9)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 4, next)

	next, ok, err = g.NextNode(4, 9)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 8, next)

	next, ok, err = g.NextNode(8, 9)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 9, next)

	nexts, err := g.NextNodes(0, 11)
	require.NoError(t, err)
	require.Equal(t, []int{1, 4}, nexts)

	path, ok, err := g.Path(0, 5)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []int{4, 5}, path)
}

// S3: disconnected pair.
func TestDisconnectedPair(t *testing.T) {
	b := bitgraph.NewBuilder(4)
	require.NoError(t, b.Connect(0, 1))
	require.NoError(t, b.Connect(2, 3))
	g, err := b.Build()
	require.NoError(t, err)

	_, ok, err := g.NextNode(0, 2)
	require.NoError(t, err)
	require.False(t, ok)

	connected, err := g.AreConnected(0, 2)
	require.NoError(t, err)
	require.False(t, connected)

	connected, err = g.AreConnected(0, 1)
	require.NoError(t, err)
	require.True(t, connected)
}

// S4: ring of 8.
func TestRingOfEight(t *testing.T) {
	b := bitgraph.NewBuilder(8)
	for i := 0; i < 8; i++ {
		require.NoError(t, b.Connect(i, (i+1)%8))
	}
	g, err := b.Build()
	require.NoError(t, err)

	nexts, err := g.NextNodes(0, 4)
	require.NoError(t, err)
	require.Len(t, nexts, 2)
	require.ElementsMatch(t, []int{1, 7}, nexts)
}

// S5: 100x100 grid, random query cross-check against Manhattan distance.
func TestLargeGridRandomQueries(t *testing.T) {
	const side = 100
	b := bitgraph.NewBuilder(side * side)
	id := func(r, c int) int { return r*side + c }
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			if c+1 < side {
				require.NoError(t, b.Connect(id(r, c), id(r, c+1)))
			}
			if r+1 < side {
				require.NoError(t, b.Connect(id(r, c), id(r+1, c)))
			}
		}
	}
	g, err := b.Build()
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		ur, uc := rng.Intn(side), rng.Intn(side)
		vr, vc := rng.Intn(side), rng.Intn(side)
		u, v := id(ur, uc), id(vr, vc)
		manhattan := abs(ur-vr) + abs(uc-vc)

		hops := 0
		cur := u
		for cur != v {
			next, ok, err := g.NextNode(cur, v)
			require.NoError(t, err)
			require.True(t, ok)
			cur = next
			hops++
		}
		require.Equal(t, manhattan, hops)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// S6: rebuild equivalence.
func TestRebuildEquivalence(t *testing.T) {
	b := bitgraph.NewBuilder(6)
	for _, e := range [][2]int{{0, 1}, {0, 3}, {1, 2}, {1, 4}, {3, 4}, {3, 5}} {
		require.NoError(t, b.Connect(e[0], e[1]))
	}
	g1, err := b.Build()
	require.NoError(t, err)

	b2 := g1.IntoBuilder()
	g2, err := b2.Build()
	require.NoError(t, err)

	for u := 0; u < 6; u++ {
		for v := 0; v < 6; v++ {
			n1, ok1, err := g1.NextNode(u, v)
			require.NoError(t, err)
			n2, ok2, err := g2.NextNode(u, v)
			require.NoError(t, err)
			require.Equal(t, ok1, ok2)
			require.Equal(t, n1, n2)
		}
	}
}
