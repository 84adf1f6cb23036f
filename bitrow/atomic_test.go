package bitrow_test

import (
	"sync"
	"testing"

	"github.com/PoOnesNerfect/bit-gossip/bitrow"
	"github.com/stretchr/testify/require"
)

func TestAtomicRowSetGetClear(t *testing.T) {
	a := bitrow.NewAtomicRow(10)
	require.False(t, a.Get(4))

	require.True(t, a.Set(4)) // first set transitions 0->1
	require.True(t, a.Get(4))
	require.False(t, a.Set(4)) // already set, no transition

	a.Clear(4)
	require.False(t, a.Get(4))
}

func TestAtomicRowFreezeThawRoundTrip(t *testing.T) {
	src := bitrow.NewRow(20)
	src.Set(3)
	src.Set(19)

	at := bitrow.Thaw(src)
	require.True(t, at.Get(3))
	require.True(t, at.Get(19))

	frozen := at.Freeze()
	require.True(t, frozen.Eq(src))
}

func TestAtomicRowOrFromConcurrentWriters(t *testing.T) {
	a := bitrow.NewAtomicRow(256)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		bit := w * 30
		row := bitrow.NewRow(256)
		row.Set(bit)
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.Or(row)
		}()
	}
	wg.Wait()

	for w := 0; w < 8; w++ {
		require.True(t, a.Get(w*30))
	}
}

func TestAtomicRowIsAllOnesAfterBarrier(t *testing.T) {
	a := bitrow.NewAtomicRow(4)
	for i := 0; i < 4; i++ {
		a.Set(i)
	}
	require.True(t, a.IsAllOnes())
	require.Equal(t, 4, a.CountOnes())
}
