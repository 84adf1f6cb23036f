package bitrow_test

import (
	"testing"

	"github.com/PoOnesNerfect/bit-gossip/bitrow"
	"github.com/stretchr/testify/require"
)

func TestFixed32SetGetClear(t *testing.T) {
	f := bitrow.NewFixed[uint32](20)
	require.False(t, f.Get(5))
	f.Set(5)
	require.True(t, f.Get(5))
	f.Clear(5)
	require.False(t, f.Get(5))
}

func TestFixed16OutOfRangeIsNoop(t *testing.T) {
	f := bitrow.NewFixed[uint16](10)
	f.Set(40) // beyond the 16-bit word; must not panic or wrap
	require.False(t, f.Get(40))
}

func TestFixed64OrAndIsAllOnes(t *testing.T) {
	a := bitrow.NewFixed[uint64](4)
	b := bitrow.NewFixed[uint64](4)
	b.Set(0)
	b.Set(1)
	b.Set(2)
	b.Set(3)

	require.True(t, a.Or(b))
	require.True(t, a.IsAllOnes())

	a.AndNot(b)
	require.True(t, a.IsZero())
}

func TestFixed128SpansBothWords(t *testing.T) {
	f := bitrow.NewFixed128(128)
	f.Set(0)
	f.Set(63)
	f.Set(64)
	f.Set(127)

	require.Equal(t, []int{0, 63, 64, 127}, collectOnes(f))
	require.Equal(t, 4, f.CountOnes())

	for i := 0; i < 128; i++ {
		f.Set(i)
	}
	require.True(t, f.IsAllOnes())
}

func TestFixed128EqAndClone(t *testing.T) {
	a := bitrow.NewFixed128(100)
	a.Set(90)
	b := a.Clone()
	require.True(t, a.Eq(b))
	b.Set(1)
	require.False(t, a.Eq(b))
}

func collectOnes(f *bitrow.Fixed128) []int {
	var out []int
	f.IterOnes(func(i int) bool {
		out = append(out, i)
		return true
	})
	return out
}
