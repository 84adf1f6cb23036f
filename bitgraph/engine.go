package bitgraph

import (
	"context"
	"sync/atomic"

	"github.com/PoOnesNerfect/bit-gossip/adjacency"
	"golang.org/x/sync/errgroup"
)

// row is the minimal set of operations the gossip fixed point needs from a
// bit row, expressed as a self-referential generic constraint so the same
// algorithm runs unmodified over bitrow.Row (dynamic width) and every
// bitrow.Fixed[W]/bitrow.Fixed128 specialization (fixed width) — one
// implementation standing in for what the original source generates
// per-width via a macro.
type row[T any] interface {
	Get(int) bool
	IsZero() bool
	Or(T) bool
	And(T)
	AndNot(T)
	Clone() T
}

// matrix is the minimal read/write surface the gossip engine needs from an
// edge-row store, over rows of type T.
type matrix[T any] interface {
	RowFor(edgeID, fromNode int) (T, error)
	OrInto(edgeID, fromNode int, src T) (bool, error)
	NewRow() T
}

// gossipStepAtNode runs one exclusive-bit gossip step at node v: it reads
// every incident edge's row as seen from v, determines which destinations
// are currently known via exactly one such row, and propagates that
// exclusivity to every other incident edge's opposite-endpoint view. Returns
// whether any bit changed as a result.
func gossipStepAtNode[T row[T]](v int, adj *adjacency.Table, m matrix[T]) (bool, error) {
	entries := adj.Of(v)
	k := len(entries)
	if k == 0 {
		return false, nil
	}

	views := make([]T, k)
	for i, e := range entries {
		r, err := m.RowFor(e.EdgeID, v)
		if err != nil {
			return false, err
		}
		views[i] = r
	}

	atLeastOne := m.NewRow()
	atLeastTwo := m.NewRow()
	for _, r := range views {
		seenBefore := atLeastOne.Clone()
		seenBefore.And(r)
		atLeastTwo.Or(seenBefore)
		atLeastOne.Or(r)
	}

	exactlyOne := atLeastOne.Clone()
	exactlyOne.AndNot(atLeastTwo)
	if exactlyOne.IsZero() {
		return false, nil
	}

	changed := false
	for i, e := range entries {
		propagate := exactlyOne.Clone()
		propagate.AndNot(views[i])
		if propagate.IsZero() {
			continue
		}
		did, err := m.OrInto(e.EdgeID, e.Neighbor, propagate)
		if err != nil {
			return false, err
		}
		changed = changed || did
	}
	return changed, nil
}

// gossipPass runs one sequential full sweep over every node, returning
// whether any bit changed anywhere.
func gossipPass[T row[T]](adj *adjacency.Table, m matrix[T]) (bool, error) {
	changed := false
	for v := 0; v < adj.N(); v++ {
		did, err := gossipStepAtNode[T](v, adj, m)
		if err != nil {
			return false, err
		}
		changed = changed || did
	}
	return changed, nil
}

// runSequential iterates gossipPass to a fixed point.
func runSequential[T row[T]](adj *adjacency.Table, m matrix[T]) error {
	for {
		changed, err := gossipPass[T](adj, m)
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
	}
}

// gossipParallelPass partitions nodes into contiguous ranges, one per
// worker, and runs gossipStepAtNode across all of them concurrently.
// errgroup.Group.Wait acts as the per-iteration barrier the design calls
// for: no worker starts iteration k+1's reads until every worker has
// finished iteration k's writes, and Wait's happens-before relationship
// gives the acquire/release fencing the spec's memory-ordering section
// requires between rounds.
func gossipParallelPass[T row[T]](ctx context.Context, adj *adjacency.Table, m matrix[T], workers int) (bool, error) {
	n := adj.N()
	if workers <= 0 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	if workers <= 0 {
		return false, nil
	}

	var anyChanged atomic.Bool
	g, _ := errgroup.WithContext(ctx)
	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunk
		if start >= n {
			break
		}
		end := start + chunk
		if end > n {
			end = n
		}
		g.Go(func() error {
			for v := start; v < end; v++ {
				did, err := gossipStepAtNode[T](v, adj, m)
				if err != nil {
					return err
				}
				if did {
					anyChanged.Store(true)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return false, err
	}
	return anyChanged.Load(), nil
}

// runParallel iterates gossipParallelPass to a fixed point.
func runParallel[T row[T]](ctx context.Context, adj *adjacency.Table, m matrix[T], workers int) error {
	for {
		changed, err := gossipParallelPass[T](ctx, adj, m, workers)
		if err != nil {
			return err
		}
		if !changed {
			return nil
		}
	}
}
