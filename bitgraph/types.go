package bitgraph

import "github.com/PoOnesNerfect/bit-gossip/adjacency"

// builtMatrix is the read-only surface Query needs from whichever concrete
// matrix representation Build selected.
type builtMatrix interface {
	Other(edgeID, fromNode int) (int, error)
	Get(edgeID, fromNode, dest int) (bool, error)
	M() int
}

// edgePair is a canonical (lo,hi) undirected edge with lo<hi.
type edgePair struct{ lo, hi int }

// Builder accumulates a mutable node/edge set. Nodes and edges may only be
// changed through a Builder; Build seals the structure into a read-only
// Graph. The zero value is not usable — construct with NewBuilder.
type Builder struct {
	n   int
	adj []map[int]struct{} // adj[v] is v's neighbor set, symmetric
}

// Graph is a built, read-only APSP engine: a populated edge matrix plus the
// adjacency table used both for gossip and for query tie-breaking.
type Graph struct {
	n     int
	edges []edgePair
	adj   *adjacency.Table
	bm    builtMatrix
}
