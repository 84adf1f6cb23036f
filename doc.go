// Package bitgossip is an all-pairs-shortest-paths engine for unweighted,
// undirected graphs, built around a single idea: for every directed edge
// (a,b) and every destination d, precompute one bit answering "does a→b lie
// on a shortest path from a to d?". Once that bit-matrix is built, "standing
// at u, which neighbor leads toward v?" is a handful of word reads.
//
// Subsystems:
//
//	bitrow/     — packed bit vectors: dynamic, atomic, and fixed-width (16/32/64/128)
//	adjacency/  — per-node ordered (neighbor, edge) lists
//	edgematrix/ — the M×N bit matrix: two monotone rows per undirected edge,
//	              one per direction, each updated only by OR
//	bitgraph/   — Builder (accumulate nodes/edges) and Graph (query API),
//	              and the sequential/parallel gossip build algorithms that
//	              fill the matrix
//
// Typical use:
//
//	b := bitgraph.NewBuilder(12)
//	b.Connect(0, 1)
//	b.Connect(1, 2)
//	// ... more edges ...
//	g, err := b.Build()
//	if err != nil {
//		// handle ErrInvalidArgument / ErrOutOfMemory
//	}
//	next, ok, err := g.NextNode(0, 2) // neighbor of 0 on a shortest path to 2
//
// The build is a one-time, CPU-bound fixed point over bitwise OR/AND/NOT; the
// resulting Graph is immutable and safe for concurrent reads. To mutate
// topology, call Graph.IntoBuilder and Build again — there is no incremental
// update path.
package bitgossip
