// Package bitgraph is the public surface of the bit-gossip engine: Builder
// accumulates nodes and edges, Build runs the gossip fixed point and returns
// a read-only Graph, and Graph answers next-hop and path queries.
//
// What
//
//   - Builder: NewBuilder(n), Resize, Connect, Disconnect, Build.
//   - Graph: NextNode, NextNodes, Path, AreConnected, IntoBuilder.
//   - Two gossip build strategies (sequential, parallel), selected
//     automatically by node count or forced via WithSequential/WithParallel.
//   - Two matrix backing representations (dynamic word-array rows for large
//     N, fixed single/double-word rows for N≤128), selected automatically
//     or forced via WithDynamicWidth/WithFixedWidth.
//
// Why
//
//   - Separating Builder (mutable, exclusive-owner) from Graph (immutable,
//     freely shared) matches the spec's build-once/query-many lifecycle: no
//     lock is needed once a Graph exists, because nothing about it can
//     change short of converting it back into a Builder.
//
// Determinism
//
//	Build is deterministic up to which specific outgoing edge NextNode
//	returns when several are tied for shortest — that choice is fixed to
//	"first in adjacency order" and is stable across repeated builds of the
//	same topology (see Graph.NextNode).
//
// Complexity (V nodes, E edges, D = graph diameter)
//
//   - Build: O(D·E) gossip iterations in the worst case, each iteration
//     O(E) bitwise word operations.
//   - NextNode/AreConnected: O(degree(u)).
//   - Path: O(hops · degree).
package bitgraph
