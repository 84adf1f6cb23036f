// Package edgematrix implements the dynamic-width bit-matrix backing store:
// two bitrow.Rows per undirected edge (one per direction), indexed by a
// stable edge id, together with the orientation lookup that lets either
// endpoint read "its" row.
//
// What
//
//   - EdgeMatrix stores, for each edge {a,b} with a<b, two independently
//     monotone rows: the canonical a→b row and the b→a row. RowFor(edge,
//     fromNode) returns whichever one corresponds to reading "outgoing from
//     fromNode".
//   - AtomicEdgeMatrix is the concurrent build-time counterpart, backing
//     both rows per edge with bitrow.AtomicRow; Freeze converts it to a
//     plain EdgeMatrix once the parallel fixed point has converged.
//
// Why two rows instead of one row plus a bitwise-complement view
//
//   - The gossip build's exclusive-bit step needs to *turn on* a destination
//     bit in the row seen from a neighbor across an edge, for destinations
//     that are known, from the local node's side, to definitely not route
//     through that edge. If a single physical row were shared between both
//     directions via bitwise complement, "turning on" the far side's bit
//     would require clearing the near side's bit — breaking the append-only
//     invariant the fixed point relies on to terminate. Storing both
//     directions independently keeps every write a monotone OR while
//     producing the exact same externally observable rows (each direction's
//     bit set is still governed only by that direction's own shortest-path
//     structure).
//
// Complexity
//
//   - RowFor: O(1). Seeding: O(1) per edge. Memory: O(M·N/W) words, twice
//     the single-row layout the destination bit-matrix could in principle
//     use.
package edgematrix
