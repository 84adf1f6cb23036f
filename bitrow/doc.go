// Package bitrow provides packed bit vectors used to represent, for a fixed
// destination count N, which destinations satisfy some per-edge predicate.
//
// What
//
//   - Row is a dynamic, word-array-backed bit vector of width N, stored in
//     64-bit words and supporting Get/Set/Clear, Or/And/AndNot, and
//     iteration over set bits. It has no Xor or Not operation.
//   - AtomicRow is the concurrent counterpart: the same width-N vector backed
//     by an array of atomic words, offering Set/Clear via fetch-or/fetch-and
//     so concurrent writers from either endpoint of a shared edge never race.
//   - Fixed16, Fixed32, Fixed64 are generic, single-machine-word
//     specializations for small N (≤16, ≤32, ≤64 respectively); Fixed128 is a
//     two-word specialization for N≤128. All four offer the same core
//     methods as the dynamic Row but avoid the indirection of a slice.
//
// Why
//
//   - The destination-indexed bit is the unit of work for the gossip
//     fixed-point algorithm: every step is OR, AND-NOT, and set-bit iteration
//     over these rows. Specializing small widths to machine words removes a
//     slice bounds check and an indirection from the hottest loop in the
//     module.
//
// Determinism
//
//	All non-atomic operations are deterministic. AtomicRow's bitwise updates
//	are monotone (bits only transition 0→1 within a build), so the result of
//	any interleaving of concurrent Set calls on the same row is the same set
//	of bits — order never matters, only membership.
//
// Complexity (W = bits per machine word, words = ceil(N/W))
//
//   - Get/Set/Clear: O(1).
//   - Or/AndNot/iteration: O(words).
package bitrow
