// SPDX-License-Identifier: MIT
// Package: bit-gossip/bitgraph
//
// errors.go — sentinel errors for the bitgraph package.
//
// Error policy (matches builder/errors.go's convention):
//   - Only sentinel variables are exposed.
//   - Callers use errors.Is(err, ErrX) to branch on semantics.
//   - Call sites attach context via fmt.Errorf("%w: ...").

package bitgraph

import "errors"

// ErrInvalidArgument covers out-of-range node ids and self-loop connect
// attempts — the single validation-error kind the design calls for.
var ErrInvalidArgument = errors.New("bitgraph: invalid argument")

// ErrOutOfMemory is returned instead of panicking when a resize would grow
// the node count past a defensive ceiling. Go has no portable allocation-
// failure signal to trap, so this stands in for the host-OOM kind the
// design's two-error-kind surface calls for.
var ErrOutOfMemory = errors.New("bitgraph: allocation would exceed limit")

// ErrNilReceiver indicates a method was called on a nil *Builder or *Graph.
var ErrNilReceiver = errors.New("bitgraph: nil receiver")

// maxNodes is the defensive ceiling Resize enforces before returning
// ErrOutOfMemory; at this size each edge row alone takes maxNodes/8 bytes
// (2 MiB), and every edge stores two rows.
const maxNodes = 1 << 24
