// SPDX-License-Identifier: MIT
package edgematrix

import "errors"

// ErrUnknownEdge indicates an edge id outside [0, M) was requested.
var ErrUnknownEdge = errors.New("edgematrix: unknown edge id")

// ErrNotIncident indicates fromNode is neither endpoint of the requested edge.
var ErrNotIncident = errors.New("edgematrix: node not incident to edge")
