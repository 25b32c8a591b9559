// SPDX-License-Identifier: MIT

// Package oracle: sentinel errors shared by the reference algorithms.
package oracle

import "errors"

var (
	// ErrSourceOutOfRange indicates a source/root index outside [0, n).
	ErrSourceOutOfRange = errors.New("oracle: source vertex out of range")

	// ErrNegativeWeight indicates that Dijkstra encountered a negative edge
	// weight; its greedy invariant does not survive them (use BellmanFord).
	ErrNegativeWeight = errors.New("oracle: negative edge weight encountered")

	// ErrDisconnected indicates that an MST oracle could not reach all n
	// vertices: no spanning tree exists.
	ErrDisconnected = errors.New("oracle: graph is not connected")
)
