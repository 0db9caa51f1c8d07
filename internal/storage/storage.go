// Package storage defines the position history backend contract and the
// factory that selects a concrete backend from configuration.
package storage

import "github.com/tarkov-tools/raidmap/pkg/core"

// Backend persists the chronological history of imported positions.
//
// Append never returns an error: the import flow must succeed even when
// persistence is degraded, so backends log write failures and carry on.
type Backend interface {
	// Init prepares the backend for use (creates files, opens
	// connections, runs migrations).
	Init() error

	// Append records a position with the current timestamp.
	Append(pos core.Position3D)

	// Latest returns the most recently appended position. The second
	// return is false when no position has ever been stored.
	Latest() (core.Position3D, bool)

	// All returns every stored record in append order.
	All() []core.PositionRecord

	// Close releases any resources held by the backend.
	Close() error
}
