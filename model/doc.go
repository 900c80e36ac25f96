// Package model defines the Node, Branch, and Generator entities of a
// transmission grid, and Network, the arena that owns them.
//
// Entities are cross-referenced by stable, dense, zero-based integer
// indices rather than pointers: the graph is cyclic (nodes reference
// branches, branches reference nodes, generators reference nodes), so no
// entity owns another. Network alone owns the arena and destroys it as a
// unit.
//
// Network is safe for concurrent reads; mutation (as performed by the
// topology reducer) is expected to happen single-threaded during
// construction and reduction, then the Network is treated as read-only by
// every later pipeline stage.
package model
