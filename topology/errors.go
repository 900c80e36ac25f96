package topology

import (
	"errors"
	"fmt"
)

// Sentinel errors for topology reduction. Callers branch with errors.Is.
var (
	// ErrNoRoot indicates no node in the control area's country could be
	// chosen as the ring-0 root (the country is absent from the graph).
	ErrNoRoot = errors.New("topology: no root node found for control area")

	// ErrDisconnected indicates the reduced graph has no branches left in
	// R after flood fill and pruning — the analysis cannot proceed for
	// this country.
	ErrDisconnected = errors.New("topology: control area is disconnected")

	// ErrTopologyInvariant indicates a post-reduction consistency check
	// failed (spec's TopologyInvariant error kind: fatal, assertion-level).
	ErrTopologyInvariant = errors.New("topology: invariant violated")
)

func topoErrorf(stage string, err error) error {
	return fmt.Errorf("topology.%s: %w", stage, err)
}
