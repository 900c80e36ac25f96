package topology

import "github.com/katalvlaran/gridif/model"

// queueItem is a BFS frontier entry, matching the walker/queueItem shape
// used throughout the example pack's graph-traversal code.
type queueItem struct {
	nodeIdx int
	ring    int
}

// AssignRings performs ring-0 flood fill from the control area's
// most-connected local node, then an outer-ring BFS over the rest of the
// graph, per spec.md §4.1. It mutates node.Ring, node.Connected, and
// branch.Ring in place. It reads branch.IsTieLine, so ClassifyTieLine must
// have already run; AssignRings does not change it.
func AssignRings(net *model.Network) error {
	root, err := chooseRoot(net)
	if err != nil {
		return topoErrorf("AssignRings", err)
	}

	// Flood connectivity through any branch with exactly one connected
	// endpoint, irrespective of tie-line status — this just finds what's
	// reachable at all.
	connected := make(map[int]bool)
	connected[root] = true
	changed := true
	for changed {
		changed = false
		for _, b := range net.Branches() {
			fc, tc := connected[b.FromNode], connected[b.ToNode]
			if fc == tc {
				continue
			}
			if fc {
				connected[b.ToNode] = true
			} else {
				connected[b.FromNode] = true
			}
			changed = true
		}
	}
	for idx := range connected {
		if err := net.SetNodeConnected(idx, true); err != nil {
			return topoErrorf("AssignRings", err)
		}
	}

	// Ring 0: everything reachable from root via non-tie-line branches,
	// X-nodes included as terminals but not propagated past.
	ring0 := make(map[int]bool)
	ring0[root] = true
	changed = true
	for changed {
		changed = false
		for _, b := range net.Branches() {
			if b.IsTieLine {
				continue
			}
			fc, tc := ring0[b.FromNode], ring0[b.ToNode]
			if fc == tc {
				continue
			}
			from, err := net.Node(b.FromNode)
			if err != nil {
				return topoErrorf("AssignRings", err)
			}
			to, err := net.Node(b.ToNode)
			if err != nil {
				return topoErrorf("AssignRings", err)
			}
			if fc && from.Country != model.CountryX {
				ring0[b.ToNode] = true
				changed = true
			} else if tc && to.Country != model.CountryX {
				ring0[b.FromNode] = true
				changed = true
			} else if fc || tc {
				// the already-assigned side is an X-node terminal: include
				// the other side too since the edge is non-tie, but do not
				// propagate further from an X-node.
				if fc {
					ring0[b.ToNode] = true
				} else {
					ring0[b.FromNode] = true
				}
				changed = true
			}
		}
	}
	for idx := range ring0 {
		if err := net.SetNodeRing(idx, 0); err != nil {
			return topoErrorf("AssignRings", err)
		}
	}

	// Outer-ring BFS from the ring-0 frontier.
	queue := make([]queueItem, 0, len(ring0))
	visited := make(map[int]bool, len(ring0))
	for idx := range ring0 {
		queue = append(queue, queueItem{nodeIdx: idx, ring: 0})
		visited[idx] = true
	}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		node, err := net.Node(item.nodeIdx)
		if err != nil {
			return topoErrorf("AssignRings", err)
		}
		for _, bi := range node.Branches {
			b, err := net.Branch(bi)
			if err != nil {
				return topoErrorf("AssignRings", err)
			}
			other := b.FromNode
			if other == item.nodeIdx {
				other = b.ToNode
			}
			if visited[other] {
				continue
			}
			otherNode, err := net.Node(other)
			if err != nil {
				return topoErrorf("AssignRings", err)
			}
			nextRing := item.ring + 1
			if otherNode.Country == model.CountryX {
				nextRing = item.ring
			}
			visited[other] = true
			if err := net.SetNodeRing(other, nextRing); err != nil {
				return topoErrorf("AssignRings", err)
			}
			if err := net.SetNodeConnected(other, true); err != nil {
				return topoErrorf("AssignRings", err)
			}
			queue = append(queue, queueItem{nodeIdx: other, ring: nextRing})
		}
	}

	for _, b := range net.Branches() {
		if err := net.RecomputeBranchRing(b.Index); err != nil {
			return topoErrorf("AssignRings", err)
		}
	}

	return nil
}

// SlackCandidate returns the index of the most-connected node of the
// control-area country — the same selection rule used both for the ring-0
// flood-fill root and, downstream, for the matrix engine's slack bus.
func SlackCandidate(net *model.Network) (int, error) {
	return chooseRoot(net)
}

// chooseRoot returns the index of the control-area-country node with the
// most incident branches, ties broken by ascending index (stable order).
func chooseRoot(net *model.Network) (int, error) {
	best := -1
	bestDegree := -1
	for _, node := range net.Nodes() {
		if node.Country != net.ControlArea() {
			continue
		}
		degree := len(node.Branches)
		if degree > bestDegree {
			bestDegree = degree
			best = node.Index
		}
	}
	if best == -1 {
		return 0, ErrNoRoot
	}
	return best, nil
}
