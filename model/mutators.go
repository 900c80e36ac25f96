package model

// The mutators below are used by the topology reducer (package topology)
// while it turns a raw, dirty Network into a canonical one, except
// SetSelfPTDF, which the elecmatrix package calls once the PTDF diagonal is
// known. Every other later pipeline stage treats a Network as read-only.

// SetNodeRing sets the ring of the node at idx.
func (n *Network) SetNodeRing(idx, ring int) error {
	node, err := n.Node(idx)
	if err != nil {
		return modelErrorf("SetNodeRing", err)
	}
	n.muNodes.Lock()
	node.Ring = ring
	n.muNodes.Unlock()
	return nil
}

// SetNodeConnected sets the connected flag of the node at idx.
func (n *Network) SetNodeConnected(idx int, connected bool) error {
	node, err := n.Node(idx)
	if err != nil {
		return modelErrorf("SetNodeConnected", err)
	}
	n.muNodes.Lock()
	node.Connected = connected
	n.muNodes.Unlock()
	return nil
}

// SetNodeCountry overwrites the country tag of the node at idx. No stage of
// the reducer currently calls it.
func (n *Network) SetNodeCountry(idx int, country string) error {
	node, err := n.Node(idx)
	if err != nil {
		return modelErrorf("SetNodeCountry", err)
	}
	n.muNodes.Lock()
	node.Country = country
	n.muNodes.Unlock()
	return nil
}

// SetBranchRing sets the ring of the branch at idx.
func (n *Network) SetBranchRing(idx, ring int) error {
	b, err := n.Branch(idx)
	if err != nil {
		return modelErrorf("SetBranchRing", err)
	}
	n.muRest.Lock()
	b.Ring = ring
	n.muRest.Unlock()
	return nil
}

// ClassifyTieLine sets IsTieLine and Country on the branch at idx from its
// current endpoints, per spec.md §3 invariant (c): a branch is a tie-line
// iff its endpoints belong to different countries or either endpoint is an
// X-node. Non-tie branches inherit the (common) endpoint country.
func (n *Network) ClassifyTieLine(idx int) error {
	b, err := n.Branch(idx)
	if err != nil {
		return modelErrorf("ClassifyTieLine", err)
	}
	from, err := n.Node(b.FromNode)
	if err != nil {
		return modelErrorf("ClassifyTieLine", err)
	}
	to, err := n.Node(b.ToNode)
	if err != nil {
		return modelErrorf("ClassifyTieLine", err)
	}

	isTie := from.Country != to.Country || from.Country == CountryX || to.Country == CountryX

	n.muRest.Lock()
	b.IsTieLine = isTie
	if isTie {
		b.Country = CountryTie
	} else {
		b.Country = from.Country
	}
	n.muRest.Unlock()

	return nil
}

// RecomputeBranchRing sets the branch at idx's ring to the minimum of its
// endpoints' rings, per spec.md §4.1.
func (n *Network) RecomputeBranchRing(idx int) error {
	b, err := n.Branch(idx)
	if err != nil {
		return modelErrorf("RecomputeBranchRing", err)
	}
	from, err := n.Node(b.FromNode)
	if err != nil {
		return modelErrorf("RecomputeBranchRing", err)
	}
	to, err := n.Node(b.ToNode)
	if err != nil {
		return modelErrorf("RecomputeBranchRing", err)
	}

	ring := from.Ring
	if to.Ring < ring {
		ring = to.Ring
	}

	n.muRest.Lock()
	b.Ring = ring
	n.muRest.Unlock()

	return nil
}

// SetSelfPTDF sets the diagonal PTDF scalar of the branch at idx, filled in
// by the elecmatrix package.
func (n *Network) SetSelfPTDF(idx int, v float64) error {
	b, err := n.Branch(idx)
	if err != nil {
		return modelErrorf("SetSelfPTDF", err)
	}
	n.muRest.Lock()
	b.SelfPTDF = v
	n.muRest.Unlock()
	return nil
}

// Rebuild constructs a fresh, densely re-indexed Network containing only
// the nodes for which keepNode returns true and the branches for which
// keepBranch returns true (both endpoints must also be kept; a branch whose
// endpoint was dropped is dropped too, even if keepBranch would have kept
// it). Relative order is preserved. This is how the reducer implements
// pruning (spec.md §4.1) without the bookkeeping of in-place index-shifting
// deletion: arena identity belongs to whichever Network currently holds it,
// and a reducer stage simply produces the next Network in the pipeline.
func (n *Network) Rebuild(keepNode func(*Node) bool, keepBranch func(*Branch) bool) *Network {
	n.muNodes.RLock()
	n.muRest.RLock()
	defer n.muNodes.RUnlock()
	defer n.muRest.RUnlock()

	out := NewNetwork(n.controlArea)

	oldToNew := make(map[int]int, len(n.nodes))
	for _, node := range n.nodes {
		if !keepNode(node) {
			continue
		}
		newIdx, _ := out.AddNode(node.Name, node.Country)
		oldToNew[node.Index] = newIdx
		// AddNode resets Ring/Connected to defaults; restore the reducer's
		// current values since Rebuild is a pure re-indexing, not a reset.
		out.nodes[newIdx].Ring = node.Ring
		out.nodes[newIdx].Connected = node.Connected
	}

	for _, b := range n.branches {
		if !keepBranch(b) {
			continue
		}
		if _, ok := oldToNew[b.FromNode]; !ok {
			continue
		}
		if _, ok := oldToNew[b.ToNode]; !ok {
			continue
		}
		newIdx, _ := out.AddBranch(BranchSpec{
			NameFrom:    b.NameFrom,
			NameTo:      b.NameTo,
			Order:       b.Order,
			DisplayName: b.DisplayName,
			Impedance:   b.Impedance,
			PATL:        b.PATL,
			VBase:       b.VBase,
			Type:        b.Type,
		})
		out.branches[newIdx].IsTieLine = b.IsTieLine
		out.branches[newIdx].Country = b.Country
		out.branches[newIdx].Ring = b.Ring
		out.branches[newIdx].SelfPTDF = b.SelfPTDF
	}

	for _, g := range n.generators {
		newIdx := out.AddGenerator(GeneratorSpec{
			NodeName:    g.NodeName,
			DisplayName: g.DisplayName,
			Power:       g.Power,
		})
		if g.Node == -1 {
			continue
		}
		if mapped, ok := oldToNew[g.Node]; ok {
			_ = out.AttachGenerator(newIdx, mapped)
		}
	}

	return out
}
