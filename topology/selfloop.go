package topology

import "github.com/katalvlaran/gridif/model"

// RemoveSelfLoops deletes every branch whose endpoints resolve to the same
// node, then drops any node left with no incident branches and no
// generators as a result.
func RemoveSelfLoops(net *model.Network) *model.Network {
	dropBranch := make(map[int]bool)
	for _, b := range net.Branches() {
		if b.FromNode == b.ToNode {
			dropBranch[b.Index] = true
		}
	}

	survivingBranchCount := make(map[int]int)
	for _, b := range net.Branches() {
		if dropBranch[b.Index] {
			continue
		}
		survivingBranchCount[b.FromNode]++
		survivingBranchCount[b.ToNode]++
	}

	return net.Rebuild(
		func(n *model.Node) bool {
			return survivingBranchCount[n.Index] > 0 || len(n.Generators) > 0
		},
		func(b *model.Branch) bool { return !dropBranch[b.Index] },
	)
}
