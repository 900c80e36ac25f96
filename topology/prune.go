package topology

import "github.com/katalvlaran/gridif/model"

// Prune keeps only connected nodes and branches whose endpoints both
// survive, re-indexing densely via Rebuild.
func Prune(net *model.Network) *model.Network {
	return net.Rebuild(
		func(n *model.Node) bool { return n.Connected },
		func(b *model.Branch) bool { return true },
	)
}
