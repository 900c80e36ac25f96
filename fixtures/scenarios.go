package fixtures

import "github.com/katalvlaran/gridif/model"

// TwoNodeTrivial builds a reduced form of spec.md §8 scenario 1: two
// buses, one line R (external, ring 1), and a generator on N1. It has no
// line I and no load, so R is the only branch and is radial. Topology
// reduction has already run conceptually — nodes carry their final ring
// and connected state directly, so callers can feed this straight into
// elecmatrix without a topology.Reduce pass.
func TwoNodeTrivial() *model.Network {
	net := model.NewNetwork("A")

	n1, _ := net.AddNode("N1", "A")
	n2, _ := net.AddNode("N2", "B")
	_ = n1
	_ = n2

	r, _ := net.AddBranch(model.BranchSpec{
		NameFrom: "N1", NameTo: "N2", Order: "1",
		Impedance: 0.1, PATL: 100, VBase: 400, Type: model.Line,
	})

	_ = net.SetNodeRing(0, 0)
	_ = net.SetNodeConnected(0, true)
	_ = net.SetNodeRing(1, 1)
	_ = net.SetNodeConnected(1, true)
	_ = net.SetBranchRing(r, 1)

	gi := net.AddGenerator(model.GeneratorSpec{NodeName: "N1", DisplayName: "G1", Power: 50})
	_ = net.AttachGenerator(gi, 0)

	return net
}

// Triangle builds spec.md §8 scenario 2: three buses, equal impedance
// x=0.1 on all three branches, all internal (ring 0). Analytically,
// self-PTDF == 2/3 for every branch, and every off-diagonal LODF entry is
// -1 (the outaged branch's flow reroutes entirely around the other two,
// which are oriented against it in the N1->N2->N3->N1 cycle).
func Triangle() *model.Network {
	net := model.NewNetwork("A")
	for _, name := range []string{"N1", "N2", "N3"} {
		_, _ = net.AddNode(name, "A")
	}
	for _, pair := range [][2]string{{"N1", "N2"}, {"N2", "N3"}, {"N3", "N1"}} {
		_, _ = net.AddBranch(model.BranchSpec{
			NameFrom: pair[0], NameTo: pair[1], Impedance: 0.1, PATL: 100, VBase: 400, Type: model.Line,
		})
	}
	for _, n := range net.Nodes() {
		_ = net.SetNodeRing(n.Index, 0)
		_ = net.SetNodeConnected(n.Index, true)
	}
	for _, b := range net.Branches() {
		_ = net.SetBranchRing(b.Index, 0)
	}
	return net
}

// IEEE300Subset builds a small radial-star subset in the spirit of
// spec.md §8 scenario 3: one control-area hub with several internal
// spokes plus one external tie into a neighboring country, without
// shipping the full IEEE-300 dataset. The network is a tree, so every
// branch has self-PTDF 1 and is radial: setselect.Build leaves R, T and
// I empty for it.
func IEEE300Subset() *model.Network {
	net := model.NewNetwork("A")

	hub, _ := net.AddNode("HUB", "A")
	_ = hub
	spokes := []string{"S1", "S2", "S3", "S4"}
	for _, s := range spokes {
		_, _ = net.AddNode(s, "A")
	}
	_, _ = net.AddNode("EXT1", "B")

	for _, s := range spokes {
		_, _ = net.AddBranch(model.BranchSpec{
			NameFrom: "HUB", NameTo: s, Impedance: 0.08, PATL: 200, VBase: 220, Type: model.Line,
		})
	}
	tie, _ := net.AddBranch(model.BranchSpec{
		NameFrom: "HUB", NameTo: "EXT1", Impedance: 0.15, PATL: 150, VBase: 400, Type: model.Line,
	})

	for _, n := range net.Nodes() {
		if n.Country == "A" {
			_ = net.SetNodeRing(n.Index, 0)
		} else {
			_ = net.SetNodeRing(n.Index, 1)
		}
		_ = net.SetNodeConnected(n.Index, true)
	}
	for _, b := range net.Branches() {
		if b.Index == tie {
			_ = net.SetBranchRing(b.Index, 1)
			continue
		}
		_ = net.SetBranchRing(b.Index, 0)
	}

	gi := net.AddGenerator(model.GeneratorSpec{NodeName: "S1", DisplayName: "G_S1", Power: 120})
	_ = net.AttachGenerator(gi, 1)
	gi2 := net.AddGenerator(model.GeneratorSpec{NodeName: "EXT1", DisplayName: "G_EXT1", Power: 80})
	_ = net.AttachGenerator(gi2, 5)

	return net
}
