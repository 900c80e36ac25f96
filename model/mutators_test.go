package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridif/model"
)

func TestClassifyTieLine(t *testing.T) {
	net := model.NewNetwork("A")
	_, _ = net.AddNode("N1", "A")
	_, _ = net.AddNode("N2", "B")
	bi, _ := net.AddBranch(model.BranchSpec{NameFrom: "N1", NameTo: "N2", Type: model.Line})

	require.NoError(t, net.ClassifyTieLine(bi))

	b, err := net.Branch(bi)
	require.NoError(t, err)
	assert.True(t, b.IsTieLine)
	assert.Equal(t, model.CountryTie, b.Country)
}

func TestClassifyTieLine_SameCountry(t *testing.T) {
	net := model.NewNetwork("A")
	_, _ = net.AddNode("N1", "A")
	_, _ = net.AddNode("N2", "A")
	bi, _ := net.AddBranch(model.BranchSpec{NameFrom: "N1", NameTo: "N2", Type: model.Line})

	require.NoError(t, net.ClassifyTieLine(bi))

	b, err := net.Branch(bi)
	require.NoError(t, err)
	assert.False(t, b.IsTieLine)
	assert.Equal(t, "A", b.Country)
}

func TestClassifyTieLine_XNode(t *testing.T) {
	net := model.NewNetwork("A")
	_, _ = net.AddNode("N1", "A")
	_, _ = net.AddNode("X1", model.CountryX)
	bi, _ := net.AddBranch(model.BranchSpec{NameFrom: "N1", NameTo: "X1", Type: model.Line})

	require.NoError(t, net.ClassifyTieLine(bi))

	b, err := net.Branch(bi)
	require.NoError(t, err)
	assert.True(t, b.IsTieLine)
}

func TestRecomputeBranchRing(t *testing.T) {
	net := model.NewNetwork("A")
	_, _ = net.AddNode("N1", "A")
	_, _ = net.AddNode("N2", "A")
	bi, _ := net.AddBranch(model.BranchSpec{NameFrom: "N1", NameTo: "N2", Type: model.Line})

	require.NoError(t, net.SetNodeRing(0, 0))
	require.NoError(t, net.SetNodeRing(1, 2))
	require.NoError(t, net.RecomputeBranchRing(bi))

	b, err := net.Branch(bi)
	require.NoError(t, err)
	assert.Equal(t, 0, b.Ring)
}

func TestRebuild_DropsOrphanedBranch(t *testing.T) {
	net := model.NewNetwork("A")
	_, _ = net.AddNode("N1", "A")
	_, _ = net.AddNode("N2", "A")
	_, _ = net.AddNode("N3", "A")
	_, _ = net.AddBranch(model.BranchSpec{NameFrom: "N1", NameTo: "N2", Type: model.Line})
	_, _ = net.AddBranch(model.BranchSpec{NameFrom: "N2", NameTo: "N3", Type: model.Line})

	out := net.Rebuild(
		func(n *model.Node) bool { return n.Name != "N3" },
		func(b *model.Branch) bool { return true },
	)

	assert.Equal(t, 2, out.NumNodes())
	assert.Equal(t, 1, out.NumBranches())
	require.NoError(t, out.Validate())
}

func TestRebuild_PreservesGeneratorAttachment(t *testing.T) {
	net := model.NewNetwork("A")
	_, _ = net.AddNode("N1", "A")
	gi := net.AddGenerator(model.GeneratorSpec{NodeName: "N1", Power: 10})
	require.NoError(t, net.AttachGenerator(gi, 0))

	out := net.Rebuild(
		func(n *model.Node) bool { return true },
		func(b *model.Branch) bool { return true },
	)

	g, err := out.Generator(0)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Node)
	assert.Equal(t, "A", g.Country)
}
