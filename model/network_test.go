package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridif/model"
)

func TestNetwork_AddNode(t *testing.T) {
	net := model.NewNetwork("A")

	idx, err := net.AddNode("N1", "A")
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	idx2, err := net.AddNode("N2", "A")
	require.NoError(t, err)
	assert.Equal(t, 1, idx2)

	_, err = net.AddNode("N1", "A")
	assert.ErrorIs(t, err, model.ErrDuplicateNode)

	_, err = net.AddNode("", "A")
	assert.ErrorIs(t, err, model.ErrEmptyName)
}

func TestNetwork_AddBranch(t *testing.T) {
	net := model.NewNetwork("A")
	_, _ = net.AddNode("N1", "A")
	_, _ = net.AddNode("N2", "A")

	bi, err := net.AddBranch(model.BranchSpec{
		NameFrom: "N1", NameTo: "N2", Impedance: 0.1, PATL: 100, VBase: 400, Type: model.Line,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, bi)

	_, err = net.AddBranch(model.BranchSpec{NameFrom: "N1", NameTo: "GHOST"})
	assert.ErrorIs(t, err, model.ErrUnknownNode)

	n1, err := net.Node(0)
	require.NoError(t, err)
	assert.Contains(t, n1.Branches, bi)

	n2, err := net.Node(1)
	require.NoError(t, err)
	assert.Contains(t, n2.Branches, bi)
}

func TestNetwork_IndexOutOfRange(t *testing.T) {
	net := model.NewNetwork("A")

	_, err := net.Node(0)
	assert.ErrorIs(t, err, model.ErrNodeIndexOutOfRange)

	_, err = net.Branch(0)
	assert.ErrorIs(t, err, model.ErrBranchIndexOutOfRange)

	_, err = net.Generator(0)
	assert.ErrorIs(t, err, model.ErrGeneratorIndexOutOfRange)
}

func TestNetwork_AttachGenerator(t *testing.T) {
	net := model.NewNetwork("A")
	_, _ = net.AddNode("N1", "A")

	gi := net.AddGenerator(model.GeneratorSpec{NodeName: "N1", Power: 50})
	g, err := net.Generator(gi)
	require.NoError(t, err)
	assert.Equal(t, -1, g.Node)

	require.NoError(t, net.AttachGenerator(gi, 0))

	g, err = net.Generator(gi)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Node)
	assert.Equal(t, "A", g.Country)

	n1, err := net.Node(0)
	require.NoError(t, err)
	assert.Contains(t, n1.Generators, gi)
}

func TestNetwork_Validate(t *testing.T) {
	net := model.NewNetwork("A")
	_, _ = net.AddNode("N1", "A")
	_, _ = net.AddNode("N2", "A")
	_, _ = net.AddBranch(model.BranchSpec{NameFrom: "N1", NameTo: "N2", Type: model.Line})

	assert.NoError(t, net.Validate())
}
