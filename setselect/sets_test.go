package setselect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridif/model"
	"github.com/katalvlaran/gridif/setselect"
)

func TestBuild_RadialExcluded(t *testing.T) {
	net := model.NewNetwork("A")
	_, err := net.AddNode("N1", "A")
	require.NoError(t, err)
	_, err = net.AddNode("N2", "B")
	require.NoError(t, err)
	idx, err := net.AddBranch(model.BranchSpec{NameFrom: "N1", NameTo: "N2", Impedance: 0.1})
	require.NoError(t, err)
	require.NoError(t, net.SetBranchRing(idx, 1))
	require.NoError(t, net.SetSelfPTDF(idx, 1.0)) // radial

	sets := setselect.Build(net, 1e-5)
	assert.Empty(t, sets.R)
	assert.Empty(t, sets.I)
}

func TestBuild_Partition(t *testing.T) {
	net := model.NewNetwork("A")
	_, err := net.AddNode("N0", "A")
	require.NoError(t, err)
	_, err = net.AddNode("N1", "A")
	require.NoError(t, err)
	_, err = net.AddNode("N2", "B")
	require.NoError(t, err)

	internal, err := net.AddBranch(model.BranchSpec{NameFrom: "N0", NameTo: "N1", Impedance: 0.1})
	require.NoError(t, err)
	require.NoError(t, net.SetBranchRing(internal, 0))
	require.NoError(t, net.SetSelfPTDF(internal, 0.3))

	external, err := net.AddBranch(model.BranchSpec{NameFrom: "N1", NameTo: "N2", Impedance: 0.1})
	require.NoError(t, err)
	require.NoError(t, net.SetBranchRing(external, 1))
	require.NoError(t, net.SetSelfPTDF(external, 0.3))

	sets := setselect.Build(net, 1e-5)
	assert.Equal(t, []int{external}, sets.R)
	assert.Equal(t, []int{internal}, sets.T)
	assert.Equal(t, []int{external, internal}, sets.I)
}
