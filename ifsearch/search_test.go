package ifsearch_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridif/elecmatrix"
	"github.com/katalvlaran/gridif/ifsearch"
	"github.com/katalvlaran/gridif/model"
	"github.com/katalvlaran/gridif/setselect"
)

// TestSearch_TwoNodeTrivial builds spec.md §8 scenario 1: two buses joined
// by two equal parallel lines, R (external, ring 1) and I (internal,
// ring 0, so it is the only monitored element). I=R is blocked by
// self-elimination and the (R, I) pair has D == 0, so the test expects
// LODF[I,R] == 1 and IF_N1 == 1 with no valid N-2 term.
func TestSearch_TwoNodeTrivial(t *testing.T) {
	net := model.NewNetwork("A")
	_, err := net.AddNode("N1", "A")
	require.NoError(t, err)
	_, err = net.AddNode("N2", "B")
	require.NoError(t, err)

	r, err := net.AddBranch(model.BranchSpec{NameFrom: "N1", NameTo: "N2", Impedance: 0.1, PATL: 100, VBase: 400, Type: model.Line})
	require.NoError(t, err)
	i, err := net.AddBranch(model.BranchSpec{NameFrom: "N1", NameTo: "N2", Impedance: 0.1, PATL: 100, VBase: 400, Type: model.Line})
	require.NoError(t, err)

	require.NoError(t, net.SetBranchRing(r, 1))
	require.NoError(t, net.SetBranchRing(i, 0))
	require.NoError(t, net.SetNodeRing(0, 0))
	require.NoError(t, net.SetNodeConnected(0, true))
	require.NoError(t, net.SetNodeRing(1, 1))
	require.NoError(t, net.SetNodeConnected(1, true))

	set, err := elecmatrix.Build(net, 1e-5, nil)
	require.NoError(t, err)
	for _, b := range net.Branches() {
		require.NoError(t, net.SetSelfPTDF(b.Index, set.SelfPTDF[b.Index]))
	}

	sets := setselect.Build(net, 1e-5)
	require.Len(t, sets.R, 1)

	results, err := ifsearch.Search(context.Background(), set, sets, 1e-5)
	require.NoError(t, err)
	require.Len(t, results, 1)

	lodfIR, err := set.LODF.At(i, r)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, lodfIR, 1e-9)

	res := results[0]
	assert.Equal(t, r, res.R)
	assert.InDelta(t, 1.0, res.IFN1, 1e-9)
	assert.Equal(t, ifsearch.NoIndex, res.I)
	assert.Equal(t, ifsearch.NoIndex, res.T)
}

// TestSearch_AsymmetricN2Formula builds a 4-node mesh (a loop plus both
// diagonals, so no double outage islands a node) with distinct branch
// reactances (a plain triangle or any equal-impedance case would
// leave PTDF symmetric and pass under a transposed formula too). With a
// single candidate r, i, and t, Search's only valid N-2 term must equal
// the spec.md §4.4 closed form evaluated with the monitored element t as
// the PTDF row: PTDF_it = PTDF[t,i], PTDF_ri = PTDF[i,r], PTDF_rt =
// PTDF[t,r], PTDF_ir = PTDF[r,i].
func TestSearch_AsymmetricN2Formula(t *testing.T) {
	net := model.NewNetwork("A")
	for _, name := range []string{"N0", "N1", "N2", "N3"} {
		_, err := net.AddNode(name, "A")
		require.NoError(t, err)
	}

	r, err := net.AddBranch(model.BranchSpec{NameFrom: "N0", NameTo: "N1", Impedance: 0.20, PATL: 100, VBase: 400, Type: model.Line})
	require.NoError(t, err)
	i, err := net.AddBranch(model.BranchSpec{NameFrom: "N1", NameTo: "N2", Impedance: 0.10, PATL: 100, VBase: 400, Type: model.Line})
	require.NoError(t, err)
	tb, err := net.AddBranch(model.BranchSpec{NameFrom: "N2", NameTo: "N3", Impedance: 0.15, PATL: 100, VBase: 400, Type: model.Line})
	require.NoError(t, err)
	_, err = net.AddBranch(model.BranchSpec{NameFrom: "N3", NameTo: "N0", Impedance: 0.25, PATL: 100, VBase: 400, Type: model.Line})
	require.NoError(t, err)
	_, err = net.AddBranch(model.BranchSpec{NameFrom: "N1", NameTo: "N3", Impedance: 0.30, PATL: 100, VBase: 400, Type: model.Line})
	require.NoError(t, err)
	_, err = net.AddBranch(model.BranchSpec{NameFrom: "N0", NameTo: "N2", Impedance: 0.35, PATL: 100, VBase: 400, Type: model.Line})
	require.NoError(t, err)

	require.NoError(t, net.SetBranchRing(r, 1))

	set, err := elecmatrix.Build(net, 1e-5, nil)
	require.NoError(t, err)

	// Sanity check that this mesh actually exercises the asymmetry the
	// transpose bug hides: PTDF is not symmetric at the indices the
	// formula touches.
	ptdfTI, err := set.PTDF.At(tb, i)
	require.NoError(t, err)
	ptdfIT, err := set.PTDF.At(i, tb)
	require.NoError(t, err)
	assert.NotInDelta(t, ptdfTI, ptdfIT, 1e-9, "test fixture must have asymmetric PTDF to catch a transpose regression")

	sets := setselect.Sets{R: []int{r}, I: []int{i}, T: []int{tb}}

	results, err := ifsearch.Search(context.Background(), set, sets, 1e-5)
	require.NoError(t, err)
	require.Len(t, results, 1)

	res := results[0]
	require.Equal(t, i, res.I)
	require.Equal(t, tb, res.T)

	selfI, err := set.PTDF.At(i, i)
	require.NoError(t, err)
	selfR, err := set.PTDF.At(r, r)
	require.NoError(t, err)
	ptdfRI, err := set.PTDF.At(i, r) // PTDF_ri = PTDF[i,r]
	require.NoError(t, err)
	ptdfIR, err := set.PTDF.At(r, i) // PTDF_ir = PTDF[r,i]
	require.NoError(t, err)
	ptdfRT, err := set.PTDF.At(tb, r) // PTDF_rt = PTDF[t,r]
	require.NoError(t, err)
	ptdfIT2, err := set.PTDF.At(tb, i) // PTDF_it = PTDF[t,i]
	require.NoError(t, err)

	d := (1-selfI)*(1-selfR) - ptdfIR*ptdfRI
	expected := math.Abs((ptdfIT2*ptdfRI + (1-selfI)*ptdfRT) / d)

	assert.InDelta(t, expected, res.IFN2, 1e-9)
}

func TestSearch_EmptyR(t *testing.T) {
	net := model.NewNetwork("A")
	_, err := net.AddNode("N1", "A")
	require.NoError(t, err)

	sets := setselect.Sets{}
	_, err = ifsearch.Search(context.Background(), &elecmatrix.Set{Net: net}, sets, 1e-5)
	assert.ErrorIs(t, err, ifsearch.ErrEmptyR)
}
