package gridio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridif/gridio"
	"github.com/katalvlaran/gridif/model"
)

func TestSplitThreeWinding_TwoRelevant(t *testing.T) {
	tw := gridio.ThreeWindingRecord{
		Name: "TX1",
		A:    gridio.Winding{Bus: "B1", Impedance: 0.05, PATL: 100, VBase: 400, Relevant: true},
		B:    gridio.Winding{Bus: "B2", Impedance: 0.03, PATL: 80, VBase: 220, Relevant: true},
		C:    gridio.Winding{Bus: "B3", Impedance: 0.02, PATL: 50, VBase: 110, Relevant: false},
	}
	branches := gridio.SplitThreeWinding(tw)
	require.Len(t, branches, 1)
	assert.Equal(t, model.Transformer3W2, branches[0].Type)
	assert.InDelta(t, 0.08, branches[0].Impedance, 1e-12)
	assert.Equal(t, 80.0, branches[0].PATL)
}

func TestSplitThreeWinding_ThreeRelevant(t *testing.T) {
	tw := gridio.ThreeWindingRecord{
		Name: "TX2",
		A:    gridio.Winding{Bus: "B1", Impedance: 0.05, PATL: 100, VBase: 400, Relevant: true},
		B:    gridio.Winding{Bus: "B2", Impedance: 0.03, PATL: 80, VBase: 220, Relevant: true},
		C:    gridio.Winding{Bus: "B3", Impedance: 0.02, PATL: 50, VBase: 110, Relevant: true},
	}
	branches := gridio.SplitThreeWinding(tw)
	require.Len(t, branches, 3)
	for _, b := range branches {
		assert.Equal(t, "TX2_T", b.From)
		assert.Equal(t, model.Transformer3W3, b.Type)
	}
}

func TestBuild_IATLRule(t *testing.T) {
	raw := &gridio.RawGrid{
		Branches: []gridio.BranchRecord{
			{From: "N1_A", To: "N2_A", Impedance: 0.1, IATL: 8000, VBase: 400, Type: model.Line},
		},
	}
	net, err := gridio.Build(raw, "A", func(name string) string { return "A" })
	require.NoError(t, err)
	require.Equal(t, 1, net.NumBranches())
	b, err := net.Branch(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, b.PATL) // IATL 8000 A > 5000 A
}

// TestBuild_IATLRule_IsAmpereThreshold pins the rule to raw amperes, not a
// voltage-derived MW figure: a moderate IATL on a very high base voltage
// must stay finite even though its MW-equivalent is large, and a large
// IATL on a low base voltage must still be zeroed even though its
// MW-equivalent is modest.
func TestBuild_IATLRule_IsAmpereThreshold(t *testing.T) {
	raw := &gridio.RawGrid{
		Branches: []gridio.BranchRecord{
			// IATL 4000 A < 5000 A, but 4000*sqrt(3)*900/1000 ~= 6235 MW > 5000.
			{From: "N1_A", To: "N2_A", Impedance: 0.1, IATL: 4000, PATL: 6235, VBase: 900, Type: model.Line},
			// IATL 5500 A > 5000 A, but 5500*sqrt(3)*400/1000 ~= 3811 MW < 5000.
			{From: "N2_A", To: "N3_A", Impedance: 0.1, IATL: 5500, PATL: 3811, VBase: 400, Type: model.Line},
		},
	}
	net, err := gridio.Build(raw, "A", func(name string) string { return "A" })
	require.NoError(t, err)
	require.Equal(t, 2, net.NumBranches())

	b0, err := net.Branch(0)
	require.NoError(t, err)
	assert.Equal(t, 6235.0, b0.PATL) // kept: IATL below the ampere threshold

	b1, err := net.Branch(1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, b1.PATL) // zeroed: IATL above the ampere threshold
}
