package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridif/fixtures"
	"github.com/katalvlaran/gridif/ifsearch"
	"github.com/katalvlaran/gridif/report"
)

func TestWriteBranchCSV(t *testing.T) {
	net := fixtures.TwoNodeTrivial()
	results := []ifsearch.Result{
		{R: 0, I: ifsearch.NoIndex, T: ifsearch.NoIndex, INorm: ifsearch.NoIndex, TNorm: ifsearch.NoIndex, IFN1: 1.0},
	}

	var buf bytes.Buffer
	require.NoError(t, report.WriteBranchCSV(&buf, net, results))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "R_name,V_kV,country,type"))
	assert.Contains(t, out, "N1-N2")
}

func TestWriteGeneratorCSV_OmitsEmpty(t *testing.T) {
	net := fixtures.TwoNodeTrivial()
	results := []ifsearch.GenResult{
		{Gen: 0, IF: 0, Pairs: nil},
	}

	var buf bytes.Buffer
	require.NoError(t, report.WriteGeneratorCSV(&buf, net, results))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 1) // header only
}

func TestWriteTopologySnapshot(t *testing.T) {
	net := fixtures.Triangle()
	var buf bytes.Buffer
	require.NoError(t, report.WriteTopologySnapshot(&buf, net))
	assert.Contains(t, buf.String(), "control_area: A")
}
