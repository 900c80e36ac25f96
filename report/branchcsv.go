package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/katalvlaran/gridif/ifsearch"
	"github.com/katalvlaran/gridif/model"
)

var branchCSVHeader = []string{
	"R_name", "V_kV", "country", "type", "norm_IF2", "IF2", "PATL_R_MW", "ring_R",
	"I_for_norm", "T_for_norm", "I_for_IF", "T_for_IF", "PATL_T_for_norm_MW",
}

func branchLabel(net *model.Network, idx int) string {
	if idx == ifsearch.NoIndex {
		return ""
	}
	b, err := net.Branch(idx)
	if err != nil {
		return ""
	}
	if b.DisplayName != "" {
		return b.DisplayName
	}
	return b.NameFrom + "-" + b.NameTo
}

// WriteBranchCSV writes one row per Result in results, in the order
// given, per the branch IF schema of spec.md §6.
func WriteBranchCSV(w io.Writer, net *model.Network, results []ifsearch.Result) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(branchCSVHeader); err != nil {
		return fmt.Errorf("report.WriteBranchCSV: %w", err)
	}

	for _, res := range results {
		b, err := net.Branch(res.R)
		if err != nil {
			return fmt.Errorf("report.WriteBranchCSV: %w", err)
		}

		patlTNorm := 0.0
		if res.TNorm != ifsearch.NoIndex {
			if t, err := net.Branch(res.TNorm); err == nil {
				patlTNorm = t.PATL
			}
		}

		row := []string{
			branchLabel(net, res.R),
			fmtFloat(b.VBase),
			b.Country,
			b.Type.String(),
			fmtFloat(res.NormIFN2),
			fmtFloat(res.IFN2),
			fmtFloat(b.PATL),
			fmt.Sprintf("%d", b.Ring),
			branchLabel(net, res.INorm),
			branchLabel(net, res.TNorm),
			branchLabel(net, res.I),
			branchLabel(net, res.T),
			fmtFloat(patlTNorm),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("report.WriteBranchCSV: %w", err)
		}
	}

	return nil
}

func fmtFloat(v float64) string {
	return fmt.Sprintf("%.6f", v)
}
