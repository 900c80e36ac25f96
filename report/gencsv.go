package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/gridif/ifsearch"
	"github.com/katalvlaran/gridif/model"
)

var generatorCSVHeader = []string{
	"gen_name", "power_MW", "IF", "I_branches", "T_branches",
	"norm_IF", "I_branches_norm", "T_branches_norm",
}

func joinBranches(net *model.Network, pairs []ifsearch.ITPair, pickI bool) string {
	var parts []string
	for _, p := range pairs {
		idx := p.T
		if pickI {
			idx = p.I
		}
		if idx == ifsearch.NoIndex {
			parts = append(parts, "")
			continue
		}
		parts = append(parts, branchLabel(net, idx))
	}
	return strings.Join(parts, ";")
}

// WriteGeneratorCSV writes one row per GenResult, per the generator IF
// schema of spec.md §6. A generator with no balancing peer (IF == 0 and
// no pairs) is omitted entirely, per spec.md §8 scenario 6.
func WriteGeneratorCSV(w io.Writer, net *model.Network, results []ifsearch.GenResult) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(generatorCSVHeader); err != nil {
		return fmt.Errorf("report.WriteGeneratorCSV: %w", err)
	}

	for _, res := range results {
		if len(res.Pairs) == 0 {
			continue
		}
		g, err := net.Generator(res.Gen)
		if err != nil {
			return fmt.Errorf("report.WriteGeneratorCSV: %w", err)
		}

		row := []string{
			g.DisplayName,
			fmtFloat(g.Power),
			fmtFloat(res.IF),
			joinBranches(net, res.Pairs, true),
			joinBranches(net, res.Pairs, false),
			fmtFloat(res.NormIF),
			joinBranches(net, res.NormPairs, true),
			joinBranches(net, res.NormPairs, false),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("report.WriteGeneratorCSV: %w", err)
		}
	}

	return nil
}
