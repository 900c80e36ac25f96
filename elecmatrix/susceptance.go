package elecmatrix

import (
	"github.com/katalvlaran/gridif/linalg"
	"github.com/katalvlaran/gridif/model"
)

// buildReducedB assembles the nodal susceptance matrix with the slack row
// and column removed, plus the node-index -> reduced-row mapping (slack
// itself maps to -1).
func buildReducedB(net *model.Network, slack int) (*linalg.Dense, []int, error) {
	n := net.NumNodes()
	reducedIndex := make([]int, n)
	next := 0
	for i := 0; i < n; i++ {
		if i == slack {
			reducedIndex[i] = -1
			continue
		}
		reducedIndex[i] = next
		next++
	}

	size := n - 1
	if size <= 0 {
		return nil, nil, matErrorf("buildReducedB", ErrNoBranches)
	}

	b, err := linalg.NewDense(size, size)
	if err != nil {
		return nil, nil, matErrorf("buildReducedB", err)
	}

	for _, br := range net.Branches() {
		if br.Impedance == 0 {
			continue
		}
		y := 1.0 / br.Impedance
		i, j := br.FromNode, br.ToNode
		ri, rj := reducedIndex[i], reducedIndex[j]

		if ri >= 0 {
			_ = b.Add(ri, ri, -y)
		}
		if rj >= 0 {
			_ = b.Add(rj, rj, -y)
		}
		if ri >= 0 && rj >= 0 {
			_ = b.Add(ri, rj, y)
			_ = b.Add(rj, ri, y)
		}
	}

	return b, reducedIndex, nil
}
