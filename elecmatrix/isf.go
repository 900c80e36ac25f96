package elecmatrix

import (
	"github.com/katalvlaran/gridif/linalg"
	"github.com/katalvlaran/gridif/model"
)

// buildISF computes the M x N Injection Shift Factor matrix from binv, the
// full B'^-1 that Build (set.go) materializes with linalg.Inverse. ISF rows
// combine two binv rows, so buildISF only does the per-branch row
// assembly: row b = (-1/x_b) * (binv[from,:] - binv[to,:]), with the slack
// column and the slack node's own row contribution left at zero. Branches
// with zero impedance keep an all-zero row.
func buildISF(net *model.Network, binv *linalg.Dense, reducedIndex []int) (*linalg.Dense, error) {
	n := net.NumNodes()
	branches := net.Branches()
	m := len(branches)

	isf, err := linalg.NewDense(m, n)
	if err != nil {
		return nil, matErrorf("buildISF", err)
	}

	binvRow := func(nodeIdx int) []float64 {
		ri := reducedIndex[nodeIdx]
		if ri < 0 {
			return nil // slack: zero row vector per spec.md §4.2
		}
		row, _ := binv.Row(ri)
		return row
	}

	for _, b := range branches {
		if b.Impedance == 0 {
			continue
		}
		negInvX := -1.0 / b.Impedance
		rowFrom := binvRow(b.FromNode)
		rowTo := binvRow(b.ToNode)

		for k := 0; k < n; k++ {
			ri := reducedIndex[k]
			if ri < 0 {
				continue // slack column stays zero
			}
			var vf, vt float64
			if rowFrom != nil {
				vf = rowFrom[ri]
			}
			if rowTo != nil {
				vt = rowTo[ri]
			}
			_ = isf.Set(b.Index, k, negInvX*(vf-vt))
		}
	}

	return isf, nil
}
