package elecmatrix

import (
	"github.com/katalvlaran/gridif/linalg"
	"github.com/katalvlaran/gridif/model"
)

// buildPATLRatio computes the M x M PATL ratio matrix: row i col j =
// PATL[j]/PATL[i] when PATL[i] > 0, else row i is all 1.0 (an
// effectively-unlimited reference branch normalizes to no-op).
func buildPATLRatio(net *model.Network) (*linalg.Dense, error) {
	branches := net.Branches()
	m := len(branches)
	out, err := linalg.NewDense(m, m)
	if err != nil {
		return nil, matErrorf("buildPATLRatio", err)
	}

	for i := 0; i < m; i++ {
		patlI := branches[i].PATL
		for j := 0; j < m; j++ {
			if patlI > 0 {
				_ = out.Set(i, j, branches[j].PATL/patlI)
			} else {
				_ = out.Set(i, j, 1.0)
			}
		}
	}

	return out, nil
}
