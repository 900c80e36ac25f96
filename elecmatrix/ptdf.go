package elecmatrix

import (
	"github.com/katalvlaran/gridif/linalg"
	"github.com/katalvlaran/gridif/model"
)

// buildPTDF derives the M x M PTDF matrix column-by-column from ISF:
// PTDF[:,b] = ISF[:, node_from(b)] - ISF[:, node_to(b)]. The diagonal is
// each branch's self-PTDF.
func buildPTDF(net *model.Network, isf *linalg.Dense) (*linalg.Dense, []float64, error) {
	branches := net.Branches()
	m := len(branches)

	ptdf, err := linalg.NewDense(m, m)
	if err != nil {
		return nil, nil, matErrorf("buildPTDF", err)
	}

	selfPTDF := make([]float64, m)

	for _, b := range branches {
		for row := 0; row < m; row++ {
			vf, err := isf.At(row, b.FromNode)
			if err != nil {
				return nil, nil, matErrorf("buildPTDF", err)
			}
			vt, err := isf.At(row, b.ToNode)
			if err != nil {
				return nil, nil, matErrorf("buildPTDF", err)
			}
			_ = ptdf.Set(row, b.Index, vf-vt)
		}
		diag, err := ptdf.At(b.Index, b.Index)
		if err != nil {
			return nil, nil, matErrorf("buildPTDF", err)
		}
		selfPTDF[b.Index] = diag
	}

	return ptdf, selfPTDF, nil
}
