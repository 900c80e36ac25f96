package elecmatrix

import "github.com/katalvlaran/gridif/linalg"

// buildLODF computes the M x M Line Outage Distribution Factor matrix: for
// each branch b with self-PTDF < 1-eps, column b = PTDF[:,b] / (1 -
// selfPTDF[b]), diagonal forced to 0; radial/island-forming branches get
// an all-zero column.
func buildLODF(ptdf *linalg.Dense, selfPTDF []float64, eps float64) (*linalg.Dense, error) {
	m := ptdf.Rows()
	lodf, err := linalg.NewDense(m, m)
	if err != nil {
		return nil, matErrorf("buildLODF", err)
	}

	for b := 0; b < m; b++ {
		if selfPTDF[b] >= 1-eps {
			continue // column stays zero: radial branch
		}
		denom := 1 - selfPTDF[b]
		for row := 0; row < m; row++ {
			v, err := ptdf.At(row, b)
			if err != nil {
				return nil, matErrorf("buildLODF", err)
			}
			_ = lodf.Set(row, b, v/denom)
		}
		_ = lodf.Set(b, b, 0)
	}

	return lodf, nil
}
