package linalg

// LU holds the Doolittle decomposition of a square matrix A = L*U, L unit
// lower-triangular, U upper-triangular, both stored packed into a single
// n x n buffer (L's sub-diagonal and U's diagonal-and-above).
type LU struct {
	n     int
	combo []float64
}

// Decompose factors a into an LU. Returns ErrNotSquare if a isn't square,
// ErrSingular if a zero pivot is encountered.
//
// No partial pivoting is performed; see the package doc comment for why.
func Decompose(a *Dense) (*LU, error) {
	if a.rows != a.cols {
		return nil, linalgErrorf("Decompose", ErrNotSquare)
	}
	n := a.rows
	combo := make([]float64, n*n)
	copy(combo, a.data)

	for k := 0; k < n; k++ {
		pivot := combo[k*n+k]
		if pivot == 0 {
			return nil, linalgErrorf("Decompose", ErrSingular)
		}
		for i := k + 1; i < n; i++ {
			factor := combo[i*n+k] / pivot
			combo[i*n+k] = factor
			for j := k + 1; j < n; j++ {
				combo[i*n+j] -= factor * combo[k*n+j]
			}
		}
	}

	return &LU{n: n, combo: combo}, nil
}

// solve returns x such that A*x = b, via forward then backward substitution
// against the packed L/U buffer.
func (lu *LU) solve(b []float64) []float64 {
	n := lu.n
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := b[i]
		for j := 0; j < i; j++ {
			sum -= lu.combo[i*n+j] * y[j]
		}
		y[i] = sum
	}

	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := y[i]
		for j := i + 1; j < n; j++ {
			sum -= lu.combo[i*n+j] * x[j]
		}
		x[i] = sum / lu.combo[i*n+i]
	}
	return x
}

// Solve returns x such that A*x = b for the A this LU was decomposed from.
// Returns ErrInvalidDimensions if len(b) != n.
func (lu *LU) Solve(b []float64) ([]float64, error) {
	if len(b) != lu.n {
		return nil, linalgErrorf("Solve", ErrInvalidDimensions)
	}
	return lu.solve(b), nil
}

// Inverse returns A^-1 for the A this LU was decomposed from, solving one
// unit basis vector per column.
func (lu *LU) Inverse() *Dense {
	n := lu.n
	out, _ := NewDense(n, n)
	e := make([]float64, n)
	for col := 0; col < n; col++ {
		for i := range e {
			e[i] = 0
		}
		e[col] = 1
		x := lu.solve(e)
		for row := 0; row < n; row++ {
			out.data[row*n+col] = x[row]
		}
	}
	return out
}

// Inverse decomposes a and returns its inverse directly. Returns
// ErrNotSquare or ErrSingular as Decompose would.
func Inverse(a *Dense) (*Dense, error) {
	lu, err := Decompose(a)
	if err != nil {
		return nil, linalgErrorf("Inverse", err)
	}
	return lu.Inverse(), nil
}
