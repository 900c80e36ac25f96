package linalg

// Dense is a row-major dense matrix backed by a single flat slice.
type Dense struct {
	rows, cols int
	data       []float64
}

// NewDense returns a zero-filled rows x cols matrix. Returns
// ErrInvalidDimensions if rows or cols is non-positive.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, linalgErrorf("NewDense", ErrInvalidDimensions)
	}
	return &Dense{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}, nil
}

// Identity returns the n x n identity matrix.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, linalgErrorf("Identity", err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.cols }

func (m *Dense) inBounds(r, c int) bool {
	return r >= 0 && r < m.rows && c >= 0 && c < m.cols
}

// At returns the value at (r, c). Returns ErrOutOfRange if out of bounds.
func (m *Dense) At(r, c int) (float64, error) {
	if !m.inBounds(r, c) {
		return 0, linalgErrorf("At", ErrOutOfRange)
	}
	return m.data[r*m.cols+c], nil
}

// MustAt is At without an error return, for call sites that have already
// validated bounds (e.g. tight inner loops over a known range).
func (m *Dense) MustAt(r, c int) float64 {
	return m.data[r*m.cols+c]
}

// Set assigns v to (r, c). Returns ErrOutOfRange if out of bounds.
func (m *Dense) Set(r, c int, v float64) error {
	if !m.inBounds(r, c) {
		return linalgErrorf("Set", ErrOutOfRange)
	}
	m.data[r*m.cols+c] = v
	return nil
}

// Add accumulates v into (r, c), used by the nodal-admittance assembly pass
// where multiple branches can contribute to the same cell.
func (m *Dense) Add(r, c int, v float64) error {
	if !m.inBounds(r, c) {
		return linalgErrorf("Add", ErrOutOfRange)
	}
	m.data[r*m.cols+c] += v
	return nil
}

// Clone returns a deep copy of m.
func (m *Dense) Clone() *Dense {
	out := &Dense{rows: m.rows, cols: m.cols, data: make([]float64, len(m.data))}
	copy(out.data, m.data)
	return out
}

// Row returns a copy of row r.
func (m *Dense) Row(r int) ([]float64, error) {
	if r < 0 || r >= m.rows {
		return nil, linalgErrorf("Row", ErrOutOfRange)
	}
	out := make([]float64, m.cols)
	copy(out, m.data[r*m.cols:(r+1)*m.cols])
	return out, nil
}

// Induced returns the submatrix formed by selecting rows and cols, in the
// given order — row i, col j of the result is m.At(rows[i], cols[j]). No
// other package calls it; elecmatrix and ifsearch read the full matrices
// element by element.
func (m *Dense) Induced(rows, cols []int) (*Dense, error) {
	out, err := NewDense(len(rows), len(cols))
	if err != nil {
		return nil, linalgErrorf("Induced", err)
	}
	for i, r := range rows {
		if r < 0 || r >= m.rows {
			return nil, linalgErrorf("Induced", ErrOutOfRange)
		}
		for j, c := range cols {
			if c < 0 || c >= m.cols {
				return nil, linalgErrorf("Induced", ErrOutOfRange)
			}
			out.data[i*out.cols+j] = m.data[r*m.cols+c]
		}
	}
	return out, nil
}

// MulVec returns m * v. Returns ErrInvalidDimensions if len(v) != m.cols.
func (m *Dense) MulVec(v []float64) ([]float64, error) {
	if len(v) != m.cols {
		return nil, linalgErrorf("MulVec", ErrInvalidDimensions)
	}
	out := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		var sum float64
		base := i * m.cols
		for j := 0; j < m.cols; j++ {
			sum += m.data[base+j] * v[j]
		}
		out[i] = sum
	}
	return out, nil
}

// Mul returns m * other. Returns ErrInvalidDimensions if the inner
// dimensions disagree.
func (m *Dense) Mul(other *Dense) (*Dense, error) {
	if m.cols != other.rows {
		return nil, linalgErrorf("Mul", ErrInvalidDimensions)
	}
	out, err := NewDense(m.rows, other.cols)
	if err != nil {
		return nil, linalgErrorf("Mul", err)
	}
	for i := 0; i < m.rows; i++ {
		for k := 0; k < m.cols; k++ {
			a := m.data[i*m.cols+k]
			if a == 0 {
				continue
			}
			for j := 0; j < other.cols; j++ {
				out.data[i*out.cols+j] += a * other.data[k*other.cols+j]
			}
		}
	}
	return out, nil
}
