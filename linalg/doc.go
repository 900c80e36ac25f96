// Package linalg provides the dense matrix type and the small set of linear
// algebra operations the contingency-analysis pipeline needs: construction
// of the nodal susceptance matrix, its inverse (the ISF path matrix), and
// submatrix extraction for the per-set sensitivity matrices.
//
// Dense stores its backing array row-major in a single flat slice rather
// than [][]float64, trading one indirection for one bounds-checked
// multiply-add per access and a single contiguous allocation per matrix.
// LU decomposition is Doolittle's method without partial pivoting: grid
// admittance matrices are diagonally dominant by construction, so pivoting
// buys numerical safety the domain doesn't need and costs determinism the
// domain does need, since two runs over the same topology must produce
// bit-identical sensitivity factors.
package linalg
