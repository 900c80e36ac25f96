// Package elecmatrix builds the dense sensitivity matrices the influence
// factor search runs against: the nodal susceptance matrix B, its inverse,
// the Injection Shift Factor matrix (ISF), the Power Transfer Distribution
// Factor matrix (PTDF) with its self-PTDF diagonal, the Line Outage
// Distribution Factor matrix (LODF), the PATL ratio matrix, and the
// generator variant of LODF.
//
// Every matrix here is indexed by the dense node/branch indices the
// topology package's reduction pass produces; Build takes a reduced
// Network and returns a Set holding all of them together, since every
// later stage needs several at once and they share row/column indexing.
package elecmatrix
