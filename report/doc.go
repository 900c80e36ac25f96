// Package report emits the two fixed CSV schemas of spec.md §6 (one row
// per non-radial external branch, one row per external generator with
// no balancing peer omitted) plus a YAML topology snapshot for
// reproducibility checks. This package gives the "Result Emitter
// (external)" boundary spec.md §2 names a concrete, testable
// implementation.
package report
