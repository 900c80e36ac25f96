// Package topology turns a raw, dirty model.Network into the canonical,
// connected, ring-indexed graph the matrix engine requires: coupler
// contraction or conversion, tie-line merging at X-nodes, self-loop
// removal, ring-0 flood fill from the control area's most-connected node,
// outer-ring BFS, pruning of unreachable components, and generator
// attachment.
//
// Reduce runs these stages in a fixed order and returns a new, reduced
// Network. The Network passed to it is mutated by the stages that work in
// place on it (coupler name rewriting or retyping, and, in coupler
// conversion mode, tie-line classification); ring assignment and the
// final Rebuild pass work on the intermediate Networks it produces.
package topology
