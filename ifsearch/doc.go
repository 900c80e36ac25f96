// Package ifsearch is the influence-factor search engine: the triply
// nested scan over (R, I, T) that finds, for every external branch r, the
// worst-case N-2 influence factor it can cause on a monitored internal
// branch t when combined with a second contingency i, plus the N-1
// fallback and the generator variant of the same search.
//
// Search processes R in ascending ring layers, as spec.md §4.4 describes;
// within a layer it iterates r and t in ascending index order and i in
// the order of the I set (ring >= 1 branches by ring, then index, then
// ring-0 branches by index), so that the first-seen-wins tie-break rule
// is deterministic regardless of how the layer's work is scheduled.
package ifsearch
