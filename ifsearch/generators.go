package ifsearch

import (
	"math"

	"github.com/katalvlaran/gridif/elecmatrix"
	"github.com/katalvlaran/gridif/setselect"
)

// SearchGenerators runs the generator variant of the influence-factor
// search, per spec.md §4.4: for each external generator, compose its own
// GenLODF column with every candidate second contingency i in I, and also
// considers the bare generator-only case (no second contingency) so that
// the N-1 consistency law of spec.md §8 — the generator-IF collapsing to
// IF_N1 when no i is used — holds without special-casing it outside the
// reduction.
//
// The normalized variant scales by the monitored branch's own PATL rather
// than a PATL ratio, since a generator carries no PATL of its own to form
// a ratio against.
func SearchGenerators(set *elecmatrix.Set, sets setselect.Sets) []GenResult {
	var out []GenResult

	for _, genIdx := range sets.RGens {
		out = append(out, searchOneGenerator(set, sets, genIdx))
	}

	return out
}

func searchOneGenerator(set *elecmatrix.Set, sets setselect.Sets, genIdx int) GenResult {
	res := GenResult{Gen: genIdx}

	type candidate struct {
		i int // NoIndex for the bare generator-loss case
	}
	candidates := append([]candidate{{i: NoIndex}}, func() []candidate {
		cs := make([]candidate, len(sets.I))
		for k, i := range sets.I {
			cs[k] = candidate{i: i}
		}
		return cs
	}()...)

	for _, cand := range candidates {
		var genAtI float64
		if cand.i != NoIndex {
			genAtI, _ = set.GenLODF.At(cand.i, genIdx)
		}

		for _, t := range sets.T {
			if t == cand.i {
				continue
			}
			lr, _ := set.GenLODF.At(t, genIdx)
			combined := lr
			if cand.i != NoIndex {
				lodfTI, _ := set.LODF.At(t, cand.i)
				combined += lodfTI * genAtI
			}
			absVal := math.Abs(combined)

			switch {
			case absVal > res.IF:
				res.IF = absVal
				res.Pairs = []ITPair{{I: cand.i, T: t}}
			case absVal == res.IF && absVal > 0:
				res.Pairs = append(res.Pairs, ITPair{I: cand.i, T: t})
			}

			t2, err := set.Net.Branch(t)
			var patl float64
			if err == nil {
				patl = t2.PATL
			}
			normVal := patl * absVal
			switch {
			case normVal > res.NormIF:
				res.NormIF = normVal
				res.NormPairs = []ITPair{{I: cand.i, T: t}}
			case normVal == res.NormIF && normVal > 0:
				res.NormPairs = append(res.NormPairs, ITPair{I: cand.i, T: t})
			}
		}
	}

	return res
}
