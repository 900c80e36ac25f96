package ifsearch

import (
	"context"
	"math"

	"github.com/katalvlaran/gridif/elecmatrix"
	"github.com/katalvlaran/gridif/setselect"
)

// Search runs the full N-1/N-2 influence-factor scan for one country.
// denomEps gates the D-near-zero skip rule in the N-2 closed form;
// radialEps has already been applied by setselect.Build to exclude radial
// elements from R/T/I. ctx is checked between ring layers against the
// per-country wall-clock budget described in spec.md §5.
func Search(ctx context.Context, set *elecmatrix.Set, sets setselect.Sets, denomEps float64) ([]Result, error) {
	if len(sets.R) == 0 {
		return nil, searchErrorf("Search", ErrEmptyR)
	}

	layers := sets.ByRing(set.Net)
	results := make([]Result, 0, len(sets.R))

	for _, layer := range layers {
		select {
		case <-ctx.Done():
			return nil, searchErrorf("Search", ErrBudgetExceeded)
		default:
		}

		for _, r := range layer {
			results = append(results, searchOne(set, sets, r, denomEps))
		}
	}

	return results, nil
}

func searchOne(set *elecmatrix.Set, sets setselect.Sets, r int, denomEps float64) Result {
	res := Result{
		R:     r,
		I:     NoIndex,
		T:     NoIndex,
		INorm: NoIndex,
		TNorm: NoIndex,
	}

	// N-1 fallback, always computed.
	for _, t := range sets.T {
		if t == r {
			continue
		}
		lodfTR, _ := set.LODF.At(t, r)
		absVal := math.Abs(lodfTR)
		if absVal > res.IFN1 {
			res.IFN1 = absVal
		}
		ratio, _ := set.PATLRatio.At(r, t)
		normVal := math.Abs(lodfTR * ratio)
		if normVal > res.NormIFN1 {
			res.NormIFN1 = normVal
		}
	}

	selfR, _ := set.PTDF.At(r, r)

	for _, i := range sets.I {
		if i == r {
			continue
		}
		selfI, _ := set.PTDF.At(i, i)
		ptdfIR, _ := set.PTDF.At(r, i)
		ptdfRI, _ := set.PTDF.At(i, r)

		d := (1-selfI)*(1-selfR) - ptdfIR*ptdfRI
		if math.Abs(d) <= denomEps {
			continue
		}

		var bestAbs, bestNorm, bestNormAbs float64
		bestT, bestNormT := NoIndex, NoIndex

		for _, t := range sets.T {
			if t == r || t == i {
				continue
			}
			ptdfIT, _ := set.PTDF.At(t, i)
			ptdfRT, _ := set.PTDF.At(t, r)

			ifRIT := (ptdfIT*ptdfRI + (1-selfI)*ptdfRT) / d
			absVal := math.Abs(ifRIT)

			if absVal > bestAbs {
				bestAbs = absVal
				bestT = t
			}

			ratio, _ := set.PATLRatio.At(r, t)
			normVal := ratio * absVal
			if normVal > bestNorm {
				bestNorm = normVal
				bestNormT = t
				bestNormAbs = absVal
			}
		}

		if bestT != NoIndex && bestAbs > res.IFN2 {
			res.IFN2 = bestAbs
			res.I = i
			res.T = bestT
		}
		if bestNormT != NoIndex && bestNorm > res.NormIFN2 {
			res.NormIFN2 = bestNorm
			res.INorm = i
			res.TNorm = bestNormT
			_ = bestNormAbs
		}
	}

	if res.INorm != NoIndex && res.TNorm != NoIndex {
		res.LODFTNormINorm, _ = set.LODF.At(res.TNorm, res.INorm)
		res.LODFRINorm, _ = set.LODF.At(r, res.INorm)
	}

	return res
}
