package gridio

import "github.com/katalvlaran/gridif/model"

// SplitThreeWinding expands tw per spec.md §9: if only two windings are
// relevant, produce a single two-winding equivalent with summed reactance
// and the minimum of the two PATLs; if all three are relevant, produce
// three star branches meeting at a synthesized T-node named tw.Name+"_T".
// A record with fewer than two relevant windings produces nothing.
func SplitThreeWinding(tw ThreeWindingRecord) []BranchRecord {
	windings := []Winding{tw.A, tw.B, tw.C}
	var relevant []Winding
	for _, w := range windings {
		if w.Relevant {
			relevant = append(relevant, w)
		}
	}

	switch len(relevant) {
	case 2:
		a, b := relevant[0], relevant[1]
		patl := a.PATL
		if b.PATL < patl {
			patl = b.PATL
		}
		vBase := a.VBase
		if b.VBase > vBase {
			vBase = b.VBase
		}
		return []BranchRecord{{
			From:      a.Bus,
			To:        b.Bus,
			Impedance: a.Impedance + b.Impedance,
			PATL:      patl,
			VBase:     vBase,
			Type:      model.Transformer3W2,
		}}
	case 3:
		tNode := tw.Name + "_T"
		out := make([]BranchRecord, 0, 3)
		for _, w := range relevant {
			out = append(out, BranchRecord{
				From:      tNode,
				To:        w.Bus,
				Impedance: w.Impedance,
				PATL:      w.PATL,
				VBase:     w.VBase,
				Type:      model.Transformer3W3,
			})
		}
		return out
	default:
		return nil
	}
}
