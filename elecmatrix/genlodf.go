package elecmatrix

import (
	"github.com/katalvlaran/gridif/linalg"
	"github.com/katalvlaran/gridif/model"
)

// buildGenLODF computes, for every generator g, the power-weighted average
// injection shift of g's balancing peers (every other generator in g's
// country) and writes it as column g of an M x NumGenerators matrix.
// Generators with no balancing peer get an all-zero column; logf is called
// once per such generator with a PolicyWarning-style message. A network
// with no generators yields a nil matrix.
func buildGenLODF(net *model.Network, isf *linalg.Dense, logf func(string)) (*linalg.Dense, error) {
	if logf == nil {
		logf = func(string) {}
	}

	gens := net.Generators()
	if len(gens) == 0 {
		return nil, nil
	}
	m := isf.Rows()
	out, err := linalg.NewDense(m, len(gens))
	if err != nil {
		return nil, matErrorf("buildGenLODF", err)
	}

	byCountry := make(map[string][]int)
	for _, g := range gens {
		if g.Node == -1 {
			continue
		}
		byCountry[g.Country] = append(byCountry[g.Country], g.Index)
	}

	for _, g := range gens {
		if g.Node == -1 {
			continue
		}
		var peers []int
		var totalPower float64
		for _, peerIdx := range byCountry[g.Country] {
			if peerIdx == g.Index {
				continue
			}
			peer := gens[peerIdx]
			peers = append(peers, peerIdx)
			totalPower += peer.Power
		}
		if len(peers) == 0 || totalPower == 0 {
			logf("generator " + g.DisplayName + ": no balancing peer in country " + g.Country)
			continue
		}

		for row := 0; row < m; row++ {
			isfG, err := isf.At(row, g.Node)
			if err != nil {
				return nil, matErrorf("buildGenLODF", err)
			}
			var acc float64
			for _, peerIdx := range peers {
				peer := gens[peerIdx]
				isfB, err := isf.At(row, peer.Node)
				if err != nil {
					return nil, matErrorf("buildGenLODF", err)
				}
				acc += (peer.Power / totalPower) * (isfB - isfG)
			}
			_ = out.Set(row, g.Index, acc)
		}
	}

	return out, nil
}
