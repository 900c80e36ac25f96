package setselect

import (
	"sort"

	"github.com/katalvlaran/gridif/model"
)

// Sets holds the R, R_gens, T, and I partitions for one country's reduced
// network, each a slice of branch (or generator) indices.
type Sets struct {
	R     []int // ring >= 1, radial excluded
	RGens []int // generator country != control area
	T     []int // ring == 0, radial excluded
	I     []int // ring >= 1 branches in ring order, then ring == 0 branches, radial excluded
}

func isRadial(b *model.Branch, eps float64) bool {
	return b.SelfPTDF >= 1-eps
}

// Build partitions net's branches and generators per spec.md §4.3.
func Build(net *model.Network, eps float64) Sets {
	var r, t, iRing1Plus, iRing0 []int

	for _, b := range net.Branches() {
		if isRadial(b, eps) {
			continue
		}
		switch {
		case b.Ring == 0:
			t = append(t, b.Index)
			iRing0 = append(iRing0, b.Index)
		case b.Ring >= 1:
			r = append(r, b.Index)
			iRing1Plus = append(iRing1Plus, b.Index)
		}
	}

	sort.Slice(iRing1Plus, func(a, c int) bool {
		ba, _ := net.Branch(iRing1Plus[a])
		bc, _ := net.Branch(iRing1Plus[c])
		if ba.Ring != bc.Ring {
			return ba.Ring < bc.Ring
		}
		return ba.Index < bc.Index
	})

	i := make([]int, 0, len(iRing1Plus)+len(iRing0))
	i = append(i, iRing1Plus...)
	i = append(i, iRing0...)

	var rGens []int
	for _, g := range net.Generators() {
		if g.Node == -1 {
			continue
		}
		if g.Country != net.ControlArea() {
			rGens = append(rGens, g.Index)
		}
	}

	return Sets{R: r, RGens: rGens, T: t, I: i}
}

// ByRing groups R's elements into ring layers in ascending ring order, for
// the IF search's ring-layered processing.
func (s Sets) ByRing(net *model.Network) [][]int {
	byRing := make(map[int][]int)
	maxRing := 0
	for _, idx := range s.R {
		b, err := net.Branch(idx)
		if err != nil {
			continue
		}
		byRing[b.Ring] = append(byRing[b.Ring], idx)
		if b.Ring > maxRing {
			maxRing = b.Ring
		}
	}
	var layers [][]int
	for ring := 1; ring <= maxRing; ring++ {
		if layer, ok := byRing[ring]; ok {
			layers = append(layers, layer)
		}
	}
	return layers
}
