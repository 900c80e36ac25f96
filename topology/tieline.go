package topology

import (
	"github.com/katalvlaran/gridif/model"
)

// MergeTieLines eliminates X-nodes by merging their incident half-lines
// into MergedTieLine branches, per spec.md §4.1. It does not mutate net:
// nodes and branches to delete are collected first and the result is
// produced via Rebuild, so deleted X-nodes and their consumed branches
// actually disappear rather than being merely marked.
//
// logf receives a human-readable message for every PolicyWarning/Degenerate
// event (order mismatch, odd branch counts, unresolved neighbors); callers
// pass a no-op to discard them.
func MergeTieLines(net *model.Network, eps float64, logf func(string)) (*model.Network, error) {
	if logf == nil {
		logf = func(string) {}
	}

	type pendingMerge struct {
		nodeIdx     int
		branchIdxs  []int
		newBranches []model.BranchSpec
	}

	dropNode := make(map[int]bool)
	dropBranch := make(map[int]bool)
	var toAdd []model.BranchSpec

	for _, node := range net.Nodes() {
		if node.Country != model.CountryX {
			continue
		}
		incident := make([]int, 0, len(node.Branches))
		for _, bi := range node.Branches {
			if !dropBranch[bi] {
				incident = append(incident, bi)
			}
		}

		switch {
		case len(incident) == 0:
			// nothing to do; will be pruned later as an orphan.
		case len(incident) == 1:
			dropNode[node.Index] = true
			dropBranch[incident[0]] = true
		case len(incident) == 2:
			b1, err := net.Branch(incident[0])
			if err != nil {
				logf("tie-line merge: " + err.Error())
				continue
			}
			b2, err := net.Branch(incident[1])
			if err != nil {
				logf("tie-line merge: " + err.Error())
				continue
			}
			other1 := otherEndpointName(net, b1, node.Index)
			other2 := otherEndpointName(net, b2, node.Index)
			if other1 == "" || other2 == "" {
				logf("tie-line merge: could not resolve neighbors of X-node " + node.Name)
				continue
			}

			order := b1.Order
			if b1.Order != b2.Order {
				order = "X" // order mismatch sentinel, unrelated to model.CountryX
				logf("tie-line merge: order mismatch at X-node " + node.Name + ", using \"X\"")
			}
			patl := b1.PATL
			if b2.PATL < patl {
				patl = b2.PATL
			}

			toAdd = append(toAdd, model.BranchSpec{
				NameFrom:    other1,
				NameTo:      other2,
				Order:       order,
				DisplayName: b1.DisplayName,
				Impedance:   b1.Impedance + b2.Impedance,
				PATL:        patl,
				VBase:       b1.VBase,
				Type:        model.MergedTieLine,
			})
			dropNode[node.Index] = true
			dropBranch[incident[0]] = true
			dropBranch[incident[1]] = true
		default:
			// >= 3 branches: keep at most one per distinct neighbor country.
			seenCountry := make(map[string]bool)
			for _, bi := range incident {
				b, err := net.Branch(bi)
				if err != nil {
					continue
				}
				otherIdx := b.FromNode
				if otherIdx == node.Index {
					otherIdx = b.ToNode
				}
				other, err := net.Node(otherIdx)
				if err != nil {
					continue
				}
				if seenCountry[other.Country] {
					dropBranch[bi] = true
					logf("tie-line merge: dropping extra branch at X-node " + node.Name + " for repeated neighbor country " + other.Country)
					continue
				}
				seenCountry[other.Country] = true
			}
			// node itself is resolved on a subsequent pass once down to <=2.
		}
	}

	out := net.Rebuild(
		func(n *model.Node) bool { return !dropNode[n.Index] },
		func(b *model.Branch) bool { return !dropBranch[b.Index] },
	)
	for _, spec := range toAdd {
		if _, err := out.AddBranch(spec); err != nil {
			return nil, topoErrorf("MergeTieLines", err)
		}
	}

	// X-nodes left with exactly 2 branches after the >=3 trimming pass need
	// a second pass; recurse until no X-node has more than 2 incident
	// branches left to collapse, or the Rebuild made no further progress.
	if len(dropNode) == 0 && len(dropBranch) == 0 {
		return out, nil
	}
	for _, node := range out.Nodes() {
		if node.Country == model.CountryX && len(node.Branches) != 0 {
			return MergeTieLines(out, eps, logf)
		}
	}

	return out, nil
}

func otherEndpointName(net *model.Network, b *model.Branch, nodeIdx int) string {
	if b.FromNode == nodeIdx {
		return b.NameTo
	}
	if b.ToNode == nodeIdx {
		return b.NameFrom
	}
	return ""
}
