package topology

import "github.com/katalvlaran/gridif/model"

// Options configures a Reduce run.
type Options struct {
	// MergeCouplers selects merge mode (true) vs conversion mode (false)
	// for coupler handling, per the do_merge_couplers configuration option.
	MergeCouplers bool

	// Eps is the tolerance passed through to tie-line merge heuristics.
	Eps float64

	// Logf receives human-readable PolicyWarning/Degenerate messages.
	// A nil Logf discards them.
	Logf func(string)
}

func classifyAll(net *model.Network) error {
	for _, b := range net.Branches() {
		if err := net.ClassifyTieLine(b.Index); err != nil {
			return err
		}
	}
	return nil
}

// Reduce runs the full topology reduction pipeline described in spec.md
// §4.1: coupler handling, tie-line classification and merge, self-loop
// removal, ring assignment, pruning, and generator attachment. It returns
// a new, canonical Network; net itself may be left partially mutated and
// should not be reused by the caller.
func Reduce(net *model.Network, opt Options) (*model.Network, error) {
	logf := opt.Logf
	if logf == nil {
		logf = func(string) {}
	}

	var cur *model.Network
	var err error
	if opt.MergeCouplers {
		cur, err = ContractCouplers(net)
		if err != nil {
			return nil, topoErrorf("Reduce", err)
		}
	} else {
		ConvertCouplers(net)
		cur = net
	}

	if err := classifyAll(cur); err != nil {
		return nil, topoErrorf("Reduce", err)
	}

	cur, err = MergeTieLines(cur, opt.Eps, logf)
	if err != nil {
		return nil, topoErrorf("Reduce", err)
	}
	if err := classifyAll(cur); err != nil {
		return nil, topoErrorf("Reduce", err)
	}

	cur = RemoveSelfLoops(cur)

	if err := AssignRings(cur); err != nil {
		return nil, topoErrorf("Reduce", err)
	}

	cur = Prune(cur)

	AttachGenerators(cur, logf)

	if err := cur.Validate(); err != nil {
		return nil, topoErrorf("Reduce", ErrTopologyInvariant)
	}

	return cur, nil
}
