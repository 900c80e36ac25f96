package topology

import "github.com/katalvlaran/gridif/model"

// couplerMapping computes the from-name -> representative-name mapping for
// merge-mode coupler contraction. The mapping is idempotent: no key is
// also a value, so resolving any name takes at most one hop.
//
// Processing order follows the source algorithm: for coupler A-B, (i) if
// neither A nor B has been seen, record A->B; (ii) if A is already mapped
// to some representative X, also map B->X; (iii) if A is itself a
// representative (some earlier key already points at A), repoint all of
// those keys at B instead. Where the source's cases don't cover an
// ordering (e.g. B, not A, is already known), the symmetric rule is
// applied — this is not spelled out in the source, a deliberate widening
// of the literal algorithm to stay idempotent for clusters discovered in
// either edge direction.
func couplerMapping(branches []*model.Branch) map[string]string {
	repr := make(map[string]string)
	isTarget := make(map[string]bool)

	apply := func(a, b string) bool {
		if repA, ok := repr[a]; ok {
			repr[b] = repA
			isTarget[repA] = true
			return true
		}
		if isTarget[a] {
			for k, v := range repr {
				if v == a {
					repr[k] = b
				}
			}
			delete(isTarget, a)
			isTarget[b] = true
			return true
		}
		return false
	}

	for _, b := range branches {
		if b.Type != model.Coupler {
			continue
		}
		a, bb := b.NameFrom, b.NameTo
		if apply(a, bb) {
			continue
		}
		if apply(bb, a) {
			continue
		}
		// neither is known and neither is a representative: fresh pair.
		repr[a] = bb
		isTarget[bb] = true
	}

	return repr
}

// resolve follows the mapping to its fixpoint for name. Idempotence means
// one hop suffices in the common case; the loop guards against any residual
// chain produced by pathological input.
func resolve(mapping map[string]string, name string) string {
	seen := make(map[string]bool)
	for {
		next, ok := mapping[name]
		if !ok || seen[name] {
			return name
		}
		seen[name] = true
		name = next
	}
}

// ContractCouplers rewrites every branch and generator endpoint name
// through the coupler mapping, deletes coupler branches, and drops any
// node left with no incident branches and no generators as a result.
func ContractCouplers(net *model.Network) (*model.Network, error) {
	mapping := couplerMapping(net.Branches())

	for _, b := range net.Branches() {
		if b.Type == model.Coupler {
			continue
		}
		b.NameFrom = resolve(mapping, b.NameFrom)
		b.NameTo = resolve(mapping, b.NameTo)
	}
	for _, g := range net.Generators() {
		g.NodeName = resolve(mapping, g.NodeName)
	}

	out := model.NewNetwork(net.ControlArea())
	nameToNew := make(map[string]int)
	for _, node := range net.Nodes() {
		canonical := resolve(mapping, node.Name)
		if _, ok := nameToNew[canonical]; ok {
			continue
		}
		idx, err := out.AddNode(canonical, node.Country)
		if err != nil {
			return nil, topoErrorf("ContractCouplers", err)
		}
		nameToNew[canonical] = idx
	}

	for _, b := range net.Branches() {
		if b.Type == model.Coupler {
			continue
		}
		if _, err := out.AddBranch(model.BranchSpec{
			NameFrom:    b.NameFrom,
			NameTo:      b.NameTo,
			Order:       b.Order,
			DisplayName: b.DisplayName,
			Impedance:   b.Impedance,
			PATL:        b.PATL,
			VBase:       b.VBase,
			Type:        b.Type,
		}); err != nil {
			return nil, topoErrorf("ContractCouplers", err)
		}
	}

	for _, g := range net.Generators() {
		out.AddGenerator(model.GeneratorSpec{
			NodeName:    g.NodeName,
			DisplayName: g.DisplayName,
			Power:       g.Power,
		})
	}

	return out, nil
}

// ConvertCouplers retypes every coupler branch as a Line in place,
// retaining its impedance and (zero) thermal limit, per the
// do_merge_couplers=false policy.
func ConvertCouplers(net *model.Network) {
	for _, b := range net.Branches() {
		if b.Type == model.Coupler {
			b.Type = model.Line
		}
	}
}
