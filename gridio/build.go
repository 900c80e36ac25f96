package gridio

import (
	"github.com/katalvlaran/gridif/gridconfig"
	"github.com/katalvlaran/gridif/model"
)

// iatlOverloadThreshold is the constant from spec.md §6's IATL->PATL rule:
// if the original IATL exceeds this many amperes, the branch is treated as
// having no effective thermal limit (PATL = 0).
const iatlOverloadThreshold = 5000.0

// resolvedPATL applies the IATL->PATL zero rule. If rec.IATL is unset
// (zero), rec.PATL is used as given.
func resolvedPATL(rec BranchRecord) float64 {
	if rec.IATL == 0 {
		return rec.PATL
	}
	if rec.IATL > iatlOverloadThreshold {
		return 0
	}
	return rec.PATL
}

// Build assembles raw into a model.Network for controlArea, applying
// mapper to every node name, expanding three-winding transformers, and
// dropping generators with non-positive power.
func Build(raw *RawGrid, controlArea string, mapper gridconfig.CountryMapper) (*model.Network, error) {
	net := model.NewNetwork(controlArea)

	branches := make([]BranchRecord, 0, len(raw.Branches))
	branches = append(branches, raw.Branches...)
	for _, tw := range raw.ThreeWindings {
		branches = append(branches, SplitThreeWinding(tw)...)
	}

	ensureNode := func(name string) error {
		if _, ok := net.NodeIndexByName(name); ok {
			return nil
		}
		country := mapper(name)
		if country == "XX" {
			return nil
		}
		_, err := net.AddNode(name, country)
		return err
	}

	for _, b := range branches {
		if mapper(b.From) == "XX" || mapper(b.To) == "XX" {
			continue
		}
		if err := ensureNode(b.From); err != nil {
			return nil, ioErrorf("Build", err)
		}
		if err := ensureNode(b.To); err != nil {
			return nil, ioErrorf("Build", err)
		}
		if _, ok := net.NodeIndexByName(b.From); !ok {
			continue
		}
		if _, ok := net.NodeIndexByName(b.To); !ok {
			continue
		}

		if _, err := net.AddBranch(model.BranchSpec{
			NameFrom:    b.From,
			NameTo:      b.To,
			Order:       b.Order,
			DisplayName: b.DisplayName,
			Impedance:   b.Impedance,
			PATL:        resolvedPATL(b),
			VBase:       b.VBase,
			Type:        b.Type,
		}); err != nil {
			return nil, ioErrorf("Build", err)
		}
	}

	for _, g := range raw.Generators {
		if g.Power <= 0 {
			continue
		}
		net.AddGenerator(model.GeneratorSpec{
			NodeName:    g.NodeName,
			DisplayName: g.DisplayName,
			Power:       g.Power,
		})
	}

	return net, nil
}
