package gridio

import (
	"os"

	"gopkg.in/yaml.v3"
)

type yamlBranch struct {
	From        string  `yaml:"from"`
	To          string  `yaml:"to"`
	Order       string  `yaml:"order"`
	DisplayName string  `yaml:"display_name"`
	Impedance   float64 `yaml:"impedance"`
	IATL        float64 `yaml:"iatl"`
	PATL        float64 `yaml:"patl"`
	VBase       float64 `yaml:"v_base"`
	Type        string  `yaml:"type"`
}

type yamlGenerator struct {
	NodeName    string  `yaml:"node_name"`
	DisplayName string  `yaml:"display_name"`
	Power       float64 `yaml:"power"`
}

type yamlWinding struct {
	Bus       string  `yaml:"bus"`
	Impedance float64 `yaml:"impedance"`
	PATL      float64 `yaml:"patl"`
	VBase     float64 `yaml:"v_base"`
	Relevant  bool    `yaml:"relevant"`
}

type yamlThreeWinding struct {
	Name string      `yaml:"name"`
	A    yamlWinding `yaml:"a"`
	B    yamlWinding `yaml:"b"`
	C    yamlWinding `yaml:"c"`
}

type yamlGrid struct {
	Branches      []yamlBranch       `yaml:"branches"`
	Generators    []yamlGenerator    `yaml:"generators"`
	ThreeWindings []yamlThreeWinding `yaml:"three_windings"`
}

// ParseYAML reads the YAML dialect: one file with branches, generators,
// and three-winding transformer lists. Unlike the CSV dialect, this
// dialect has no min_voltage_level_kV filter.
func ParseYAML(path string) (*RawGrid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ioErrorf("ParseYAML", ErrInputMissing)
	}

	var g yamlGrid
	if err := yaml.Unmarshal(data, &g); err != nil {
		return nil, ioErrorf("ParseYAML", ErrMalformedRecord)
	}

	out := &RawGrid{}
	for _, b := range g.Branches {
		branchType, ok := branchTypeTags[b.Type]
		if !ok {
			continue
		}
		out.Branches = append(out.Branches, BranchRecord{
			From: b.From, To: b.To, Order: b.Order, DisplayName: b.DisplayName,
			Impedance: b.Impedance, IATL: b.IATL, PATL: b.PATL, VBase: b.VBase, Type: branchType,
		})
	}
	for _, gen := range g.Generators {
		out.Generators = append(out.Generators, GeneratorRecord{
			NodeName: gen.NodeName, DisplayName: gen.DisplayName, Power: gen.Power,
		})
	}
	for _, tw := range g.ThreeWindings {
		out.ThreeWindings = append(out.ThreeWindings, ThreeWindingRecord{
			Name: tw.Name,
			A:    toWinding(tw.A),
			B:    toWinding(tw.B),
			C:    toWinding(tw.C),
		})
	}

	return out, nil
}

func toWinding(w yamlWinding) Winding {
	return Winding{Bus: w.Bus, Impedance: w.Impedance, PATL: w.PATL, VBase: w.VBase, Relevant: w.Relevant}
}
