package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridif/model"
)

type snapshotNode struct {
	Name      string `yaml:"name"`
	Country   string `yaml:"country"`
	Ring      int    `yaml:"ring"`
	Connected bool   `yaml:"connected"`
}

type snapshotBranch struct {
	From      string `yaml:"from"`
	To        string `yaml:"to"`
	Type      string `yaml:"type"`
	Country   string `yaml:"country"`
	Ring      int    `yaml:"ring"`
	IsTieLine bool   `yaml:"is_tie_line"`
}

type snapshot struct {
	ControlArea string           `yaml:"control_area"`
	Nodes       []snapshotNode   `yaml:"nodes"`
	Branches    []snapshotBranch `yaml:"branches"`
}

// WriteTopologySnapshot serializes the reduced network's node and branch
// catalog to YAML, for determinism checks across repeated runs.
func WriteTopologySnapshot(w io.Writer, net *model.Network) error {
	snap := snapshot{ControlArea: net.ControlArea()}
	for _, n := range net.Nodes() {
		snap.Nodes = append(snap.Nodes, snapshotNode{
			Name: n.Name, Country: n.Country, Ring: n.Ring, Connected: n.Connected,
		})
	}
	for _, b := range net.Branches() {
		snap.Branches = append(snap.Branches, snapshotBranch{
			From: b.NameFrom, To: b.NameTo, Type: b.Type.String(),
			Country: b.Country, Ring: b.Ring, IsTieLine: b.IsTieLine,
		})
	}

	data, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("report.WriteTopologySnapshot: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("report.WriteTopologySnapshot: %w", err)
	}
	return nil
}
