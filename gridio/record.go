package gridio

import "github.com/katalvlaran/gridif/model"

// BranchRecord is the dialect-neutral intermediate form of a parsed
// branch, before country mapping and PATL derivation have run.
type BranchRecord struct {
	From, To    string
	Order       string
	DisplayName string
	Impedance   float64 // p.u. on the configured Sbase
	PATL        float64 // MW as given by the source; Build replaces it with 0 when IATL exceeds the ampere threshold
	IATL        float64 // A; 0 if the source gave no IATL
	VBase       float64 // kV
	Type        model.BranchType
}

// GeneratorRecord is the dialect-neutral intermediate form of a parsed
// generator.
type GeneratorRecord struct {
	NodeName    string
	DisplayName string
	Power       float64 // MW; <= 0 is dropped by Build
}

// Winding is one winding of a three-winding transformer record.
type Winding struct {
	Bus       string
	Impedance float64
	PATL      float64
	VBase     float64
	Relevant  bool
}

// ThreeWindingRecord is a three-winding transformer as read from either
// dialect, before SplitThreeWinding expands it into one or more
// BranchRecords.
type ThreeWindingRecord struct {
	Name string
	A, B, C Winding
}

// RawGrid holds everything a dialect parser extracts from one source
// file, before Build turns it into a model.Network.
type RawGrid struct {
	Branches      []BranchRecord
	Generators    []GeneratorRecord
	ThreeWindings []ThreeWindingRecord
}
