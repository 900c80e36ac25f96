package elecmatrix

import (
	"github.com/katalvlaran/gridif/linalg"
	"github.com/katalvlaran/gridif/model"
	"github.com/katalvlaran/gridif/topology"
)

// Set bundles every dense matrix the IF search needs for one country,
// indexed consistently by the reduced Network's node/branch indices.
type Set struct {
	Net   *model.Network
	Slack int

	ISF       *linalg.Dense // M x N
	PTDF      *linalg.Dense // M x M
	SelfPTDF  []float64     // length M
	LODF      *linalg.Dense // M x M
	PATLRatio *linalg.Dense // M x M
	GenLODF   *linalg.Dense // M x NumGenerators; nil if the network has no generators
}

// Build assembles every matrix for a reduced Network. eps gates the
// radial-exclusion threshold applied while building LODF.
func Build(net *model.Network, eps float64, logf func(string)) (*Set, error) {
	if net.NumBranches() == 0 {
		return nil, matErrorf("Build", ErrNoBranches)
	}

	slack, err := topology.SlackCandidate(net)
	if err != nil {
		return nil, matErrorf("Build", ErrNoSlack)
	}

	bPrime, reducedIndex, err := buildReducedB(net, slack)
	if err != nil {
		return nil, matErrorf("Build", err)
	}

	binv, err := linalg.Inverse(bPrime)
	if err != nil {
		return nil, matErrorf("Build", ErrSingularB)
	}

	isf, err := buildISF(net, binv, reducedIndex)
	if err != nil {
		return nil, matErrorf("Build", err)
	}

	ptdf, selfPTDF, err := buildPTDF(net, isf)
	if err != nil {
		return nil, matErrorf("Build", err)
	}

	for _, b := range net.Branches() {
		if err := net.SetSelfPTDF(b.Index, selfPTDF[b.Index]); err != nil {
			return nil, matErrorf("Build", err)
		}
	}

	lodf, err := buildLODF(ptdf, selfPTDF, eps)
	if err != nil {
		return nil, matErrorf("Build", err)
	}

	patlRatio, err := buildPATLRatio(net)
	if err != nil {
		return nil, matErrorf("Build", err)
	}

	genLODF, err := buildGenLODF(net, isf, logf)
	if err != nil {
		return nil, matErrorf("Build", err)
	}

	return &Set{
		Net:       net,
		Slack:     slack,
		ISF:       isf,
		PTDF:      ptdf,
		SelfPTDF:  selfPTDF,
		LODF:      lodf,
		PATLRatio: patlRatio,
		GenLODF:   genLODF,
	}, nil
}
