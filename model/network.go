package model

import "sync"

// Network is the arena owning every Node, Branch, and Generator of one
// country's grid. Entities cross-reference each other via the dense,
// zero-based indices Network hands out; no entity owns another, so Network
// alone owns the graph and destroys it as a unit.
//
// Network is built once per country by the parser, mutated in place by the
// topology reducer, and treated as read-only by every stage downstream of
// reduction. Two separate locks guard the node and branch/generator
// catalogs, matching the split-mutex discipline the example pack's graph
// arena uses, so reducer passes that only touch one catalog never block on
// the other.
type Network struct {
	muNodes sync.RWMutex
	muRest  sync.RWMutex

	controlArea string // country tag of the control area this Network is centered on

	nodes      []*Node
	branches   []*Branch
	generators []*Generator

	nodeByName map[string]int
}

// NewNetwork returns an empty Network centered on controlArea.
func NewNetwork(controlArea string) *Network {
	return &Network{
		controlArea: controlArea,
		nodeByName:  make(map[string]int),
	}
}

// ControlArea returns the country tag this Network is centered on.
func (n *Network) ControlArea() string {
	return n.controlArea
}

// AddNode appends a new Node with the given name and country, returning its
// dense index. Returns ErrEmptyName or ErrDuplicateNode on invalid input.
func (n *Network) AddNode(name, country string) (int, error) {
	if name == "" {
		return 0, modelErrorf("AddNode", ErrEmptyName)
	}

	n.muNodes.Lock()
	defer n.muNodes.Unlock()

	if _, exists := n.nodeByName[name]; exists {
		return 0, modelErrorf("AddNode", ErrDuplicateNode)
	}

	idx := len(n.nodes)
	node := &Node{
		Index:   idx,
		Name:    name,
		Country: country,
		Ring:    RingUnassigned,
	}
	n.nodes = append(n.nodes, node)
	n.nodeByName[name] = idx

	return idx, nil
}

// NodeIndexByName returns the index of the node named name, or false if no
// such node exists.
func (n *Network) NodeIndexByName(name string) (int, bool) {
	n.muNodes.RLock()
	defer n.muNodes.RUnlock()

	idx, ok := n.nodeByName[name]
	return idx, ok
}

// Node returns a pointer to the node at idx. The returned pointer aliases
// Network's storage; callers outside the reducer should treat it as
// read-only.
func (n *Network) Node(idx int) (*Node, error) {
	n.muNodes.RLock()
	defer n.muNodes.RUnlock()

	if idx < 0 || idx >= len(n.nodes) {
		return nil, modelErrorf("Node", ErrNodeIndexOutOfRange)
	}
	return n.nodes[idx], nil
}

// Nodes returns the node catalog. The returned slice aliases Network's
// storage and must not be resized by the caller.
func (n *Network) Nodes() []*Node {
	n.muNodes.RLock()
	defer n.muNodes.RUnlock()
	return n.nodes
}

// NumNodes returns the number of nodes currently in the arena.
func (n *Network) NumNodes() int {
	n.muNodes.RLock()
	defer n.muNodes.RUnlock()
	return len(n.nodes)
}

// BranchSpec describes a branch to add via AddBranch. Endpoint names are
// resolved against existing nodes; AddBranch fails with ErrUnknownNode if
// either is absent.
type BranchSpec struct {
	NameFrom, NameTo string
	Order            string
	DisplayName      string
	Impedance        float64
	PATL             float64
	VBase            float64
	Type             BranchType
}

// AddBranch resolves spec's endpoints against existing nodes, appends a new
// Branch, and registers it in both endpoints' incidence lists. Returns
// ErrUnknownNode if either endpoint name is not a known node.
func (n *Network) AddBranch(spec BranchSpec) (int, error) {
	fromIdx, ok := n.NodeIndexByName(spec.NameFrom)
	if !ok {
		return 0, modelErrorf("AddBranch", ErrUnknownNode)
	}
	toIdx, ok := n.NodeIndexByName(spec.NameTo)
	if !ok {
		return 0, modelErrorf("AddBranch", ErrUnknownNode)
	}

	n.muRest.Lock()
	defer n.muRest.Unlock()

	idx := len(n.branches)
	b := &Branch{
		Index:       idx,
		NameFrom:    spec.NameFrom,
		NameTo:      spec.NameTo,
		FromNode:    fromIdx,
		ToNode:      toIdx,
		Order:       spec.Order,
		DisplayName: spec.DisplayName,
		Impedance:   spec.Impedance,
		PATL:        spec.PATL,
		VBase:       spec.VBase,
		Type:        spec.Type,
		Ring:        RingUnassigned,
	}
	n.branches = append(n.branches, b)

	n.muNodes.Lock()
	n.nodes[fromIdx].Branches = append(n.nodes[fromIdx].Branches, idx)
	n.nodes[toIdx].Branches = append(n.nodes[toIdx].Branches, idx)
	n.muNodes.Unlock()

	return idx, nil
}

// Branch returns a pointer to the branch at idx.
func (n *Network) Branch(idx int) (*Branch, error) {
	n.muRest.RLock()
	defer n.muRest.RUnlock()

	if idx < 0 || idx >= len(n.branches) {
		return nil, modelErrorf("Branch", ErrBranchIndexOutOfRange)
	}
	return n.branches[idx], nil
}

// Branches returns the branch catalog. The returned slice aliases Network's
// storage and must not be resized by the caller.
func (n *Network) Branches() []*Branch {
	n.muRest.RLock()
	defer n.muRest.RUnlock()
	return n.branches
}

// NumBranches returns the number of branches currently in the arena.
func (n *Network) NumBranches() int {
	n.muRest.RLock()
	defer n.muRest.RUnlock()
	return len(n.branches)
}

// GeneratorSpec describes a generator to add via AddGenerator, before node
// attachment has run.
type GeneratorSpec struct {
	NodeName    string
	DisplayName string
	Power       float64
}

// AddGenerator appends a new, as-yet-unattached Generator (Node == -1).
// Attachment to a node happens in a later pass (see the topology package's
// AttachGenerators), since at parse time the node the generator refers to
// may not yet have its final post-coupler-merge name.
func (n *Network) AddGenerator(spec GeneratorSpec) int {
	n.muRest.Lock()
	defer n.muRest.Unlock()

	idx := len(n.generators)
	n.generators = append(n.generators, &Generator{
		Index:       idx,
		NodeName:    spec.NodeName,
		DisplayName: spec.DisplayName,
		Power:       spec.Power,
		Node:        -1,
	})
	return idx
}

// Generator returns a pointer to the generator at idx.
func (n *Network) Generator(idx int) (*Generator, error) {
	n.muRest.RLock()
	defer n.muRest.RUnlock()

	if idx < 0 || idx >= len(n.generators) {
		return nil, modelErrorf("Generator", ErrGeneratorIndexOutOfRange)
	}
	return n.generators[idx], nil
}

// Generators returns the generator catalog. The returned slice aliases
// Network's storage and must not be resized by the caller.
func (n *Network) Generators() []*Generator {
	n.muRest.RLock()
	defer n.muRest.RUnlock()
	return n.generators
}

// NumGenerators returns the number of generators currently in the arena.
func (n *Network) NumGenerators() int {
	n.muRest.RLock()
	defer n.muRest.RUnlock()
	return len(n.generators)
}

// AttachGenerator binds generator idx to node nodeIdx and inherits the
// node's country. It registers the generator in the node's Generators list.
func (n *Network) AttachGenerator(genIdx, nodeIdx int) error {
	node, err := n.Node(nodeIdx)
	if err != nil {
		return modelErrorf("AttachGenerator", err)
	}

	n.muRest.Lock()
	if genIdx < 0 || genIdx >= len(n.generators) {
		n.muRest.Unlock()
		return modelErrorf("AttachGenerator", ErrGeneratorIndexOutOfRange)
	}
	g := n.generators[genIdx]
	g.Node = nodeIdx
	g.Country = node.Country
	n.muRest.Unlock()

	n.muNodes.Lock()
	node.Generators = append(node.Generators, genIdx)
	n.muNodes.Unlock()

	return nil
}

// Validate checks the graph-consistency invariants of spec.md §8: every
// branch's endpoint names match the names of the nodes it references, every
// node's incident-branch indices resolve to branches that reference that
// node back, and every generator either is unattached (Node == -1) or
// references a present node.
func (n *Network) Validate() error {
	n.muNodes.RLock()
	n.muRest.RLock()
	defer n.muNodes.RUnlock()
	defer n.muRest.RUnlock()

	for _, b := range n.branches {
		if b.FromNode < 0 || b.FromNode >= len(n.nodes) || b.ToNode < 0 || b.ToNode >= len(n.nodes) {
			return modelErrorf("Validate", ErrDanglingBranchRef)
		}
		from, to := n.nodes[b.FromNode], n.nodes[b.ToNode]
		if from.Name != b.NameFrom || to.Name != b.NameTo {
			return modelErrorf("Validate", ErrEndpointNameMismatch)
		}
	}
	for _, node := range n.nodes {
		for _, bi := range node.Branches {
			if bi < 0 || bi >= len(n.branches) {
				return modelErrorf("Validate", ErrDanglingBranchRef)
			}
			if b := n.branches[bi]; b.FromNode != node.Index && b.ToNode != node.Index {
				return modelErrorf("Validate", ErrDanglingBranchRef)
			}
		}
	}
	for _, g := range n.generators {
		if g.Node != -1 && (g.Node < 0 || g.Node >= len(n.nodes)) {
			return modelErrorf("Validate", ErrUnknownNode)
		}
	}

	return nil
}
