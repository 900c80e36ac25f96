package model

import (
	"errors"
	"fmt"
)

// Sentinel errors for model package operations. Callers branch with
// errors.Is, never string comparison.
var (
	// ErrEmptyName indicates an entity was given an empty name.
	ErrEmptyName = errors.New("model: name is empty")

	// ErrDuplicateNode indicates a node name already exists in the Network.
	ErrDuplicateNode = errors.New("model: duplicate node name")

	// ErrUnknownNode indicates a branch or generator referenced a node name
	// that does not exist in the Network.
	ErrUnknownNode = errors.New("model: unknown node")

	// ErrNodeIndexOutOfRange indicates an index outside [0, NumNodes()).
	ErrNodeIndexOutOfRange = errors.New("model: node index out of range")

	// ErrBranchIndexOutOfRange indicates an index outside [0, NumBranches()).
	ErrBranchIndexOutOfRange = errors.New("model: branch index out of range")

	// ErrGeneratorIndexOutOfRange indicates an index outside [0, NumGenerators()).
	ErrGeneratorIndexOutOfRange = errors.New("model: generator index out of range")

	// ErrEndpointNameMismatch indicates a branch's NameFrom/NameTo disagrees
	// with the Name of the Node it references — the graph-consistency
	// invariant of spec.md §8.
	ErrEndpointNameMismatch = errors.New("model: branch endpoint name does not match node name")

	// ErrDanglingBranchRef indicates a node's Branches list references a
	// branch index that is not present in the branch arena.
	ErrDanglingBranchRef = errors.New("model: dangling branch reference")
)

// modelErrorf wraps err with method context, matching the
// "<Method>(<args>): <err>" convention used throughout the example pack's
// arena/matrix packages.
func modelErrorf(method string, err error) error {
	return fmt.Errorf("model.%s: %w", method, err)
}
