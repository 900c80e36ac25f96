package elecmatrix

import (
	"errors"
	"fmt"
)

// Sentinel errors for elecmatrix operations. Callers branch with errors.Is.
var (
	// ErrNoSlack indicates no slack candidate could be chosen (the
	// control-area country is absent from the reduced network).
	ErrNoSlack = errors.New("elecmatrix: no slack node candidate")

	// ErrSingularB indicates B' (the reduced susceptance matrix) is
	// singular — the network has split into electrical islands. This is
	// the Numerical error kind of spec.md §7: fatal for the country.
	ErrSingularB = errors.New("elecmatrix: singular susceptance matrix")

	// ErrNoBranches indicates the network has zero branches, making
	// matrix construction meaningless.
	ErrNoBranches = errors.New("elecmatrix: network has no branches")
)

func matErrorf(stage string, err error) error {
	return fmt.Errorf("elecmatrix.%s: %w", stage, err)
}
