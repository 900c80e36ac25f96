package gridio

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridio operations. Callers branch with errors.Is.
var (
	// ErrInputMissing indicates the source file could not be opened —
	// the InputMissing error kind of spec.md §7, fatal for that country.
	ErrInputMissing = errors.New("gridio: input file missing")

	// ErrMalformedRecord indicates a YAML input file could not be
	// unmarshalled at all; ParseYAML returns it for the whole file.
	// Individual unparsable rows or entries are skipped silently and do
	// not produce this error.
	ErrMalformedRecord = errors.New("gridio: malformed record")

	// ErrUnknownBranchType indicates a branch type tag did not match any
	// of spec.md §3's variants.
	ErrUnknownBranchType = errors.New("gridio: unknown branch type tag")
)

func ioErrorf(stage string, err error) error {
	return fmt.Errorf("gridio.%s: %w", stage, err)
}
