package ifsearch

import (
	"errors"
	"fmt"
)

// Sentinel errors for ifsearch operations. Callers branch with errors.Is.
var (
	// ErrEmptyR indicates the country's R set is empty; the analysis
	// aborts for that country only, per spec.md §4.4's failure semantics.
	ErrEmptyR = errors.New("ifsearch: R set is empty")

	// ErrBudgetExceeded indicates the per-country wall-clock ceiling was
	// exceeded between ring layers.
	ErrBudgetExceeded = errors.New("ifsearch: wall-clock budget exceeded")
)

func searchErrorf(stage string, err error) error {
	return fmt.Errorf("ifsearch.%s: %w", stage, err)
}
