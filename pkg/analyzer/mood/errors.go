package mood

import (
	"fmt"
	"strings"
)

// IngestionError reports a source file that could not be turned into
// declarations. The file is skipped; the run continues.
type IngestionError struct {
	Path string
	Err  error
}

func (e *IngestionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *IngestionError) Unwrap() error {
	return e.Err
}

// ComputationError reports that the MOOD ratios cannot be computed for the
// corpus as a whole.
type ComputationError struct {
	Reason string
}

func (e *ComputationError) Error() string {
	return "mood computation failed: " + e.Reason
}

// CycleError reports classes whose resolved parent links form a cycle.
type CycleError struct {
	Classes []string
}

func (e *CycleError) Error() string {
	return "inheritance cycle detected: " + strings.Join(e.Classes, " -> ")
}
