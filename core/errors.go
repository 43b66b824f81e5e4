package core

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat indicates the input is not a PDF: the header check or the
// trailing %%EOF check failed. It is the only fatal structural error.
var ErrInvalidFormat = errors.New("invalid PDF format")

// StructuralError reports a recoverable defect in the file's cross-reference
// machinery. Object content is still available via the full-document scan, so
// callers treat this as a diagnostic, not a failure.
type StructuralError struct {
	Detail string
	Err    error
}

func (e *StructuralError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("structural parse error: %s: %v", e.Detail, e.Err)
	}
	return fmt.Sprintf("structural parse error: %s", e.Detail)
}

func (e *StructuralError) Unwrap() error { return e.Err }
