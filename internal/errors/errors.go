// Package errors defines the processing error taxonomy shared by the
// report integration tools. Configuration errors abort a run; everything
// else is scoped to a single file and logged as a skip.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Code classifies a ProcessingError.
type Code string

const (
	// CodeConfig marks invalid setup (missing input directory, bad
	// request). Fatal for the whole run.
	CodeConfig Code = "CONFIG"
	// CodeParse marks a file that could not be read or tokenized.
	CodeParse Code = "PARSE"
	// CodeGate marks a file rejected by an assay gate. Not a failure;
	// recorded so skip reasons stay queryable.
	CodeGate Code = "GATE_REJECTED"
	// CodePersist marks a failed write of an output artifact.
	CodePersist Code = "PERSIST"
	// CodePDF marks a failure inside the PDF helper.
	CodePDF Code = "PDF"
)

// ProcessingError carries a taxonomy code, the operation that failed and
// the underlying cause.
type ProcessingError struct {
	Code Code
	Op   string
	Err  error
}

// Error implements the error interface.
func (e *ProcessingError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Op)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Op, e.Err)
}

// Unwrap exposes the cause for errors.Is/As chains.
func (e *ProcessingError) Unwrap() error {
	return e.Err
}

// New creates a ProcessingError.
func New(code Code, op string, err error) *ProcessingError {
	return &ProcessingError{Code: code, Op: op, Err: err}
}

// Config wraps err as a fatal configuration error.
func Config(op string, err error) *ProcessingError {
	return New(CodeConfig, op, err)
}

// Parse wraps err as a per-file parse error.
func Parse(op string, err error) *ProcessingError {
	return New(CodeParse, op, err)
}

// Persist wraps err as an output write error.
func Persist(op string, err error) *ProcessingError {
	return New(CodePersist, op, err)
}

// PDF wraps err as a PDF helper error.
func PDF(op string, err error) *ProcessingError {
	return New(CodePDF, op, err)
}

// CodeOf extracts the taxonomy code from err, or "" if err is not a
// ProcessingError.
func CodeOf(err error) Code {
	var pe *ProcessingError
	if stderrors.As(err, &pe) {
		return pe.Code
	}
	return ""
}

// IsConfig reports whether err is fatal for the run.
func IsConfig(err error) bool {
	return CodeOf(err) == CodeConfig
}
