package core

import (
	"errors"
	"fmt"
)

// ErrContextUnavailable signals that no document or retrieval context could
// be obtained for a request. Maps to a 404 at the transport boundary.
var ErrContextUnavailable = errors.New("no document or context available")

// GenerationError wraps a model-call failure. The upstream message is kept
// intact so the caller has enough detail to retry.
type GenerationError struct {
	Op  string
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed (%s): %v", e.Op, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// NewGenerationError tags a model failure with the operation that issued it.
func NewGenerationError(op string, err error) *GenerationError {
	return &GenerationError{Op: op, Err: err}
}

// RenderError wraps a template or PDF-layer failure.
type RenderError struct {
	Template string
	Err      error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("rendering %s failed: %v", e.Template, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
