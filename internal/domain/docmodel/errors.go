package docmodel

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrEmptyDocument     = errors.New("no text could be extracted from the document")
	ErrMissingFields     = errors.New("missing required fields")
)

// ExtractionError wraps a failure inside one of the extraction libraries.
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("error extracting text: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// ProviderError is the single wrapper for any transport or provider failure
// on the AI round trip. The original message is preserved for the caller.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("ai provider call failed: %v", e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// StageError reports which pipeline stage failed and why. The pipeline is
// all-or-nothing; a StageError means no result was produced.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// RenderError wraps a report-PDF generation failure.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("failed to generate PDF document: %v", e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
