package services

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	ErrKindUnsupportedFormat   ErrorKind = "unsupported_format"
	ErrKindExtraction          ErrorKind = "extraction_failed"
	ErrKindInsufficientContent ErrorKind = "insufficient_content"
	ErrKindModel               ErrorKind = "model_failure"
	ErrKindMalformedOutput     ErrorKind = "malformed_output"
)

// AnalysisError tags a pipeline failure with its kind so callers can pick a
// status code without inspecting the message.
type AnalysisError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *AnalysisError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AnalysisError) Unwrap() error {
	return e.Cause
}

// IsClientError reports whether the failure was caused by the uploaded
// document rather than the model.
func (e *AnalysisError) IsClientError() bool {
	switch e.Kind {
	case ErrKindUnsupportedFormat, ErrKindExtraction, ErrKindInsufficientContent:
		return true
	}
	return false
}

func NewAnalysisError(kind ErrorKind, message string, cause error) *AnalysisError {
	return &AnalysisError{
		Kind:    kind,
		Message: message,
		Cause:   cause,
	}
}

// KindOf returns the kind of the first AnalysisError in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var analysisErr *AnalysisError
	if errors.As(err, &analysisErr) {
		return analysisErr.Kind, true
	}
	return "", false
}
