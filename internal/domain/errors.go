package domain

import (
	"errors"
	"fmt"
)

// Kind classifies pipeline failures so callers and logs can tell them apart
// without parsing message text.
type Kind string

const (
	KindValidation         Kind = "validation"
	KindNotFound           Kind = "not_found"
	KindModelLoad          Kind = "model_load"
	KindTranscription      Kind = "transcription"
	KindSummarizeTransport Kind = "summarize_transport"
	KindSummarizeParse     Kind = "summarize_parse"
	KindPersistence        Kind = "persistence"
)

// Error is a tagged error carrying an explicit kind plus message. The kind
// is preserved through every layer instead of being flattened to text at the
// first handling point.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// E creates a tagged error with a formatted message.
func E(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WrapErr wraps an underlying error with a kind and message.
func WrapErr(kind Kind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf extracts the kind from an error chain, or empty if untagged.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
