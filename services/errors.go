package services

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why an analysis failed. Every failure the
// pipeline can produce carries exactly one of these.
type ErrorKind string

const (
	KindDecodingFailure       ErrorKind = "decoding_failure"
	KindMalformedDocument     ErrorKind = "malformed_document"
	KindInvalidQuestion       ErrorKind = "invalid_question"
	KindServiceUnavailable    ErrorKind = "service_unavailable"
	KindAuthenticationFailure ErrorKind = "authentication_failure"
	KindProviderError         ErrorKind = "provider_error"
	KindCancelled             ErrorKind = "cancelled"
)

// AnalysisError is the tagged failure returned by the pipeline and its
// stages. Message is safe to show to the user; Err retains the
// underlying cause for logging.
type AnalysisError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AnalysisError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// NewAnalysisError wraps cause (which may be nil) with a kind and a
// user-facing message.
func NewAnalysisError(kind ErrorKind, message string, cause error) *AnalysisError {
	return &AnalysisError{Kind: kind, Message: message, Err: cause}
}

// KindOf reports the classification of err, or false if err is not an
// AnalysisError.
func KindOf(err error) (ErrorKind, bool) {
	var ae *AnalysisError
	if errors.As(err, &ae) {
		return ae.Kind, true
	}
	return "", false
}

// UserMessage returns the displayable message for err. Unclassified
// errors fall back to their plain Error string.
func UserMessage(err error) string {
	var ae *AnalysisError
	if errors.As(err, &ae) {
		return ae.Message
	}
	return err.Error()
}
