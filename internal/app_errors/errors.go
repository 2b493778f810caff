package app_errors

import (
	"errors"
	"fmt"
)

var ErrModuleNotFound = errors.New("module not found")
var ErrQuizNotFound = errors.New("quiz not found")
var ErrIncorrectPasscode = errors.New("incorrect passcode")
var ErrGenerationUnavailable = errors.New("question generation is not configured")

// Fetch failure reasons.
const (
	FetchInvalidScheme         = "invalid_scheme"
	FetchPrivateAddressBlocked = "private_address_blocked"
	FetchTooLarge              = "too_large"
	FetchTimeout               = "timeout"
	FetchHTTPError             = "http_error"
)

// Extraction failure reasons.
const (
	ExtractionEmpty           = "empty_after_extraction"
	ExtractionUnsupportedType = "unsupported_content_type"
)

// Import pipeline stages.
const (
	StageFetch   = "fetch"
	StageExtract = "extract"
)

// FetchError is a network or safety failure while retrieving a remote
// document. Reason is one of the Fetch* constants.
type FetchError struct {
	Reason string
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch failed (%s): %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("fetch failed (%s)", e.Reason)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ExtractionError reports that a fetched document could not be reduced to
// readable text. Reason is one of the Extraction* constants.
type ExtractionError struct {
	Reason string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed (%s)", e.Reason)
}

// GenerationError wraps any failure of the external text-generation
// capability. It is the one error class the import pipeline always recovers
// from by falling back to the heuristic strategy.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("question generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// ValidationError reports a structural invariant violation on write.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ImportError tags a pipeline stage failure with the stage that produced it.
// The wrapped error carries the machine-readable reason.
type ImportError struct {
	Stage string
	Err   error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("import failed at %s: %v", e.Stage, e.Err)
}

func (e *ImportError) Unwrap() error { return e.Err }

// ReasonOf extracts the machine-readable reason code from a fetch or
// extraction error, or an empty string if the error carries none.
func ReasonOf(err error) string {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Reason
	}
	var ee *ExtractionError
	if errors.As(err, &ee) {
		return ee.Reason
	}
	return ""
}
