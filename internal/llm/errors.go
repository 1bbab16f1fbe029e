package llm

import "errors"

var (
	// ErrUnavailable indicates the model server is unreachable.
	ErrUnavailable = errors.New("model server unavailable")

	// ErrTimeout indicates the generation request exceeded the configured timeout.
	ErrTimeout = errors.New("generation request timed out")

	// ErrEmptyResponse indicates the model returned no content. Distinct from a
	// transport failure: the call succeeded but produced nothing usable
	// (typically a safety block), and callers must degrade the same way.
	ErrEmptyResponse = errors.New("model returned empty response")

	// ErrInvalidOutput indicates the model response could not be parsed into
	// the expected structured format.
	ErrInvalidOutput = errors.New("invalid model output format")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("generation retry attempts exhausted")
)
