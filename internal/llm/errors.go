package llm

import "errors"

var (
	// ErrBackendUnavailable indicates the generative backend could not be
	// reached or returned a failure status.
	ErrBackendUnavailable = errors.New("generative backend unavailable")

	// ErrTimeout indicates the generation request exceeded the configured
	// timeout.
	ErrTimeout = errors.New("generation request timed out")

	// ErrInvalidOutput indicates the backend responded but produced no
	// usable text.
	ErrInvalidOutput = errors.New("invalid backend output")
)
